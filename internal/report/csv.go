package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteCSV writes doc's header, body and total rows as CSV.
func WriteCSV(w io.Writer, doc Document) error {
	lines := make([][]string, 0, doc.RowCount())
	lines = append(lines, doc.Header)
	lines = append(lines, doc.Body...)
	lines = append(lines, doc.Total)

	for _, cells := range lines {
		escaped := make([]string, len(cells))
		for i, c := range cells {
			escaped[i] = csvEscape(c)
		}
		if _, err := fmt.Fprintln(w, strings.Join(escaped, ",")); err != nil {
			return err
		}
	}
	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
