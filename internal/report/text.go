package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Tiliavir/workhours/internal/timecalc"
	"github.com/Tiliavir/workhours/internal/worklog"
)

// styleWorkLog renders a plain fixed-width table: no borders, columns
// separated by two spaces, and a dashed rule under the header.
var styleWorkLog = func() table.Style {
	s := table.StyleDefault
	s.Name = "StyleWorkLog"
	s.Box.MiddleHorizontal = "-"
	s.Box.PaddingLeft = ""
	s.Box.PaddingRight = "  "
	s.Format.Header = text.FormatDefault
	s.Format.Footer = text.FormatDefault
	s.Options = table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  true,
		SeparateRows:    false,
	}
	return s
}()

// Text renders log as a fixed-width table followed by a rule line and the
// total hours.
func Text(log *worklog.WorkLog) string {
	t := table.NewWriter()
	t.SetStyle(styleWorkLog)
	t.AppendHeader(table.Row{"Date", "In", "Out", "NewDay", "Hours"})
	for _, r := range log.Rows() {
		t.AppendRow(table.Row{
			r.Date.Format(timecalc.DateLayout),
			r.In.String(),
			r.Out.String(),
			yesNo(r.CrossedMidnight),
			timecalc.FormatHours(r.Hours),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	// Column padding leaves trailing blanks on every line.
	lines := strings.Split(strings.TrimRight(t.Render(), "\n"), "\n")
	width := 0
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
		if n := utf8.RuneCountInString(lines[i]); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", width))
	b.WriteString("\n")
	fmt.Fprintf(&b, "TOTAL HOURS: %s", timecalc.FormatHours(log.TotalHours()))
	return b.String()
}

// WriteText writes Text(log) and a trailing newline to w.
func WriteText(w io.Writer, log *worklog.WorkLog) error {
	_, err := io.WriteString(w, Text(log)+"\n")
	return err
}
