package report

import (
	"math"

	"github.com/Tiliavir/workhours/internal/timecalc"
	"github.com/Tiliavir/workhours/internal/worklog"
)

// Columns are the headings shared by the spreadsheet, PDF and CSV exports.
var Columns = []string{"Date (yyyymmdd)", "Check-in", "Check-out", "New day?", "Start", "End", "Hours"}

// TotalLabel marks the total row.
const TotalLabel = "TOTAL"

// Document is the renderer-neutral table of an export: a header, one body
// row per entry and a total row. All cells are pre-formatted strings.
type Document struct {
	Title      string
	Header     []string
	Body       [][]string
	Total      []string
	TotalHours float64
}

// BuildDocument lays out log as a Document.
func BuildDocument(title string, log *worklog.WorkLog) Document {
	rows := log.Rows()
	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		body = append(body, []string{
			r.Date.Format(timecalc.DateLayout),
			r.In.String(),
			r.Out.String(),
			yesNo(r.CrossedMidnight),
			r.Start.Format(timecalc.DateTimeLayout),
			r.End.Format(timecalc.DateTimeLayout),
			timecalc.FormatHours(r.Hours),
		})
	}

	total := log.TotalHours()
	return Document{
		Title:      title,
		Header:     append([]string(nil), Columns...),
		Body:       body,
		Total:      []string{"", "", "", "", "", TotalLabel, timecalc.FormatHours(total)},
		TotalHours: total,
	}
}

// RowCount counts header, body and total rows.
func (d Document) RowCount() int {
	return len(d.Body) + 2
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
