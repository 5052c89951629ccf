package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/Tiliavir/workhours/internal/timecalc"
	"github.com/Tiliavir/workhours/internal/worklog"
)

type jsonReport struct {
	Title      string      `json:"title,omitempty"`
	Entries    []jsonEntry `json:"entries"`
	TotalHours float64     `json:"total_hours"`
}

type jsonEntry struct {
	Date     string    `json:"date"`
	CheckIn  string    `json:"check_in"`
	CheckOut string    `json:"check_out"`
	NewDay   bool      `json:"new_day"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Hours    float64   `json:"hours"`
}

// WriteJSON writes the projection of log and its total as indented JSON.
func WriteJSON(w io.Writer, title string, log *worklog.WorkLog) error {
	rep := jsonReport{Title: title, Entries: []jsonEntry{}, TotalHours: log.TotalHours()}
	for _, r := range log.Rows() {
		rep.Entries = append(rep.Entries, jsonEntry{
			Date:     r.Date.Format(timecalc.DateLayout),
			CheckIn:  r.In.String(),
			CheckOut: r.Out.String(),
			NewDay:   r.CrossedMidnight,
			Start:    r.Start,
			End:      r.End,
			Hours:    r.Hours,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
