package worklog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Tiliavir/workhours/internal/model"
	"github.com/Tiliavir/workhours/internal/timecalc"
)

// RowStatus records the outcome of one input row during Recompute.
type RowStatus struct {
	Index   int
	Row     model.Row
	Skipped bool
	Entry   Entry
	Err     error
}

// OK reports whether the row produced an entry.
func (s RowStatus) OK() bool {
	return !s.Skipped && s.Err == nil
}

// Recompute builds a fresh log from rows. Blank rows are skipped. A row that
// fails to parse is recorded in its status and left out of the log; the
// remaining rows are still processed. When any row failed the returned error
// is a *RowErrors, and the log holds the rows that parsed.
func Recompute(rows []model.Row, logger *slog.Logger) (*WorkLog, []RowStatus, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	log := New()
	statuses := make([]RowStatus, 0, len(rows))
	var failed []*RowError

	for i, row := range rows {
		st := RowStatus{Index: i, Row: row}
		if row.IsBlank() {
			st.Skipped = true
			statuses = append(statuses, st)
			continue
		}

		day, in, out, err := parseRow(row)
		if err != nil {
			st.Err = err
			failed = append(failed, &RowError{Index: i, Err: err})
			logger.Debug("row rejected", "row", i+1, "error", err)
			statuses = append(statuses, st)
			continue
		}

		st.Entry = log.AddDay(day, in, out, row.NextDay)
		logger.Debug("row accepted", "row", i+1,
			"start", st.Entry.Start.Format(timecalc.DateTimeLayout),
			"end", st.Entry.End.Format(timecalc.DateTimeLayout))
		statuses = append(statuses, st)
	}

	logger.Debug("log recomputed", "entries", log.Len(), "failed", len(failed),
		"total_hours", timecalc.FormatHours(log.TotalHours()))

	if len(failed) > 0 {
		return log, statuses, &RowErrors{Errors: failed}
	}
	return log, statuses, nil
}

func parseRow(row model.Row) (time.Time, timecalc.Clock, timecalc.Clock, error) {
	day, err := timecalc.ParseDate(row.Date)
	if err != nil {
		return time.Time{}, timecalc.Clock{}, timecalc.Clock{}, err
	}
	in, err := timecalc.ParseClock(row.CheckIn)
	if err != nil {
		return time.Time{}, timecalc.Clock{}, timecalc.Clock{}, fmt.Errorf("check-in: %w", err)
	}
	out, err := timecalc.ParseClock(row.CheckOut)
	if err != nil {
		return time.Time{}, timecalc.Clock{}, timecalc.Clock{}, fmt.Errorf("check-out: %w", err)
	}
	return day, in, out, nil
}
