// Package worklog accumulates check-in/check-out entries and derives the
// total worked hours and the per-entry report rows from them.
package worklog

import (
	"fmt"
	"time"

	"github.com/Tiliavir/workhours/internal/timecalc"
)

// Pair is an entry given as two explicit instants.
type Pair struct {
	Start time.Time
	End   time.Time
}

// Triple is an entry given as a calendar day and two clock times. When EndAt
// is set it is used as the already-dated end instead of End.
type Triple struct {
	Day   time.Time
	Start timecalc.Clock
	End   timecalc.Clock
	EndAt time.Time
}

// ReportRow is the read-only projection of one entry.
type ReportRow struct {
	Date            time.Time
	In              timecalc.Clock
	Out             timecalc.Clock
	Start           time.Time
	End             time.Time
	CrossedMidnight bool
	Hours           float64
}

// WorkLog is an ordered, append-only sequence of entries.
type WorkLog struct {
	entries []Entry
}

// New returns an empty log.
func New() *WorkLog {
	return &WorkLog{}
}

// AddDay normalizes a day/start/end/next-day tuple and appends it.
func (l *WorkLog) AddDay(day time.Time, start, end timecalc.Clock, nextDay bool) Entry {
	e := NewEntry(day, start, end, nextDay)
	l.entries = append(l.entries, e)
	return e
}

// Append normalizes v to an Entry and appends it. v may be an Entry, a Pair
// or a Triple; anything else fails with ErrUnsupportedShape.
func (l *WorkLog) Append(v any) (Entry, error) {
	var e Entry
	switch x := v.(type) {
	case Entry:
		e = x
	case Pair:
		e = Entry{Start: x.Start, End: x.End}
	case Triple:
		e = fromTriple(x)
	default:
		return Entry{}, fmt.Errorf("%w: %T", ErrUnsupportedShape, v)
	}
	if e.End.Before(e.Start) {
		return Entry{}, fmt.Errorf("%w: %s > %s", ErrNegativeDuration,
			e.Start.Format(timecalc.DateTimeLayout), e.End.Format(timecalc.DateTimeLayout))
	}
	l.entries = append(l.entries, e)
	return e, nil
}

func fromTriple(t Triple) Entry {
	start := timecalc.Combine(t.Day, t.Start)
	end := t.EndAt
	if end.IsZero() {
		end = timecalc.Combine(t.Day, t.End)
	}
	if end.Before(start) {
		end = timecalc.NextDay(end)
	}
	return Entry{Start: start, End: end}
}

// Len returns the number of entries.
func (l *WorkLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *WorkLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// TotalDuration sums the exact duration of every entry.
func (l *WorkLog) TotalDuration() time.Duration {
	var total time.Duration
	for _, e := range l.entries {
		total += e.Duration()
	}
	return total
}

// TotalHours converts the summed duration to hours. The conversion happens
// once, after summing.
func (l *WorkLog) TotalHours() float64 {
	return timecalc.Hours(l.TotalDuration())
}

// Rows projects every entry into a ReportRow.
func (l *WorkLog) Rows() []ReportRow {
	rows := make([]ReportRow, 0, len(l.entries))
	for _, e := range l.entries {
		rows = append(rows, ReportRow{
			Date:            timecalc.StartOfDay(e.Start),
			In:              timecalc.ClockOf(e.Start),
			Out:             timecalc.ClockOf(e.End),
			Start:           e.Start,
			End:             e.End,
			CrossedMidnight: e.CrossedMidnight(),
			Hours:           e.Hours(),
		})
	}
	return rows
}
