package worklog

import (
	"time"

	"github.com/Tiliavir/workhours/internal/timecalc"
)

// Entry is one check-in/check-out pair. End is never before Start.
type Entry struct {
	Start time.Time
	End   time.Time
}

// NewEntry combines day with the start and end clocks. The end is moved to
// the following calendar day when nextDay is set or when it would otherwise
// fall before the start. At most one day is ever added, so equal clocks give
// a zero-length entry.
func NewEntry(day time.Time, start, end timecalc.Clock, nextDay bool) Entry {
	s := timecalc.Combine(day, start)
	e := timecalc.Combine(day, end)
	if nextDay || e.Before(s) {
		e = timecalc.NextDay(e)
	}
	return Entry{Start: s, End: e}
}

// Duration returns End - Start.
func (e Entry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Hours returns the duration in decimal hours.
func (e Entry) Hours() float64 {
	return timecalc.Hours(e.Duration())
}

// CrossedMidnight reports whether the entry ends on a later calendar day.
func (e Entry) CrossedMidnight() bool {
	return !timecalc.SameDay(e.Start, e.End)
}
