package timecalc

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts used for parsing and printing dates and clock times.
const (
	DateLayout     = "20060102"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02 15:04"
)

var (
	dateShape  = regexp.MustCompile(`^\d{8}$`)
	clockShape = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// ErrShape is wrapped by FormatError when the input does not have the
// expected shape (8 digits for a date, H:MM or HH:MM for a clock).
var ErrShape = errors.New("unexpected format")

// FormatError reports a date or clock string that failed strict parsing.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Clock is a 24-hour time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// String formats the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ClockOf returns the time of day of t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseDate parses a strict yyyymmdd date. The result is midnight UTC, which
// serves as a zone-less calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !dateShape.MatchString(s) {
		return time.Time{}, &FormatError{Field: "date", Value: s, Err: fmt.Errorf("%w: want yyyymmdd", ErrShape)}
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &FormatError{Field: "date", Value: s, Err: err}
	}
	return d, nil
}

// ParseClock parses a strict 24-hour HH:MM clock time.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if !clockShape.MatchString(s) {
		return Clock{}, &FormatError{Field: "time", Value: s, Err: fmt.Errorf("%w: want HH:MM", ErrShape)}
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return Clock{}, &FormatError{Field: "time", Value: s, Err: err}
	}
	return ClockOf(t), nil
}

// Combine returns the instant at clock c on the calendar day of day.
func Combine(day time.Time, c Clock) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, day.Location())
}

// NextDay advances t by exactly one calendar day.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// Hours converts a duration to decimal hours (seconds / 3600).
func Hours(d time.Duration) float64 {
	return d.Seconds() / 3600.0
}

// FormatHours formats decimal hours with two decimals, e.g. "8.50".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
