package timecalc_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tiliavir/workhours/internal/timecalc"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"20240101", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{" 20241231 ", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"20240229", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"20230229", time.Time{}, true},
		{"20241340", time.Time{}, true},
		{"2024-13-40", time.Time{}, true},
		{"2024-01-01", time.Time{}, true},
		{"2024011", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDateFormatError(t *testing.T) {
	_, err := timecalc.ParseDate("2024-13-40")
	var fe *timecalc.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("ParseDate error = %v, want *FormatError", err)
	}
	if fe.Field != "date" || fe.Value != "2024-13-40" {
		t.Errorf("FormatError = %+v, want field date and original value", fe)
	}
	if !errors.Is(err, timecalc.ErrShape) {
		t.Errorf("ParseDate error should wrap ErrShape, got %v", err)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    timecalc.Clock
		wantErr bool
	}{
		{"08:00", timecalc.Clock{Hour: 8}, false},
		{"9:30", timecalc.Clock{Hour: 9, Minute: 30}, false},
		{"23:59", timecalc.Clock{Hour: 23, Minute: 59}, false},
		{"00:00", timecalc.Clock{}, false},
		{"24:00", timecalc.Clock{}, true},
		{"12:60", timecalc.Clock{}, true},
		{"1230", timecalc.Clock{}, true},
		{"12:3", timecalc.Clock{}, true},
		{"7pm", timecalc.Clock{}, true},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseClock(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestClockString(t *testing.T) {
	if got := (timecalc.Clock{Hour: 7, Minute: 5}).String(); got != "07:05" {
		t.Errorf("Clock.String() = %q, want %q", got, "07:05")
	}
}

func TestCombineAndNextDay(t *testing.T) {
	day := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	got := timecalc.Combine(day, timecalc.Clock{Hour: 22, Minute: 15})
	want := time.Date(2024, 12, 31, 22, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Combine = %v, want %v", got, want)
	}

	next := timecalc.NextDay(got)
	wantNext := time.Date(2025, 1, 1, 22, 15, 0, 0, time.UTC)
	if !next.Equal(wantNext) {
		t.Errorf("NextDay = %v, want %v", next, wantNext)
	}
}

func TestHours(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want float64
	}{
		{0, 0},
		{30 * time.Minute, 0.5},
		{8 * time.Hour, 8},
		{90 * time.Second, 0.025},
	}
	for _, tt := range tests {
		if got := timecalc.Hours(tt.d); got != tt.want {
			t.Errorf("Hours(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		h    float64
		want string
	}{
		{0, "0.00"},
		{8, "8.00"},
		{7.755, "7.75"},
		{1.0 / 3.0, "0.33"},
	}
	for _, tt := range tests {
		if got := timecalc.FormatHours(tt.h); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{90, "1m"},
		{3600, "1h 0m"},
		{3661, "1h 1m"},
		{5400, "1h 30m"},
	}
	for _, tt := range tests {
		got := timecalc.FormatDuration(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}

func TestStartOfDay(t *testing.T) {
	got := timecalc.StartOfDay(time.Date(2026, 2, 27, 10, 30, 5, 0, time.UTC))
	want := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}
