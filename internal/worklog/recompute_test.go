package worklog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/workhours/internal/model"
	"github.com/Tiliavir/workhours/internal/timecalc"
	"github.com/Tiliavir/workhours/internal/worklog"
)

func TestRecomputeAllValid(t *testing.T) {
	rows := []model.Row{
		{Date: "20240101", CheckIn: "08:00", CheckOut: "17:00"},
		{Date: "20240102", CheckIn: "09:00", CheckOut: "18:00"},
	}

	log, statuses, err := worklog.Recompute(rows, nil)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, st := range statuses {
		assert.True(t, st.OK())
	}
	assert.Equal(t, 18.0, log.TotalHours())
}

func TestRecomputeBadRowDoesNotBlockOthers(t *testing.T) {
	rows := []model.Row{
		{Date: "20240101", CheckIn: "08:00", CheckOut: "17:00"},
		{Date: "2024-13-40", CheckIn: "08:00", CheckOut: "17:00"},
		{Date: "20240103", CheckIn: "22:00", CheckOut: "06:00"},
		{Date: "20240104", CheckIn: "08:00", CheckOut: "25:00"},
	}

	log, statuses, err := worklog.Recompute(rows, nil)
	require.Error(t, err)

	var rowErrs *worklog.RowErrors
	require.True(t, errors.As(err, &rowErrs))
	require.Len(t, rowErrs.Errors, 2)
	assert.Equal(t, 1, rowErrs.Errors[0].Index)
	assert.Equal(t, 3, rowErrs.Errors[1].Index)

	var fe *timecalc.FormatError
	assert.True(t, errors.As(err, &fe))

	assert.True(t, statuses[0].OK())
	assert.False(t, statuses[1].OK())
	assert.Contains(t, statuses[3].Err.Error(), "check-out")

	assert.Equal(t, 2, log.Len())
	assert.Equal(t, 17.0, log.TotalHours())
}

func TestRecomputeSkipsBlankRows(t *testing.T) {
	rows := []model.Row{
		{},
		{Date: "  ", CheckIn: "", CheckOut: " "},
		{Date: "20240101", CheckIn: "08:00", CheckOut: "12:00"},
		{NextDay: true},
	}

	log, statuses, err := worklog.Recompute(rows, nil)
	require.NoError(t, err)
	assert.True(t, statuses[0].Skipped)
	assert.True(t, statuses[1].Skipped)
	assert.True(t, statuses[3].Skipped)
	assert.Equal(t, 1, log.Len())
	assert.Equal(t, 4.0, log.TotalHours())
}

func TestRecomputeHonoursNextDayFlag(t *testing.T) {
	rows := []model.Row{
		{Date: "20240101", CheckIn: "22:00", CheckOut: "06:00", NextDay: true},
		{Date: "20240102", CheckIn: "22:00", CheckOut: "06:00"},
	}

	log, _, err := worklog.Recompute(rows, nil)
	require.NoError(t, err)
	for _, r := range log.Rows() {
		assert.True(t, r.CrossedMidnight)
		assert.Equal(t, 8.0, r.Hours)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	rows := []model.Row{
		{Date: "20240101", CheckIn: "08:00", CheckOut: "17:00"},
		{Date: "bad", CheckIn: "08:00", CheckOut: "17:00"},
		{Date: "20240103", CheckIn: "07:30", CheckOut: "07:00"},
	}

	first, _, _ := worklog.Recompute(rows, nil)
	second, _, _ := worklog.Recompute(rows, nil)
	assert.Equal(t, first.Entries(), second.Entries())
	assert.Equal(t, first.TotalHours(), second.TotalHours())
}

func TestRecomputeLogsRejectedRows(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := worklog.Recompute([]model.Row{{Date: "x", CheckIn: "08:00", CheckOut: "09:00"}}, logger)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "row rejected")
}

func TestRowErrorsMessage(t *testing.T) {
	err := &worklog.RowErrors{Errors: []*worklog.RowError{
		{Index: 0, Err: errors.New("a")},
		{Index: 2, Err: errors.New("b")},
	}}
	assert.Equal(t, "2 rows have errors: row 1: a; row 3: b", err.Error())

	single := &worklog.RowErrors{Errors: []*worklog.RowError{{Index: 4, Err: errors.New("c")}}}
	assert.Equal(t, "row 5: c", single.Error())
}
