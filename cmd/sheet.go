package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tiliavir/workhours/internal/model"
	"github.com/Tiliavir/workhours/internal/storage"
	"github.com/Tiliavir/workhours/internal/worklog"
)

const rowsWarning = "Some rows have errors. Please fix them and calculate again."

// loadSheet returns a sheet holding the --row rows when any were given,
// otherwise the sheet document.
func loadSheet() (model.Sheet, error) {
	if len(inlineRows) > 0 {
		rows, err := parseRowFlags(inlineRows)
		if err != nil {
			return model.Sheet{}, err
		}
		return model.Sheet{Rows: rows}, nil
	}
	return storage.LoadSheet(sheetPath)
}

func parseRowFlags(values []string) ([]model.Row, error) {
	rows := make([]model.Row, 0, len(values))
	for _, s := range values {
		row, err := parseRowFlag(s)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRowFlag splits "yyyymmdd,HH:MM,HH:MM[,next]" into a row. The date and
// times are not validated here; that happens on recompute.
func parseRowFlag(value string) (model.Row, error) {
	parts := strings.Split(value, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return model.Row{}, fmt.Errorf("invalid --row %q: want yyyymmdd,HH:MM,HH:MM[,next]", value)
	}
	row := model.Row{
		Date:     strings.TrimSpace(parts[0]),
		CheckIn:  strings.TrimSpace(parts[1]),
		CheckOut: strings.TrimSpace(parts[2]),
	}
	if len(parts) == 4 {
		switch strings.ToLower(strings.TrimSpace(parts[3])) {
		case "next", "next-day", "nextday", "true", "yes", "1":
			row.NextDay = true
		case "", "false", "no", "0":
		default:
			return model.Row{}, fmt.Errorf("invalid --row %q: unknown flag %q", value, parts[3])
		}
	}
	return row, nil
}

// recompute rebuilds the log from rows. Failed rows are listed on w followed
// by a single warning; they never abort the command.
func recompute(w io.Writer, rows []model.Row) (*worklog.WorkLog, []worklog.RowStatus) {
	log, statuses, err := worklog.Recompute(rows, logger)
	if err != nil {
		for _, st := range statuses {
			if st.Err != nil {
				fmt.Fprintf(w, "Row %d: %s\n", st.Index+1, errorStyle.Render("Error: "+st.Err.Error()))
			}
		}
		fmt.Fprintln(w, warnStyle.Render(rowsWarning))
	}
	return log, statuses
}

func describeRow(r model.Row) string {
	s := fmt.Sprintf("%s %s-%s", r.Date, r.CheckIn, r.CheckOut)
	if r.NextDay {
		s += " (next day)"
	}
	return s
}
