package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/workhours/internal/timecalc"
	"github.com/Tiliavir/workhours/internal/worklog"
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "List the rows with their status",
	Args:  cobra.NoArgs,
	RunE:  runRows,
}

func runRows(cmd *cobra.Command, args []string) error {
	sh, err := loadSheet()
	if err != nil {
		return err
	}
	_, statuses, _ := worklog.Recompute(sh.Rows, logger)
	printRows(cmd.OutOrStdout(), statuses)
	return nil
}

func printRows(w io.Writer, statuses []worklog.RowStatus) {
	if len(statuses) == 0 {
		fmt.Fprintln(w, "No rows.")
		return
	}
	for _, st := range statuses {
		next := "   "
		if st.Row.NextDay {
			next = " +1"
		}
		fmt.Fprintf(w, "%3d  %-8s  %-5s  %-5s%s  %s\n",
			st.Index+1, st.Row.Date, st.Row.CheckIn, st.Row.CheckOut, next, statusText(st))
	}
}

func statusText(st worklog.RowStatus) string {
	switch {
	case st.Skipped:
		return skippedStyle.Render("skipped")
	case st.Err != nil:
		return errorStyle.Render("Error: " + st.Err.Error())
	default:
		return okStyle.Render(fmt.Sprintf("OK (%s h)", timecalc.FormatHours(st.Entry.Hours())))
	}
}
