package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/workhours/internal/timecalc"
	"github.com/Tiliavir/workhours/internal/worklog"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Recompute the log and show the total hours",
	Args:  cobra.NoArgs,
	RunE:  runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	sh, err := loadSheet()
	if err != nil {
		return err
	}
	log, _ := recompute(cmd.ErrOrStderr(), sh.Rows)
	printTotal(cmd.OutOrStdout(), log)
	return nil
}

func printTotal(w io.Writer, log *worklog.WorkLog) {
	total := log.TotalDuration()
	line := fmt.Sprintf("Total hours: %s", timecalc.FormatHours(log.TotalHours()))
	fmt.Fprintf(w, "%s (%d entries, %s)\n",
		totalStyle.Render(line), log.Len(), timecalc.FormatDuration(int64(total.Seconds())))
}
