package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/workhours/internal/report"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the work log as a text table",
	Args:  cobra.NoArgs,
	RunE:  runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	sh, err := loadSheet()
	if err != nil {
		return err
	}
	log, _ := recompute(cmd.ErrOrStderr(), sh.Rows)
	return report.WriteText(cmd.OutOrStdout(), log)
}
