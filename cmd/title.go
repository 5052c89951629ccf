package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/workhours/internal/storage"
)

var titleCmd = &cobra.Command{
	Use:   "title [text]",
	Short: "Show or set the sheet title used for exports",
	Long: `Show or set the sheet title. Exports use it unless --title is given;
without either the configured report.title applies. Pass "" to clear it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTitle,
}

func runTitle(cmd *cobra.Command, args []string) error {
	sh, err := storage.LoadSheet(sheetPath)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if sh.Title == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No sheet title.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), sh.Title)
		return nil
	}

	sh.Title = strings.TrimSpace(args[0])
	if err := storage.SaveSheet(sheetPath, sh); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sheet title set to %q.\n", sh.Title)
	return nil
}
