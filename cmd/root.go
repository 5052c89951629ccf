package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/workhours/internal/config"
	"github.com/Tiliavir/workhours/internal/logging"
)

var (
	sheetPath  string
	inlineRows []string
	debugFlag  bool

	cfg    config.Config
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "workhours",
	Short: "Work hours calculator – log check-in/check-out times and export reports",
	Long: `workhours sums daily check-in/check-out times and exports the result as
a text table, an Excel workbook or a PDF report.

Rows are kept in a JSON sheet document (worklog.json by default) edited with
"add", "remove" and "clear", or passed inline with --row. Every command
rebuilds the log from the rows; nothing else is stored.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sheetPath, "sheet", "", "Sheet document holding the rows (default from config)")
	rootCmd.PersistentFlags().StringArrayVar(&inlineRows, "row", nil, `Inline row "yyyymmdd,HH:MM,HH:MM[,next]"; repeatable, replaces the sheet`)
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(rowsCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(exportCmd)
}

// setup loads the configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	cfg = c
	logger = logging.New(cmd.ErrOrStderr(), debugFlag || cfg.Debug())

	if sheetPath == "" {
		sheetPath = cfg.Sheet.Path
	}
	logger.Debug("configuration loaded", "sheet", sheetPath, "inline_rows", len(inlineRows))
	return nil
}
