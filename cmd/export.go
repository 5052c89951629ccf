package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/workhours/internal/report"
	"github.com/Tiliavir/workhours/internal/timecalc"
)

var (
	exportFormat string
	exportOut    string
	exportTitle  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the work log to a file",
	Long: `Export the work log as text, Excel, PDF, CSV or JSON.

The file extension is added when missing. Use --out - to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", string(report.FormatExcel), "Output format: text, xlsx, pdf, csv, json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "worklog", "Output file, or - for stdout")
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "Report title (default: sheet title, then config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	sh, err := loadSheet()
	if err != nil {
		return err
	}
	log, _ := recompute(cmd.ErrOrStderr(), sh.Rows)

	opts := report.Options{Title: reportTitle(exportTitle, sh.Title, cfg.Report.Title), Author: cfg.Report.Author}

	if exportOut == "-" {
		return report.Write(cmd.OutOrStdout(), format, log, opts)
	}

	path := format.WithExt(exportOut)
	if err := report.Export(path, format, log, opts); err != nil {
		return err
	}
	logger.Debug("report exported", "format", format, "path", path, "entries", log.Len())
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s file: %s (%d entries, %s hours)\n",
		format, path, log.Len(), timecalc.FormatHours(log.TotalHours()))
	return nil
}

// reportTitle picks the first non-blank of the --title flag, the sheet title
// and the configured title.
func reportTitle(candidates ...string) string {
	for _, c := range candidates {
		if t := strings.TrimSpace(c); t != "" {
			return t
		}
	}
	return ""
}
