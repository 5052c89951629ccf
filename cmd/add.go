package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/workhours/internal/model"
	"github.com/Tiliavir/workhours/internal/storage"
)

var (
	addNextDay  bool
	addCopyLast bool
)

var errIncompleteRow = errors.New("a row needs a date, a check-in and a check-out time")

var addCmd = &cobra.Command{
	Use:   "add [date] [check-in] [check-out]",
	Short: "Append a row to the sheet",
	Long: `Append a row to the sheet document.

Dates are yyyymmdd, times HH:MM (24h). With --copy-last (or sheet.auto_copy in
the config) any argument left out is copied from the last row, e.g.

  workhours add 20240102            # same times as yesterday
  workhours add 20240103 22:00 06:00 --next-day`,
	Args: cobra.MaximumNArgs(3),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&addNextDay, "next-day", false, "Check-out is on the following day (overrides a copied flag)")
	addCmd.Flags().BoolVar(&addCopyLast, "copy-last", false, "Copy missing fields from the last row")
}

func runAdd(cmd *cobra.Command, args []string) error {
	sh, err := storage.LoadSheet(sheetPath)
	if err != nil {
		return err
	}

	var nextDay *bool
	if cmd.Flags().Changed("next-day") {
		nextDay = &addNextDay
	}
	row, err := newRow(sh.Rows, args, nextDay, addCopyLast || cfg.Sheet.AutoCopy)
	if err != nil {
		return err
	}
	sh.Rows = append(sh.Rows, row)

	if err := storage.SaveSheet(sheetPath, sh); err != nil {
		return err
	}
	logger.Debug("row added", "id", row.ID, "sheet", sheetPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Added row %d: %s\n", len(sh.Rows), describeRow(row))
	return nil
}

// newRow builds the row to append from positional args (date, check-in,
// check-out). When copyLast is set, missing args and the next-day flag are
// taken from the last existing row. A non-nil nextDay always wins.
func newRow(existing []model.Row, args []string, nextDay *bool, copyLast bool) (model.Row, error) {
	row := model.Row{ID: uuid.NewString()}
	if copyLast && len(existing) > 0 {
		last := existing[len(existing)-1]
		row.Date, row.CheckIn, row.CheckOut, row.NextDay = last.Date, last.CheckIn, last.CheckOut, last.NextDay
	}

	fields := []*string{&row.Date, &row.CheckIn, &row.CheckOut}
	for i, a := range args {
		*fields[i] = strings.TrimSpace(a)
	}
	if nextDay != nil {
		row.NextDay = *nextDay
	}

	if row.Date == "" || row.CheckIn == "" || row.CheckOut == "" {
		return model.Row{}, errIncompleteRow
	}
	return row, nil
}
