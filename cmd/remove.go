package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/workhours/internal/model"
	"github.com/Tiliavir/workhours/internal/storage"
)

var errRowNotFound = errors.New("row not found")

var removeCmd = &cobra.Command{
	Use:   "remove <row|id>",
	Short: "Remove a row from the sheet by its number or id",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every row from the sheet",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func runRemove(cmd *cobra.Command, args []string) error {
	sh, err := storage.LoadSheet(sheetPath)
	if err != nil {
		return err
	}

	rows, removed, err := removeRow(sh.Rows, args[0])
	if err != nil {
		return err
	}
	sh.Rows = rows

	if err := storage.SaveSheet(sheetPath, sh); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed row: %s\n", describeRow(removed))
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	sh, err := storage.LoadSheet(sheetPath)
	if err != nil {
		return err
	}
	n := len(sh.Rows)
	sh.Rows = nil

	if err := storage.SaveSheet(sheetPath, sh); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d rows.\n", n)
	return nil
}

// removeRow drops the row referenced by ref, either a 1-based row number or
// a row id. The input slice is left untouched.
func removeRow(rows []model.Row, ref string) ([]model.Row, model.Row, error) {
	idx := -1
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(rows) {
			return rows, model.Row{}, fmt.Errorf("%w: number %d is out of range (1-%d)", errRowNotFound, n, len(rows))
		}
		idx = n - 1
	} else {
		for i, r := range rows {
			if r.ID == ref {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return rows, model.Row{}, fmt.Errorf("%w: no row with id %q", errRowNotFound, ref)
	}

	out := make([]model.Row, 0, len(rows)-1)
	out = append(out, rows[:idx]...)
	out = append(out, rows[idx+1:]...)
	return out, rows[idx], nil
}
