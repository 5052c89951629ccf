package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Tiliavir/workhours/internal/timecalc"
	"github.com/Tiliavir/workhours/internal/worklog"
)

// SheetName is the name of the single worksheet in spreadsheet exports.
const SheetName = "Work Log"

const (
	stampFormat = "yyyy-mm-dd hh:mm"
	// numFmtHours is the built-in "0.00" number format.
	numFmtHours = 2
)

var columnWidths = []float64{16, 12, 12, 10, 20, 20, 10}

// WriteExcel writes log as an .xlsx workbook to w.
func WriteExcel(w io.Writer, log *worklog.WorkLog, opts Options) error {
	f, err := buildWorkbook(log, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func buildWorkbook(log *worklog.WorkLog, opts Options) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillWorkbook(f, log, opts); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func fillWorkbook(f *excelize.File, log *worklog.WorkLog, opts Options) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	stamp := stampFormat
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	stampStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &stamp})
	if err != nil {
		return fmt.Errorf("creating timestamp style: %w", err)
	}
	hoursStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtHours})
	if err != nil {
		return fmt.Errorf("creating hours style: %w", err)
	}
	totalLabelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating total style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtHours})
	if err != nil {
		return fmt.Errorf("creating total style: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", cellName(len(Columns), 1), headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	rows := log.Rows()
	for i, r := range rows {
		line := []interface{}{
			r.Date.Format(timecalc.DateLayout),
			r.In.String(),
			r.Out.String(),
			yesNo(r.CrossedMidnight),
			r.Start,
			r.End,
			round2(r.Hours),
		}
		if err := f.SetSheetRow(SheetName, cellName(1, i+2), &line); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	if len(rows) > 0 {
		last := len(rows) + 1
		if err := f.SetCellStyle(SheetName, cellName(5, 2), cellName(6, last), stampStyle); err != nil {
			return fmt.Errorf("styling timestamps: %w", err)
		}
		if err := f.SetCellStyle(SheetName, cellName(7, 2), cellName(7, last), hoursStyle); err != nil {
			return fmt.Errorf("styling hours: %w", err)
		}
	}

	totalRow := len(rows) + 2
	if err := f.SetCellValue(SheetName, cellName(6, totalRow), TotalLabel); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	if err := f.SetCellValue(SheetName, cellName(7, totalRow), round2(log.TotalHours())); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	if err := f.SetCellStyle(SheetName, cellName(6, totalRow), cellName(6, totalRow), totalLabelStyle); err != nil {
		return fmt.Errorf("styling total: %w", err)
	}
	if err := f.SetCellStyle(SheetName, cellName(7, totalRow), cellName(7, totalRow), totalStyle); err != nil {
		return fmt.Errorf("styling total: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   opts.Title,
		Creator: opts.Author,
	}); err != nil {
		return fmt.Errorf("setting document properties: %w", err)
	}
	return nil
}

// cellName converts 1-based column and row numbers to a cell reference.
// Both are always in range here.
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
