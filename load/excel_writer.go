// Package load exports the finished star schema: one spreadsheet per table
// under the output directory, plus human-readable renamed copies for the
// reporting model.
package load

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

const sheetName = "Sheet1"

// ExcelWriter writes tables as .xlsx workbooks with a single sheet: a header
// row of column names followed by one row per table row. Null cells are left
// blank.
type ExcelWriter struct {
	logger *utils.ETLLogger
}

func NewExcelWriter(logger *utils.ETLLogger) *ExcelWriter {
	return &ExcelWriter{logger: logger}
}

// WriteTable writes one table to path.
func (w *ExcelWriter) WriteTable(t *models.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("writing header of %s: %w", path, err)
		}
	}

	for ri, row := range t.Rows {
		for ci, col := range t.Columns {
			v := row.Value(col)
			if v.IsNull() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return fmt.Errorf("addressing cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, cellValue(v)); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func cellValue(v models.Value) interface{} {
	switch v.Kind {
	case models.KindString:
		return v.Str
	case models.KindNumber:
		return v.Num.InexactFloat64()
	case models.KindDate:
		return v.Date
	case models.KindBool:
		return v.Bool
	default:
		return nil
	}
}
