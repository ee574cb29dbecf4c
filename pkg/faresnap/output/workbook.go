package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
	"github.com/xuri/excelize/v2"
)

// ComparisonSheet is the sheet name written by ToWorkbook.
const ComparisonSheet = "Comparison"

// ToWorkbook writes report to an xlsx file at path. The file is written to a
// temporary name first and renamed into place.
func ToWorkbook(report *models.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ComparisonSheet); err != nil {
		return err
	}
	if err := fillComparisonSheet(f, report); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tempPath := path + ".tmp.xlsx"
	if err := f.SaveAs(tempPath); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename workbook: %w", err)
	}
	return nil
}

func fillComparisonSheet(f *excelize.File, report *models.Report) error {
	title := fmt.Sprintf("%s - %s to %s (%s)", report.Family.Label(), report.Key.FromCity, report.Key.ToCity, report.Key.Month)
	if err := f.SetCellValue(ComparisonSheet, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellValue(ComparisonSheet, "A2", "Report"); err != nil {
		return err
	}
	if err := f.SetCellValue(ComparisonSheet, "B2", report.ID); err != nil {
		return err
	}

	const headerRow = 4
	for i, h := range tableHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		if err := f.SetCellValue(ComparisonSheet, cell, h); err != nil {
			return err
		}
	}

	for i, r := range report.Records {
		row := headerRow + 1 + i
		values := []interface{}{
			r.Date, r.TY, r.LY, r.Difference, r.Trend.String(),
			optional(r.Mean), optional(r.Std), optional(r.Upper), optional(r.Lower),
		}
		for j, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(ComparisonSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// optional returns nil for absent values so the cell stays blank.
func optional(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
