package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
	"github.com/xuri/excelize/v2"
)

// SheetRow is one data row below the header.
type SheetRow struct {
	// R is the row index (1-based).
	R int
	// Text holds the formatted cell values, as shown in Excel.
	Text []string
	// Raw holds the unformatted cell values.
	Raw []string
}

// Sheet is a worksheet split into header and data rows.
type Sheet struct {
	Name      string
	HeaderRow int
	Header    []string
	Rows      []SheetRow
	// Range is the cell range spanned by the header and data rows.
	Range string
	// Density is the share of cells in Range holding a value.
	Density float64
}

// ReadSheet reads a worksheet whose header sits on headerRow (1-based).
// Rows above the header are ignored, as are empty rows below it.
func ReadSheet(f *excelize.File, sheetName string, headerRow int) (*Sheet, error) {
	if headerRow < 1 {
		return nil, fmt.Errorf("header row must be at least 1, got %d", headerRow)
	}

	text, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(text) < headerRow {
		return nil, fmt.Errorf("sheet %q has %d rows, header expected on row %d", sheetName, len(text), headerRow)
	}

	sheet := &Sheet{
		Name:      sheetName,
		HeaderRow: headerRow,
	}
	sheet.Range, sheet.Density = TableRange(text, headerRow)
	for _, h := range text[headerRow-1] {
		sheet.Header = append(sheet.Header, strings.TrimSpace(h))
	}

	for rowIdx := headerRow; rowIdx < len(text); rowIdx++ {
		row := text[rowIdx]
		if isEmptyRow(row) {
			continue
		}
		var rawRow []string
		if rowIdx < len(raw) {
			rawRow = raw[rowIdx]
		}
		sheet.Rows = append(sheet.Rows, SheetRow{
			R:    rowIdx + 1, // 1-based row index
			Text: row,
			Raw:  rawRow,
		})
	}

	return sheet, nil
}

// KeyColumns names the header cells holding record keys.
type KeyColumns struct {
	FromCity        string
	ToCity          string
	Month           string
	SnapshotMonthLY string
	Region          string
}

// DefaultKeyColumns returns the key headers used by the fare snapshot workbook.
func DefaultKeyColumns() KeyColumns {
	return KeyColumns{
		FromCity:        "FROM_CITY",
		ToCity:          "TO_CITY",
		Month:           "Month",
		SnapshotMonthLY: "MonthM_LY",
		Region:          "REGION",
	}
}

// ParseRecords converts sheet rows into dataset records.
// FromCity, ToCity and Month headers are required; the others are optional.
// Rows with neither a from nor a to city are skipped.
func ParseRecords(sheet *Sheet, keys KeyColumns) ([]models.Record, error) {
	fromIdx, err := requireColumn(sheet.Header, keys.FromCity)
	if err != nil {
		return nil, err
	}
	toIdx, err := requireColumn(sheet.Header, keys.ToCity)
	if err != nil {
		return nil, err
	}
	monthIdx, err := requireColumn(sheet.Header, keys.Month)
	if err != nil {
		return nil, err
	}
	lyIdx := findColumn(sheet.Header, keys.SnapshotMonthLY)
	regionIdx := findColumn(sheet.Header, keys.Region)

	var records []models.Record
	for _, row := range sheet.Rows {
		from := cellText(row.Text, fromIdx)
		to := cellText(row.Text, toIdx)
		if from == "" && to == "" {
			continue
		}

		values := make([]float64, len(sheet.Header))
		for i := range values {
			values[i] = parseNumber(cellText(row.Raw, i))
		}

		records = append(records, models.Record{
			Row:             row.R,
			FromCity:        from,
			ToCity:          to,
			Month:           cellText(row.Text, monthIdx),
			SnapshotMonthLY: cellText(row.Text, lyIdx),
			RegionCode:      cellText(row.Text, regionIdx),
			Values:          values,
		})
	}

	return records, nil
}

// parseNumber parses a cell as a float.
// Blank cells and text return NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Thousands separators survive in some exports
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return f
	}
	return math.NaN()
}

func requireColumn(header []string, name string) (int, error) {
	idx := findColumn(header, name)
	if idx < 0 {
		return -1, fmt.Errorf("missing required column: %s", name)
	}
	return idx, nil
}

// findColumn returns the first header index equal to name, or -1.
func findColumn(header []string, name string) int {
	if name == "" {
		return -1
	}
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func cellText(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
