// Package fixture builds snapshot workbooks and datasets for tests.
package fixture

import (
	"math"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/parser"
	"github.com/xuri/excelize/v2"
)

// TB is the part of testing.TB the workbook writer needs.
type TB interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// Sheet is the worksheet name fixtures are written to.
const Sheet = "AVG_FARE"

// HeaderRow is the 1-based header row of fixture workbooks.
const HeaderRow = 4

// PaxReference is the header of the passenger reference column.
const PaxReference = "PAX LY"

// Row is one city pair and month. Series are in ascending date order.
type Row struct {
	From, To, Month, MonthLY, Region string
	FareTY, FareLY                   []float64
	PaxTY, PaxLY                     []float64
	PaxRef                           float64
}

// ScenarioTY and ScenarioLY are the worked example series.
var (
	ScenarioTY = []float64{100, 110, 120, 90, 95, 105, 115, 125, 130}
	ScenarioLY = []float64{90, 100, 110, 95, 90, 100, 110, 120, 125}
)

// Scenario returns a row whose fare series are ScenarioTY and ScenarioLY and
// whose passenger series are ten times those.
func Scenario(from, to, month string) Row {
	r := Row{
		From: from, To: to, Month: month, MonthLY: month, Region: "APAC",
		FareTY: append([]float64(nil), ScenarioTY...),
		FareLY: append([]float64(nil), ScenarioLY...),
		PaxRef: 1150,
	}
	for i := range ScenarioTY {
		r.PaxTY = append(r.PaxTY, ScenarioTY[i]*10)
		r.PaxLY = append(r.PaxLY, ScenarioLY[i]*10)
	}
	return r
}

// Header returns the header row: key columns, the fare block, the passenger
// reference column and the passenger block.
func Header() []string {
	axis := models.DefaultAxis()
	block := parser.BlockHeaders(axis, "24", "23")
	header := []string{"FROM_CITY", "TO_CITY", "Month", "MonthM_LY", "REGION"}
	header = append(header, block...)
	header = append(header, PaxReference)
	header = append(header, block...)
	return header
}

// Cells returns the row as worksheet cells aligned to Header.
func (r Row) Cells() []interface{} {
	cells := []interface{}{r.From, r.To, r.Month, r.MonthLY, r.Region}
	cells = append(cells, wide(r.FareTY, r.FareLY)...)
	cells = append(cells, r.PaxRef)
	cells = append(cells, wide(r.PaxTY, r.PaxLY)...)
	return cells
}

// Values returns the row as dataset values aligned to Header.
func (r Row) Values() []float64 {
	var values []float64
	for _, c := range r.Cells() {
		switch v := c.(type) {
		case float64:
			values = append(values, v)
		default:
			values = append(values, math.NaN())
		}
	}
	return values
}

// wide interleaves ty and ly newest first, TY before LY.
func wide(ty, ly []float64) []interface{} {
	var out []interface{}
	for i := len(ty) - 1; i >= 0; i-- {
		out = append(out, ty[i], ly[i])
	}
	return out
}

// Dataset builds an in-memory dataset from rows.
func Dataset(rows ...Row) *models.Dataset {
	records := make([]models.Record, len(rows))
	for i, r := range rows {
		records[i] = models.Record{
			FromCity:        r.From,
			ToCity:          r.To,
			Month:           r.Month,
			SnapshotMonthLY: r.MonthLY,
			RegionCode:      r.Region,
			Values:          r.Values(),
		}
	}
	return models.NewDataset("memory", Header(), records)
}

// Write saves rows as an xlsx workbook at path, with title rows above the header.
func Write(tb TB, path string, rows ...Row) {
	tb.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		tb.Fatalf("Failed to rename sheet: %v", err)
	}
	if err := f.SetCellValue(Sheet, "A1", "AVG FARE As at 29Dec Snap"); err != nil {
		tb.Fatalf("Failed to set title: %v", err)
	}

	header := Header()
	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	setRow(tb, f, HeaderRow, headerCells)
	for i, r := range rows {
		setRow(tb, f, HeaderRow+1+i, r.Cells())
	}

	if err := f.SaveAs(path); err != nil {
		tb.Fatalf("Failed to save test file: %v", err)
	}
}

func setRow(tb TB, f *excelize.File, row int, cells []interface{}) {
	tb.Helper()
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		tb.Fatalf("Invalid row %d: %v", row, err)
	}
	if err := f.SetSheetRow(Sheet, cell, &cells); err != nil {
		tb.Fatalf("Failed to write row %d: %v", row, err)
	}
}
