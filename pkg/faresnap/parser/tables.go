package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TableRange returns the cell range (e.g. "A4:AP120") covering the non-empty
// cells of rows from headerRow (1-based) down, and the share of cells in that
// range that hold a value. It returns "" when nothing is found.
func TableRange(rows [][]string, headerRow int) (string, float64) {
	if headerRow < 1 || headerRow > len(rows) {
		return "", 0
	}
	body := rows[headerRow-1:]

	minRow, maxRow, minCol, maxCol := findDataBounds(body)
	if minRow < 0 {
		return "", 0
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	density := float64(countNonEmptyCells(body, minRow, maxRow, minCol, maxCol)) / float64(totalCells)

	offset := headerRow - 1
	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+offset+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+offset+1)
	return fmt.Sprintf("%s:%s", startCell, endCell), density
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
