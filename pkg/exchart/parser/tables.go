package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Region is the bounding box of non-empty cells in a sheet (0-based, inclusive).
type Region struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Range returns the region in Excel range notation, e.g. "A1:D10".
func (r Region) Range() string {
	startCell, _ := excelize.CoordinatesToCellName(r.MinCol+1, r.MinRow+1)
	endCell, _ := excelize.CoordinatesToCellName(r.MaxCol+1, r.MaxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// DetectRegion finds the data region of a sheet.
// It returns false when the sheet has no non-empty cell.
func DetectRegion(rows [][]string) (Region, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return Region{}, false
	}
	return Region{MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol}, true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
