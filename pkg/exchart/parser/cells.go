// Package parser reads workbook sources into table views.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads one sheet of an open workbook into a TableView.
// Raw cell values are used so number formats do not hide numbers.
// String-typed cells stay text even when they look numeric ("007").
func ReadSheet(f *excelize.File, sheetName string) (*models.TableView, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	isText := func(row, col int) bool {
		cell, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return false
		}
		typ, err := f.GetCellType(sheetName, cell)
		return err == nil && (typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString)
	}
	return buildTable(rows, isText), nil
}

// BuildTable turns a string grid into a TableView.
// The first non-empty row inside the data region is the header.
func BuildTable(rows [][]string) *models.TableView {
	return buildTable(rows, nil)
}

// buildTable is BuildTable with an optional isText(row, col) lookup for
// cells that must not be parsed as numbers.
func buildTable(rows [][]string, isText func(row, col int) bool) *models.TableView {
	region, ok := DetectRegion(rows)
	if !ok {
		return models.NewTableViewFromGrid(nil, nil)
	}

	header := rowSlice(rows[region.MinRow], region.MinCol, region.MaxCol)
	columns := headerNames(header)

	var grid [][]any
	for rowIdx := region.MinRow + 1; rowIdx <= region.MaxRow; rowIdx++ {
		cells := rowSlice(rows[rowIdx], region.MinCol, region.MaxCol)
		hasData := false
		values := make([]any, len(cells))
		for i, s := range cells {
			if strings.TrimSpace(s) == "" {
				continue
			}
			hasData = true
			if isText != nil && isText(rowIdx, region.MinCol+i) {
				values[i] = strings.TrimSpace(s)
			} else {
				values[i] = parseValue(s)
			}
		}
		if hasData {
			grid = append(grid, values)
		}
	}

	return models.NewTableViewFromGrid(columns, grid)
}

// rowSlice returns row[from..to] inclusive, padding short rows with "".
func rowSlice(row []string, from, to int) []string {
	out := make([]string, to-from+1)
	for i := range out {
		if from+i < len(row) {
			out[i] = row[from+i]
		}
	}
	return out
}

// headerNames normalizes header cells into unique column names.
// Blank headers become "Unnamed: N"; repeats get a ".1", ".2" suffix.
func headerNames(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool)
	dups := make(map[string]int)
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if used[name] {
			base := name
			for used[name] {
				dups[base]++
				name = base + "." + strconv.Itoa(dups[base])
			}
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
