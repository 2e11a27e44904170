package resolve

import (
	"fmt"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// findRow returns the first row whose first column equals key, or -1.
func findRow(t *models.TableView, key any) int {
	if t == nil || t.Empty() {
		return -1
	}
	for i := 0; i < t.NumRows(); i++ {
		if models.ValuesEqual(t.Cell(i, 0), key) {
			return i
		}
	}
	return -1
}

// Project finds the first row of t keyed by key and projects its numeric columns.
// It returns false when t has no columns or no row matches.
func Project(t *models.TableView, key any) (models.ProjectedRow, bool) {
	i := findRow(t, key)
	if i < 0 {
		return models.ProjectedRow{}, false
	}

	cols := t.Columns()
	idx := t.NumericIndexes()
	row := models.ProjectedRow{
		Labels: make([]string, len(idx)),
		Values: make([]float64, len(idx)),
	}
	for n, j := range idx {
		row.Labels[n] = cols[j]
		v, ok := models.ToFloat(t.Cell(i, j))
		if !ok {
			row.Missing = append(row.Missing, cols[j])
		}
		row.Values[n] = v
	}
	return row, true
}

// ProjectSheet projects the sheet at position index for key.
func ProjectSheet(wb *models.Workbook, index int, key any) models.Projection {
	sheet, ok := wb.SheetAt(index)
	if !ok {
		return models.Projection{SheetIndex: index, Reason: fmt.Sprintf("workbook has no sheet at position %d", index)}
	}

	p := models.Projection{SheetIndex: index, SheetName: sheet.Name}
	switch {
	case sheet.Table.Empty():
		p.Reason = fmt.Sprintf("sheet %q has no columns", sheet.Name)
	default:
		row, found := Project(sheet.Table, key)
		if !found {
			p.Reason = fmt.Sprintf("no data for %s in sheet %q", models.FormatValue(key), sheet.Name)
			break
		}
		p.Found = true
		p.Row = row
	}
	return p
}

// Preview returns every row of the sheet whose first column equals key.
func Preview(sheet models.Sheet, key any) models.Preview {
	p := models.Preview{SheetName: sheet.Name}
	t := sheet.Table
	if t.Empty() {
		p.Message = fmt.Sprintf("sheet %q has no columns", sheet.Name)
		return p
	}
	p.Columns = t.Columns()
	for i := 0; i < t.NumRows(); i++ {
		if models.ValuesEqual(t.Cell(i, 0), key) {
			p.Rows = append(p.Rows, t.Row(i))
		}
	}
	if len(p.Rows) == 0 {
		p.Message = fmt.Sprintf("no rows for %s", models.FormatValue(key))
	}
	return p
}
