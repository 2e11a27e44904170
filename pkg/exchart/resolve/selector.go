// Package resolve binds sheets to chart roles, resolves the selected
// entity and projects each sheet's matching row.
package resolve

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// Resolution is the outcome of resolving the entity key on the primary sheet.
type Resolution struct {
	// Key is the first-column value of the first matching row.
	Key any `json:"key,omitempty"`
	// Found is false when no row survived the filter.
	Found bool `json:"found"`
	// Value is the filter value that was applied.
	Value any `json:"value,omitempty"`
	// Matches is the number of primary rows that survived the filter.
	Matches int `json:"matches"`
	// Reason explains an empty resolution.
	Reason string `json:"reason,omitempty"`
}

// DistinctValues returns the sorted distinct non-missing values of column col.
// Numeric columns sort numerically, others lexicographically by display form.
func DistinctValues(t *models.TableView, col int) []any {
	if t == nil || col < 0 || col >= t.NumColumns() {
		return nil
	}

	var values []any
	for i := 0; i < t.NumRows(); i++ {
		v := t.Cell(i, col)
		if v == nil {
			continue
		}
		dup := false
		for _, seen := range values {
			if models.ValuesEqual(seen, v) {
				dup = true
				break
			}
		}
		if !dup {
			values = append(values, v)
		}
	}

	if t.IsNumeric(col) {
		sort.SliceStable(values, func(i, j int) bool {
			a, _ := models.ToFloat(values[i])
			b, _ := models.ToFloat(values[j])
			return a < b
		})
	} else {
		sort.SliceStable(values, func(i, j int) bool {
			return models.FormatValue(values[i]) < models.FormatValue(values[j])
		})
	}
	return values
}

// ResolveKey filters the primary sheet by sel and returns the entity key.
// A nil sel.Value selects the smallest distinct value of the column.
func ResolveKey(wb *models.Workbook, sel models.FilterSelection) Resolution {
	primary, ok := wb.Primary()
	if !ok {
		return Resolution{Reason: "workbook has no sheets"}
	}
	t := primary.Table
	if t.NumRows() == 0 {
		return Resolution{Reason: fmt.Sprintf("sheet %q has no rows", primary.Name)}
	}
	if sel.ColumnIndex < 0 || sel.ColumnIndex >= t.NumColumns() {
		return Resolution{Reason: fmt.Sprintf("column index %d out of range (sheet %q has %d columns)",
			sel.ColumnIndex, primary.Name, t.NumColumns())}
	}

	value := sel.Value
	if value == nil {
		distinct := DistinctValues(t, sel.ColumnIndex)
		if len(distinct) == 0 {
			return Resolution{Reason: fmt.Sprintf("column %q has no values", t.Columns()[sel.ColumnIndex])}
		}
		value = distinct[0]
	}

	res := Resolution{Value: value}
	for i := 0; i < t.NumRows(); i++ {
		if !models.ValuesEqual(t.Cell(i, sel.ColumnIndex), value) {
			continue
		}
		if res.Matches == 0 {
			res.Key = t.Cell(i, 0)
		}
		res.Matches++
	}

	if res.Matches == 0 {
		res.Reason = "no data selected"
		return res
	}
	if models.IsMissing(res.Key) {
		res.Key = nil
		res.Reason = "first matching row has no entity key"
		return res
	}
	res.Found = true
	return res
}

// LookupValue finds the distinct value of column col whose display form is
// text. Numeric columns also match by value, so "7" finds 7.0.
func LookupValue(t *models.TableView, col int, text string) (any, bool) {
	if t == nil {
		return nil, false
	}
	text = strings.TrimSpace(text)
	distinct := DistinctValues(t, col)
	for _, v := range distinct {
		if models.FormatValue(v) == text {
			return v, true
		}
	}
	if !t.IsNumeric(col) {
		return nil, false
	}
	want, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	for _, v := range distinct {
		if f, ok := models.ToFloat(v); ok && f == want {
			return v, true
		}
	}
	return nil, false
}
