package models

// TableView is a read-only view over one sheet.
// Cells are aligned to Columns; a nil cell is missing.
type TableView struct {
	columns []string
	rows    [][]any
	numeric []bool
}

// NewTableView builds a view from rows keyed by column name.
// Keys absent from a row are treated as missing cells.
func NewTableView(columns []string, rows []map[string]any) *TableView {
	grid := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(columns))
		for j, col := range columns {
			cells[j] = row[col]
		}
		grid[i] = cells
	}
	return NewTableViewFromGrid(columns, grid)
}

// NewTableViewFromGrid builds a view from positional rows.
// Short rows are padded with missing cells and long rows are truncated.
func NewTableViewFromGrid(columns []string, grid [][]any) *TableView {
	t := &TableView{
		columns: append([]string(nil), columns...),
		rows:    make([][]any, len(grid)),
		numeric: make([]bool, len(columns)),
	}
	for i, row := range grid {
		cells := make([]any, len(columns))
		copy(cells, row)
		for j, v := range cells {
			if IsMissing(v) {
				cells[j] = nil
			}
		}
		t.rows[i] = cells
	}
	for j := range t.columns {
		t.numeric[j] = t.classify(j)
	}
	return t
}

// classify reports whether column j has at least one value and every
// non-missing value is a finite real number.
func (t *TableView) classify(j int) bool {
	seen := false
	for _, row := range t.rows {
		v := row[j]
		if v == nil {
			continue
		}
		if _, ok := ToFloat(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// Columns returns the column names in sheet order.
func (t *TableView) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NumColumns returns the number of columns.
func (t *TableView) NumColumns() int { return len(t.columns) }

// NumRows returns the number of data rows.
func (t *TableView) NumRows() int { return len(t.rows) }

// Empty reports whether the sheet has no columns.
func (t *TableView) Empty() bool { return len(t.columns) == 0 }

// ColumnIndex returns the index of the first column with the given name, or -1.
func (t *TableView) ColumnIndex(name string) int {
	for i, c := range t.columns {
		if c == name {
			return i
		}
	}
	return -1
}

// IsNumeric reports whether column j is numeric.
func (t *TableView) IsNumeric(j int) bool {
	return j >= 0 && j < len(t.numeric) && t.numeric[j]
}

// NumericColumns returns the numeric column names in column order.
func (t *TableView) NumericColumns() []string {
	var out []string
	for j, ok := range t.numeric {
		if ok {
			out = append(out, t.columns[j])
		}
	}
	return out
}

// NumericIndexes returns the indexes of numeric columns in column order.
func (t *TableView) NumericIndexes() []int {
	var out []int
	for j, ok := range t.numeric {
		if ok {
			out = append(out, j)
		}
	}
	return out
}

// Cell returns the value at row i, column j, or nil when out of range.
func (t *TableView) Cell(i, j int) any {
	if i < 0 || i >= len(t.rows) || j < 0 || j >= len(t.columns) {
		return nil
	}
	return t.rows[i][j]
}

// Row returns a copy of row i.
func (t *TableView) Row(i int) []any {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return append([]any(nil), t.rows[i]...)
}

// RowMap returns row i keyed by column name. Duplicate names keep the first cell.
func (t *TableView) RowMap(i int) map[string]any {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	m := make(map[string]any, len(t.columns))
	for j, c := range t.columns {
		if _, ok := m[c]; !ok {
			m[c] = t.rows[i][j]
		}
	}
	return m
}
