package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(nil))
	assert.True(t, IsMissing(""))
	assert.True(t, IsMissing("   "))
	assert.True(t, IsMissing(math.NaN()))
	assert.False(t, IsMissing(0))
	assert.False(t, IsMissing("x"))
	assert.False(t, IsMissing(false))
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{int64(3), 3, true},
		{2.5, 2.5, true},
		{float32(1.5), 1.5, true},
		{" 7 ", 7, true},
		{"abc", 0, false},
		{true, 0, false},
		{math.Inf(1), 0, false},
		{"NaN", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToFloat(tt.in)
		assert.Equal(t, tt.ok, ok, "ToFloat(%#v)", tt.in)
		assert.Equal(t, tt.want, got, "ToFloat(%#v)", tt.in)
	}
}

func TestValuesEqual(t *testing.T) {
	assert.True(t, ValuesEqual(int64(3), 3.0))
	assert.True(t, ValuesEqual("Sales", "Sales"))
	assert.False(t, ValuesEqual("3", int64(3)))
	assert.False(t, ValuesEqual(nil, nil))
	assert.False(t, ValuesEqual("", ""))
	assert.False(t, ValuesEqual("a", "b"))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "3", FormatValue(int64(3)))
	assert.Equal(t, "2.5", FormatValue(2.5))
	assert.Equal(t, "Alice", FormatValue("Alice"))
	assert.Equal(t, "true", FormatValue(true))
}

func TestTableViewClassification(t *testing.T) {
	table := NewTableView(
		[]string{"Name", "Score", "Mixed", "Empty", "Flag"},
		[]map[string]any{
			{"Name": "Alice", "Score": int64(90), "Mixed": 1.0, "Flag": true},
			{"Name": "Bob", "Score": "85", "Mixed": "n/a", "Flag": false},
			{"Name": "Carol", "Score": math.NaN(), "Empty": ""},
		},
	)

	assert.Equal(t, []string{"Score"}, table.NumericColumns())
	assert.Equal(t, []int{1}, table.NumericIndexes())
	assert.False(t, table.IsNumeric(3), "all-missing column is not numeric")
	assert.False(t, table.IsNumeric(4), "booleans are not numeric")
	assert.Nil(t, table.Cell(2, 1), "NaN is normalized to missing")
	assert.Nil(t, table.Cell(2, 3), "blank string is normalized to missing")
}

func TestTableViewGridShape(t *testing.T) {
	table := NewTableViewFromGrid([]string{"a", "b"}, [][]any{
		{1},
		{1, 2, 3},
	})

	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, []any{1, nil}, table.Row(0))
	assert.Equal(t, []any{1, 2}, table.Row(1))
	assert.Nil(t, table.Cell(5, 0))
	assert.Nil(t, table.Row(-1))
	assert.Equal(t, -1, table.ColumnIndex("c"))
}

func TestTableViewRowMapDuplicateNames(t *testing.T) {
	table := NewTableViewFromGrid([]string{"x", "x"}, [][]any{{1, 2}})
	assert.Equal(t, map[string]any{"x": 1}, table.RowMap(0))
}

func TestWorkbookNilSafe(t *testing.T) {
	var wb *Workbook
	assert.Equal(t, 0, wb.Len())
	_, ok := wb.Primary()
	assert.False(t, ok)
	assert.Nil(t, wb.SheetNames())
}

func TestWorkbookLookup(t *testing.T) {
	empty := NewTableViewFromGrid(nil, nil)
	wb := NewWorkbook("book.xlsx",
		Sheet{Name: "A", Table: empty},
		Sheet{Name: "B", Table: empty},
	)

	assert.Equal(t, []string{"A", "B"}, wb.SheetNames())
	s, ok := wb.Lookup("B")
	require.True(t, ok)
	assert.Equal(t, "B", s.Name)
	_, ok = wb.SheetAt(2)
	assert.False(t, ok)
}

func TestRoleSheetIndex(t *testing.T) {
	want := map[Role]int{RoleRadar: 0, RolePie: 1, RoleBar1: 2, RoleBar2: 3, RoleLine: 4}
	for role, idx := range want {
		assert.Equal(t, idx, role.SheetIndex(), role.String())
	}
	assert.Equal(t, -1, Role(9).SheetIndex())
	assert.Len(t, Roles, 5)
}

func TestParseRole(t *testing.T) {
	for _, role := range Roles {
		parsed, err := ParseRole(role.String())
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}
	_, err := ParseRole("scatter")
	assert.Error(t, err)
}

func TestRoleJSON(t *testing.T) {
	data, err := json.Marshal(RoleBinding{Role: RoleBar2, SheetIndex: 3, Available: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"bar2","sheet_index":3,"available":true}`, string(data))

	var b RoleBinding
	require.NoError(t, json.Unmarshal([]byte(`{"role":"line","sheet_index":4}`), &b))
	assert.Equal(t, RoleLine, b.Role)
}

func TestProjectedRowValue(t *testing.T) {
	row := ProjectedRow{Labels: []string{"a", "b"}, Values: []float64{1, 2}}
	v, ok := row.Value("b")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
	_, ok = row.Value("c")
	assert.False(t, ok)
	assert.Equal(t, 2, row.Len())
}

func TestChartSpecDrawable(t *testing.T) {
	assert.True(t, ChartSpec{Status: StatusReady}.Drawable())
	for _, s := range []Status{StatusZero, StatusUnconfigured, StatusUnavailable, StatusNoData} {
		assert.False(t, ChartSpec{Status: s}.Drawable(), string(s))
	}
}
