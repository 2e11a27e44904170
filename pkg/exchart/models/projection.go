package models

// FilterSelection is the user's filter criterion on the primary sheet.
type FilterSelection struct {
	// ColumnIndex is the 0-based column of the primary sheet to filter on.
	ColumnIndex int `json:"column_index"`
	// Value is the value to match. Nil selects the smallest distinct value.
	Value any `json:"value,omitempty"`
}

// ProjectedRow is the numeric-column subset of one matched row.
type ProjectedRow struct {
	// Labels are the numeric column names in column order.
	Labels []string `json:"labels"`
	// Values are index-aligned with Labels.
	Values []float64 `json:"values"`
	// Missing lists labels whose cell was missing and projected as 0.
	Missing []string `json:"missing,omitempty"`
}

// Len returns the number of projected columns.
func (p ProjectedRow) Len() int { return len(p.Labels) }

// Value returns the value for a label.
func (p ProjectedRow) Value(label string) (float64, bool) {
	for i, l := range p.Labels {
		if l == label {
			return p.Values[i], true
		}
	}
	return 0, false
}

// Projection is the outcome of projecting one sheet for an entity.
type Projection struct {
	// SheetIndex is the sheet position in the workbook.
	SheetIndex int `json:"sheet_index"`
	// SheetName is the sheet name.
	SheetName string `json:"sheet_name"`
	// Found is true when a matching row exists.
	Found bool `json:"found"`
	// Reason explains why no row was projected.
	Reason string `json:"reason,omitempty"`
	// Row is the projected row when Found.
	Row ProjectedRow `json:"row"`
}

// Preview holds the raw rows of one sheet that match the entity.
type Preview struct {
	// SheetName is the sheet name.
	SheetName string `json:"sheet_name"`
	// Columns are all column names of the sheet.
	Columns []string `json:"columns,omitempty"`
	// Rows are the matching rows, cells aligned to Columns.
	Rows [][]any `json:"rows,omitempty"`
	// Message explains an empty preview.
	Message string `json:"message,omitempty"`
}

// Overview summarizes the loaded workbook.
type Overview struct {
	// BookName is the workbook file name.
	BookName string `json:"book_name"`
	// SheetNames lists every sheet in order.
	SheetNames []string `json:"sheet_names"`
	// PrimaryRows is the row count of the primary sheet.
	PrimaryRows int `json:"primary_rows"`
	// PrimaryColumns is the column count of the primary sheet.
	PrimaryColumns int `json:"primary_columns"`
}

// Summary maps sheet name to column name to the entity's value.
// It is the payload handed to the narrative service.
type Summary map[string]map[string]float64
