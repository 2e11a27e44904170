package models

// Sheet is one named table within a workbook.
type Sheet struct {
	// Name is the sheet name as it appears in the source file.
	Name string
	// Table is the normalized view over the sheet data.
	Table *TableView
}

// Workbook is an ordered collection of sheets.
// Sheet order is fixed at load time; chart roles are bound by position.
type Workbook struct {
	// Name is the source file name (no path).
	Name string
	// Sheets holds the sheets in source order.
	Sheets []Sheet
}

// NewWorkbook creates a workbook from sheets in source order.
func NewWorkbook(name string, sheets ...Sheet) *Workbook {
	return &Workbook{Name: name, Sheets: sheets}
}

// Len returns the number of sheets.
func (w *Workbook) Len() int {
	if w == nil {
		return 0
	}
	return len(w.Sheets)
}

// SheetAt returns the sheet at position i.
func (w *Workbook) SheetAt(i int) (Sheet, bool) {
	if w == nil || i < 0 || i >= len(w.Sheets) {
		return Sheet{}, false
	}
	return w.Sheets[i], true
}

// Primary returns the first sheet.
func (w *Workbook) Primary() (Sheet, bool) {
	return w.SheetAt(0)
}

// Lookup returns the first sheet with the given name.
func (w *Workbook) Lookup(name string) (Sheet, bool) {
	if w == nil {
		return Sheet{}, false
	}
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// SheetNames returns the sheet names in order.
func (w *Workbook) SheetNames() []string {
	if w == nil {
		return nil
	}
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
