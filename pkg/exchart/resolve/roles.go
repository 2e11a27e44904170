package resolve

import "github.com/ukaji3/exchart-go/pkg/exchart/models"

// Bindings assigns every chart role to its fixed sheet position.
// A role is available iff its position is below sheetCount.
func Bindings(sheetCount int) []models.RoleBinding {
	out := make([]models.RoleBinding, len(models.Roles))
	for i, role := range models.Roles {
		idx := role.SheetIndex()
		out[i] = models.RoleBinding{
			Role:       role,
			SheetIndex: idx,
			Available:  idx < sheetCount,
		}
	}
	return out
}

// Bind resolves role bindings for a workbook, filling in sheet names.
func Bind(wb *models.Workbook) []models.RoleBinding {
	bindings := Bindings(wb.Len())
	for i, b := range bindings {
		if sheet, ok := wb.SheetAt(b.SheetIndex); ok {
			bindings[i].SheetName = sheet.Name
		}
	}
	return bindings
}

// Available reports whether role has a sheet in a workbook of sheetCount sheets.
func Available(role models.Role, sheetCount int) bool {
	idx := role.SheetIndex()
	return idx >= 0 && idx < sheetCount
}
