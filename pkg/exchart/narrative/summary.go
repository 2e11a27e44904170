// Package narrative builds the numeric snapshot of an entity and asks an
// OpenAI-compatible chat completions service to describe it.
package narrative

import (
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/resolve"
)

// BuildSummary collects the entity's numeric values from every sheet,
// whether or not the sheet is bound to a chart. Sheets without a match or
// without numeric columns are left out; repeated sheet names keep the first.
func BuildSummary(wb *models.Workbook, key any) models.Summary {
	summary := models.Summary{}
	for i, sheet := range wb.Sheets {
		if _, dup := summary[sheet.Name]; dup {
			continue
		}
		p := resolve.ProjectSheet(wb, i, key)
		if !p.Found || p.Row.Len() == 0 {
			continue
		}
		cols := make(map[string]float64, p.Row.Len())
		for n, label := range p.Row.Labels {
			cols[label] = p.Row.Values[n]
		}
		summary[sheet.Name] = cols
	}
	return summary
}
