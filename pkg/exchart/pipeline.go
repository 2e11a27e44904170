package exchart

import (
	"github.com/google/uuid"
	"github.com/ukaji3/exchart-go/pkg/exchart/charts"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/narrative"
	"github.com/ukaji3/exchart-go/pkg/exchart/resolve"
)

// Result is the output of one pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`
	// Overview describes the loaded workbook.
	Overview models.Overview `json:"overview"`
	// Selection is the filter that was applied.
	Selection models.FilterSelection `json:"selection"`
	// Resolution is the resolved entity.
	Resolution resolve.Resolution `json:"resolution"`
	// Bindings lists role to sheet assignments.
	Bindings []models.RoleBinding `json:"bindings"`
	// Charts holds one spec per requested role, in role order.
	Charts []models.ChartSpec `json:"charts,omitempty"`
	// Previews holds the matching raw rows of every sheet.
	Previews []models.Preview `json:"previews,omitempty"`
	// Summary is the per-sheet numeric snapshot for the narrative service.
	Summary models.Summary `json:"summary,omitempty"`
	// Narrative is the generated description, filled in by callers that
	// request one.
	Narrative string `json:"narrative,omitempty"`
}

// EntityName returns the resolved entity key as display text.
func (r *Result) EntityName() string {
	return models.FormatValue(r.Resolution.Key)
}

// Chart returns the spec for role.
func (r *Result) Chart(role models.Role) (models.ChartSpec, bool) {
	for _, c := range r.Charts {
		if c.Role == role {
			return c, true
		}
	}
	return models.ChartSpec{}, false
}

// Run recomputes every chart for one selection. It holds no state between
// calls; a new selection simply means a new call.
//
// An expression error in opts.Where is the only error returned; every
// per-sheet and per-chart problem is reported in the result.
func Run(wb *models.Workbook, sel models.FilterSelection, opts Options) (*Result, error) {
	id := uuid.NewString()
	logger := opts.logger().With("run", id)
	res := &Result{
		RunID:     id,
		Overview:  overview(wb),
		Selection: sel,
		Bindings:  resolve.Bind(wb),
	}

	if opts.Where != "" {
		resolution, err := resolve.ResolveWhere(wb, opts.Where)
		if err != nil {
			return nil, err
		}
		res.Resolution = resolution
	} else {
		res.Resolution = resolve.ResolveKey(wb, sel)
	}

	found := res.Resolution.Found
	key := res.Resolution.Key
	if found {
		logger.Debug("entity resolved", "key", models.FormatValue(key), "matches", res.Resolution.Matches)
	} else {
		logger.Debug("no entity selected", "reason", res.Resolution.Reason)
	}

	for _, binding := range res.Bindings {
		if !opts.ShouldBuild(binding.Role) {
			continue
		}
		p := models.Projection{SheetIndex: binding.SheetIndex, SheetName: binding.SheetName, Reason: res.Resolution.Reason}
		if found {
			p = resolve.ProjectSheet(wb, binding.SheetIndex, key)
		}
		spec := charts.Build(binding, p, opts.Charts)
		logger.Debug("chart built", "role", binding.Role.String(), "sheet", binding.SheetName,
			"status", string(spec.Status), "message", spec.Message)
		res.Charts = append(res.Charts, spec)
	}

	if !found {
		return res, nil
	}
	for _, sheet := range wb.Sheets {
		res.Previews = append(res.Previews, resolve.Preview(sheet, key))
	}
	res.Summary = narrative.BuildSummary(wb, key)

	return res, nil
}

func overview(wb *models.Workbook) models.Overview {
	o := models.Overview{BookName: wb.Name, SheetNames: wb.SheetNames()}
	if primary, ok := wb.Primary(); ok {
		o.PrimaryRows = primary.Table.NumRows()
		o.PrimaryColumns = primary.Table.NumColumns()
	}
	return o
}
