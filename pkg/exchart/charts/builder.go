package charts

import (
	"fmt"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// Build produces the spec for one role binding from its sheet projection.
// Unavailable roles and missing rows become status-only specs; they never
// affect other roles.
func Build(binding models.RoleBinding, p models.Projection, cfg Config) models.ChartSpec {
	spec := build(binding, p, cfg)
	spec.Role = binding.Role
	spec.SheetName = binding.SheetName
	return spec
}

func build(binding models.RoleBinding, p models.Projection, cfg Config) models.ChartSpec {
	if !binding.Available {
		return models.ChartSpec{
			Status:  models.StatusUnavailable,
			Message: fmt.Sprintf("workbook needs at least %d sheets for the %s chart", binding.SheetIndex+1, binding.Role),
		}
	}
	if !p.Found {
		return models.ChartSpec{Status: models.StatusNoData, Message: p.Reason}
	}
	// Radar reports too few numeric columns as unconfigured.
	if p.Row.Len() == 0 && binding.Role != models.RoleRadar {
		return models.ChartSpec{
			Status:  models.StatusNoData,
			Message: fmt.Sprintf("sheet %q has no numeric columns", p.SheetName),
		}
	}

	switch binding.Role {
	case models.RoleRadar:
		return BuildRadar(p.Row, cfg)
	case models.RolePie:
		return BuildPie(p.Row, cfg)
	case models.RoleBar1, models.RoleBar2:
		return BuildBar(binding.Role, p.Row, cfg)
	case models.RoleLine:
		return BuildLine(p.Row, cfg)
	}
	return models.ChartSpec{Status: models.StatusUnconfigured, Message: "unknown chart role"}
}
