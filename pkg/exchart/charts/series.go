package charts

import "github.com/ukaji3/exchart-go/pkg/exchart/models"

// BuildPie builds the pie spec. Slices are the raw values; the zero rule
// applies to the sum of all slices.
func BuildPie(row models.ProjectedRow, cfg Config) models.ChartSpec {
	if IsZero(row.Values) {
		return zeroSpec(models.RolePie)
	}
	return models.ChartSpec{
		Role:          models.RolePie,
		Status:        models.StatusReady,
		Labels:        clone(row.Labels),
		Values:        clone(row.Values),
		DisplayValues: clone(row.Values),
		ColorScheme:   cfg.ColorScheme(models.RolePie),
	}
}

// BuildBar builds a bar spec for role (RoleBar1 or RoleBar2).
// Both instances share this logic and differ only in color scheme.
func BuildBar(role models.Role, row models.ProjectedRow, cfg Config) models.ChartSpec {
	return axisSpec(role, row, cfg)
}

// BuildLine builds the line spec. Categories keep their declared column order.
func BuildLine(row models.ProjectedRow, cfg Config) models.ChartSpec {
	return axisSpec(models.RoleLine, row, cfg)
}

// axisSpec builds a category/value chart with a natural value axis.
func axisSpec(role models.Role, row models.ProjectedRow, cfg Config) models.ChartSpec {
	if IsZero(row.Values) {
		return zeroSpec(role)
	}
	axis := NaturalAxis(row.Values, cfg.MaxTicks)
	return models.ChartSpec{
		Role:          role,
		Status:        models.StatusReady,
		Labels:        clone(row.Labels),
		Values:        clone(row.Values),
		DisplayValues: clone(row.Values),
		Axis:          &axis,
		ColorScheme:   cfg.ColorScheme(role),
	}
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}
