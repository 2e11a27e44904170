package charts

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// BuildRadar builds the radar spec for row.
//
// The radial range is [0, R] with R = max(vertex values)*1.2. With
// cfg.Invert every vertex is plotted at R-v using the same R, so larger
// values sit closer to the center. Display labels always carry the raw value.
// The vertex sequence is closed by repeating the first vertex.
func BuildRadar(row models.ProjectedRow, cfg Config) models.ChartSpec {
	if row.Len() > 0 && IsZero(row.Values) {
		return zeroSpec(models.RoleRadar)
	}
	vertices := cfg.Vertices(row.Labels)
	if len(vertices) < MinVertices {
		return models.ChartSpec{
			Role:    models.RoleRadar,
			Status:  models.StatusUnconfigured,
			Message: fmt.Sprintf("radar needs at least %d numeric vertex columns, have %d", MinVertices, len(vertices)),
		}
	}

	raw := make([]float64, len(vertices))
	for i, col := range vertices {
		raw[i], _ = row.Value(col)
	}
	if IsZero(raw) {
		return zeroSpec(models.RoleRadar)
	}

	r := maxValue(raw) * RangeFactor
	plot := make([]float64, len(raw))
	for i, v := range raw {
		if cfg.Invert {
			plot[i] = r - v
		} else {
			plot[i] = v
		}
	}

	display := make([]string, len(vertices))
	for i, col := range vertices {
		display[i] = fmt.Sprintf("%s (%s)", col, strconv.FormatFloat(raw[i], 'f', -1, 64))
	}

	return models.ChartSpec{
		Role:          models.RoleRadar,
		Status:        models.StatusReady,
		Labels:        closeLoop(vertices),
		DisplayLabels: closeLoop(display),
		Values:        closeLoop(plot),
		DisplayValues: closeLoop(raw),
		Axis:          &models.Axis{Min: 0, Max: r},
		Inverted:      cfg.Invert,
		Closed:        true,
		ColorScheme:   cfg.ColorScheme(models.RoleRadar),
	}
}

// Uninvert recovers raw radar values from inverted plotting values.
func Uninvert(plot []float64, r float64) []float64 {
	out := make([]float64, len(plot))
	for i, v := range plot {
		out[i] = r - v
	}
	return out
}

// closeLoop returns s with its first element appended.
func closeLoop[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, 0, len(s)+1)
	out = append(out, s...)
	return append(out, s[0])
}
