package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

func row(labels []string, values ...float64) models.ProjectedRow {
	return models.ProjectedRow{Labels: labels, Values: values}
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(nil))
	assert.True(t, IsZero([]float64{0, 0, 0}))
	assert.True(t, IsZero([]float64{3, -3}))
	assert.True(t, IsZero([]float64{0.1, 0.2, -0.3}))
	assert.False(t, IsZero([]float64{0, 0.001}))
}

func TestNaturalAxis(t *testing.T) {
	axis := NaturalAxis([]float64{3, 7, 2}, 0)

	assert.InDelta(t, 8.4, axis.Max, 1e-9)
	assert.Equal(t, 0.0, axis.Min)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, axis.Ticks)
}

func TestNaturalAxisSmallValues(t *testing.T) {
	axis := NaturalAxis([]float64{0.2, 0.5}, 0)

	assert.Equal(t, 1.0, axis.Max)
	assert.Equal(t, []float64{0, 1, 2}, axis.Ticks)

	axis = NaturalAxis([]float64{-4, -1}, 0)
	assert.Equal(t, 1.0, axis.Max)
}

func TestNaturalAxisLargeValues(t *testing.T) {
	spec := BuildBar(models.RoleBar1, row([]string{"a", "b"}, 1000, 3), DefaultConfig())
	require.Equal(t, models.StatusReady, spec.Status)

	axis := spec.Axis
	assert.InDelta(t, 1200, axis.Max, 1e-9)
	require.Len(t, axis.Ticks, 1202)
	for i, tick := range axis.Ticks {
		require.Equal(t, float64(i), tick)
	}
}

func TestNaturalAxisTickCap(t *testing.T) {
	axis := NaturalAxis([]float64{10000}, 100)

	assert.InDelta(t, 12000, axis.Max, 1e-6)
	assert.LessOrEqual(t, len(axis.Ticks), 100)
	assert.Equal(t, 0.0, axis.Ticks[0])
	step := axis.Ticks[1] - axis.Ticks[0]
	assert.Greater(t, step, 1.0)
	for i := 1; i < len(axis.Ticks); i++ {
		assert.Equal(t, step, axis.Ticks[i]-axis.Ticks[i-1])
	}

	last := axis.Ticks[len(axis.Ticks)-1]
	assert.LessOrEqual(t, last, 12001.0)
	assert.Greater(t, last+step, 12001.0)

	axis = NaturalAxis([]float64{1000, 3}, 1000)
	assert.LessOrEqual(t, axis.Ticks[len(axis.Ticks)-1], 1201.0)
}

func TestBuildRadar(t *testing.T) {
	cfg := DefaultConfig()
	spec := BuildRadar(row([]string{"a", "b", "c"}, 4, 10, 6), cfg)

	require.Equal(t, models.StatusReady, spec.Status)
	assert.Equal(t, []string{"a", "b", "c", "a"}, spec.Labels)
	assert.Equal(t, []string{"a (4)", "b (10)", "c (6)", "a (4)"}, spec.DisplayLabels)
	assert.Equal(t, []float64{4, 10, 6, 4}, spec.Values)
	assert.InDelta(t, 12.0, spec.Axis.Max, 1e-9)
	assert.True(t, spec.Closed)
	assert.False(t, spec.Inverted)
	assert.Equal(t, "#667eea", spec.ColorScheme)
}

func TestBuildRadarInverted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Invert = true
	spec := BuildRadar(row([]string{"a", "b", "c"}, 4, 10, 6), cfg)

	require.Equal(t, models.StatusReady, spec.Status)
	r := spec.Axis.Max
	assert.InDelta(t, 8.0, spec.Values[0], 1e-9)
	assert.InDelta(t, 2.0, spec.Values[1], 1e-9)
	assert.Equal(t, spec.Values[0], spec.Values[3])
	assert.True(t, spec.Inverted)
	// Labels keep raw values.
	assert.Equal(t, "b (10)", spec.DisplayLabels[1])

	raw := Uninvert(spec.Values, r)
	for i, v := range spec.DisplayValues {
		assert.InDelta(t, v, raw[i], 1e-9)
	}
}

func TestBuildRadarVertexSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VertexColumns = []string{"c", "zz", "a", "c"}
	spec := BuildRadar(row([]string{"a", "b", "c"}, 1, 2, 3), cfg)

	require.Equal(t, models.StatusReady, spec.Status)
	assert.Equal(t, []string{"c", "a", "c"}, spec.Labels)
	assert.InDelta(t, 3.6, spec.Axis.Max, 1e-9)

	cfg = DefaultConfig()
	cfg.VertexCount = 2
	spec = BuildRadar(row([]string{"a", "b", "c"}, 1, 2, 3), cfg)
	assert.Equal(t, []string{"a", "b", "a"}, spec.Labels)
}

func TestBuildRadarUnconfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VertexColumns = []string{"a"}
	spec := BuildRadar(row([]string{"a", "b"}, 1, 2), cfg)

	assert.Equal(t, models.StatusUnconfigured, spec.Status)
	assert.Empty(t, spec.Values)
}

func TestBuildRadarZeroVertices(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VertexColumns = []string{"a", "b"}
	spec := BuildRadar(row([]string{"a", "b", "c"}, 0, 0, 5), cfg)

	assert.Equal(t, models.StatusZero, spec.Status)
}

func TestZeroRuleAllRoles(t *testing.T) {
	cfg := DefaultConfig()
	zero := row([]string{"a", "b", "c"}, 0, 0, 0)

	specs := []models.ChartSpec{
		BuildRadar(zero, cfg),
		BuildPie(zero, cfg),
		BuildBar(models.RoleBar1, zero, cfg),
		BuildBar(models.RoleBar2, zero, cfg),
		BuildLine(zero, cfg),
	}
	for _, spec := range specs {
		assert.Equal(t, models.StatusZero, spec.Status, spec.Role.String())
		assert.Nil(t, spec.Values, spec.Role.String())
		assert.Nil(t, spec.Axis, spec.Role.String())
	}
}

func TestBuildPie(t *testing.T) {
	spec := BuildPie(row([]string{"x", "y"}, 1, 3), DefaultConfig())

	require.Equal(t, models.StatusReady, spec.Status)
	assert.Equal(t, []string{"x", "y"}, spec.Labels)
	assert.Equal(t, []float64{1, 3}, spec.Values)
	assert.Nil(t, spec.Axis)
	assert.Equal(t, "RdBu", spec.ColorScheme)
}

func TestBuildBarAndLine(t *testing.T) {
	r := row([]string{"Jan", "Feb", "Mar"}, 3, 7, 2)

	bar := BuildBar(models.RoleBar2, r, DefaultConfig())
	require.Equal(t, models.StatusReady, bar.Status)
	assert.Equal(t, models.RoleBar2, bar.Role)
	assert.Equal(t, "Cividis", bar.ColorScheme)
	assert.InDelta(t, 8.4, bar.Axis.Max, 1e-9)

	line := BuildLine(r, DefaultConfig())
	require.Equal(t, models.StatusReady, line.Status)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, line.Labels)
	assert.Equal(t, []float64{3, 7, 2}, line.Values)
	assert.Equal(t, "Plasma", line.ColorScheme)
}

func TestBuildDoesNotAliasRow(t *testing.T) {
	r := row([]string{"a", "b"}, 1, 2)
	spec := BuildLine(r, DefaultConfig())
	spec.Values[0] = 99
	assert.Equal(t, 1.0, r.Values[0])
}

func TestColorSchemeOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorSchemes = map[models.Role]string{models.RoleBar1: "Plasma"}

	assert.Equal(t, "Plasma", cfg.ColorScheme(models.RoleBar1))
	assert.Equal(t, "Cividis", cfg.ColorScheme(models.RoleBar2))
}

func TestBuild(t *testing.T) {
	cfg := DefaultConfig()

	spec := Build(models.RoleBinding{Role: models.RoleLine, SheetIndex: 4}, models.Projection{}, cfg)
	assert.Equal(t, models.StatusUnavailable, spec.Status)
	assert.Equal(t, models.RoleLine, spec.Role)
	assert.Contains(t, spec.Message, "at least 5 sheets")

	binding := models.RoleBinding{Role: models.RolePie, SheetIndex: 1, SheetName: "Pie", Available: true}
	spec = Build(binding, models.Projection{Reason: "no data for X"}, cfg)
	assert.Equal(t, models.StatusNoData, spec.Status)
	assert.Equal(t, "no data for X", spec.Message)
	assert.Equal(t, "Pie", spec.SheetName)

	spec = Build(binding, models.Projection{Found: true, SheetName: "Pie"}, cfg)
	assert.Equal(t, models.StatusNoData, spec.Status)
	assert.Contains(t, spec.Message, "no numeric columns")

	radar := models.RoleBinding{Role: models.RoleRadar, SheetName: "S", Available: true}
	spec = Build(radar, models.Projection{Found: true, SheetName: "S"}, cfg)
	assert.Equal(t, models.StatusUnconfigured, spec.Status)
	assert.Equal(t, models.RoleRadar, spec.Role)

	spec = Build(radar, models.Projection{Found: true, SheetName: "S", Row: row([]string{"a"}, 5)}, cfg)
	assert.Equal(t, models.StatusUnconfigured, spec.Status)

	p := models.Projection{Found: true, SheetName: "Pie", Row: row([]string{"a"}, 5)}
	spec = Build(binding, p, cfg)
	assert.Equal(t, models.StatusReady, spec.Status)
	assert.Equal(t, models.RolePie, spec.Role)
	assert.Equal(t, "Pie", spec.SheetName)
}
