package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/charts"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

func tableOf(columns []string, rows ...[]any) *models.TableView {
	return models.NewTableViewFromGrid(columns, rows)
}

func testResult(t *testing.T) *exchart.Result {
	t.Helper()
	wb := models.NewWorkbook("book.xlsx",
		models.Sheet{Name: "Profile", Table: tableOf([]string{"Name", "Speed", "Power", "Skill"},
			[]any{"Alice", int64(4), int64(8), int64(6)})},
		models.Sheet{Name: "Share", Table: tableOf([]string{"Name", "A", "B"},
			[]any{"Alice", int64(1), int64(3)})},
		models.Sheet{Name: "Q1", Table: tableOf([]string{"Name", "Jan", "Feb"},
			[]any{"Alice", int64(3), int64(7)})},
		models.Sheet{Name: "Q2", Table: tableOf([]string{"Name", "Apr"},
			[]any{"Alice", int64(0)})},
		models.Sheet{Name: "Trend", Table: tableOf([]string{"Name", "W1", "W2"},
			[]any{"Alice", 1.5, int64(2)})},
	)
	res, err := exchart.Run(wb, models.FilterSelection{}, exchart.DefaultOptions())
	require.NoError(t, err)
	return res
}

func TestPalette(t *testing.T) {
	assert.Equal(t, []string{"#667eea"}, Palette("#667eea"))
	assert.Equal(t, palettes["plasma"], Palette("Plasma"))
	assert.Equal(t, palettes["viridis"], Palette("unknown"))
}

func TestTitle(t *testing.T) {
	spec := models.ChartSpec{Role: models.RolePie, SheetName: "Share"}
	assert.Equal(t, "Alice - Share (Pie)", Title(spec, "Alice"))
	assert.Equal(t, "Pie - Share", Title(spec, ""))
	assert.Equal(t, "Line", Title(models.ChartSpec{Role: models.RoleLine}, "Alice"))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "No data (all values are 0)", StatusText(models.ChartSpec{Status: models.StatusZero}))
	assert.Equal(t, "", StatusText(models.ChartSpec{Status: models.StatusReady}))
	assert.Equal(t, "missing", StatusText(models.ChartSpec{Status: models.StatusNoData, Message: "missing"}))
	assert.Equal(t, "unavailable", StatusText(models.ChartSpec{Status: models.StatusUnavailable}))
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, testResult(t)))

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Alice - Profile (Radar)")
	assert.Contains(t, html, "Alice - Share (Pie)")
	assert.Contains(t, html, "Alice - Trend (Line)")
	assert.Contains(t, html, "No data (all values are 0)")
	assert.Contains(t, html, "Speed (4)")
	assert.Contains(t, html, `"minInterval":1`)
	assert.Contains(t, html, `"maxInterval":1`)
}

func TestTickStep(t *testing.T) {
	assert.Equal(t, 1.0, tickStep(nil))
	assert.Equal(t, 1.0, tickStep(&models.Axis{Ticks: []float64{0}}))
	assert.Equal(t, 1.0, tickStep(&models.Axis{Ticks: []float64{0, 1, 2}}))
	assert.Equal(t, 5.0, tickStep(&models.Axis{Ticks: []float64{0, 5, 10}}))
}

func TestPNG(t *testing.T) {
	res := testResult(t)
	pngHeader := []byte("\x89PNG")

	for _, role := range []models.Role{models.RolePie, models.RoleBar1, models.RoleLine} {
		spec, ok := res.Chart(role)
		require.True(t, ok)
		require.True(t, spec.Drawable(), role.String())

		var buf bytes.Buffer
		require.NoError(t, PNG(&buf, spec, res.EntityName()), role.String())
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngHeader), role.String())
	}
}

func TestPNGRejects(t *testing.T) {
	res := testResult(t)

	radar, _ := res.Chart(models.RoleRadar)
	err := PNG(&bytes.Buffer{}, radar, "Alice")
	assert.True(t, errors.Is(err, ErrUnsupportedChart))

	zero, _ := res.Chart(models.RoleBar2)
	err = PNG(&bytes.Buffer{}, zero, "Alice")
	assert.True(t, errors.Is(err, ErrNotDrawable))
}

func TestTerminal(t *testing.T) {
	res := testResult(t)
	res.Narrative = "Alice is steady."

	var buf bytes.Buffer
	require.NoError(t, Terminal(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "book.xlsx")
	assert.Contains(t, out, "Speed")
	assert.Contains(t, out, "No data (all values are 0)")
	assert.Contains(t, out, "Sheet Trend")
	assert.Contains(t, out, "1.5")
	assert.Contains(t, out, "Alice is steady.")
}

func TestTerminalInvertedRadarShowsRawValues(t *testing.T) {
	wb := models.NewWorkbook("b.xlsx", models.Sheet{Name: "S", Table: tableOf(
		[]string{"Name", "x", "y"}, []any{"A", int64(10), int64(20)})})
	opts := exchart.DefaultOptions()
	opts.Charts = charts.DefaultConfig()
	opts.Charts.Invert = true
	res, err := exchart.Run(wb, models.FilterSelection{}, opts)
	require.NoError(t, err)

	radar, _ := res.Chart(models.RoleRadar)
	require.True(t, radar.Inverted)

	out := bars(radar)
	assert.Contains(t, out, "20")
	assert.Contains(t, out, "10")
	assert.NotContains(t, out, "14")
}
