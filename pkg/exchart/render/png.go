package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotDrawable is returned when a chart spec has nothing to draw.
var ErrNotDrawable = errors.New("chart has nothing to draw")

// ErrUnsupportedChart is returned for roles the PNG renderer cannot draw.
var ErrUnsupportedChart = errors.New("chart type not supported by png renderer")

const (
	pngWidth  = 800
	pngHeight = 480
)

// PNG draws a single chart spec as a PNG image. Radar charts are not supported.
func PNG(w io.Writer, spec models.ChartSpec, entity string) error {
	if !spec.Drawable() {
		return fmt.Errorf("%s: %w", spec.Role, ErrNotDrawable)
	}
	switch spec.Role {
	case models.RolePie:
		return pngPie(w, spec, entity)
	case models.RoleBar1, models.RoleBar2:
		return pngBar(w, spec, entity)
	case models.RoleLine:
		return pngLine(w, spec, entity)
	}
	return fmt.Errorf("%s: %w", spec.Role, ErrUnsupportedChart)
}

func color(palette []string, i int) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(palette[i%len(palette)], "#"))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yAxis(axis *models.Axis) chart.YAxis {
	if axis == nil {
		return chart.YAxis{}
	}
	ticks := make([]chart.Tick, len(axis.Ticks))
	for i, t := range axis.Ticks {
		ticks[i] = chart.Tick{Value: t, Label: formatNumber(t)}
	}
	return chart.YAxis{
		Range: &chart.ContinuousRange{Min: axis.Min, Max: axis.Max},
		Ticks: ticks,
	}
}

func background() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}}
}

func pngPie(w io.Writer, spec models.ChartSpec, entity string) error {
	palette := Palette(spec.ColorScheme)
	values := make([]chart.Value, len(spec.Values))
	for i, v := range spec.Values {
		c := color(palette, i)
		values[i] = chart.Value{
			Label: spec.Labels[i],
			Value: v,
			Style: chart.Style{FillColor: c, StrokeColor: c},
		}
	}

	pie := chart.PieChart{
		Title:      Title(spec, entity),
		Width:      pngWidth,
		Height:     pngHeight,
		Background: background(),
		Values:     values,
	}
	return pie.Render(chart.PNG, w)
}

func pngBar(w io.Writer, spec models.ChartSpec, entity string) error {
	palette := Palette(spec.ColorScheme)
	bars := make([]chart.Value, len(spec.Values))
	for i, v := range spec.Values {
		c := color(palette, i)
		bars[i] = chart.Value{
			Label: spec.Labels[i],
			Value: v,
			Style: chart.Style{FillColor: c, StrokeColor: c},
		}
	}

	bar := chart.BarChart{
		Title:      Title(spec, entity),
		Width:      pngWidth,
		Height:     pngHeight,
		Background: background(),
		BarWidth:   40,
		YAxis:      yAxis(spec.Axis),
		Bars:       bars,
	}
	return bar.Render(chart.PNG, w)
}

func pngLine(w io.Writer, spec models.ChartSpec, entity string) error {
	n := len(spec.Values)
	xs := make([]float64, n)
	ticks := make([]chart.Tick, n)
	points := make([]chart.Value2, n)
	for i, v := range spec.Values {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: spec.Labels[i]}
		points[i] = chart.Value2{XValue: float64(i), YValue: v, Label: formatNumber(v)}
	}

	xMax := float64(n - 1)
	if xMax < 1 {
		xMax = 1
	}
	c := color(Palette(spec.ColorScheme), 0)

	graph := chart.Chart{
		Title:      Title(spec, entity),
		Width:      pngWidth,
		Height:     pngHeight,
		Background: background(),
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
			Ticks: ticks,
		},
		YAxis: yAxis(spec.Axis),
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.SheetName,
				XValues: xs,
				YValues: append([]float64(nil), spec.Values...),
				Style: chart.Style{
					StrokeColor: c,
					StrokeWidth: 2,
					DotColor:    c,
					DotWidth:    4,
				},
			},
			chart.AnnotationSeries{Annotations: points},
		},
	}
	return graph.Render(chart.PNG, w)
}
