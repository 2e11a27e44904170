package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// HTML writes a single page with one chart per spec in the result.
func HTML(w io.Writer, res *exchart.Result) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s - %s", res.Overview.BookName, res.EntityName())

	entity := res.EntityName()
	for _, spec := range res.Charts {
		page.AddCharts(echart(spec, entity))
	}
	return page.Render(w)
}

func initOpts() charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		Width:  "100%",
		Height: "400px",
	})
}

func echart(spec models.ChartSpec, entity string) components.Charter {
	if !spec.Drawable() {
		return placeholder(spec, entity)
	}
	switch spec.Role {
	case models.RoleRadar:
		return radarChart(spec, entity)
	case models.RolePie:
		return pieChart(spec, entity)
	case models.RoleLine:
		return lineChart(spec, entity)
	default:
		return barChart(spec, entity)
	}
}

// placeholder is an empty chart whose subtitle carries the status text.
func placeholder(spec models.ChartSpec, entity string) components.Charter {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    Title(spec, entity),
			Subtitle: StatusText(spec),
		}),
		initOpts(),
	)
	return pie
}

func radarChart(spec models.ChartSpec, entity string) components.Charter {
	// ECharts closes radar polygons itself, so the repeated vertex is dropped.
	n := len(spec.Labels)
	if spec.Closed {
		n--
	}

	indicators := make([]*opts.Indicator, n)
	values := make([]float32, n)
	for i := 0; i < n; i++ {
		indicators[i] = &opts.Indicator{Name: spec.DisplayLabels[i], Min: 0, Max: float32(spec.Axis.Max)}
		values[i] = float32(spec.Values[i])
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: Title(spec, entity)}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators,
			Shape:     "polygon",
		}),
		charts.WithColorsOpts(opts.Colors(Palette(spec.ColorScheme))),
		initOpts(),
	)
	radar.AddSeries(entity, []opts.RadarData{{Name: entity, Value: values}},
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.3)}),
	)
	return radar
}

func pieChart(spec models.ChartSpec, entity string) components.Charter {
	items := make([]opts.PieData, len(spec.Labels))
	for i, label := range spec.Labels {
		items[i] = opts.PieData{Name: label, Value: spec.Values[i]}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: Title(spec, entity)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithColorsOpts(opts.Colors(Palette(spec.ColorScheme))),
		initOpts(),
	)
	pie.AddSeries(spec.SheetName, items,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"30%", "70%"}}),
	)
	return pie
}

// valueAxis pins the split interval to the spec's tick step so ECharts
// labels the same whole-number ticks.
func valueAxis(spec models.ChartSpec) charts.GlobalOpts {
	step := tickStep(spec.Axis)
	return charts.WithYAxisOpts(opts.YAxis{
		Type:        "value",
		Min:         spec.Axis.Min,
		Max:         spec.Axis.Max,
		MinInterval: step,
		MaxInterval: step,
	})
}

func tickStep(axis *models.Axis) float64 {
	if axis == nil || len(axis.Ticks) < 2 {
		return 1
	}
	return axis.Ticks[1] - axis.Ticks[0]
}

func barChart(spec models.ChartSpec, entity string) components.Charter {
	data := make([]opts.BarData, len(spec.Values))
	for i, v := range spec.Values {
		data[i] = opts.BarData{Value: v}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: Title(spec, entity)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithColorsOpts(opts.Colors(Palette(spec.ColorScheme))),
		valueAxis(spec),
		initOpts(),
	)
	bar.SetXAxis(spec.Labels).AddSeries(spec.SheetName, data)
	return bar
}

func lineChart(spec models.ChartSpec, entity string) components.Charter {
	data := make([]opts.LineData, len(spec.Values))
	for i, v := range spec.Values {
		data[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: Title(spec, entity)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithColorsOpts(opts.Colors(Palette(spec.ColorScheme))),
		valueAxis(spec),
		initOpts(),
	)
	line.SetXAxis(spec.Labels).AddSeries(spec.SheetName, data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return line
}
