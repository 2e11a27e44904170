package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

const (
	barWidth   = 40
	maxPreview = 10
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bb9af7"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	trackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261"))
)

// Terminal writes a text report of the result.
func Terminal(w io.Writer, res *exchart.Result) error {
	var sb strings.Builder

	entity := res.EntityName()
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s", res.Overview.BookName, entity)) + "\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%d sheets, %d rows x %d columns in %q",
		len(res.Overview.SheetNames), res.Overview.PrimaryRows, res.Overview.PrimaryColumns,
		firstOr(res.Overview.SheetNames))) + "\n")
	if !res.Resolution.Found {
		sb.WriteString(warnStyle.Render(res.Resolution.Reason) + "\n")
	}

	for _, spec := range res.Charts {
		sb.WriteString("\n" + sectionStyle.Render(Title(spec, entity)) + "\n")
		if !spec.Drawable() {
			sb.WriteString("  " + warnStyle.Render(StatusText(spec)) + "\n")
			continue
		}
		sb.WriteString(bars(spec))
	}

	for _, p := range res.Previews {
		sb.WriteString("\n" + sectionStyle.Render("Sheet "+p.SheetName) + "\n")
		sb.WriteString(previewTable(p) + "\n")
	}

	if res.Narrative != "" {
		sb.WriteString("\n" + sectionStyle.Render("Narrative") + "\n")
		sb.WriteString(res.Narrative + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func firstOr(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// bars draws one horizontal bar per label with the raw value, scaled to the
// chart's axis.
func bars(spec models.ChartSpec) string {
	labels, shown := spec.Labels, spec.DisplayValues
	if spec.Closed && len(labels) > 0 {
		labels, shown = labels[:len(labels)-1], shown[:len(shown)-1]
	}

	scale := 0.0
	if spec.Axis != nil {
		scale = spec.Axis.Max
	}
	if scale <= 0 {
		for _, v := range shown {
			scale = math.Max(scale, math.Abs(v))
		}
	}

	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, lipgloss.Width(l))
	}

	palette := Palette(spec.ColorScheme)
	var sb strings.Builder
	for i, label := range labels {
		filled := 0
		if scale > 0 {
			filled = int(math.Round(math.Abs(shown[i]) / scale * barWidth))
		}
		filled = min(max(filled, 0), barWidth)

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(palette[i%len(palette)]))
		fmt.Fprintf(&sb, "  %s %s%s %s\n",
			lipgloss.NewStyle().Width(labelW).Render(label),
			style.Render(strings.Repeat("█", filled)),
			trackStyle.Render(strings.Repeat("░", barWidth-filled)),
			style.Bold(true).Render(formatNumber(shown[i])),
		)
	}
	return sb.String()
}

func previewTable(p models.Preview) string {
	if p.Message != "" && len(p.Rows) == 0 {
		return "  " + dimStyle.Render(p.Message)
	}

	rows := make([][]string, 0, min(len(p.Rows), maxPreview))
	for _, row := range p.Rows {
		if len(rows) == maxPreview {
			break
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = models.FormatValue(v)
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(trackStyle).
		Headers(p.Columns...).
		Rows(rows...)
	out := t.String()
	if len(p.Rows) > maxPreview {
		out += "\n" + dimStyle.Render(fmt.Sprintf("  ... %d more rows", len(p.Rows)-maxPreview))
	}
	return out
}
