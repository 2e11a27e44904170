// Package render draws chart specs. Renderers only read the specs; every
// numeric transform has already been applied by the charts package.
package render

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

var palettes = map[string][]string{
	"viridis": {"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
	"cividis": {"#00224e", "#35456c", "#666970", "#948e77", "#c8b866", "#fee838"},
	"plasma":  {"#0d0887", "#6a00a8", "#b12a90", "#e16462", "#fca636", "#f0f921"},
	"rdbu":    {"#67001f", "#b2182b", "#d6604d", "#f4a582", "#92c5de", "#4393c3", "#2166ac", "#053061"},
}

// Palette resolves a color scheme name or a "#rrggbb" color to a list of colors.
func Palette(scheme string) []string {
	if strings.HasPrefix(scheme, "#") {
		return []string{scheme}
	}
	if p, ok := palettes[strings.ToLower(scheme)]; ok {
		return p
	}
	return palettes["viridis"]
}

// Title returns the display title of a chart for an entity.
func Title(spec models.ChartSpec, entity string) string {
	name := roleTitles[spec.Role]
	if spec.SheetName == "" {
		return name
	}
	if entity == "" {
		return fmt.Sprintf("%s - %s", name, spec.SheetName)
	}
	return fmt.Sprintf("%s - %s (%s)", entity, spec.SheetName, name)
}

var roleTitles = map[models.Role]string{
	models.RoleRadar: "Radar",
	models.RolePie:   "Pie",
	models.RoleBar1:  "Bar",
	models.RoleBar2:  "Bar",
	models.RoleLine:  "Line",
}

// StatusText is the text shown in place of a chart that cannot be drawn.
func StatusText(spec models.ChartSpec) string {
	switch spec.Status {
	case models.StatusZero:
		return "No data (all values are 0)"
	case models.StatusReady:
		return ""
	}
	if spec.Message != "" {
		return spec.Message
	}
	return string(spec.Status)
}
