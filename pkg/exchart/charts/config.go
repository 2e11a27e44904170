package charts

import "github.com/ukaji3/exchart-go/pkg/exchart/models"

const (
	// MinVertices is the fewest radar vertices that make a polygon.
	MinVertices = 2
	// MaxVertices is the most radar vertices offered.
	MaxVertices = 10
	// DefaultVertexCount is used when no vertex columns are chosen.
	DefaultVertexCount = 6
)

// DefaultColorSchemes names the palette of each role.
var DefaultColorSchemes = map[models.Role]string{
	models.RoleRadar: "#667eea",
	models.RolePie:   "RdBu",
	models.RoleBar1:  "Viridis",
	models.RoleBar2:  "Cividis",
	models.RoleLine:  "Plasma",
}

// Config holds chart configuration chosen by the user.
type Config struct {
	// VertexColumns selects and orders radar vertices. Empty means the
	// first VertexCount numeric columns.
	VertexColumns []string
	// VertexCount is the default number of radar vertices (2..10).
	VertexCount int
	// Invert plots larger radar values closer to the center.
	Invert bool
	// MaxTicks caps natural axis ticks; 0 means every integer tick.
	MaxTicks int
	// ColorSchemes overrides DefaultColorSchemes per role.
	ColorSchemes map[models.Role]string
}

// DefaultConfig returns the default chart configuration.
func DefaultConfig() Config {
	return Config{VertexCount: DefaultVertexCount}
}

// ColorScheme returns the palette name for role.
func (c Config) ColorScheme(role models.Role) string {
	if s, ok := c.ColorSchemes[role]; ok && s != "" {
		return s
	}
	return DefaultColorSchemes[role]
}

// Vertices picks radar vertex columns from the available numeric labels.
// Explicit columns keep their order; unknown and repeated names are dropped.
func (c Config) Vertices(labels []string) []string {
	available := make(map[string]bool, len(labels))
	for _, l := range labels {
		available[l] = true
	}

	var out []string
	if len(c.VertexColumns) > 0 {
		used := make(map[string]bool)
		for _, col := range c.VertexColumns {
			if !available[col] || used[col] {
				continue
			}
			used[col] = true
			out = append(out, col)
		}
	} else {
		n := c.VertexCount
		if n == 0 {
			n = DefaultVertexCount
		}
		n = min(max(n, MinVertices), len(labels))
		out = append(out, labels[:n]...)
	}

	if len(out) > MaxVertices {
		out = out[:MaxVertices]
	}
	return out
}
