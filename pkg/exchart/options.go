// Package exchart loads tabular workbooks and resolves one entity's row
// across all sheets into chart specs.
package exchart

import (
	"log/slog"

	"github.com/ukaji3/exchart-go/pkg/exchart/charts"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// Options configures one pipeline run.
type Options struct {
	// Charts holds radar vertices, inversion, tick cap and color schemes.
	Charts charts.Config
	// Where, if set, replaces the column/value selection with a filter
	// expression evaluated against each primary sheet row.
	Where string
	// Roles restricts which charts are built. Nil builds all five.
	Roles []models.Role
	// Logger receives debug records. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		Charts: charts.DefaultConfig(),
	}
}

// ShouldBuild reports whether the chart for role is requested.
func (o Options) ShouldBuild(role models.Role) bool {
	if o.Roles == nil {
		return true
	}
	for _, r := range o.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
