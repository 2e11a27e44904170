// Package output serializes pipeline results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToJSON serializes a full pipeline result.
func ToJSON(res *exchart.Result, pretty bool) ([]byte, error) {
	return marshal(res, pretty)
}

// ChartsToJSON serializes only the chart specs.
func ChartsToJSON(specs []models.ChartSpec, pretty bool) ([]byte, error) {
	if specs == nil {
		specs = []models.ChartSpec{}
	}
	return marshal(specs, pretty)
}

// ChartToJSON serializes one chart spec.
func ChartToJSON(spec *models.ChartSpec, pretty bool) ([]byte, error) {
	return marshal(spec, pretty)
}

// SummaryToJSON serializes the narrative summary.
func SummaryToJSON(summary models.Summary, pretty bool) ([]byte, error) {
	if summary == nil {
		summary = models.Summary{}
	}
	return marshal(summary, pretty)
}
