// Package charts turns projected rows into renderer-agnostic chart specs.
package charts

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// RangeFactor is the headroom applied above the largest value.
const RangeFactor = 1.2

// IsZero reports whether values sum to exactly zero.
// The sum is exact decimal arithmetic, not a float64 sum: [0.1, 0.2, -0.3]
// is zero here even though the float64 sum is not.
func IsZero(values []float64) bool {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.IsZero()
}

// maxValue returns the largest value, or 0 for an empty slice.
func maxValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// NaturalAxis computes a [0, axisMax] value axis with whole-number ticks,
// where axisMax = max(max(values)*1.2, 1). Ticks run from 0 through
// floor(axisMax)+1 in steps of 1.
//
// maxTicks <= 1 means no cap. A positive cap that the full list would exceed
// switches to the smallest integer step that fits; ticks then stop at the
// last multiple of the step not past floor(axisMax)+1.
func NaturalAxis(values []float64, maxTicks int) models.Axis {
	axisMax := math.Max(maxValue(values)*RangeFactor, 1)
	last := math.Floor(axisMax) + 1

	step := 1.0
	if maxTicks > 1 && last+1 > float64(maxTicks) {
		step = math.Ceil(last / float64(maxTicks-1))
	}

	ticks := make([]float64, 0, int(last/step)+1)
	for t := 0.0; t <= last; t += step {
		ticks = append(ticks, t)
	}

	return models.Axis{Min: 0, Max: axisMax, Ticks: ticks}
}

// zeroSpec returns the geometry-free spec emitted for an all-zero row.
func zeroSpec(role models.Role) models.ChartSpec {
	return models.ChartSpec{
		Role:    role,
		Status:  models.StatusZero,
		Message: "all values are zero",
	}
}
