package models

// Status describes whether a chart can be drawn.
type Status string

const (
	// StatusReady means the spec carries geometry.
	StatusReady Status = "ready"
	// StatusZero means the plotted values sum to zero; draw a "no data" indicator.
	StatusZero Status = "zero"
	// StatusUnconfigured means the chart configuration is incomplete.
	StatusUnconfigured Status = "unconfigured"
	// StatusUnavailable means the workbook has no sheet for the role.
	StatusUnavailable Status = "unavailable"
	// StatusNoData means the entity has no row (or no numeric columns) in the sheet.
	StatusNoData Status = "no_data"
)

// Axis describes a value axis range and its tick positions.
type Axis struct {
	// Min is the lower bound of the axis.
	Min float64 `json:"min"`
	// Max is the upper bound of the axis.
	Max float64 `json:"max"`
	// Ticks lists tick positions (empty for radar axes).
	Ticks []float64 `json:"ticks,omitempty"`
}

// ChartSpec is the renderer-agnostic description of one chart.
// Renderers draw from it without re-deriving any numeric transform.
type ChartSpec struct {
	// Role is the chart role.
	Role Role `json:"role"`
	// SheetName is the sheet the chart was built from.
	SheetName string `json:"sheet_name,omitempty"`
	// Status tells the renderer whether geometry is present.
	Status Status `json:"status"`
	// Message explains a non-ready status.
	Message string `json:"message,omitempty"`
	// Labels are the category labels (column names).
	Labels []string `json:"labels,omitempty"`
	// DisplayLabels are labels decorated for display (radar only).
	DisplayLabels []string `json:"display_labels,omitempty"`
	// Values are the plotting values after role-specific transforms.
	Values []float64 `json:"values,omitempty"`
	// DisplayValues are the raw values shown alongside the chart.
	DisplayValues []float64 `json:"display_values,omitempty"`
	// Axis is the value axis (radial axis for radar).
	Axis *Axis `json:"axis,omitempty"`
	// Inverted is true when radar values were inverted.
	Inverted bool `json:"inverted,omitempty"`
	// Closed is true when the first point is repeated at the end.
	Closed bool `json:"closed,omitempty"`
	// ColorScheme names the palette the renderer should use.
	ColorScheme string `json:"color_scheme,omitempty"`
}

// Drawable reports whether the spec carries geometry.
func (c ChartSpec) Drawable() bool {
	return c.Status == StatusReady
}
