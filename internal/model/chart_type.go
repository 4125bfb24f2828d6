package model

// ChartType represents the visualization a widget renders
type ChartType string

const (
	// ChartBar draws one bar per label
	ChartBar ChartType = "bar"

	// ChartLine draws a single series as a connected line
	ChartLine ChartType = "line"

	// ChartPie draws one slice per category
	ChartPie ChartType = "pie"

	// ChartDoughnut is a pie with a hollow center
	ChartDoughnut ChartType = "doughnut"

	// ChartRadar plots categories on radial spokes
	ChartRadar ChartType = "radar"

	// ChartPolarArea draws equal-angle sectors scaled by value
	ChartPolarArea ChartType = "polarArea"

	// ChartScatter plots (x, y) points
	ChartScatter ChartType = "scatter"
)

// ChartTypes lists every chart type in menu order
var ChartTypes = []ChartType{
	ChartBar,
	ChartLine,
	ChartPie,
	ChartDoughnut,
	ChartRadar,
	ChartPolarArea,
	ChartScatter,
}

// String returns the string representation of ChartType
func (ct ChartType) String() string {
	return string(ct)
}

// IsValid reports whether ct is one of the known chart types
func (ct ChartType) IsValid() bool {
	for _, known := range ChartTypes {
		if ct == known {
			return true
		}
	}
	return false
}

// IsSliced returns true for chart types that render one slice per category
func (ct ChartType) IsSliced() bool {
	return ct == ChartPie || ct == ChartDoughnut
}

// DisplayName returns a human-friendly label for menus and default titles
func (ct ChartType) DisplayName() string {
	switch ct {
	case ChartBar:
		return "Bar"
	case ChartLine:
		return "Line"
	case ChartPie:
		return "Pie"
	case ChartDoughnut:
		return "Doughnut"
	case ChartRadar:
		return "Radar"
	case ChartPolarArea:
		return "Polar Area"
	case ChartScatter:
		return "Scatter"
	default:
		return "Unknown"
	}
}

// ParseChartType matches either the identifier or the display name
func ParseChartType(s string) (ChartType, bool) {
	for _, ct := range ChartTypes {
		if s == string(ct) || s == ct.DisplayName() {
			return ct, true
		}
	}
	return "", false
}
