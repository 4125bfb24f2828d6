package projector

// Kind tells the renderer which shape of chart data it received
type Kind string

const (
	// KindCategorical carries one value per category label
	KindCategorical Kind = "categorical"

	// KindSeries carries one value per row label
	KindSeries Kind = "series"

	// KindScatter carries (x, y) points and no labels
	KindScatter Kind = "scatter"

	// KindEmpty is renderable but blank
	KindEmpty Kind = "empty"
)

// Point is one scatter coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is one dataset of chart-ready values
type Series struct {
	Label            string    `json:"label"`
	Values           []float64 `json:"data,omitempty"`
	Points           []Point   `json:"points,omitempty"`
	BackgroundColors []string  `json:"backgroundColor"`
	BorderColor      string    `json:"borderColor"`
}

// ChartData is the projector's render-ready output
type ChartData struct {
	Kind     Kind     `json:"kind"`
	Metric   string   `json:"metric"`
	Labels   []string `json:"labels"`
	Datasets []Series `json:"datasets"`
}

// IsEmpty reports whether there is nothing to draw
func (d ChartData) IsEmpty() bool {
	if d.Kind == KindEmpty || len(d.Datasets) == 0 {
		return true
	}
	for _, s := range d.Datasets {
		if len(s.Values) > 0 || len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// Empty returns the blank result for metric
func Empty(metric string) ChartData {
	return ChartData{
		Kind:     KindEmpty,
		Metric:   metric,
		Labels:   []string{},
		Datasets: []Series{},
	}
}
