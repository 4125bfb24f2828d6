package model

// Category groups metrics by the shape of data they select
type Category string

const (
	// CategoryCategorical is a single named aggregate (counts per category)
	CategoryCategorical Category = "categorical"

	// CategoryContinuous is a numeric column sampled per row
	CategoryContinuous Category = "continuous"

	// CategoryScatterPair pairs two continuous metrics as x and y
	CategoryScatterPair Category = "scatter"

	// CategoryUnknown is reported for identifiers outside the catalog
	CategoryUnknown Category = ""
)

// Categories lists categories in catalog order
var Categories = []Category{CategoryCategorical, CategoryContinuous, CategoryScatterPair}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Metric identifiers used by the built-in catalog
const (
	MetricTypeDistribution = "type_distribution"
	MetricFlowrate         = "flowrate"
	MetricPressure         = "pressure"
	MetricTemperature      = "temperature"
)

// ScatterSeparator joins the x and y metric ids of a scatter pair
const ScatterSeparator = "_vs_"

// Metric is a named data selector
type Metric struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}
