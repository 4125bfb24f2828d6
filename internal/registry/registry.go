// Package registry holds the static knowledge of metric categories and which
// chart types accept which metrics. Nothing in it changes at runtime.
package registry

import (
	"strings"

	"github.com/ytget/chemviz/internal/model"
)

var categorical = []model.Metric{
	{ID: model.MetricTypeDistribution, Name: "Type Distribution", Category: model.CategoryCategorical},
}

var continuous = []model.Metric{
	{ID: model.MetricFlowrate, Name: "Flowrate", Category: model.CategoryContinuous},
	{ID: model.MetricPressure, Name: "Pressure", Category: model.CategoryContinuous},
	{ID: model.MetricTemperature, Name: "Temperature", Category: model.CategoryContinuous},
}

// scatterPairs holds every ordered pair of distinct continuous metrics
var scatterPairs = buildScatterPairs()

func buildScatterPairs() []model.Metric {
	pairs := make([]model.Metric, 0, len(continuous)*(len(continuous)-1))
	for _, x := range continuous {
		for _, y := range continuous {
			if x.ID == y.ID {
				continue
			}
			pairs = append(pairs, scatterMetric(x, y))
		}
	}
	return pairs
}

func scatterMetric(x, y model.Metric) model.Metric {
	return model.Metric{
		ID:       ScatterMetricID(x.ID, y.ID),
		Name:     x.Name + " vs " + y.Name,
		Category: model.CategoryScatterPair,
	}
}

// Accepted returns the metric categories a chart type accepts, in catalog order
func Accepted(ct model.ChartType) []model.Category {
	switch ct {
	case model.ChartPie, model.ChartDoughnut, model.ChartRadar, model.ChartPolarArea:
		return []model.Category{model.CategoryCategorical}
	case model.ChartLine:
		return []model.Category{model.CategoryContinuous}
	case model.ChartScatter:
		return []model.Category{model.CategoryScatterPair}
	case model.ChartBar:
		return []model.Category{model.CategoryCategorical, model.CategoryContinuous}
	default:
		return nil
	}
}

// Accepts reports whether ct accepts metrics of category c
func Accepts(ct model.ChartType, c model.Category) bool {
	if c == model.CategoryUnknown {
		return false
	}
	for _, a := range Accepted(ct) {
		if a == c {
			return true
		}
	}
	return false
}

// MetricsOf returns the catalog metrics of a category
func MetricsOf(c model.Category) []model.Metric {
	var src []model.Metric
	switch c {
	case model.CategoryCategorical:
		src = categorical
	case model.CategoryContinuous:
		src = continuous
	case model.CategoryScatterPair:
		src = scatterPairs
	}
	out := make([]model.Metric, len(src))
	copy(out, src)
	return out
}

// CompatibleMetrics returns the metrics a chart type accepts, categorical
// before continuous before scatter. Unknown chart types yield nothing.
func CompatibleMetrics(ct model.ChartType) []model.Metric {
	var out []model.Metric
	for _, c := range model.Categories {
		if Accepts(ct, c) {
			out = append(out, MetricsOf(c)...)
		}
	}
	return out
}

// NormalizeMetric keeps metric when ct accepts it and otherwise substitutes the
// first compatible metric. With nothing compatible, metric is returned as is.
func NormalizeMetric(ct model.ChartType, metric string) string {
	if Accepts(ct, CategoryOf(metric)) {
		return metric
	}
	compatible := CompatibleMetrics(ct)
	if len(compatible) == 0 {
		return metric
	}
	return compatible[0].ID
}

// CategoryOf classifies a metric id. Scatter pairs are recognized structurally,
// so any "<x>_vs_<y>" over two continuous metrics qualifies.
func CategoryOf(id string) model.Category {
	for _, m := range categorical {
		if m.ID == id {
			return model.CategoryCategorical
		}
	}
	if isContinuous(id) {
		return model.CategoryContinuous
	}
	if x, y, ok := SplitScatterMetric(id); ok && isContinuous(x) && isContinuous(y) {
		return model.CategoryScatterPair
	}
	return model.CategoryUnknown
}

// Lookup returns the metric definition for id
func Lookup(id string) (model.Metric, bool) {
	for _, m := range categorical {
		if m.ID == id {
			return m, true
		}
	}
	for _, m := range continuous {
		if m.ID == id {
			return m, true
		}
	}
	if CategoryOf(id) == model.CategoryScatterPair {
		x, y, _ := SplitScatterMetric(id)
		xm, _ := Lookup(x)
		ym, _ := Lookup(y)
		return scatterMetric(xm, ym), true
	}
	return model.Metric{}, false
}

// DisplayName returns the metric's display name, or the id when unknown
func DisplayName(id string) string {
	if m, ok := Lookup(id); ok {
		return m.Name
	}
	return id
}

// DefaultTitle builds "<metric> (<chart type>)"
func DefaultTitle(metric string, ct model.ChartType) string {
	return DisplayName(metric) + " (" + ct.DisplayName() + ")"
}

// ScatterMetricID joins two continuous metric ids into a scatter-pair id
func ScatterMetricID(x, y string) string {
	return x + model.ScatterSeparator + y
}

// SplitScatterMetric splits "<x>_vs_<y>" into its field names
func SplitScatterMetric(id string) (x, y string, ok bool) {
	x, y, ok = strings.Cut(id, model.ScatterSeparator)
	if !ok || x == "" || y == "" {
		return "", "", false
	}
	return x, y, true
}

func isContinuous(id string) bool {
	for _, m := range continuous {
		if m.ID == id {
			return true
		}
	}
	return false
}
