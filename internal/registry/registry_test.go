package registry

import (
	"testing"

	"github.com/ytget/chemviz/internal/model"
)

func TestCompatibleMetrics_NonEmptyAndAccepted(t *testing.T) {
	for _, ct := range model.ChartTypes {
		metrics := CompatibleMetrics(ct)
		if len(metrics) == 0 {
			t.Fatalf("CompatibleMetrics(%s) returned no metrics", ct)
		}
		for _, m := range metrics {
			if !Accepts(ct, m.Category) {
				t.Errorf("CompatibleMetrics(%s) returned %s with category %s", ct, m.ID, m.Category)
			}
			if CategoryOf(m.ID) != m.Category {
				t.Errorf("CategoryOf(%s) = %s, expected %s", m.ID, CategoryOf(m.ID), m.Category)
			}
		}
	}
}

func TestCompatibilityTable(t *testing.T) {
	tests := []struct {
		chartType model.ChartType
		expected  []model.Category
	}{
		{model.ChartPie, []model.Category{model.CategoryCategorical}},
		{model.ChartDoughnut, []model.Category{model.CategoryCategorical}},
		{model.ChartRadar, []model.Category{model.CategoryCategorical}},
		{model.ChartPolarArea, []model.Category{model.CategoryCategorical}},
		{model.ChartLine, []model.Category{model.CategoryContinuous}},
		{model.ChartScatter, []model.Category{model.CategoryScatterPair}},
		{model.ChartBar, []model.Category{model.CategoryCategorical, model.CategoryContinuous}},
	}

	for _, test := range tests {
		got := Accepted(test.chartType)
		if len(got) != len(test.expected) {
			t.Fatalf("Accepted(%s) = %v, expected %v", test.chartType, got, test.expected)
		}
		for i := range got {
			if got[i] != test.expected[i] {
				t.Errorf("Accepted(%s)[%d] = %s, expected %s", test.chartType, i, got[i], test.expected[i])
			}
		}
	}
}

func TestCompatibleMetrics_UnknownChartType(t *testing.T) {
	if got := CompatibleMetrics(model.ChartType("area")); len(got) != 0 {
		t.Errorf("Expected no metrics for unknown chart type, got %v", got)
	}
}

func TestCompatibleMetrics_BarOrder(t *testing.T) {
	got := CompatibleMetrics(model.ChartBar)
	expected := []string{"type_distribution", "flowrate", "pressure", "temperature"}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d metrics, got %d", len(expected), len(got))
	}
	for i, id := range expected {
		if got[i].ID != id {
			t.Errorf("Metric %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestNormalizeMetric(t *testing.T) {
	tests := []struct {
		chartType model.ChartType
		metric    string
		expected  string
	}{
		{model.ChartPie, "flowrate", "type_distribution"},
		{model.ChartBar, "flowrate", "flowrate"},
		{model.ChartBar, "type_distribution", "type_distribution"},
		{model.ChartLine, "type_distribution", "flowrate"},
		{model.ChartLine, "temperature", "temperature"},
		{model.ChartScatter, "flowrate", "flowrate_vs_pressure"},
		{model.ChartScatter, "pressure_vs_temperature", "pressure_vs_temperature"},
		{model.ChartRadar, "pressure_vs_temperature", "type_distribution"},
		{model.ChartBar, "unknown", "type_distribution"},
		{model.ChartType("area"), "flowrate", "flowrate"},
	}

	for _, test := range tests {
		result := NormalizeMetric(test.chartType, test.metric)
		if result != test.expected {
			t.Errorf("NormalizeMetric(%s, %s) = %s, expected %s", test.chartType, test.metric, result, test.expected)
		}
	}
}

func TestNormalizeMetric_Idempotent(t *testing.T) {
	metrics := []string{"type_distribution", "flowrate", "pressure", "temperature",
		"flowrate_vs_pressure", "pressure_vs_pressure", "bogus", ""}

	for _, ct := range model.ChartTypes {
		for _, m := range metrics {
			once := NormalizeMetric(ct, m)
			twice := NormalizeMetric(ct, once)
			if once != twice {
				t.Errorf("NormalizeMetric(%s) not idempotent for %q: %q then %q", ct, m, once, twice)
			}
			if !Accepts(ct, CategoryOf(once)) {
				t.Errorf("NormalizeMetric(%s, %q) = %q which %s does not accept", ct, m, once, ct)
			}
		}
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		id       string
		expected model.Category
	}{
		{"type_distribution", model.CategoryCategorical},
		{"flowrate", model.CategoryContinuous},
		{"temperature", model.CategoryContinuous},
		{"pressure_vs_temperature", model.CategoryScatterPair},
		{"flowrate_vs_flowrate", model.CategoryScatterPair},
		{"flowrate_vs_type_distribution", model.CategoryUnknown},
		{"foo_vs_bar", model.CategoryUnknown},
		{"_vs_", model.CategoryUnknown},
		{"", model.CategoryUnknown},
	}

	for _, test := range tests {
		if got := CategoryOf(test.id); got != test.expected {
			t.Errorf("CategoryOf(%q) = %q, expected %q", test.id, got, test.expected)
		}
	}
}

func TestScatterMetricID(t *testing.T) {
	id := ScatterMetricID("pressure", "temperature")
	if id != "pressure_vs_temperature" {
		t.Fatalf("Expected pressure_vs_temperature, got %s", id)
	}

	x, y, ok := SplitScatterMetric(id)
	if !ok || x != "pressure" || y != "temperature" {
		t.Errorf("SplitScatterMetric(%s) = (%s, %s, %v)", id, x, y, ok)
	}

	if _, _, ok := SplitScatterMetric("flowrate"); ok {
		t.Error("Expected flowrate not to split")
	}
}

func TestMetricsOf_ScatterPairs(t *testing.T) {
	pairs := MetricsOf(model.CategoryScatterPair)
	if len(pairs) != 6 {
		t.Fatalf("Expected 6 scatter pairs, got %d", len(pairs))
	}
	if pairs[0].ID != "flowrate_vs_pressure" || pairs[0].Name != "Flowrate vs Pressure" {
		t.Errorf("Unexpected first pair: %+v", pairs[0])
	}

	// Callers must not be able to mutate the catalog
	pairs[0].ID = "changed"
	if MetricsOf(model.CategoryScatterPair)[0].ID != "flowrate_vs_pressure" {
		t.Error("MetricsOf should return a copy")
	}
}

func TestDefaultTitle(t *testing.T) {
	tests := []struct {
		metric    string
		chartType model.ChartType
		expected  string
	}{
		{"type_distribution", model.ChartPie, "Type Distribution (Pie)"},
		{"flowrate", model.ChartLine, "Flowrate (Line)"},
		{"pressure_vs_temperature", model.ChartScatter, "Pressure vs Temperature (Scatter)"},
		{"custom", model.ChartBar, "custom (Bar)"},
	}

	for _, test := range tests {
		if got := DefaultTitle(test.metric, test.chartType); got != test.expected {
			t.Errorf("DefaultTitle(%s, %s) = %q, expected %q", test.metric, test.chartType, got, test.expected)
		}
	}
}
