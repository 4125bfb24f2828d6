package projector

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ytget/chemviz/internal/model"
)

func makeRows(n int) []model.Row {
	rows := make([]model.Row, n)
	for i := range rows {
		rows[i] = model.NewRow(fmt.Sprintf("Pump-%d", i+1), "Pump", map[string]string{
			"flowrate":    fmt.Sprintf("%d", 100+i),
			"pressure":    fmt.Sprintf("%d.5", i),
			"temperature": fmt.Sprintf("%d", 200+i),
		})
	}
	return rows
}

func TestProject_NilDataset(t *testing.T) {
	_, err := Project(nil, "flowrate", model.ThemeBlue)
	if !errors.Is(err, ErrNoDataset) {
		t.Fatalf("Expected ErrNoDataset, got %v", err)
	}
}

func TestProject_Categorical(t *testing.T) {
	ds := &model.Dataset{Distribution: model.Distribution{
		{Name: "Pump", Count: 4},
		{Name: "Valve", Count: 2},
		{Name: "Reactor", Count: 1},
	}}
	theme, _ := model.LookupTheme(model.ThemeGreen)

	data, err := Project(ds, "type_distribution", model.ThemeGreen)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if data.Kind != KindCategorical {
		t.Errorf("Expected kind %s, got %s", KindCategorical, data.Kind)
	}

	expectedLabels := []string{"Pump", "Valve", "Reactor"}
	for i, label := range expectedLabels {
		if data.Labels[i] != label {
			t.Errorf("Label %d: expected %s, got %s", i, label, data.Labels[i])
		}
	}

	series := data.Datasets[0]
	expectedValues := []float64{4, 2, 1}
	for i, v := range expectedValues {
		if series.Values[i] != v {
			t.Errorf("Value %d: expected %v, got %v", i, v, series.Values[i])
		}
		if series.BackgroundColors[i] != theme.Colors[i] {
			t.Errorf("Color %d: expected %s, got %s", i, theme.Colors[i], series.BackgroundColors[i])
		}
	}
}

func TestProject_CategoricalColorsCycle(t *testing.T) {
	theme, _ := model.LookupTheme(model.ThemeBlue)
	var dist model.Distribution
	for i := 0; i < len(theme.Colors)+2; i++ {
		dist = append(dist, model.CategoryCount{Name: fmt.Sprintf("T%d", i), Count: i})
	}

	data, err := Project(&model.Dataset{Distribution: dist}, "type_distribution", model.ThemeBlue)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	colors := data.Datasets[0].BackgroundColors
	n := len(theme.Colors)
	if colors[n] != theme.Colors[0] || colors[n+1] != theme.Colors[1] {
		t.Errorf("Expected palette to wrap around, got %v", colors)
	}
}

func TestProject_ContinuousCapsAtTwenty(t *testing.T) {
	ds := &model.Dataset{Rows: makeRows(25)}
	theme, _ := model.LookupTheme(model.ThemeRed)

	data, err := Project(ds, "flowrate", model.ThemeRed)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(data.Labels) != 20 {
		t.Fatalf("Expected 20 labels, got %d", len(data.Labels))
	}
	if data.Labels[0] != "Unit 1" || data.Labels[19] != "Unit 20" {
		t.Errorf("Unexpected labels: first=%s last=%s", data.Labels[0], data.Labels[19])
	}

	series := data.Datasets[0]
	if len(series.Values) != 20 {
		t.Fatalf("Expected 20 values, got %d", len(series.Values))
	}
	if series.Values[0] != 100 || series.Values[19] != 119 {
		t.Errorf("Unexpected values: first=%v last=%v", series.Values[0], series.Values[19])
	}
	if series.BackgroundColors[0] != theme.Primary() {
		t.Errorf("Expected fill %s, got %s", theme.Primary(), series.BackgroundColors[0])
	}
	if series.BorderColor != theme.Border {
		t.Errorf("Expected border %s, got %s", theme.Border, series.BorderColor)
	}
}

func TestProject_ContinuousShortDataset(t *testing.T) {
	data, err := Project(&model.Dataset{Rows: makeRows(3)}, "pressure", model.ThemeBlue)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(data.Labels) != 3 {
		t.Errorf("Expected 3 labels, got %d", len(data.Labels))
	}
	if data.Datasets[0].Values[2] != 2.5 {
		t.Errorf("Expected 2.5, got %v", data.Datasets[0].Values[2])
	}
}

func TestProject_ScatterCapsAtFifty(t *testing.T) {
	ds := &model.Dataset{Rows: makeRows(60)}

	data, err := Project(ds, "pressure_vs_temperature", model.ThemeBlue)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if data.Kind != KindScatter {
		t.Fatalf("Expected kind %s, got %s", KindScatter, data.Kind)
	}

	points := data.Datasets[0].Points
	if len(points) != 50 {
		t.Fatalf("Expected 50 points, got %d", len(points))
	}
	for i, p := range points {
		row := ds.Rows[i]
		if p.X != row.Float("pressure") || p.Y != row.Float("temperature") {
			t.Errorf("Point %d: got %+v", i, p)
		}
	}
}

func TestProject_ScatterMalformedCellsDegradeToZero(t *testing.T) {
	ds := &model.Dataset{Rows: []model.Row{
		model.NewRow("A", "Pump", map[string]string{"pressure": "abc", "temperature": "12"}),
		model.NewRow("B", "Pump", map[string]string{"pressure": "3"}),
		model.NewRow("C", "Pump", map[string]string{"pressure": "NaN", "temperature": " 7.25 "}),
	}}

	data, err := Project(ds, "pressure_vs_temperature", model.ThemeBlue)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []Point{{0, 12}, {3, 0}, {0, 7.25}}
	points := data.Datasets[0].Points
	for i, p := range expected {
		if points[i] != p {
			t.Errorf("Point %d: expected %+v, got %+v", i, p, points[i])
		}
	}
}

func TestProject_UnknownMetricIsEmpty(t *testing.T) {
	ds := &model.Dataset{Rows: makeRows(5)}

	for _, metric := range []string{"humidity", "", "foo_vs_bar"} {
		data, err := Project(ds, metric, model.ThemeBlue)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", metric, err)
		}
		if !data.IsEmpty() || data.Kind != KindEmpty {
			t.Errorf("Expected empty result for %q, got %+v", metric, data)
		}
		if len(data.Labels) != 0 || len(data.Datasets) != 0 {
			t.Errorf("Expected no labels or datasets for %q", metric)
		}
	}
}

func TestProject_UnknownThemeFallsBack(t *testing.T) {
	ds := &model.Dataset{Rows: makeRows(1)}
	data, err := Project(ds, "flowrate", "neon")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	blue, _ := model.LookupTheme(model.ThemeBlue)
	if data.Datasets[0].BackgroundColors[0] != blue.Primary() {
		t.Errorf("Expected fallback to %s, got %s", blue.Primary(), data.Datasets[0].BackgroundColors[0])
	}
}
