package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/chemviz/internal/config"
	"github.com/ytget/chemviz/internal/editor"
	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/persist"
	"github.com/ytget/chemviz/internal/store"
)

func newTestDashboard(t *testing.T) (*Dashboard, *store.Store, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetDataDirectory(t.TempDir())
	settings.SetChartSize(config.MinChartSize, config.MinChartSize)

	s := store.New(persist.NewMemory())
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	d := NewDashboard(w, s, settings)
	t.Cleanup(d.Close)
	return d, s, settings
}

func testDataset() *model.Dataset {
	return &model.Dataset{
		Name:         "batch.json",
		Distribution: model.Distribution{{Name: "Pump", Count: 2}, {Name: "Valve", Count: 1}},
		Rows: []model.Row{
			model.NewRow("P-1", "Pump", map[string]string{model.MetricFlowrate: "100", model.MetricPressure: "4", model.MetricTemperature: "80"}),
			model.NewRow("P-2", "Pump", map[string]string{model.MetricFlowrate: "50", model.MetricPressure: "2", model.MetricTemperature: "60"}),
			model.NewRow("V-1", "Valve", map[string]string{model.MetricFlowrate: "30", model.MetricPressure: "1", model.MetricTemperature: "40"}),
		},
	}
}

func TestDashboard_ShowsDefaultCards(t *testing.T) {
	d, s, _ := newTestDashboard(t)

	if len(d.Cards()) != s.Len() {
		t.Fatalf("Expected %d cards, got %d", s.Len(), len(d.Cards()))
	}
	for i, w := range s.List() {
		if d.Cards()[i].WidgetID() != w.ID {
			t.Errorf("Card %d: expected widget %d, got %d", i, w.ID, d.Cards()[i].WidgetID())
		}
	}
	if d.summaryLabel.Text != DashPlaceholder {
		t.Errorf("Expected empty summary, got %q", d.summaryLabel.Text)
	}
}

func TestDashboard_FollowsStoreMutations(t *testing.T) {
	d, s, _ := newTestDashboard(t)

	w, err := s.Add(model.WidgetConfig{Title: "Pressure", Metric: model.MetricPressure, Type: model.ChartLine, Theme: model.ThemeRed})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if len(d.Cards()) != 5 {
		t.Fatalf("Expected 5 cards after add, got %d", len(d.Cards()))
	}

	d.RemoveWidget(w.ID)
	if len(d.Cards()) != 4 {
		t.Errorf("Expected 4 cards after remove, got %d", len(d.Cards()))
	}
}

func TestDashboard_RemoveLastWidgetIsRefused(t *testing.T) {
	d, s, _ := newTestDashboard(t)

	for _, w := range s.List()[1:] {
		d.RemoveWidget(w.ID)
	}
	last := s.List()[0]
	d.RemoveWidget(last.ID)

	if s.Len() != 1 || len(d.Cards()) != 1 {
		t.Errorf("Expected the last widget to stay, got store=%d cards=%d", s.Len(), len(d.Cards()))
	}
}

func TestDashboard_SetDatasetUpdatesSummary(t *testing.T) {
	d, _, _ := newTestDashboard(t)

	d.SetDataset(testDataset())
	if d.datasetLabel.Text != "batch.json" {
		t.Errorf("Expected dataset name, got %q", d.datasetLabel.Text)
	}
	if d.summaryLabel.Text == DashPlaceholder {
		t.Error("Expected summary text after loading a dataset")
	}
}

func TestDashboard_Export(t *testing.T) {
	d, s, _ := newTestDashboard(t)
	d.SetDataset(testDataset())

	paths, err := d.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(paths) != s.Len() {
		t.Fatalf("Expected %d exported files, got %d", s.Len(), len(paths))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Expected exported file %s: %v", p, err)
		}
	}
}

func TestEditorDialog_SyncsScatterControls(t *testing.T) {
	d, s, _ := newTestDashboard(t)

	e := editor.NewCreate(s)
	ed := NewEditorDialog(e, d.window, d.localization)

	if ed.axisRow.Visible() {
		t.Error("Axis selectors should be hidden for bar charts")
	}

	ed.typeSelect.SetSelected(model.ChartScatter.DisplayName())
	if e.Draft().Type != model.ChartScatter {
		t.Fatalf("Expected scatter draft, got %s", e.Draft().Type)
	}
	if !ed.axisRow.Visible() || ed.metricRow.Visible() {
		t.Error("Expected axis selectors instead of the metric selector for scatter")
	}

	ed.ySelect.SetSelected("Temperature")
	if got := e.Draft().Metric; got != "flowrate_vs_temperature" {
		t.Errorf("Expected flowrate_vs_temperature, got %s", got)
	}

	ed.typeSelect.SetSelected(model.ChartPie.DisplayName())
	if got := e.Draft().Metric; got != model.MetricTypeDistribution {
		t.Errorf("Expected metric normalized for pie, got %s", got)
	}
	if ed.metricSelect.Selected != "Type Distribution" {
		t.Errorf("Expected metric select to follow the draft, got %q", ed.metricSelect.Selected)
	}
}

func TestExportWidget(t *testing.T) {
	d, _, settings := newTestDashboard(t)
	d.SetDataset(testDataset())

	path, err := d.ExportWidget(3)
	if err != nil {
		t.Fatalf("ExportWidget failed: %v", err)
	}
	if filepath.Dir(path) != settings.GetExportDirectory() {
		t.Errorf("Expected chart in %s, got %s", settings.GetExportDirectory(), path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected exported chart at %s: %v", path, err)
	}

	if _, err := d.ExportWidget(42); !errors.Is(err, store.ErrWidgetNotFound) {
		t.Errorf("Expected ErrWidgetNotFound, got %v", err)
	}
}
