package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dir := settings.GetDataDirectory(); dir == "" {
		t.Error("Data directory should not be empty")
	}

	customDir := "/custom/chemviz"
	settings.SetDataDirectory(customDir)

	if got := settings.GetDataDirectory(); got != customDir {
		t.Errorf("Expected data directory %s, got %s", customDir, got)
	}
	if got := settings.GetExportDirectory(); got != "/custom/chemviz/exports" {
		t.Errorf("Expected export directory under data directory, got %s", got)
	}
}

func TestLastDatasetPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLastDatasetPath(); got != "" {
		t.Errorf("Expected no dataset path by default, got %s", got)
	}
	settings.SetLastDatasetPath("/data/batch.csv")
	if got := settings.GetLastDatasetPath(); got != "/data/batch.csv" {
		t.Errorf("Expected /data/batch.csv, got %s", got)
	}
}

func TestStorageBackend(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetStorageBackend(); got != DefaultStorageBackend {
		t.Errorf("Expected default backend %s, got %s", DefaultStorageBackend, got)
	}

	settings.SetStorageBackend(BackendSQLite)
	if got := settings.GetStorageBackend(); got != BackendSQLite {
		t.Errorf("Expected sqlite backend, got %s", got)
	}

	settings.SetStorageBackend(Backend("redis"))
	if got := settings.GetStorageBackend(); got != DefaultStorageBackend {
		t.Errorf("Unknown backend should reset to default, got %s", got)
	}

	if len(settings.GetStorageBackendOptions()) != 3 {
		t.Error("Expected 3 backend options")
	}
}

func TestChartSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	w, h := settings.GetChartSize()
	if w != DefaultChartWidth || h != DefaultChartHeight {
		t.Errorf("Expected default size %dx%d, got %dx%d", DefaultChartWidth, DefaultChartHeight, w, h)
	}

	settings.SetChartSize(640, 400)
	if w, h = settings.GetChartSize(); w != 640 || h != 400 {
		t.Errorf("Expected 640x400, got %dx%d", w, h)
	}

	// Test boundary values
	settings.SetChartSize(10, 5000)
	if w, h = settings.GetChartSize(); w != MinChartSize || h != MaxChartSize {
		t.Errorf("Expected clamped size %dx%d, got %dx%d", MinChartSize, MaxChartSize, w, h)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[lang]; !ok {
			t.Errorf("Language option %s should exist", lang)
		}
	}
}
