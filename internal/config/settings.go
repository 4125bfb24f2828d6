package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/chemviz/internal/platform"
)

// Backend selects where the widget layout is persisted
type Backend string

const (
	BackendPreferences Backend = "preferences"
	BackendFile        Backend = "file"
	BackendSQLite      Backend = "sqlite"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir        = "data_directory"
	KeyLastDataset    = "last_dataset_path"
	KeyLanguage       = "app_language"
	KeyStorageBackend = "storage_backend"
	KeyChartWidth     = "chart_width"
	KeyChartHeight    = "chart_height"
	KeyWidgetLayout   = "widget_layout"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultStorageBackend = BackendPreferences
	DefaultChartWidth     = 480
	DefaultChartHeight    = 320
)

// Chart size bounds in pixels
const (
	MinChartSize = 200
	MaxChartSize = 1600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataDirectory returns the directory holding the layout file or database
// and chart exports
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		defaultDir, err := platform.GetAppDataDir()
		if err != nil {
			defaultDir = filepath.Join("/tmp", platform.AppDirName)
		}
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDataDirectory sets the data directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetExportDirectory returns where rendered charts are written
func (s *Settings) GetExportDirectory() string {
	return filepath.Join(s.GetDataDirectory(), platform.ExportDirName)
}

// GetLastDatasetPath returns the most recently opened dataset, or ""
func (s *Settings) GetLastDatasetPath() string {
	return s.app.Preferences().String(KeyLastDataset)
}

// SetLastDatasetPath remembers the dataset to reopen on the next start
func (s *Settings) SetLastDatasetPath(path string) {
	s.app.Preferences().SetString(KeyLastDataset, path)
}

// GetStorageBackend returns the configured layout backend
func (s *Settings) GetStorageBackend() Backend {
	backend := Backend(s.app.Preferences().String(KeyStorageBackend))
	if !backend.IsValid() {
		s.SetStorageBackend(DefaultStorageBackend)
		return DefaultStorageBackend
	}
	return backend
}

// SetStorageBackend sets the layout backend, ignoring unknown values
func (s *Settings) SetStorageBackend(backend Backend) {
	if !backend.IsValid() {
		backend = DefaultStorageBackend
	}
	s.app.Preferences().SetString(KeyStorageBackend, string(backend))
}

// GetStorageBackendOptions returns available backends
func (s *Settings) GetStorageBackendOptions() []Backend {
	return []Backend{BackendPreferences, BackendFile, BackendSQLite}
}

// GetChartSize returns the rendered chart size
func (s *Settings) GetChartSize() (width, height int) {
	width = s.app.Preferences().Int(KeyChartWidth)
	height = s.app.Preferences().Int(KeyChartHeight)
	if width <= 0 || height <= 0 {
		s.SetChartSize(DefaultChartWidth, DefaultChartHeight)
		return DefaultChartWidth, DefaultChartHeight
	}
	return width, height
}

// SetChartSize sets the rendered chart size, clamped to the allowed range
func (s *Settings) SetChartSize(width, height int) {
	s.app.Preferences().SetInt(KeyChartWidth, clampSize(width))
	s.app.Preferences().SetInt(KeyChartHeight, clampSize(height))
}

func clampSize(v int) int {
	if v < MinChartSize {
		return MinChartSize
	}
	if v > MaxChartSize {
		return MaxChartSize
	}
	return v
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// IsValid reports whether b is a known backend
func (b Backend) IsValid() bool {
	switch b {
	case BackendPreferences, BackendFile, BackendSQLite:
		return true
	}
	return false
}
