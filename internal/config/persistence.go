package config

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/chemviz/internal/persist"
	"github.com/ytget/chemviz/internal/platform"
	"github.com/ytget/chemviz/internal/store"
)

// PreferencesStore keeps the widget layout in the app's Fyne preferences
type PreferencesStore struct {
	prefs fyne.Preferences
	key   string
}

// NewPreferencesStore stores the layout under key, KeyWidgetLayout when empty
func NewPreferencesStore(prefs fyne.Preferences, key string) *PreferencesStore {
	if key == "" {
		key = KeyWidgetLayout
	}
	return &PreferencesStore{prefs: prefs, key: key}
}

// Load returns the stored payload, or nil when nothing was saved yet
func (p *PreferencesStore) Load() ([]byte, error) {
	value := p.prefs.String(p.key)
	if value == "" {
		return nil, nil
	}
	return []byte(value), nil
}

// Save replaces the stored payload
func (p *PreferencesStore) Save(data []byte) error {
	p.prefs.SetString(p.key, string(data))
	return nil
}

// OpenPersistence opens the configured layout backend. The returned close
// function must be called on shutdown.
func (s *Settings) OpenPersistence() (store.Persistence, func() error, error) {
	noop := func() error { return nil }
	dir := s.GetDataDirectory()

	switch backend := s.GetStorageBackend(); backend {
	case BackendFile:
		return persist.NewFile(filepath.Join(dir, platform.LayoutFileName)), noop, nil
	case BackendSQLite:
		db, err := persist.OpenSQLite(filepath.Join(dir, platform.LayoutDBFileName), persist.DefaultLayoutKey)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open %s backend: %w", backend, err)
		}
		return db, db.Close, nil
	default:
		return NewPreferencesStore(s.app.Preferences(), KeyWidgetLayout), noop, nil
	}
}
