package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/chemviz/internal/config"
	"github.com/ytget/chemviz/internal/logging"
	"github.com/ytget/chemviz/internal/platform"
	"github.com/ytget/chemviz/internal/store"
	"github.com/ytget/chemviz/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.chemviz"
	AppName = "ChemViz"

	WindowWidth  = 1100
	WindowHeight = 760
)

func main() {
	logging.Infof("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDataDirectory()); err != nil {
		logging.Warnf("failed to ensure data dir: %v", err)
	}

	persistence, closePersistence, err := settings.OpenPersistence()
	if err != nil {
		logging.Errorf("%v; falling back to preferences", err)
		settings.SetStorageBackend(config.BackendPreferences)
		persistence, closePersistence, _ = settings.OpenPersistence()
	}
	defer func() {
		if err := closePersistence(); err != nil {
			logging.Warnf("failed to close layout storage: %v", err)
		}
	}()

	widgets := store.New(persistence)
	dashboard := ui.NewDashboard(myWindow, widgets, settings)
	defer dashboard.Close()

	if path := settings.GetLastDatasetPath(); path != "" {
		if err := dashboard.LoadDataset(path); err != nil {
			logging.Warnf("failed to reopen %s: %v", path, err)
		}
	}

	myWindow.ShowAndRun()
}
