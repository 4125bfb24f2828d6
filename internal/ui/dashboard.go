package ui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/chemviz/internal/config"
	"github.com/ytget/chemviz/internal/dataset"
	"github.com/ytget/chemviz/internal/editor"
	"github.com/ytget/chemviz/internal/logging"
	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/platform"
	"github.com/ytget/chemviz/internal/render"
	"github.com/ytget/chemviz/internal/store"
)

// Dashboard is the main window content: a header with the dataset summary and
// a grid with one card per widget
type Dashboard struct {
	window       fyne.Window
	store        *store.Store
	settings     *config.Settings
	localization *Localization

	dataset *model.Dataset

	datasetLabel *widget.Label
	summaryLabel *widget.Label
	addBtn       *widget.Button
	grid         *fyne.Container
	cards        []*WidgetCard

	unsubscribe func()
}

// NewDashboard builds the dashboard into window and subscribes to s
func NewDashboard(window fyne.Window, s *store.Store, settings *config.Settings) *Dashboard {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	d := &Dashboard{
		window:       window,
		store:        s,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	d.setupUI()
	d.unsubscribe = s.Subscribe(func([]model.NormalizedConfig) {
		d.rebuildCards()
	})
	d.rebuildCards()
	return d
}

func (d *Dashboard) setupUI() {
	d.createMenu()

	d.datasetLabel = widget.NewLabel(d.localization.GetText(KeyNoDataset))
	d.datasetLabel.TextStyle = fyne.TextStyle{Bold: true}
	d.summaryLabel = widget.NewLabel(DashPlaceholder)
	d.summaryLabel.Importance = widget.LowImportance

	openBtn := widget.NewButton(IconFolder, d.onOpenDataset)
	openBtn.Importance = widget.LowImportance
	settingsBtn := widget.NewButton(IconSettings, d.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	d.addBtn = widget.NewButton(IconAdd+" "+d.localization.GetText(KeyAddWidget), func() {
		d.ShowEditor(0)
	})
	d.addBtn.Importance = widget.HighImportance

	left := container.NewHBox(settingsBtn, openBtn)
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		img.FillMode = canvas.ImageFillContain
		left = container.NewHBox(img, settingsBtn, openBtn)
	}

	header := container.NewBorder(nil, nil, left, d.addBtn,
		container.NewVBox(d.datasetLabel, d.summaryLabel))

	w, h := d.settings.GetChartSize()
	d.grid = container.New(layout.NewGridWrapLayout(cardSize(w, h)))

	d.window.SetContent(container.NewBorder(header, nil, nil, nil, container.NewVScroll(d.grid)))
}

func (d *Dashboard) createMenu() {
	l := d.localization

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeyOpenDataset), d.onOpenDataset),
		fyne.NewMenuItem(l.GetText(KeyExportCharts), d.onExport),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeySettings), d.onShowSettings),
	)

	widgetsMenu := fyne.NewMenu(l.GetText(KeyWidgets),
		fyne.NewMenuItem(l.GetText(KeyAddWidget), func() { d.ShowEditor(0) }),
		fyne.NewMenuItem(l.GetText(KeyResetLayout), d.onReset),
	)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() {
			d.onLanguageChange(langCode)
		})
		item.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	d.window.SetMainMenu(fyne.NewMainMenu(fileMenu, widgetsMenu, languageMenu))
}

func (d *Dashboard) onLanguageChange(langCode string) {
	d.localization.SetLanguage(langCode)
	d.settings.SetLanguage(langCode)

	d.window.SetTitle(d.localization.GetText(KeyAppTitle))
	d.addBtn.SetText(IconAdd + " " + d.localization.GetText(KeyAddWidget))
	d.updateHeader()
	d.createMenu()
}

// SetDataset replaces the snapshot every card is projected from
func (d *Dashboard) SetDataset(ds *model.Dataset) {
	d.dataset = ds
	d.updateHeader()
	d.rebuildCards()
}

// LoadDataset reads path, shows it and remembers it for the next start
func (d *Dashboard) LoadDataset(path string) error {
	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}
	d.settings.SetLastDatasetPath(path)
	d.SetDataset(ds)
	return nil
}

func (d *Dashboard) updateHeader() {
	l := d.localization
	if d.dataset == nil {
		d.datasetLabel.SetText(l.GetText(KeyNoDataset))
		d.summaryLabel.SetText(DashPlaceholder)
		return
	}

	d.datasetLabel.SetText(d.dataset.Name)
	s := dataset.Summarize(d.dataset)
	d.summaryLabel.SetText(fmt.Sprintf(SummaryFormat,
		l.GetText(KeyTotalUnits), s.TotalCount,
		l.GetText(KeyAvgFlowrate), s.AvgFlowrate,
		l.GetText(KeyAvgPressure), s.AvgPressure,
		l.GetText(KeyAvgTemperature), s.AvgTemperature,
	))
}

// rebuildCards redraws every card from the store in render order
func (d *Dashboard) rebuildCards() {
	w, h := d.settings.GetChartSize()
	size := fyne.NewSize(float32(w), float32(h))

	widgets := d.store.List()
	cards := make([]*WidgetCard, 0, len(widgets))
	objects := make([]fyne.CanvasObject, 0, len(widgets))
	for _, wd := range widgets {
		img, err := render.WidgetImage(d.dataset, wd, render.WithSize(w, h))
		if err != nil {
			img = render.PlaceholderImage(render.WithSize(w, h), render.WithTitle(wd.Title))
		}
		card := NewWidgetCard(wd, img, size, d.localization)
		card.SetCallbacks(d.ShowEditor, d.RemoveWidget, d.OpenWidget)
		cards = append(cards, card)
		objects = append(objects, card)
	}

	d.cards = cards
	d.grid.Objects = objects
	d.grid.Refresh()
}

// Cards returns the cards currently shown
func (d *Dashboard) Cards() []*WidgetCard {
	return d.cards
}

// ShowEditor opens the editor for the widget with id, or a blank draft when id is 0
func (d *Dashboard) ShowEditor(id int) {
	var (
		e   *editor.Editor
		err error
	)
	if id == 0 {
		e = editor.NewCreate(d.store)
	} else {
		e, err = editor.NewEdit(d.store, id)
	}
	if err != nil {
		dialog.ShowError(err, d.window)
		return
	}
	NewEditorDialog(e, d.window, d.localization).Show()
}

// RemoveWidget removes the widget with id. Removing the last widget is refused
// with an informational message.
func (d *Dashboard) RemoveWidget(id int) {
	err := d.store.Remove(id)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrLastWidget):
		dialog.ShowInformation(d.localization.GetText(KeyRemoveWidget), d.localization.GetText(KeyLastWidget), d.window)
	default:
		logging.Errorf("remove widget %d: %v", id, err)
		dialog.ShowError(err, d.window)
	}
}

func (d *Dashboard) onReset() {
	dialog.ShowConfirm(d.localization.GetText(KeyResetLayout), d.localization.GetText(KeyResetConfirm), func(ok bool) {
		if !ok {
			return
		}
		if err := d.store.Reset(); err != nil {
			dialog.ShowError(err, d.window)
		}
	}, d.window)
}

func (d *Dashboard) onOpenDataset() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := d.LoadDataset(path); err != nil {
			logging.Errorf("load dataset %s: %v", path, err)
			dialog.ShowError(fmt.Errorf("%s: %w", d.localization.GetText(KeyErrorLoadingData), err), d.window)
		}
	}, d.window)
	fd.SetFilter(storage.NewExtensionFileFilter(DatasetExtensions))
	fd.Show()
}

// Export renders every widget into the configured export directory
func (d *Dashboard) Export() ([]string, error) {
	w, h := d.settings.GetChartSize()
	return render.ExportAll(d.settings.GetExportDirectory(), d.dataset, d.store.List(), render.WithSize(w, h))
}

// ExportWidget renders the widget with id into the export directory
func (d *Dashboard) ExportWidget(id int) (string, error) {
	wd, ok := d.store.Get(id)
	if !ok {
		return "", fmt.Errorf("export widget %d: %w", id, store.ErrWidgetNotFound)
	}
	w, h := d.settings.GetChartSize()
	paths, err := render.ExportAll(d.settings.GetExportDirectory(), d.dataset, []model.Widget{wd}, render.WithSize(w, h))
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// OpenWidget exports one chart and opens it in the system image viewer
func (d *Dashboard) OpenWidget(id int) {
	path, err := d.ExportWidget(id)
	if err != nil {
		logging.Errorf("open widget %d: %v", id, err)
		dialog.ShowError(err, d.window)
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		logging.Warnf("open %s: %v", path, err)
		dialog.ShowError(err, d.window)
	}
}

func (d *Dashboard) onExport() {
	paths, err := d.Export()
	if err != nil {
		dialog.ShowError(err, d.window)
		return
	}
	dialog.ShowInformation(d.localization.GetText(KeyExportCharts),
		d.localization.GetText(KeyExported)+":\n"+strings.Join(paths, "\n"), d.window)

	if len(paths) > 0 {
		if err := platform.OpenFileInManager(paths[0]); err != nil {
			logging.Debugf("reveal exports: %v", err)
		}
	}
}

func (d *Dashboard) onShowSettings() {
	NewSettingsDialog(d.settings, d.window, d.localization, func() {
		d.localization.SetLanguage(d.settings.GetLanguage())
		w, h := d.settings.GetChartSize()
		d.grid.Layout = layout.NewGridWrapLayout(cardSize(w, h))
		d.rebuildCards()
		d.createMenu()
	}).Show()
}

func cardSize(chartWidth, chartHeight int) fyne.Size {
	return fyne.NewSize(float32(chartWidth)+CardPadding, float32(chartHeight)+CardChromeHeight)
}

// Close detaches the dashboard from the store
func (d *Dashboard) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}
