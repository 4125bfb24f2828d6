package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/chemviz/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	loadedBackend string

	dataDirEntry   *widget.Entry
	backendSelect  *widget.Select
	widthEntry     *widget.Entry
	heightEntry    *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.dataDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	dataDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.dataDirEntry)

	backendOptions := []string{}
	for _, b := range sd.settings.GetStorageBackendOptions() {
		backendOptions = append(backendOptions, string(b))
	}
	sd.backendSelect = widget.NewSelect(backendOptions, nil)

	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(strconv.Itoa(config.DefaultChartWidth))
	sd.heightEntry = widget.NewEntry()
	sd.heightEntry.SetPlaceHolder(strconv.Itoa(config.DefaultChartHeight))

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDataDirectory)+":"),
		dataDirRow,

		widget.NewLabel(l.GetText(KeyStorageBackend)+":"),
		sd.backendSelect,

		container.NewGridWithColumns(2,
			container.NewVBox(widget.NewLabel(l.GetText(KeyChartWidth)+":"), sd.widthEntry),
			container.NewVBox(widget.NewLabel(l.GetText(KeyChartHeight)+":"), sd.heightEntry),
		),

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataDirEntry.SetText(sd.settings.GetDataDirectory())
	sd.loadedBackend = string(sd.settings.GetStorageBackend())
	sd.backendSelect.SetSelected(sd.loadedBackend)
	w, h := sd.settings.GetChartSize()
	sd.widthEntry.SetText(strconv.Itoa(w))
	sd.heightEntry.SetText(strconv.Itoa(h))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.dataDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	backendChanged := sd.backendSelect.Selected != sd.loadedBackend
	sd.apply()

	message := sd.localization.GetText(KeySettingsSaved)
	if backendChanged {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}

// apply writes the form values to settings
func (sd *SettingsDialog) apply() {
	if dir := sd.dataDirEntry.Text; dir != "" {
		sd.settings.SetDataDirectory(dir)
	}

	if sd.backendSelect.Selected != "" {
		sd.settings.SetStorageBackend(config.Backend(sd.backendSelect.Selected))
	}

	w, werr := strconv.Atoi(sd.widthEntry.Text)
	h, herr := strconv.Atoi(sd.heightEntry.Text)
	if werr == nil && herr == nil {
		sd.settings.SetChartSize(w, h)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
