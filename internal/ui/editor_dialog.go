package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/chemviz/internal/editor"
	"github.com/ytget/chemviz/internal/logging"
	"github.com/ytget/chemviz/internal/model"
)

// EditorDialog edits one widget draft. Select widgets show display names; the
// draft always holds ids.
type EditorDialog struct {
	editor       *editor.Editor
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	titleEntry   *widget.Entry
	typeSelect   *widget.Select
	metricSelect *widget.Select
	xSelect      *widget.Select
	ySelect      *widget.Select
	themeSelect  *widget.Select
	metricRow    *fyne.Container
	axisRow      *fyne.Container

	// display name -> id for the current option lists
	metricIDs map[string]string
	axisIDs   map[string]string
	themeIDs  map[string]string

	syncing bool
}

// NewEditorDialog creates the dialog around e
func NewEditorDialog(e *editor.Editor, window fyne.Window, localization *Localization) *EditorDialog {
	ed := &EditorDialog{
		editor:       e,
		window:       window,
		localization: localization,
		themeIDs:     make(map[string]string),
	}
	ed.createUI()
	ed.sync()
	return ed
}

// Show displays the dialog
func (ed *EditorDialog) Show() {
	ed.dialog.Show()
}

func (ed *EditorDialog) createUI() {
	l := ed.localization

	ed.titleEntry = widget.NewEntry()
	ed.titleEntry.OnChanged = func(s string) {
		if !ed.syncing {
			ed.editor.SetTitle(s)
		}
	}
	suggestBtn := widget.NewButton(l.GetText(KeySuggestTitle), func() {
		ed.titleEntry.SetText(ed.editor.SuggestedTitle())
	})
	titleRow := container.NewBorder(nil, nil, nil, suggestBtn, ed.titleEntry)

	typeNames := make([]string, len(model.ChartTypes))
	for i, ct := range model.ChartTypes {
		typeNames[i] = ct.DisplayName()
	}
	ed.typeSelect = widget.NewSelect(typeNames, func(name string) {
		if ed.syncing {
			return
		}
		if ct, ok := model.ParseChartType(name); ok {
			ed.editor.SetChartType(ct)
			ed.sync()
		}
	})

	ed.metricSelect = widget.NewSelect(nil, func(name string) {
		if id, ok := ed.metricIDs[name]; ok && !ed.syncing {
			ed.editor.SetMetric(id)
		}
	})
	ed.xSelect = widget.NewSelect(nil, func(name string) {
		if id, ok := ed.axisIDs[name]; ok && !ed.syncing {
			if err := ed.editor.SetXMetric(id); err != nil {
				logging.Warnf("editor: %v", err)
			}
		}
	})
	ed.ySelect = widget.NewSelect(nil, func(name string) {
		if id, ok := ed.axisIDs[name]; ok && !ed.syncing {
			if err := ed.editor.SetYMetric(id); err != nil {
				logging.Warnf("editor: %v", err)
			}
		}
	})

	themeNames := []string{}
	for _, th := range model.Themes() {
		themeNames = append(themeNames, th.Name)
		ed.themeIDs[th.Name] = th.ID
	}
	ed.themeSelect = widget.NewSelect(themeNames, func(name string) {
		if id, ok := ed.themeIDs[name]; ok && !ed.syncing {
			ed.editor.SetTheme(id)
		}
	})

	ed.metricRow = container.NewVBox(widget.NewLabel(l.GetText(KeyMetric)+":"), ed.metricSelect)
	ed.axisRow = container.NewGridWithColumns(2,
		container.NewVBox(widget.NewLabel(l.GetText(KeyXAxis)+":"), ed.xSelect),
		container.NewVBox(widget.NewLabel(l.GetText(KeyYAxis)+":"), ed.ySelect),
	)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyTitle)+":"),
		titleRow,
		widget.NewLabel(l.GetText(KeyChartType)+":"),
		ed.typeSelect,
		ed.metricRow,
		ed.axisRow,
		widget.NewLabel(l.GetText(KeyColorTheme)+":"),
		ed.themeSelect,
	)

	heading := KeyAddWidget
	if ed.editor.Mode() == editor.ModeEdit {
		heading = KeyEditWidget
	}
	ed.dialog = dialog.NewCustomConfirm(
		l.GetText(heading),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		ed.onConfirm,
		ed.window,
	)
	ed.dialog.Resize(fyne.NewSize(EditorDialogWidth, EditorDialogHeight))
}

// sync copies the draft into the controls
func (ed *EditorDialog) sync() {
	ed.syncing = true
	defer func() { ed.syncing = false }()

	d := ed.editor.Draft()
	ed.titleEntry.SetText(d.Title)
	ed.typeSelect.SetSelected(d.Type.DisplayName())

	names, ids := metricOptions(ed.editor.AvailableMetrics())
	ed.metricIDs = ids
	ed.metricSelect.Options = names
	selectName(ed.metricSelect, nameOf(ids, d.Metric))

	axisNames, axisIDs := metricOptions(ed.editor.AxisMetrics())
	ed.axisIDs = axisIDs
	ed.xSelect.Options = axisNames
	ed.ySelect.Options = axisNames
	selectName(ed.xSelect, nameOf(axisIDs, d.XMetric))
	selectName(ed.ySelect, nameOf(axisIDs, d.YMetric))

	ed.themeSelect.SetSelected(model.ThemeOrDefault(d.Theme).Name)

	if d.Type == model.ChartScatter {
		ed.metricRow.Hide()
		ed.axisRow.Show()
	} else {
		ed.axisRow.Hide()
		ed.metricRow.Show()
	}
}

func (ed *EditorDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	_, err := ed.editor.Commit()
	var verr *editor.ValidationError
	switch {
	case err == nil:
		return
	case errors.As(err, &verr):
		msg := verr.Error()
		if verr.Field == "title" {
			msg = ed.localization.GetText(KeyTitleRequired)
		}
		dialog.ShowInformation(ed.localization.GetText(KeyTitle), msg, ed.window)
		// ConfirmDialog closes on any answer; reopen with the draft intact
		ed.dialog.Show()
	default:
		dialog.ShowError(err, ed.window)
	}
}

func metricOptions(metrics []model.Metric) ([]string, map[string]string) {
	names := make([]string, len(metrics))
	ids := make(map[string]string, len(metrics))
	for i, m := range metrics {
		names[i] = m.Name
		ids[m.Name] = m.ID
	}
	return names, ids
}

func nameOf(ids map[string]string, id string) string {
	for name, v := range ids {
		if v == id {
			return name
		}
	}
	return ""
}

func selectName(s *widget.Select, name string) {
	if name == "" {
		s.ClearSelected()
		return
	}
	s.SetSelected(name)
}
