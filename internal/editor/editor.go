// Package editor stages the fields of a single widget before they are
// committed to the store, either as a new widget or as an edit of an existing
// one. Changing the chart type re-normalizes the metric so a draft never holds
// a metric its chart type cannot draw.
package editor

import (
	"fmt"
	"strings"

	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/registry"
	"github.com/ytget/chemviz/internal/store"
)

// Default scatter axes when none were picked
const (
	DefaultXMetric = model.MetricFlowrate
	DefaultYMetric = model.MetricPressure
)

// Mode tells whether the editor creates or edits a widget
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// String returns a readable name for the mode
func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Draft holds the staged widget fields
type Draft struct {
	Title   string
	Metric  string
	XMetric string
	YMetric string
	Type    model.ChartType
	Theme   string
}

// Config returns the draft as a widget configuration
func (d Draft) Config() model.WidgetConfig {
	return model.WidgetConfig{
		Title:  strings.TrimSpace(d.Title),
		Metric: d.Metric,
		Type:   d.Type,
		Theme:  d.Theme,
	}
}

// Option configures an Editor
type Option func(*Editor)

// WithOnCommitted sets the callback run after a successful commit, e.g. to close a dialog
func WithOnCommitted(fn func(model.Widget)) Option {
	return func(e *Editor) {
		e.onCommitted = fn
	}
}

// Editor mediates creation or editing of one widget
type Editor struct {
	store       *store.Store
	mode        Mode
	widgetID    int
	draft       Draft
	onCommitted func(model.Widget)
}

// NewCreate starts a draft for a new widget with default fields
func NewCreate(s *store.Store, opts ...Option) *Editor {
	e := &Editor{
		store: s,
		mode:  ModeCreate,
		draft: Draft{
			Metric:  model.MetricTypeDistribution,
			XMetric: DefaultXMetric,
			YMetric: DefaultYMetric,
			Type:    model.ChartBar,
			Theme:   model.ThemeBlue,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEdit starts a draft from the stored widget with the given id
func NewEdit(s *store.Store, id int, opts ...Option) (*Editor, error) {
	w, ok := s.Get(id)
	if !ok {
		return nil, fmt.Errorf("edit widget %d: %w", id, store.ErrWidgetNotFound)
	}

	e := &Editor{
		store:    s,
		mode:     ModeEdit,
		widgetID: id,
		draft: Draft{
			Title:   w.Title,
			Metric:  w.Metric,
			XMetric: DefaultXMetric,
			YMetric: DefaultYMetric,
			Type:    w.Type,
			Theme:   w.Theme,
		},
	}
	if x, y, ok := registry.SplitScatterMetric(w.Metric); ok {
		e.draft.XMetric = x
		e.draft.YMetric = y
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Mode returns whether the editor creates or edits
func (e *Editor) Mode() Mode {
	return e.mode
}

// WidgetID returns the id being edited, or 0 in create mode
func (e *Editor) WidgetID() int {
	return e.widgetID
}

// Draft returns a copy of the staged fields
func (e *Editor) Draft() Draft {
	return e.draft
}

// SetTitle stages the title
func (e *Editor) SetTitle(title string) {
	e.draft.Title = title
}

// SetTheme stages the theme
func (e *Editor) SetTheme(theme string) {
	e.draft.Theme = theme
}

// SetMetric stages a single metric for non-scatter chart types
func (e *Editor) SetMetric(metric string) {
	e.draft.Metric = metric
}

// SetChartType switches the chart type and re-derives the metric: scatter
// combines the staged axes, every other type normalizes the current metric
func (e *Editor) SetChartType(ct model.ChartType) {
	e.draft.Type = ct
	if ct == model.ChartScatter {
		e.syncScatterMetric()
		return
	}
	e.draft.Metric = registry.NormalizeMetric(ct, e.draft.Metric)
}

// SetXMetric stages the scatter x axis. Only continuous metrics can be axes;
// an empty id falls back to DefaultXMetric.
func (e *Editor) SetXMetric(metric string) error {
	if err := checkAxis("x_metric", metric); err != nil {
		return err
	}
	e.draft.XMetric = metric
	if e.draft.Type == model.ChartScatter {
		e.syncScatterMetric()
	}
	return nil
}

// SetYMetric stages the scatter y axis. Only continuous metrics can be axes;
// an empty id falls back to DefaultYMetric.
func (e *Editor) SetYMetric(metric string) error {
	if err := checkAxis("y_metric", metric); err != nil {
		return err
	}
	e.draft.YMetric = metric
	if e.draft.Type == model.ChartScatter {
		e.syncScatterMetric()
	}
	return nil
}

func checkAxis(field, metric string) error {
	if metric == "" || registry.CategoryOf(metric) == model.CategoryContinuous {
		return nil
	}
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is not a continuous metric", metric)}
}

func (e *Editor) syncScatterMetric() {
	if e.draft.XMetric == "" {
		e.draft.XMetric = DefaultXMetric
	}
	if e.draft.YMetric == "" {
		e.draft.YMetric = DefaultYMetric
	}
	e.draft.Metric = registry.ScatterMetricID(e.draft.XMetric, e.draft.YMetric)
}

// AvailableMetrics returns the metrics selectable for the staged chart type
func (e *Editor) AvailableMetrics() []model.Metric {
	return registry.CompatibleMetrics(e.draft.Type)
}

// AxisMetrics returns the metrics selectable as scatter axes
func (e *Editor) AxisMetrics() []model.Metric {
	return registry.MetricsOf(model.CategoryContinuous)
}

// SuggestedTitle returns a title derived from the staged metric and chart type
func (e *Editor) SuggestedTitle() string {
	return registry.DefaultTitle(e.draft.Metric, e.draft.Type)
}

// Validate checks the draft without committing it
func (e *Editor) Validate() error {
	if strings.TrimSpace(e.draft.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if !e.draft.Type.IsValid() {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown chart type %s", e.draft.Type)}
	}
	if !registry.Accepts(e.draft.Type, registry.CategoryOf(e.draft.Metric)) {
		return &ValidationError{Field: "metric", Message: fmt.Sprintf("%s cannot be shown as a %s chart", e.draft.Metric, e.draft.Type.DisplayName())}
	}
	if _, ok := model.LookupTheme(e.draft.Theme); !ok {
		return &ValidationError{Field: "theme", Message: fmt.Sprintf("unknown theme %s", e.draft.Theme)}
	}
	return nil
}

// Commit validates the draft and adds or updates the widget in the store
func (e *Editor) Commit() (model.Widget, error) {
	if err := e.Validate(); err != nil {
		return model.Widget{}, err
	}

	cfg := e.draft.Config()

	var (
		w   model.Widget
		err error
	)
	switch e.mode {
	case ModeEdit:
		w, err = e.store.Update(e.widgetID, model.PatchFrom(cfg))
	default:
		w, err = e.store.Add(cfg)
	}
	if err != nil {
		return model.Widget{}, err
	}

	if e.onCommitted != nil {
		e.onCommitted(w)
	}
	return w, nil
}
