package model

// MultiColor marks chart types whose color comes from the whole palette
const MultiColor = "multi"

// Widget is one configured chart on the dashboard
type Widget struct {
	ID     int       `json:"id"`
	Title  string    `json:"title"`
	Metric string    `json:"metric"`
	Type   ChartType `json:"type"`
	Theme  string    `json:"theme"`
}

// WidgetConfig is a widget without its identity, as staged before it is added
type WidgetConfig struct {
	Title  string
	Metric string
	Type   ChartType
	Theme  string
}

// WidgetPatch carries the fields to replace on update; nil fields are kept
type WidgetPatch struct {
	Title  *string
	Metric *string
	Type   *ChartType
	Theme  *string
}

// PatchFrom builds a patch replacing every field with the values in cfg
func PatchFrom(cfg WidgetConfig) WidgetPatch {
	return WidgetPatch{Title: &cfg.Title, Metric: &cfg.Metric, Type: &cfg.Type, Theme: &cfg.Theme}
}

// Apply returns w with the patch's non-nil fields replaced
func (p WidgetPatch) Apply(w Widget) Widget {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Metric != nil {
		w.Metric = *p.Metric
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Theme != nil {
		w.Theme = *p.Theme
	}
	return w
}

// NormalizedConfig is the render-agnostic description of a widget handed to
// collaborators such as report generators. It never carries the widget id.
type NormalizedConfig struct {
	Type   ChartType `json:"type"`
	Metric string    `json:"metric"`
	Title  string    `json:"title"`
	Color  string    `json:"color"`
}

// Normalize describes w for outside collaborators
func (w Widget) Normalize() NormalizedConfig {
	color := MultiColor
	if !w.Type.IsSliced() {
		color = ThemeOrDefault(w.Theme).Primary()
	}
	return NormalizedConfig{
		Type:   w.Type,
		Metric: w.Metric,
		Title:  w.Title,
		Color:  color,
	}
}
