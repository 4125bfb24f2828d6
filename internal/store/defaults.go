package store

import "github.com/ytget/chemviz/internal/model"

// DefaultWidgets returns the built-in layout used when nothing valid is stored
func DefaultWidgets() []model.Widget {
	return []model.Widget{
		{ID: 1, Title: "Equipment Type Distribution", Metric: model.MetricTypeDistribution, Type: model.ChartBar, Theme: model.ThemeBlue},
		{ID: 2, Title: "Type Share", Metric: model.MetricTypeDistribution, Type: model.ChartDoughnut, Theme: model.ThemePurple},
		{ID: 3, Title: "Flowrate by Unit", Metric: model.MetricFlowrate, Type: model.ChartLine, Theme: model.ThemeGreen},
		{ID: 4, Title: "Type Profile", Metric: model.MetricTypeDistribution, Type: model.ChartRadar, Theme: model.ThemeRed},
	}
}
