// Package projector turns a dataset snapshot into chart-ready structures for a
// single widget. Projection is pure: it never touches storage or the network.
//
// Malformed numeric cells degrade to 0 and unknown metric ids produce an empty
// result. Chart type compatibility is not re-checked here; widgets reach the
// projector only after their metric was normalized.
package projector

import (
	"errors"
	"fmt"

	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/registry"
)

// Row caps keep axis labels legible
const (
	ContinuousRowLimit = 20
	ScatterRowLimit    = 50
)

// UnitLabelFormat labels continuous points by 1-based row index
const UnitLabelFormat = "Unit %d"

// CountLabel names the categorical series
const CountLabel = "Count"

// ErrNoDataset is returned when there is no dataset to project
var ErrNoDataset = errors.New("no dataset loaded")

// Project builds chart data for metricID colored with themeID
func Project(ds *model.Dataset, metricID, themeID string) (ChartData, error) {
	if ds == nil {
		return ChartData{}, ErrNoDataset
	}

	theme := model.ThemeOrDefault(themeID)

	switch registry.CategoryOf(metricID) {
	case model.CategoryCategorical:
		return projectCategorical(ds, metricID, theme), nil
	case model.CategoryContinuous:
		return projectContinuous(ds, metricID, theme), nil
	case model.CategoryScatterPair:
		x, y, _ := registry.SplitScatterMetric(metricID)
		return projectScatter(ds, metricID, x, y, theme), nil
	default:
		return Empty(metricID), nil
	}
}

func projectCategorical(ds *model.Dataset, metricID string, theme model.Theme) ChartData {
	labels := make([]string, 0, len(ds.Distribution))
	values := make([]float64, 0, len(ds.Distribution))
	colors := make([]string, 0, len(ds.Distribution))
	for i, c := range ds.Distribution {
		labels = append(labels, c.Name)
		values = append(values, float64(c.Count))
		colors = append(colors, theme.ColorAt(i))
	}

	return ChartData{
		Kind:   KindCategorical,
		Metric: metricID,
		Labels: labels,
		Datasets: []Series{{
			Label:            CountLabel,
			Values:           values,
			BackgroundColors: colors,
			BorderColor:      theme.Border,
		}},
	}
}

func projectContinuous(ds *model.Dataset, field string, theme model.Theme) ChartData {
	rows := head(ds.Rows, ContinuousRowLimit)

	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = fmt.Sprintf(UnitLabelFormat, i+1)
		values[i] = row.Float(field)
	}

	return ChartData{
		Kind:   KindSeries,
		Metric: field,
		Labels: labels,
		Datasets: []Series{{
			Label:            registry.DisplayName(field),
			Values:           values,
			BackgroundColors: []string{theme.Primary()},
			BorderColor:      theme.Border,
		}},
	}
}

func projectScatter(ds *model.Dataset, metricID, xField, yField string, theme model.Theme) ChartData {
	rows := head(ds.Rows, ScatterRowLimit)

	points := make([]Point, len(rows))
	for i, row := range rows {
		points[i] = Point{X: row.Float(xField), Y: row.Float(yField)}
	}

	return ChartData{
		Kind:   KindScatter,
		Metric: metricID,
		Labels: []string{},
		Datasets: []Series{{
			Label:            registry.DisplayName(metricID),
			Points:           points,
			BackgroundColors: []string{theme.Primary()},
			BorderColor:      theme.Border,
		}},
	}
}

func head(rows []model.Row, n int) []model.Row {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
