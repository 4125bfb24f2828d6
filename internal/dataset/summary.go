package dataset

import (
	"math"

	"github.com/ytget/chemviz/internal/model"
)

// Summarize computes the row count and per-field averages. Unparsable cells
// count as zero, matching what the charts show.
func Summarize(ds *model.Dataset) model.Summary {
	if ds == nil || len(ds.Rows) == 0 {
		return model.Summary{}
	}

	var flow, press, temp float64
	for _, row := range ds.Rows {
		flow += row.Float(model.MetricFlowrate)
		press += row.Float(model.MetricPressure)
		temp += row.Float(model.MetricTemperature)
	}

	n := float64(len(ds.Rows))
	return model.Summary{
		TotalCount:     len(ds.Rows),
		AvgFlowrate:    roundTo2(flow / n),
		AvgPressure:    roundTo2(press / n),
		AvgTemperature: roundTo2(temp / n),
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
