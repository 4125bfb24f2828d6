package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ytget/chemviz/internal/logging"
	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/projector"
)

// Render draws data as chart type ct and writes a PNG to w
func Render(w io.Writer, ct model.ChartType, data projector.ChartData, opts ...Option) error {
	o := newOptions(opts)
	if data.IsEmpty() {
		return placeholder(w, o)
	}

	var err error
	switch {
	case data.Kind == projector.KindScatter || ct == model.ChartScatter:
		err = renderScatter(w, data, o)
	case ct == model.ChartBar:
		err = renderBar(w, data, o)
	case ct == model.ChartLine:
		err = renderLine(w, data, o)
	case ct == model.ChartPie:
		err = renderPie(w, data, o, false)
	case ct == model.ChartDoughnut:
		err = renderPie(w, data, o, true)
	case ct == model.ChartRadar:
		err = renderRadar(w, data, o)
	case ct == model.ChartPolarArea:
		err = renderPolarArea(w, data, o)
	default:
		return fmt.Errorf("unsupported chart type %q", ct)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s chart: %w", ct, err)
	}
	return nil
}

// RenderWidget projects ds for wd and renders it. A missing dataset renders
// the placeholder instead of failing.
func RenderWidget(w io.Writer, ds *model.Dataset, wd model.Widget, opts ...Option) error {
	opts = append([]Option{WithTitle(wd.Title)}, opts...)

	data, err := projector.Project(ds, wd.Metric, wd.Theme)
	if errors.Is(err, projector.ErrNoDataset) {
		return placeholder(w, newOptions(opts))
	}
	if err != nil {
		return err
	}
	return Render(w, wd.Type, data, opts...)
}

// WidgetImage renders wd into a decoded image for on-screen display
func WidgetImage(ds *model.Dataset, wd model.Widget, opts ...Option) (image.Image, error) {
	var buf bytes.Buffer
	if err := RenderWidget(&buf, ds, wd, opts...); err != nil {
		logging.Warnf("widget %d: %v", wd.ID, err)
		return nil, err
	}
	return png.Decode(&buf)
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// pointStyle renders points only, no connecting line
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func background() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}}
}

func first(data projector.ChartData) projector.Series {
	if len(data.Datasets) == 0 {
		return projector.Series{}
	}
	return data.Datasets[0]
}

func fillAt(s projector.Series, i int) string {
	if len(s.BackgroundColors) == 0 {
		return s.BorderColor
	}
	return s.BackgroundColors[i%len(s.BackgroundColors)]
}

// valueRange returns a y range that always has a non-zero span and includes 0
func valueRange(values ...[]float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, vs := range values {
		for _, v := range vs {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.1
	if lo < 0 {
		lo -= pad
	}
	return &chart.ContinuousRange{Min: lo, Max: hi + pad}
}

func renderBar(w io.Writer, data projector.ChartData, o options) error {
	s := first(data)
	bars := make([]chart.Value, len(s.Values))
	for i, v := range s.Values {
		label := ""
		if i < len(data.Labels) {
			label = data.Labels[i]
		}
		bars[i] = chart.Value{
			Label: label,
			Value: v,
			Style: chart.Style{
				FillColor:   color(fillAt(s, i)),
				StrokeColor: color(s.BorderColor),
				StrokeWidth: 1,
			},
		}
	}

	barWidth := (o.width - 80) / (2 * len(bars))
	if barWidth < 4 {
		barWidth = 4
	}

	bc := chart.BarChart{
		Title:      o.title,
		Width:      o.width,
		Height:     o.height,
		BarWidth:   barWidth,
		Background: background(),
		YAxis:      chart.YAxis{Range: valueRange(s.Values)},
		Bars:       bars,
	}
	return bc.Render(chart.PNG, w)
}

func renderLine(w io.Writer, data projector.ChartData, o options) error {
	ticks := make([]chart.Tick, len(data.Labels))
	for i, l := range data.Labels {
		ticks[i] = chart.Tick{Value: float64(i + 1), Label: l}
	}

	series := make([]chart.Series, 0, len(data.Datasets))
	all := make([][]float64, 0, len(data.Datasets))
	for _, s := range data.Datasets {
		xs := make([]float64, len(s.Values))
		for i := range s.Values {
			xs[i] = float64(i + 1)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: s.Values,
			Style: chart.Style{
				StrokeColor: color(s.BorderColor),
				StrokeWidth: 2,
				DotColor:    color(fillAt(s, 0)),
				DotWidth:    3,
			},
		})
		all = append(all, s.Values)
	}

	ch := chart.Chart{
		Title:      o.title,
		Width:      o.width,
		Height:     o.height,
		Background: background(),
		XAxis: chart.XAxis{
			Range:     &chart.ContinuousRange{Min: 0.5, Max: float64(len(data.Labels)) + 0.5},
			Ticks:     ticks,
			TickStyle: chart.Style{TextRotationDegrees: 45},
		},
		YAxis:  chart.YAxis{Range: valueRange(all...)},
		Series: series,
	}
	return ch.Render(chart.PNG, w)
}

func renderScatter(w io.Writer, data projector.ChartData, o options) error {
	s := first(data)
	xs := make([]float64, len(s.Points))
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	xr := valueRange(xs)
	if xr.Min == 0 {
		// Points sit on the left edge otherwise
		xr.Min = -xr.Max * 0.05
	}

	ch := chart.Chart{
		Title:      o.title,
		Width:      o.width,
		Height:     o.height,
		Background: background(),
		XAxis:      chart.XAxis{Range: xr},
		YAxis:      chart.YAxis{Range: valueRange(ys)},
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(color(fillAt(s, 0))),
		}},
	}
	return ch.Render(chart.PNG, w)
}

func renderPie(w io.Writer, data projector.ChartData, o options, donut bool) error {
	s := first(data)
	values := make([]chart.Value, 0, len(s.Values))
	for i, v := range s.Values {
		if v <= 0 {
			continue
		}
		label := ""
		if i < len(data.Labels) {
			label = data.Labels[i]
		}
		values = append(values, chart.Value{
			Label: label,
			Value: v,
			Style: chart.Style{
				FillColor:   color(fillAt(s, i)),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	if len(values) == 0 {
		return placeholder(w, o)
	}

	if donut {
		dc := chart.DonutChart{
			Title:      o.title,
			Width:      o.width,
			Height:     o.height,
			Background: background(),
			Values:     values,
		}
		return dc.Render(chart.PNG, w)
	}
	pc := chart.PieChart{
		Title:      o.title,
		Width:      o.width,
		Height:     o.height,
		Background: background(),
		Values:     values,
	}
	return pc.Render(chart.PNG, w)
}
