package render

import (
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ytget/chemviz/internal/projector"
)

const (
	radialRings    = 4
	titleFontSize  = 12
	labelFontSize  = 9
	radialMarginPx = 36
)

var gridColor = drawing.Color{R: 209, G: 213, B: 219, A: 255}

// canvas wraps a go-chart raster renderer with the helpers radial charts need
type canvas struct {
	r      chart.Renderer
	width  int
	height int
	top    int
}

func newCanvas(o options) (*canvas, error) {
	r, err := chart.PNG(o.width, o.height)
	if err != nil {
		return nil, err
	}
	c := &canvas{r: r, width: o.width, height: o.height}

	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeColor(drawing.ColorWhite)
	r.SetStrokeWidth(0)
	r.MoveTo(0, 0)
	r.LineTo(o.width, 0)
	r.LineTo(o.width, o.height)
	r.LineTo(0, o.height)
	r.Close()
	r.Fill()

	if font, err := chart.GetDefaultFont(); err == nil {
		r.SetFont(font)
	}
	r.SetFontColor(drawing.ColorBlack)

	if o.title != "" {
		r.SetFontSize(titleFontSize)
		box := r.MeasureText(o.title)
		r.Text(o.title, (o.width-box.Width())/2, 8+box.Height())
		c.top = 16 + box.Height()
	}
	return c, nil
}

// plot returns the center and radius available below the title
func (c *canvas) plot() (cx, cy int, radius float64) {
	cx = c.width / 2
	cy = c.top + (c.height-c.top)/2
	radius = math.Min(float64(c.width), float64(c.height-c.top))/2 - radialMarginPx
	if radius < 10 {
		radius = 10
	}
	return cx, cy, radius
}

func (c *canvas) label(text string, x, y int) {
	c.r.SetFontSize(labelFontSize)
	box := c.r.MeasureText(text)
	c.r.Text(text, x-box.Width()/2, y+box.Height()/2)
}

func (c *canvas) save(w io.Writer) error {
	return c.r.Save(w)
}

// spoke returns the point at distance d along spoke i of n, starting at 12 o'clock
func spoke(cx, cy int, i, n int, d float64) (int, int) {
	angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	return cx + int(math.Round(d*math.Cos(angle))), cy + int(math.Round(d*math.Sin(angle)))
}

func maxValue(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		m = math.Max(m, v)
	}
	if m == 0 {
		return 1
	}
	return m
}

func renderRadar(w io.Writer, data projector.ChartData, o options) error {
	c, err := newCanvas(o)
	if err != nil {
		return err
	}
	s := first(data)
	n := len(s.Values)
	cx, cy, radius := c.plot()
	scale := radius / maxValue(s.Values)

	c.r.SetStrokeColor(gridColor)
	c.r.SetStrokeWidth(1)
	for ring := 1; ring <= radialRings; ring++ {
		d := radius * float64(ring) / radialRings
		x, y := spoke(cx, cy, 0, n, d)
		c.r.MoveTo(x, y)
		for i := 1; i <= n; i++ {
			x, y = spoke(cx, cy, i%n, n, d)
			c.r.LineTo(x, y)
		}
		c.r.Stroke()
	}
	for i := 0; i < n; i++ {
		x, y := spoke(cx, cy, i, n, radius)
		c.r.MoveTo(cx, cy)
		c.r.LineTo(x, y)
		c.r.Stroke()
		if i < len(data.Labels) {
			lx, ly := spoke(cx, cy, i, n, radius+radialMarginPx/2)
			c.label(data.Labels[i], lx, ly)
		}
	}

	fill := color(fillAt(s, 0)).WithAlpha(96)
	c.r.SetFillColor(fill)
	c.r.SetStrokeColor(color(s.BorderColor))
	c.r.SetStrokeWidth(2)
	for i := 0; i <= n; i++ {
		v := math.Max(s.Values[i%n], 0)
		x, y := spoke(cx, cy, i%n, n, v*scale)
		if i == 0 {
			c.r.MoveTo(x, y)
			continue
		}
		c.r.LineTo(x, y)
	}
	c.r.Close()
	c.r.FillStroke()

	return c.save(w)
}

func renderPolarArea(w io.Writer, data projector.ChartData, o options) error {
	c, err := newCanvas(o)
	if err != nil {
		return err
	}
	s := first(data)
	n := len(s.Values)
	cx, cy, radius := c.plot()
	scale := radius / maxValue(s.Values)
	sweep := 2 * math.Pi / float64(n)

	for i, v := range s.Values {
		start := -math.Pi/2 + sweep*float64(i)
		d := math.Max(v, 0) * scale
		if d > 0 {
			c.r.SetFillColor(color(fillAt(s, i)).WithAlpha(200))
			c.r.SetStrokeColor(drawing.ColorWhite)
			c.r.SetStrokeWidth(2)
			c.r.MoveTo(cx, cy)
			c.r.ArcTo(cx, cy, d, d, start, sweep)
			c.r.LineTo(cx, cy)
			c.r.Close()
			c.r.FillStroke()
		}
		if i < len(data.Labels) {
			angle := start + sweep/2
			lx := cx + int(math.Round((radius+radialMarginPx/2)*math.Cos(angle)))
			ly := cy + int(math.Round((radius+radialMarginPx/2)*math.Sin(angle)))
			c.label(data.Labels[i], lx, ly)
		}
	}

	c.r.SetStrokeColor(gridColor)
	c.r.SetStrokeWidth(1)
	c.r.SetFillColor(drawing.ColorTransparent)
	for ring := 1; ring <= radialRings; ring++ {
		d := radius * float64(ring) / radialRings
		c.r.MoveTo(cx+int(d), cy)
		c.r.ArcTo(cx, cy, d, d, 0, 2*math.Pi)
		c.r.Stroke()
	}

	return c.save(w)
}
