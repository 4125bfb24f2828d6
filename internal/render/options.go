package render

// Default image size in pixels
const (
	DefaultWidth  = 480
	DefaultHeight = 320

	MinSize = 120
	MaxSize = 4096
)

// PlaceholderText is drawn when there is nothing to chart
const PlaceholderText = "No data loaded"

type options struct {
	width  int
	height int
	title  string
}

// Option configures a render call
type Option func(*options)

// WithSize sets the image size, clamped to [MinSize, MaxSize]
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = clamp(width)
		o.height = clamp(height)
	}
}

// WithTitle draws title above the chart
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

func newOptions(opts []Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func clamp(v int) int {
	if v < MinSize {
		return MinSize
	}
	if v > MaxSize {
		return MaxSize
	}
	return v
}
