// Package render draws projected chart data as PNG images. Bar, line, scatter,
// pie and doughnut charts go through go-chart; radar and polar-area charts are
// drawn directly on its raster renderer. Empty data renders a placeholder.
package render
