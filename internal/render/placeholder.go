package render

import (
	"image"
	stdcolor "image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBackground = stdcolor.RGBA{R: 243, G: 244, B: 246, A: 255}
	placeholderText       = stdcolor.RGBA{R: 107, G: 114, B: 128, A: 255}
	placeholderTitle      = stdcolor.RGBA{R: 31, G: 41, B: 55, A: 255}
)

// PlaceholderImage returns a blank card with the empty-state message and the
// optional title
func PlaceholderImage(opts ...Option) image.Image {
	return placeholderImage(newOptions(opts))
}

func placeholderImage(o options) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	if o.title != "" {
		drawCentered(img, face, o.title, 8+face.Metrics().Ascent.Ceil(), placeholderTitle)
	}
	drawCentered(img, face, PlaceholderText, o.height/2, placeholderText)
	return img
}

func placeholder(w io.Writer, o options) error {
	return png.Encode(w, placeholderImage(o))
}

func drawCentered(dst draw.Image, face font.Face, text string, y int, col stdcolor.Color) {
	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := (dst.Bounds().Dx() - tw) / 2
	if x < 4 {
		x = 4
	}
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}
