package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionPadding = 4

// Caption draws text on a dark strip along the bottom-left of dst.
func Caption(dst draw.Image, text string) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	b := dst.Bounds()
	width := d.MeasureString(text).Ceil()
	height := face.Metrics().Height.Ceil()
	strip := image.Rect(
		b.Min.X,
		b.Max.Y-height-2*captionPadding,
		min(b.Min.X+width+2*captionPadding, b.Max.X),
		b.Max.Y,
	).Intersect(b)
	draw.Draw(dst, strip, image.NewUniform(color.RGBA{0, 0, 0, 160}), image.Point{}, draw.Over)

	d.Dot = fixed.P(b.Min.X+captionPadding, b.Max.Y-captionPadding-face.Metrics().Descent.Ceil())
	d.DrawString(text)
}
