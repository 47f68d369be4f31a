package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"heightfield/internal/heightfield"
	"heightfield/internal/terrain"
)

// DefaultLight comes from the north-west, 45 degrees up.
var DefaultLight = mgl32.Vec3{-1, -1, 1.4142135}.Normalize()

// ambient keeps faces turned away from the light from going fully black.
const ambient = 0.15

// Normal returns the unit surface normal at (x, y). Heights are normalised
// to [0, 1] and multiplied by zScale; neighbours past the border fall back
// to one-sided differences.
func Normal[T heightfield.Sample](g *terrain.Grid[T], x, y int, zScale float32) mgl32.Vec3 {
	top := float32(heightfield.MaxSample[T]())
	e := g.Edge()
	h := func(px, py int) float32 {
		return float32(g.Get(px, py)) / top * zScale
	}

	x0, x1 := max(x-1, 0), min(x+1, e)
	y0, y1 := max(y-1, 0), min(y+1, e)
	dx := (h(x1, y) - h(x0, y)) / float32(max(x1-x0, 1))
	dy := (h(x, y1) - h(x, y0)) / float32(max(y1-y0, 1))

	return mgl32.Vec3{-dx, -dy, 1}.Normalize()
}

// Hillshade renders Lambert shading of g lit from direction light.
// zScale is the height of a full-range sample measured in cells.
func Hillshade[T heightfield.Sample](g *terrain.Grid[T], light mgl32.Vec3, zScale float32) *image.Gray {
	size := g.Size()
	img := image.NewGray(image.Rect(0, 0, size, size))
	l := light.Normalize()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Pix[y*img.Stride+x] = uint8(shade(Normal(g, x, y, zScale), l) * 255)
		}
	}
	return img
}

func shade(n, light mgl32.Vec3) float32 {
	d := n.Dot(light)
	if d < 0 {
		d = 0
	}
	return ambient + (1-ambient)*d
}

// band is one stop of the hypsometric ramp; heights are fractions of the
// sample range.
type band struct {
	upTo float32
	c    color.RGBA
}

var ramp = []band{
	{0.35, color.RGBA{28, 70, 140, 255}},   // deep water
	{0.45, color.RGBA{64, 120, 190, 255}},  // shallows
	{0.48, color.RGBA{214, 200, 150, 255}}, // sand
	{0.62, color.RGBA{88, 150, 70, 255}},   // grass
	{0.75, color.RGBA{60, 110, 50, 255}},   // forest
	{0.88, color.RGBA{128, 116, 104, 255}}, // rock
	{1.01, color.RGBA{240, 240, 245, 255}}, // snow
}

// Tint returns the ramp colour for a normalised height.
func Tint(h float32) color.RGBA {
	for _, b := range ramp {
		if h < b.upTo {
			return b.c
		}
	}
	return ramp[len(ramp)-1].c
}

// Relief renders a hypsometric tint of g modulated by hillshading.
func Relief[T heightfield.Sample](g *terrain.Grid[T], light mgl32.Vec3, zScale float32) *image.RGBA {
	size := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	top := float32(heightfield.MaxSample[T]())
	l := light.Normalize()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := Tint(float32(g.Get(x, y)) / top)
			s := shade(Normal(g, x, y, zScale), l)
			i := y*img.Stride + 4*x
			img.Pix[i+0] = uint8(float32(c.R) * s)
			img.Pix[i+1] = uint8(float32(c.G) * s)
			img.Pix[i+2] = uint8(float32(c.B) * s)
			img.Pix[i+3] = 255
		}
	}
	return img
}
