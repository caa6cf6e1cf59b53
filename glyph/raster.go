// Package glyph measures characters: it renders them into fixed-size
// coverage bitmaps and keeps a brightness-ordered index over the
// current working set.
package glyph

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BitmapSize is the side length of the coverage bitmap every backend
// renders into. It is shared by all characters so their ink counts are
// comparable.
const BitmapSize = 16

// ThresholdPalette is a black/white color palette. Glyphs are drawn
// white on black; ink is whatever lands on the white index.
var ThresholdPalette color.Palette
var white colorful.Color
var black colorful.Color

func init() {
	white, _ = colorful.MakeColor(color.White)
	black, _ = colorful.MakeColor(color.Black)
	ThresholdPalette = color.Palette{black, white}
}

// Rasterizer renders a single character into a Size()×Size() boolean
// coverage bitmap. Size is constant for the life of the rasterizer.
type Rasterizer interface {
	Render(c rune) [][]bool
	Size() int
}

// BasicFont rasterizes with the built-in 7x13 bitmap face from
// golang.org/x/image. The zero value is ready to use.
type BasicFont struct{}

// Size implements Rasterizer.
func (BasicFont) Size() int { return BitmapSize }

// Render draws c centered on a BitmapSize square canvas.
func (BasicFont) Render(c rune) [][]bool {
	img := image.NewPaletted(image.Rect(0, 0, BitmapSize, BitmapSize), ThresholdPalette)
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(white),
		Face: face,
		Dot: fixed.P(
			(BitmapSize-face.Advance)/2,
			(BitmapSize-(face.Ascent+face.Descent))/2+face.Ascent,
		),
	}
	d.DrawString(string(c))
	log.Debugf("rendered %q with basicfont", c)

	out := make([][]bool, BitmapSize)
	for y := range out {
		out[y] = make([]bool, BitmapSize)
		for x := range out[y] {
			out[y][x] = img.ColorIndexAt(x, y) == 1
		}
	}
	return out
}
