// Package pixgrid holds the pixel-level half of the conversion pipeline:
// an immutable RGB grid, white padding to power-of-two dimensions,
// square partitioning, and luma brightness.
package pixgrid

import (
	"image"
	"image/color"
)

// Pixel - one RGB triple. Alpha is ignored throughout; sources are
// composited onto white before they reach a Grid.
type Pixel struct {
	R, G, B uint8
}

var white = Pixel{0xff, 0xff, 0xff}

// Grid - immutable 2D pixel array, row-major. Copy semantics are cheap
// (the backing slice is shared) and safe because nothing mutates it
// after construction.
type Grid struct {
	pix []Pixel
	w   int
	h   int
}

// New builds a Grid over pix, which must hold exactly w*h entries in
// row-major order. The slice is owned by the Grid from here on.
func New(w, h int, pix []Pixel) Grid {
	if len(pix) != w*h {
		panic("pixgrid: pixel slice does not match dimensions")
	}
	return Grid{pix: pix, w: w, h: h}
}

// NewUniform returns a w×h grid filled with p.
func NewUniform(w, h int, p Pixel) Grid {
	pix := make([]Pixel, w*h)
	for i := range pix {
		pix[i] = p
	}
	return Grid{pix: pix, w: w, h: h}
}

// FromImage copies an image.Image into a Grid, dropping alpha.
func FromImage(img image.Image) Grid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]Pixel, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			pix = append(pix, Pixel{c.R, c.G, c.B})
		}
	}
	return Grid{pix: pix, w: w, h: h}
}

// Width returns the grid width in pixels.
func (g Grid) Width() int { return g.w }

// Height returns the grid height in pixels.
func (g Grid) Height() int { return g.h }

// At returns the pixel at (row, col).
func (g Grid) At(row, col int) Pixel {
	return g.pix[row*g.w+col]
}
