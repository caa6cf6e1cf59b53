package glyph

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Offsets that place a glyph's body inside the bitmap when drawing at
// font size == BitmapSize.
const (
	xOffsetFactor = 0.2
	yOffsetFactor = 0.75
)

// Antialiased coverage at or above this level counts as ink.
const inkThreshold = 128

// TrueType rasterizes characters from a parsed TTF, for callers that
// want the working set measured against a specific font rather than
// the built-in bitmap face. Output is binarized before counting since
// outline rendering is antialiased.
type TrueType struct {
	face font.Face
}

// NewTrueType parses raw TTF data and prepares a face sized to the
// coverage bitmap.
func NewTrueType(data []byte) (*TrueType, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    BitmapSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &TrueType{face: face}, nil
}

// Size implements Rasterizer.
func (t *TrueType) Size() int { return BitmapSize }

// Render draws c white on black, thresholds the result and reports
// which cells hold ink.
func (t *TrueType) Render(c rune) [][]bool {
	img := image.NewRGBA(image.Rect(0, 0, BitmapSize, BitmapSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: t.face,
		Dot: fixed.P(
			int(math.Round(BitmapSize*xOffsetFactor)),
			int(math.Round(BitmapSize*yOffsetFactor)),
		),
	}
	d.DrawString(string(c))

	bw := segment.Threshold(effect.Grayscale(img), inkThreshold)
	out := make([][]bool, BitmapSize)
	for y := range out {
		out[y] = make([]bool, BitmapSize)
		for x := range out[y] {
			out[y][x] = bw.GrayAt(x, y).Y > 0
		}
	}
	return out
}
