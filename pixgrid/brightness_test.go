package pixgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrightnessWhiteIsExactlyOne(t *testing.T) {
	g := NewUniform(7, 3, Pixel{255, 255, 255})
	assert.Equal(t, 1.0, Brightness(g))
}

func TestBrightnessBlackIsExactlyZero(t *testing.T) {
	g := NewUniform(4, 4, Pixel{0, 0, 0})
	assert.Equal(t, 0.0, Brightness(g))
}

func TestBrightnessBounds(t *testing.T) {
	grids := []Grid{
		numberedGrid(5, 5),
		NewUniform(2, 2, Pixel{128, 128, 128}),
		New(2, 1, []Pixel{{0, 0, 0}, {255, 255, 255}}),
		NewUniform(1, 1, Pixel{255, 0, 0}),
		NewUniform(1, 1, Pixel{0, 255, 0}),
		NewUniform(1, 1, Pixel{0, 0, 255}),
	}
	for _, g := range grids {
		b := Brightness(g)
		assert.GreaterOrEqual(t, b, 0.0)
		assert.LessOrEqual(t, b, 1.0)
	}
}

func TestBrightnessLumaWeights(t *testing.T) {
	// green carries most of the luma
	red := Brightness(NewUniform(1, 1, Pixel{255, 0, 0}))
	green := Brightness(NewUniform(1, 1, Pixel{0, 255, 0}))
	blue := Brightness(NewUniform(1, 1, Pixel{0, 0, 255}))

	assert.InDelta(t, 0.2126, red, 1e-12)
	assert.InDelta(t, 0.7152, green, 1e-12)
	assert.InDelta(t, 0.0722, blue, 1e-12)
	assert.Greater(t, green, red)
	assert.Greater(t, red, blue)
}

func TestBrightnessHalfAndHalf(t *testing.T) {
	g := New(2, 1, []Pixel{{0, 0, 0}, {255, 255, 255}})
	assert.InDelta(t, 0.5, Brightness(g), 1e-12)
}
