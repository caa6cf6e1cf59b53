package pixgrid

import (
	log "github.com/sirupsen/logrus"
)

// Pad returns a new grid whose width and height are each the smallest
// power of two that fits g, with g centered and the border filled
// white. Dimensions already a power of two stay put. When the total
// padding on an axis is odd the top/left side gets the short half
// (pad/2 rounded down) and the bottom/right side the extra pixel.
func Pad(g Grid) Grid {
	w := nextPowerOfTwo(g.w)
	h := nextPowerOfTwo(g.h)
	if w == g.w && h == g.h {
		return g
	}

	left := (w - g.w) / 2
	top := (h - g.h) / 2
	log.Debugf("pad %dx%d -> %dx%d (offset %d,%d)", g.w, g.h, w, h, left, top)

	out := NewUniform(w, h, white)
	for row := 0; row < g.h; row++ {
		copy(out.pix[(row+top)*w+left:], g.pix[row*g.w:(row+1)*g.w])
	}
	return out
}

func nextPowerOfTwo(n int) int {
	if n > 0 && n&(n-1) == 0 {
		return n
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
