package pixgrid

// SubRegion is a square block cut from a padded grid together with its
// cached brightness. Plain composition; a sub-region is not a special
// kind of grid.
type SubRegion struct {
	Grid       Grid
	Brightness float64
}

// Partition cuts a padded grid into resolution columns of square
// sub-regions, row-major. The side length padded.Width()/resolution
// must evenly divide both dimensions; power-of-two resolutions on a
// padded grid always do, and callers are expected to stick to those.
// Each sub-region owns a copy of its pixels and its brightness is
// computed once, here.
func Partition(padded Grid, resolution int) []SubRegion {
	side := padded.w / resolution
	rows := padded.h / side
	out := make([]SubRegion, 0, rows*resolution)

	for y := 0; y < padded.h; y += side {
		for x := 0; x < padded.w; x += side {
			pix := make([]Pixel, 0, side*side)
			for row := y; row < y+side; row++ {
				pix = append(pix, padded.pix[row*padded.w+x:row*padded.w+x+side]...)
			}
			g := Grid{pix: pix, w: side, h: side}
			out = append(out, SubRegion{Grid: g, Brightness: Brightness(g)})
		}
	}
	return out
}
