// Package convert orchestrates the pipeline: pad, partition, match
// each sub-region's brightness to a working-set character.
package convert

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/softglyph/charcoal/glyph"
	"github.com/softglyph/charcoal/pixgrid"
)

// ErrEmptyCharset is returned when a conversion is attempted with no
// characters in the working set. Nearest-lookup is undefined on an
// empty index, so the conversion is rejected before any pixel work.
var ErrEmptyCharset = errors.New("charset is empty")

// ErrBadResolution is returned when the column count does not evenly
// divide the padded image. Power-of-two resolutions never trip this.
var ErrBadResolution = errors.New("resolution does not divide the padded image")

// Converter turns a pixel grid into a character grid.
type Converter struct {
	Index      *glyph.Index
	Resolution int

	// Progress, when set, is called after every matched sub-region.
	Progress func(done, total int)
}

// Run converts img into a (paddedHeight/side) × Resolution rune grid,
// where side is paddedWidth/Resolution.
func (c *Converter) Run(img pixgrid.Grid) ([][]rune, error) {
	if c.Index == nil || c.Index.Len() == 0 {
		return nil, ErrEmptyCharset
	}

	padded := pixgrid.Pad(img)
	if c.Resolution <= 0 || padded.Width()%c.Resolution != 0 {
		return nil, ErrBadResolution
	}
	side := padded.Width() / c.Resolution
	if side == 0 || padded.Height()%side != 0 {
		return nil, ErrBadResolution
	}
	rows := padded.Height() / side
	log.Debugf("converting %dx%d padded pixels into %dx%d chars",
		padded.Width(), padded.Height(), c.Resolution, rows)

	regions := pixgrid.Partition(padded, c.Resolution)
	out := make([][]rune, rows)
	for i := range out {
		out[i] = make([]rune, c.Resolution)
	}
	for i, r := range regions {
		ch, ok := c.Index.Nearest(r.Brightness)
		if !ok {
			return nil, ErrEmptyCharset
		}
		out[i/c.Resolution][i%c.Resolution] = ch
		if c.Progress != nil {
			c.Progress(i+1, len(regions))
		}
	}
	return out, nil
}
