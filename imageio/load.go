// Package imageio loads image files into pixel grids. The conversion
// core never touches the filesystem; this is its image source.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/softglyph/charcoal/pixgrid"
)

// Load reads and decodes the image at path. maxDim, when positive,
// caps both dimensions by Lanczos downscaling before the grid is
// built — huge photos otherwise dominate conversion time for no
// visible gain at character resolutions. Open and decode failures come
// back wrapped; nothing downstream reinterprets them.
func Load(path string, maxDim int) (pixgrid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return pixgrid.Grid{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return pixgrid.Grid{}, fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	log.Debugf("loaded %s: %s %dx%d", path, format, b.Dx(), b.Dy())

	if maxDim > 0 && (b.Dx() > maxDim || b.Dy() > maxDim) {
		img = resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)
	}
	return pixgrid.FromImage(img), nil
}
