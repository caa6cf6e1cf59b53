package output

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Font size scales inversely with the number of columns so the art
// fits one page width regardless of resolution.
const (
	baseLineSpacing = 0.8
	baseFontSize    = 150.0
)

// HTML writes the grid to a markup file as preformatted monospace
// text, escaping the characters HTML cares about.
type HTML struct {
	Path string
	Font string
}

// Write implements Output.
func (h HTML) Write(grid [][]rune) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return errors.New("output: empty character grid")
	}
	if err := os.WriteFile(h.Path, h.render(grid), 0644); err != nil {
		return fmt.Errorf("write %s: %w", h.Path, err)
	}
	return nil
}

func (h HTML) render(grid [][]rune) []byte {
	var b strings.Builder
	fmt.Fprintf(&b,
		"<!DOCTYPE html>\n"+
			"<html>\n"+
			"<body style=\""+
			"\tCOLOR:#000000;"+
			"\tTEXT-ALIGN:center;"+
			"\tFONT-SIZE:1px;\">\n"+
			"<p style=\""+
			"\twhite-space:pre;"+
			"\tFONT-FAMILY:%s;"+
			"\tFONT-SIZE:%frem;"+
			"\tLETTER-SPACING:0.15em;"+
			"\tLINE-HEIGHT:%fem;\">\n",
		h.Font, baseFontSize/float64(len(grid[0])), baseLineSpacing)

	for _, row := range grid {
		for _, ch := range row {
			switch ch {
			case '<':
				b.WriteString("&lt;")
			case '>':
				b.WriteString("&gt;")
			case '&':
				b.WriteString("&amp;")
			default:
				b.WriteRune(ch)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("</p>\n</body>\n</html>\n")
	return []byte(b.String())
}
