// Package output writes finished character grids. Writers own their
// formatting and escaping; the grid itself is plain data.
package output

import (
	"fmt"
	"io"
	"os"
)

// Output writes a character grid somewhere useful.
type Output interface {
	Write(grid [][]rune) error
}

// Console prints the grid one row per line, cells separated by a
// single space. W defaults to os.Stdout.
type Console struct {
	W io.Writer
}

// Write implements Output.
func (c Console) Write(grid [][]rune) error {
	w := c.W
	if w == nil {
		w = os.Stdout
	}
	for _, row := range grid {
		for _, ch := range row {
			if _, err := fmt.Fprintf(w, "%c ", ch); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
