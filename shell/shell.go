// Package shell is the interactive command loop around the conversion
// pipeline. It owns the working character set, the loaded image, the
// resolution and the output target; the pipeline itself lives in the
// convert, pixgrid and glyph packages.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"

	"github.com/softglyph/charcoal/convert"
	"github.com/softglyph/charcoal/glyph"
	"github.com/softglyph/charcoal/imageio"
	"github.com/softglyph/charcoal/output"
	"github.com/softglyph/charcoal/pixgrid"
)

const prompt = ">>> "

// DefaultCharset seeds new shells.
var DefaultCharset = []rune("0123456789")

// DefaultResolution is the starting column count.
const DefaultResolution = 128

// HTMLFont is the font family written into HTML output.
const HTMLFont = "Courier New"

// Printable ASCII range served by the "all" argument.
const (
	firstPrintable = ' '
	lastPrintable  = '~'
)

// User-facing messages. Command handlers return these as errors and
// the loop prints them; nothing else reaches the user on failure.
const (
	msgAddFormat    = "Did not add due to incorrect format."
	msgRemoveFormat = "Did not remove due to incorrect format."
	msgOutputFormat = "Did not change output method due to incorrect format."
	msgResFormat    = "Did not change resolution due to incorrect format."
	msgResBounds    = "Did not change resolution due to exceeding boundaries."
	msgBadCommand   = "Did not execute due to incorrect command."
	msgImageFile    = "Did not execute due to problem with image file."
	msgEmptyCharset = "Did not execute. Charset is empty."
)

// Options configure a Shell. Zero values fall back to the defaults
// above, stdin and stdout.
type Options struct {
	ImagePath  string
	Resolution int
	MaxDim     int
	HTMLPath   string
	Rasterizer glyph.Rasterizer
	In         io.Reader
	Out        io.Writer
}

// Shell reads commands and applies them to the pipeline state.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer

	index    *glyph.Index
	img      pixgrid.Grid
	loaded   bool
	padW     int
	padH     int
	res      int
	sink     output.Output
	maxDim   int
	htmlPath string
}

// New builds a shell and, when an image path is given, loads it. A
// failed initial load is reported but not fatal; the user can issue an
// image command later.
func New(opt Options) *Shell {
	in := opt.In
	if in == nil {
		in = os.Stdin
	}
	out := opt.Out
	if out == nil {
		out = os.Stdout
	}
	ras := opt.Rasterizer
	if ras == nil {
		ras = glyph.BasicFont{}
	}
	res := opt.Resolution
	if res <= 0 {
		res = DefaultResolution
	}
	htmlPath := opt.HTMLPath
	if htmlPath == "" {
		htmlPath = "out.html"
	}

	s := &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		index:    glyph.NewIndex(ras, DefaultCharset),
		res:      res,
		maxDim:   opt.MaxDim,
		htmlPath: htmlPath,
	}
	s.sink = output.Console{W: out}
	if opt.ImagePath != "" {
		if err := s.loadImage(opt.ImagePath); err != nil {
			fmt.Fprintln(out, color.Red.Sprint(msgImageFile))
		}
	}
	return s
}

// Run reads commands until "exit" or EOF.
func (s *Shell) Run() error {
	fmt.Fprint(s.out, prompt)
	for s.in.Scan() {
		line := strings.Fields(s.in.Text())
		if len(line) == 0 {
			fmt.Fprint(s.out, prompt)
			continue
		}
		if line[0] == "exit" {
			return nil
		}
		if err := s.dispatch(line); err != nil {
			fmt.Fprintln(s.out, color.Red.Sprint(err.Error()))
		}
		fmt.Fprint(s.out, prompt)
	}
	return s.in.Err()
}

func (s *Shell) dispatch(line []string) error {
	switch line[0] {
	case "chars":
		if len(line) != 1 {
			return errors.New(msgBadCommand)
		}
		s.showChars()
		return nil
	case "add":
		return s.updateCharset(line, true)
	case "remove":
		return s.updateCharset(line, false)
	case "res":
		return s.changeResolution(line)
	case "image":
		return s.changeImage(line)
	case "output":
		return s.changeOutput(line)
	case "asciiArt":
		if len(line) != 1 {
			return errors.New(msgBadCommand)
		}
		return s.runAlgorithm()
	default:
		return errors.New(msgBadCommand)
	}
}

func (s *Shell) showChars() {
	for _, c := range s.index.Chars() {
		fmt.Fprintf(s.out, "%c ", c)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) updateCharset(line []string, add bool) error {
	format := msgRemoveFormat
	if add {
		format = msgAddFormat
	}
	if len(line) != 2 {
		return errors.New(format)
	}
	chars, err := charsFromArg(line[1])
	if err != nil {
		return errors.New(format)
	}
	for _, c := range chars {
		if add {
			s.index.Add(c)
		} else {
			s.index.Remove(c)
		}
	}
	return nil
}

// charsFromArg expands an add/remove argument: "all" (printable
// ASCII), "space", a single character, or a range like "a-p" in either
// direction.
func charsFromArg(arg string) ([]rune, error) {
	switch {
	case arg == "all":
		out := make([]rune, 0, lastPrintable-firstPrintable+1)
		for c := rune(firstPrintable); c <= lastPrintable; c++ {
			out = append(out, c)
		}
		return out, nil
	case arg == "space":
		return []rune{' '}, nil
	}
	r := []rune(arg)
	switch {
	case len(r) == 1:
		return r[:1], nil
	case len(r) == 3 && r[1] == '-':
		lo, hi := r[0], r[2]
		if lo > hi {
			lo, hi = hi, lo
		}
		out := make([]rune, 0, hi-lo+1)
		for c := lo; c <= hi; c++ {
			out = append(out, c)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unrecognized charset argument %q", arg)
}

func (s *Shell) changeResolution(line []string) error {
	if len(line) != 2 {
		return errors.New(msgResFormat)
	}
	var next int
	switch line[1] {
	case "up":
		next = s.res * 2
	case "down":
		next = s.res / 2
	default:
		return errors.New(msgResFormat)
	}

	minRes := 1
	if s.padH > 0 && s.padW/s.padH > 1 {
		minRes = s.padW / s.padH
	}
	if next < minRes || next > s.padW {
		return errors.New(msgResBounds)
	}
	s.res = next
	fmt.Fprintf(s.out, "Resolution set to %d.\n", s.res)
	return nil
}

func (s *Shell) changeImage(line []string) error {
	if len(line) != 2 {
		return errors.New(msgImageFile)
	}
	if err := s.loadImage(line[1]); err != nil {
		log.Debugf("image load failed: %v", err)
		return errors.New(msgImageFile)
	}
	return nil
}

func (s *Shell) loadImage(path string) error {
	img, err := imageio.Load(path, s.maxDim)
	if err != nil {
		return err
	}
	s.img = img
	s.loaded = true
	padded := pixgrid.Pad(img)
	s.padW = padded.Width()
	s.padH = padded.Height()
	return nil
}

func (s *Shell) changeOutput(line []string) error {
	if len(line) != 2 {
		return errors.New(msgOutputFormat)
	}
	switch line[1] {
	case "console":
		s.sink = output.Console{W: s.out}
	case "html":
		s.sink = output.HTML{Path: s.htmlPath, Font: HTMLFont}
	default:
		return errors.New(msgOutputFormat)
	}
	return nil
}

func (s *Shell) runAlgorithm() error {
	if s.index.Len() == 0 {
		return errors.New(msgEmptyCharset)
	}
	if !s.loaded {
		return errors.New(msgImageFile)
	}

	conv := convert.Converter{
		Index:      s.index,
		Resolution: s.res,
	}
	// Progress feedback only makes sense on a real terminal.
	var bar *pb.ProgressBar
	if s.out == os.Stdout {
		conv.Progress = func(done, total int) {
			if bar == nil {
				bar = pb.StartNew(total)
			}
			bar.SetCurrent(int64(done))
		}
	}
	grid, err := conv.Run(s.img)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		if errors.Is(err, convert.ErrEmptyCharset) {
			return errors.New(msgEmptyCharset)
		}
		return errors.New(msgBadCommand)
	}
	return s.sink.Write(grid)
}
