// charcoal renders images as character grids. By default it drops into
// an interactive shell; --once runs a single conversion and exits.
package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/softglyph/charcoal/convert"
	"github.com/softglyph/charcoal/glyph"
	"github.com/softglyph/charcoal/imageio"
	"github.com/softglyph/charcoal/output"
	"github.com/softglyph/charcoal/shell"
)

var (
	flagRes     int
	flagMaxSize int
	flagHTML    string
	flagFont    string
	flagOnce    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "charcoal [image]",
	Short: "convert images to character art",
	Args:  cobra.MaximumNArgs(1),
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
		ras, err := rasterizer()
		if err != nil {
			return err
		}

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		if flagOnce {
			return runOnce(path, ras)
		}
		return shell.New(shell.Options{
			ImagePath:  path,
			Resolution: flagRes,
			MaxDim:     flagMaxSize,
			HTMLPath:   flagHTML,
			Rasterizer: ras,
		}).Run()
	}

	rootCmd.Flags().IntVar(&flagRes, "res", shell.DefaultResolution, "character columns in the output")
	rootCmd.Flags().IntVar(&flagMaxSize, "max-size", 0, "downscale images larger than this many pixels per side")
	rootCmd.Flags().StringVar(&flagHTML, "html", "out.html", "path written by the html output method")
	rootCmd.Flags().StringVar(&flagFont, "font", "", "TTF file to rasterize the charset with (default: built-in bitmap face)")
	rootCmd.Flags().BoolVar(&flagOnce, "once", false, "convert the given image once and exit")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func rasterizer() (glyph.Rasterizer, error) {
	if flagFont == "" {
		return glyph.BasicFont{}, nil
	}
	data, err := os.ReadFile(flagFont)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return glyph.NewTrueType(data)
}

func runOnce(path string, ras glyph.Rasterizer) error {
	if path == "" {
		return fmt.Errorf("--once needs an image argument")
	}
	img, err := imageio.Load(path, flagMaxSize)
	if err != nil {
		return err
	}
	conv := convert.Converter{
		Index:      glyph.NewIndex(ras, shell.DefaultCharset),
		Resolution: flagRes,
	}
	grid, err := conv.Run(img)
	if err != nil {
		return err
	}
	var sink output.Output = output.Console{}
	if cmdChangedHTML() {
		sink = output.HTML{Path: flagHTML, Font: shell.HTMLFont}
	}
	return sink.Write(grid)
}

func cmdChangedHTML() bool {
	return rootCmd.Flags().Changed("html")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red.Println(err)
		os.Exit(1)
	}
}
