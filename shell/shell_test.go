package shell

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.White)
	path := filepath.Join(t.TempDir(), "bw.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func runShell(t *testing.T, opt Options, commands ...string) string {
	t.Helper()
	var out bytes.Buffer
	opt.In = strings.NewReader(strings.Join(commands, "\n") + "\n")
	opt.Out = &out
	require.NoError(t, New(opt).Run())
	return out.String()
}

func TestCharsShowsDefaultCharset(t *testing.T) {
	got := runShell(t, Options{}, "chars", "exit")
	assert.Contains(t, got, "0 1 2 3 4 5 6 7 8 9")
}

func TestAddAndRemoveSingleChar(t *testing.T) {
	got := runShell(t, Options{}, "add x", "chars", "exit")
	assert.Contains(t, got, "x")

	got = runShell(t, Options{}, "remove 0", "chars", "exit")
	assert.NotContains(t, got, "0 1")
	assert.Contains(t, got, "1 2")
}

func TestAddRange(t *testing.T) {
	got := runShell(t, Options{}, "add a-c", "chars", "exit")
	assert.Contains(t, got, "a b c")

	// reversed ranges work too
	got = runShell(t, Options{}, "add c-a", "chars", "exit")
	assert.Contains(t, got, "a b c")
}

func TestAddSpaceAndAll(t *testing.T) {
	got := runShell(t, Options{}, "remove all", "add space", "chars", "exit")
	assert.Contains(t, got, "  \n") // the charset is just the space char

	got = runShell(t, Options{}, "add all", "chars", "exit")
	assert.Contains(t, got, "~")
	assert.Contains(t, got, "! \" #")
}

func TestAddBadFormat(t *testing.T) {
	got := runShell(t, Options{}, "add", "exit")
	assert.Contains(t, got, msgAddFormat)

	got = runShell(t, Options{}, "add abc", "exit")
	assert.Contains(t, got, msgAddFormat)
}

func TestRemoveBadFormat(t *testing.T) {
	got := runShell(t, Options{}, "remove abcd", "exit")
	assert.Contains(t, got, msgRemoveFormat)
}

func TestUnknownCommand(t *testing.T) {
	got := runShell(t, Options{}, "frobnicate", "exit")
	assert.Contains(t, got, msgBadCommand)
}

func squareImage(t *testing.T, n int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.Set(x, y, color.White)
		}
	}
	path := filepath.Join(t.TempDir(), "sq.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestResolutionChanges(t *testing.T) {
	path := squareImage(t, 2)
	got := runShell(t, Options{ImagePath: path, Resolution: 1},
		"res up", "res up", "res down", "exit")
	assert.Contains(t, got, "Resolution set to 2.")
	assert.Contains(t, got, msgResBounds) // 4 exceeds the padded width
	assert.Contains(t, got, "Resolution set to 1.")
}

func TestResolutionBadFormat(t *testing.T) {
	got := runShell(t, Options{}, "res sideways", "res", "exit")
	assert.Contains(t, got, msgResFormat)
}

func TestImageCommandFailure(t *testing.T) {
	got := runShell(t, Options{}, "image /no/such/file.png", "exit")
	assert.Contains(t, got, msgImageFile)
}

func TestAsciiArtToConsole(t *testing.T) {
	path := testImage(t)
	got := runShell(t, Options{ImagePath: path, Resolution: 2}, "asciiArt", "exit")

	// one row, two cells: darkest digit then brightest digit
	cleaned := strings.ReplaceAll(got, prompt, "")
	var artRow string
	for _, r := range strings.Split(cleaned, "\n") {
		if len(r) == 4 && r[1] == ' ' && r[3] == ' ' {
			artRow = r
			break
		}
	}
	require.NotEmpty(t, artRow, "no art row in output:\n%s", got)
	assert.NotEqual(t, artRow[0], artRow[2])
}

func TestAsciiArtEmptyCharset(t *testing.T) {
	path := testImage(t)
	got := runShell(t, Options{ImagePath: path, Resolution: 2},
		"remove all", "asciiArt", "exit")
	assert.Contains(t, got, msgEmptyCharset)
}

func TestAsciiArtWithoutImage(t *testing.T) {
	got := runShell(t, Options{}, "asciiArt", "exit")
	assert.Contains(t, got, msgImageFile)
}

func TestOutputHTML(t *testing.T) {
	path := testImage(t)
	htmlPath := filepath.Join(t.TempDir(), "art.html")
	runShell(t, Options{ImagePath: path, Resolution: 2, HTMLPath: htmlPath},
		"output html", "asciiArt", "exit")

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Courier New")
}

func TestOutputBadFormat(t *testing.T) {
	got := runShell(t, Options{}, "output printer", "exit")
	assert.Contains(t, got, msgOutputFormat)
}

func TestCharsFromArg(t *testing.T) {
	all, err := charsFromArg("all")
	require.NoError(t, err)
	assert.Len(t, all, 95)
	assert.Equal(t, ' ', all[0])
	assert.Equal(t, '~', all[94])

	space, err := charsFromArg("space")
	require.NoError(t, err)
	assert.Equal(t, []rune{' '}, space)

	single, err := charsFromArg("k")
	require.NoError(t, err)
	assert.Equal(t, []rune{'k'}, single)

	rng, err := charsFromArg("0-3")
	require.NoError(t, err)
	assert.Equal(t, []rune("0123"), rng)

	_, err = charsFromArg("")
	assert.Error(t, err)
	_, err = charsFromArg("xyz")
	assert.Error(t, err)
}
