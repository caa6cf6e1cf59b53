package glyph

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Index maps the working character set to set-relative brightness and
// answers nearest-brightness queries.
//
// A character's raw brightness — the ink fraction of its coverage
// bitmap — is an absolute property and is cached on first sight. The
// normalized view rescales raw values to [0,1] against the set's
// current min/max, so any add or remove can shift every member; the
// normalized view is therefore discarded and rebuilt in full on every
// mutation instead of patched incrementally.
type Index struct {
	ras   Rasterizer
	rawOf map[rune]float64
	raw   map[float64]map[rune]struct{}
	norm  []bucket // sorted by brightness, rebuilt by rebuild()
}

// bucket holds all characters sharing one normalized brightness.
type bucket struct {
	brightness float64
	chars      []rune // sorted ascending
}

// NewIndex builds an index over charset using ras to measure each
// character.
func NewIndex(ras Rasterizer, charset []rune) *Index {
	x := &Index{
		ras:   ras,
		rawOf: make(map[rune]float64),
		raw:   make(map[float64]map[rune]struct{}),
	}
	for _, c := range charset {
		x.insert(c)
	}
	x.rebuild()
	return x
}

// Add inserts c into the working set. Adding a character already
// present leaves the raw map untouched; the normalized view is rebuilt
// either way.
func (x *Index) Add(c rune) {
	x.insert(c)
	x.rebuild()
}

// Remove drops c from the working set; removing a character that is
// not a member is a no-op. An emptied raw bucket is dropped entirely
// so the set extremes stay accurate.
func (x *Index) Remove(c rune) {
	b, ok := x.rawOf[c]
	if !ok {
		return
	}
	delete(x.rawOf, c)
	set := x.raw[b]
	delete(set, c)
	if len(set) == 0 {
		delete(x.raw, b)
	}
	x.rebuild()
}

// Nearest returns the character whose normalized brightness is closest
// to b. The side with strictly smaller distance wins; an exact tie
// resolves to the smaller of the two candidate runes, and a bucket is
// always represented by its smallest rune. ok is false when the
// working set is empty.
func (x *Index) Nearest(b float64) (c rune, ok bool) {
	if len(x.norm) == 0 {
		return 0, false
	}
	i := sort.Search(len(x.norm), func(i int) bool { return x.norm[i].brightness >= b })
	if i == len(x.norm) { // beyond the top extreme
		return x.norm[i-1].chars[0], true
	}
	ceil := x.norm[i]
	if ceil.brightness == b || i == 0 {
		return ceil.chars[0], true
	}
	floor := x.norm[i-1]
	up := ceil.brightness - b
	down := b - floor.brightness
	switch {
	case up < down:
		return ceil.chars[0], true
	case down < up:
		return floor.chars[0], true
	}
	if floor.chars[0] < ceil.chars[0] {
		return floor.chars[0], true
	}
	return ceil.chars[0], true
}

// Len reports the number of characters in the working set.
func (x *Index) Len() int { return len(x.rawOf) }

// Chars returns the working set sorted ascending.
func (x *Index) Chars() []rune {
	out := make([]rune, 0, len(x.rawOf))
	for c := range x.rawOf {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (x *Index) insert(c rune) {
	if _, ok := x.rawOf[c]; ok {
		return
	}
	b := x.rawBrightness(c)
	x.rawOf[c] = b
	set, ok := x.raw[b]
	if !ok {
		set = make(map[rune]struct{})
		x.raw[b] = set
	}
	set[c] = struct{}{}
}

// rawBrightness measures the ink fraction of c's coverage bitmap.
func (x *Index) rawBrightness(c rune) float64 {
	ink := 0
	for _, row := range x.ras.Render(c) {
		for _, on := range row {
			if on {
				ink++
			}
		}
	}
	size := x.ras.Size()
	return float64(ink) / float64(size*size)
}

// rebuild derives the sorted normalized view from the raw map. A set
// whose min and max coincide (single raw value) normalizes every
// member to 1.0 rather than dividing by zero.
func (x *Index) rebuild() {
	x.norm = x.norm[:0]
	if len(x.raw) == 0 {
		return
	}
	keys := make([]float64, 0, len(x.raw))
	for k := range x.raw {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	min, max := keys[0], keys[len(keys)-1]

	for _, k := range keys {
		n := 1.0
		if max > min {
			n = (k - min) / (max - min)
		}
		chars := make([]rune, 0, len(x.raw[k]))
		for c := range x.raw[k] {
			chars = append(chars, c)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
		x.norm = append(x.norm, bucket{brightness: n, chars: chars})
	}
	log.Debugf("index rebuilt: %d chars in %d buckets", len(x.rawOf), len(x.norm))
}
