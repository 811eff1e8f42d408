package shaper

import (
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// bidiRuns iterates maximal runs of identical bidi embedding level.
//
// Levels are resolved once, up front, by the Unicode bidi algorithm from
// golang.org/x/text. The caller-supplied base direction is only used when
// the text contains no strong directional character.
type bidiRuns struct {
	levels []int // embedding level per rune
	width  []int // UTF-8 byte length per rune
	pos    int   // rune index of the next unconsumed rune
	endOff int   // byte offset one past the current run
	level  int   // level of the current run
}

// newBidiRuns analyzes the text and returns an iterator over its level
// runs. It fails when the text is too long for bidi analysis or when
// the analysis itself fails; the caller must then abort the whole
// shape call.
func newBidiRuns(text string, dir Direction) (*bidiRuns, error) {
	if int64(len(text)) > math.MaxInt32 {
		return nil, ErrTextTooLong
	}

	baseLevel := 0
	defaultDir := bidi.Neutral
	if dir == DirectionRTL {
		baseLevel = 1
		defaultDir = bidi.RightToLeft
	}

	// Walk the string byte-wise so malformed sequences, which decode to
	// one replacement rune per byte, keep their true byte widths.
	var levels, width []int
	var runes []rune
	prev := 0
	for i, r := range text {
		if i > 0 {
			width = append(width, i-prev)
			prev = i
		}
		levels = append(levels, baseLevel)
		runes = append(runes, r)
	}
	if len(text) > 0 {
		width = append(width, len(text)-prev)
	}

	// The library analyzes one paragraph per call and reports the bytes
	// consumed; walk all paragraphs so text after a separator still gets
	// its own direction analysis.
	runeBase := 0
	for pos := 0; pos < len(text); {
		var p bidi.Paragraph
		n, err := p.SetString(text[pos:], bidi.DefaultDirection(defaultDir))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBidiAnalysis, err)
		}
		if n <= 0 {
			break
		}
		ordering, err := p.Order()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBidiAnalysis, err)
		}
		assignLevels(levels[runeBase:], runes[runeBase:], ordering, baseLevel)
		runeBase += utf8.RuneCountInString(text[pos : pos+n])
		pos += n
	}

	return &bidiRuns{levels: levels, width: width}, nil
}

// assignLevels fills one paragraph's per-rune embedding levels from its
// resolved ordering. The library reports each run's direction but not
// its level, so two refinements recover it: an LTR run nests inside an
// RTL paragraph at level 2 rather than escaping to level 0, and a
// numeric run (digits with no strong LTR character) whose nearest
// preceding strong character is RTL resolves to level 2, per rules
// W7/I1/I2 of the Unicode bidi algorithm. Without the numeric level a
// number between two RTL spans would keep the spans in logical order
// instead of reversing the enclosing RTL-dominant span.
func assignLevels(levels []int, runes []rune, ordering bidi.Ordering, baseLevel int) {
	ltrLevel := (baseLevel + 1) &^ 1

	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos() // rune indices, end inclusive
		if end >= len(levels) {
			end = len(levels) - 1
		}

		runLevel := baseLevel | 1
		if run.Direction() != bidi.RightToLeft {
			runLevel = ltrLevel
			if isNumericRun(runes, start, end) && precededByRTL(runes, start, baseLevel) {
				// Numbers after RTL text embed at the lowest even
				// level above it.
				runLevel = 2
			}
		}
		for j := start; j <= end; j++ {
			levels[j] = runLevel
		}
	}
}

// isNumericRun reports whether the run contains a digit and no strong
// LTR character, so its direction alone cannot tell it apart from
// ordinary LTR text.
func isNumericRun(runes []rune, start, end int) bool {
	hasNumber := false
	for j := start; j <= end; j++ {
		prop, _ := bidi.LookupRune(runes[j])
		switch prop.Class() {
		case bidi.L:
			return false
		case bidi.EN, bidi.AN:
			hasNumber = true
		}
	}
	return hasNumber
}

// precededByRTL reports whether the nearest strong character before the
// run, or the paragraph direction when there is none, is right to left.
func precededByRTL(runes []rune, start, baseLevel int) bool {
	for j := start - 1; j >= 0; j-- {
		prop, _ := bidi.LookupRune(runes[j])
		switch prop.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return baseLevel == 1
}

// consume implements runIterator.
func (it *bidiRuns) consume() {
	if it.atEnd() {
		panic("shaper: bidiRuns.consume called at end")
	}
	it.level = it.levels[it.pos]
	it.endOff += it.width[it.pos]
	it.pos++
	for it.pos < len(it.levels) && it.levels[it.pos] == it.level {
		it.endOff += it.width[it.pos]
		it.pos++
	}
}

// end implements runIterator.
func (it *bidiRuns) end() int { return it.endOff }

// atEnd implements runIterator.
func (it *bidiRuns) atEnd() bool { return it.pos == len(it.levels) }

// currentLevel returns the embedding level of the current run.
func (it *bidiRuns) currentLevel() int { return it.level }

// reorderVisual computes the logical-to-visual permutation of a line's
// runs from their embedding levels, per rule L2 of the Unicode bidi
// algorithm: from the highest level down to the lowest odd level,
// reverse every maximal subsequence at or above that level.
// visual[i] is the logical index of the i-th run in visual order.
func reorderVisual(levels []int) []int {
	visual := make([]int, len(levels))
	for i := range visual {
		visual[i] = i
	}
	if len(levels) == 0 {
		return visual
	}

	maxLevel := 0
	minOdd := math.MaxInt
	for _, l := range levels {
		if l > maxLevel {
			maxLevel = l
		}
		if l%2 == 1 && l < minOdd {
			minOdd = l
		}
	}
	if minOdd == math.MaxInt {
		return visual // all-even: logical order is visual order
	}

	for level := maxLevel; level >= minOdd; level-- {
		for i := 0; i < len(levels); {
			if levels[visual[i]] < level {
				i++
				continue
			}
			j := i
			for j < len(levels) && levels[visual[j]] >= level {
				j++
			}
			for lo, hi := i, j-1; lo < hi; lo, hi = lo+1, hi-1 {
				visual[lo], visual[hi] = visual[hi], visual[lo]
			}
			i = j
		}
	}
	return visual
}
