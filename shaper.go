package shaper

import (
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/segmenter"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper turns UTF-8 text into positioned glyph runs and hands them to
// a RunHandler. It segments the text into runs uniform in bidi level,
// script, and face, shapes each run, breaks the result into lines, and
// emits each line in visual order.
//
// A Shaper is bound to one pinned face. It reuses internal shaping
// state across calls and is not safe for concurrent use; create one
// Shaper per goroutine.
type Shaper struct {
	face         Face
	pinnedHandle *font.Face
	fallback     Fallback

	hb  shaping.HarfbuzzShaper
	seg segmenter.Segmenter
}

// NewShaper creates a Shaper pinned to the given face.
// It returns ErrUnusableFont when the face's source has been closed.
// NewShaper panics when face is nil.
func NewShaper(face Face, opts ...ShaperOption) (*Shaper, error) {
	if face == nil {
		panic("shaper: nil Face")
	}
	cfg := defaultShaperConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	handle := face.shapingFace()
	if handle == nil {
		return nil, ErrUnusableFont
	}
	return &Shaper{
		face:         face,
		pinnedHandle: handle,
		fallback:     cfg.fallback,
	}, nil
}

// Face returns the pinned face.
func (s *Shaper) Face() Face {
	return s.face
}

// Shape lays out text and emits the resulting lines through h.
// It returns the pen position after the last line: X at the origin,
// Y below the last line's descent and leading. Empty text emits
// nothing and returns the origin.
//
// Shape panics when h is nil. Text or analysis failures return the
// origin and a wrapped sentinel error; nothing is emitted.
func (s *Shaper) Shape(h RunHandler, text string, opts *ShapeOptions) (Point, error) {
	if h == nil {
		panic("shaper: nil RunHandler")
	}
	if opts == nil {
		defaults := DefaultShapeOptions()
		opts = &defaults
	}
	if len(text) == 0 {
		return opts.Origin, nil
	}

	runs, err := s.shapeRuns(text, opts.Direction)
	if err != nil {
		return opts.Origin, err
	}

	maxWidth := opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = math.Inf(1)
	}
	breakLines(runs, maxWidth)

	return emitLines(h, runs, text, opts.Origin), nil
}

// Measure returns the total advance of text laid out on a single
// unbounded line, without emitting anything.
func (s *Shaper) Measure(text string, dir Direction) (float64, error) {
	if len(text) == 0 {
		return 0, nil
	}
	runs, err := s.shapeRuns(text, dir)
	if err != nil {
		return 0, err
	}
	var width float64
	for i := range runs {
		width += runs[i].Advance.X
	}
	return width, nil
}

// breakBoundary is one line-break opportunity: the byte offset where a
// following line may (or, after a hard break character, must) start.
type breakBoundary struct {
	off       int
	mandatory bool
}

// shapeRuns segments text into joint runs, shapes each with the
// appropriate face, and tags glyphs with break opportunities. Runs are
// returned in logical order with glyphs in logical order.
func (s *Shaper) shapeRuns(text string, dir Direction) ([]ShapedRun, error) {
	bidiIt, err := newBidiRuns(text, dir)
	if err != nil {
		return nil, err
	}
	scriptIt := newScriptRuns(text)
	fontIt := newFontRuns(text, s.face, s.pinnedHandle, s.fallback)

	var queue runQueue
	queue.insert(bidiIt)
	queue.insert(scriptIt)
	queue.insert(fontIt)

	// Decode once; shaping wants runes, clusters want byte offsets.
	var runes []rune
	var byteOff []int
	for i, r := range text {
		runes = append(runes, r)
		byteOff = append(byteOff, i)
	}

	bounds := s.breakBoundaries(runes, byteOff, len(text))

	size := floatToFixed(s.face.Size())
	scaleX := s.face.ScaleX()
	lang := language.NewLanguage(s.face.Language())

	var runs []ShapedRun
	start := 0
	runePos := 0
	boundCursor := 0
	for queue.advance() {
		end := queue.end()
		runeStart := runePos
		for runePos < len(runes) && byteOff[runePos] < end {
			runePos++
		}

		handle := fontIt.currentShapingFace()
		if handle == nil {
			Logger().Debug("shaper: skipping run, font source closed",
				"start", start, "end", end)
			start = end
			continue
		}

		dirIn := di.DirectionLTR
		level := bidiIt.currentLevel()
		if level%2 == 1 {
			dirIn = di.DirectionRTL
		}

		out := s.hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  runeStart,
			RunEnd:    runePos,
			Direction: dirIn,
			Face:      handle,
			Size:      size,
			Script:    scriptIt.currentScript(),
			Language:  lang,
		})
		if len(out.Glyphs) == 0 {
			Logger().Debug("shaper: run produced no glyphs",
				"start", start, "end", end)
			start = end
			continue
		}

		run := ShapedRun{
			Start: start,
			End:   end,
			Face:  fontIt.currentFace(),
			Level: level,
		}

		// Shaping emits RTL runs in visual order; store logical so
		// clusters stay monotone for break tagging and line filling.
		run.Glyphs = make([]ShapedGlyph, len(out.Glyphs))
		for i, sg := range out.Glyphs {
			dst := i
			if level%2 == 1 {
				dst = len(out.Glyphs) - 1 - i
			}
			run.Glyphs[dst] = ShapedGlyph{
				GID:      GlyphID(sg.GlyphID),
				Cluster:  byteOff[sg.ClusterIndex] - start,
				XOffset:  fixedToFloat(sg.XOffset) * scaleX,
				YOffset:  fixedToFloat(sg.YOffset),
				XAdvance: fixedToFloat(sg.XAdvance) * scaleX,
				YAdvance: fixedToFloat(sg.YAdvance),
			}
		}
		for i := range run.Glyphs {
			run.Advance.X += run.Glyphs[i].XAdvance
			run.Advance.Y += run.Glyphs[i].YAdvance
		}
		run.metrics = Metrics{
			Ascent:  math.Abs(fixedToFloat(out.LineBounds.Ascent)),
			Descent: math.Abs(fixedToFloat(out.LineBounds.Descent)),
			LineGap: math.Abs(fixedToFloat(out.LineBounds.Gap)),
		}

		boundCursor = tagBreaks(run.Glyphs, start, bounds, boundCursor)

		runs = append(runs, run)
		start = end
	}

	return runs, nil
}

// breakBoundaries runs Unicode line segmentation over the text and
// returns every break opportunity as an ascending byte offset. The end
// of each segment is an opportunity; a segment ended by a hard break
// character marks a mandatory one.
func (s *Shaper) breakBoundaries(runes []rune, byteOff []int, textLen int) []breakBoundary {
	s.seg.Init(runes)
	iter := s.seg.LineIterator()
	var bounds []breakBoundary
	for iter.Next() {
		line := iter.Line()
		endRune := line.Offset + len(line.Text)
		off := textLen
		if endRune < len(byteOff) {
			off = byteOff[endRune]
		}
		bounds = append(bounds, breakBoundary{
			off:       off,
			mandatory: line.IsMandatoryBreak,
		})
	}
	return bounds
}

// tagBreaks marks break opportunities on one run's glyphs. A glyph is a
// candidate only when it starts a new cluster and a boundary lands
// exactly on its absolute text offset. The boundary cursor is shared
// across runs and only ever moves forward; it is returned for the next
// run.
func tagBreaks(glyphs []ShapedGlyph, runStart int, bounds []breakBoundary, cursor int) int {
	prevCluster := -1
	for i := range glyphs {
		g := &glyphs[i]
		newCluster := g.Cluster != prevCluster
		prevCluster = g.Cluster
		abs := runStart + g.Cluster
		for cursor < len(bounds) && bounds[cursor].off < abs {
			cursor++
		}
		if newCluster && cursor < len(bounds) && bounds[cursor].off == abs {
			g.mayBreakBefore = true
			g.mustBreakBefore = bounds[cursor].mandatory
		}
	}
	return cursor
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
