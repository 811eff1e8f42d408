package shaper

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/font"
)

// fontRuns iterates maximal runs renderable by a single face.
//
// The pinned face always wins: any character it covers belongs to it,
// even mid-run. Characters it cannot render go to the most recently
// resolved fallback face while that face keeps covering them; otherwise
// the resolver is consulted for a new fallback. When no substitute
// exists the pinned face keeps the run and shaping produces notdef
// glyphs.
type fontRuns struct {
	text     string
	pinned   Face
	resolver Fallback // may be nil

	// pinnedHandle is the shaping font for the pinned face, built once
	// per shape call. fallbackHandle is rebuilt whenever the resolver
	// hands out a new face.
	pinnedHandle   *font.Face
	fallback       Face
	fallbackHandle *font.Face

	pos           int // byte offset one past the current run
	current       Face
	currentHandle *font.Face
}

func newFontRuns(text string, pinned Face, pinnedHandle *font.Face, resolver Fallback) *fontRuns {
	return &fontRuns{
		text:         text,
		pinned:       pinned,
		pinnedHandle: pinnedHandle,
		resolver:     resolver,
	}
}

// consume implements runIterator.
func (it *fontRuns) consume() {
	if it.atEnd() {
		panic("shaper: fontRuns.consume called at end")
	}
	r, size := utf8.DecodeRuneInString(it.text[it.pos:])
	it.pos += size

	switch {
	case it.pinned.HasGlyph(r):
		it.current, it.currentHandle = it.pinned, it.pinnedHandle
	case it.fallback != nil && it.fallback.HasGlyph(r):
		it.current, it.currentHandle = it.fallback, it.fallbackHandle
	default:
		it.current, it.currentHandle = it.pinned, it.pinnedHandle
		if it.resolver != nil {
			if f := it.resolver.ResolveFace(r); f != nil {
				it.fallback = f
				it.fallbackHandle = f.shapingFace()
				it.current, it.currentHandle = it.fallback, it.fallbackHandle
			}
		}
	}

	for it.pos < len(it.text) {
		prev := it.pos
		r, size = utf8.DecodeRuneInString(it.text[it.pos:])
		it.pos += size
		// End the run when the pinned face regains coverage.
		if it.current != it.pinned && it.pinned.HasGlyph(r) {
			it.pos = prev
			return
		}
		// End the run when the current face loses coverage.
		if !it.current.HasGlyph(r) {
			it.pos = prev
			return
		}
	}
}

// end implements runIterator.
func (it *fontRuns) end() int { return it.pos }

// atEnd implements runIterator.
func (it *fontRuns) atEnd() bool { return it.pos == len(it.text) }

// currentFace returns the face selected for the current run.
func (it *fontRuns) currentFace() Face { return it.current }

// currentShapingFace returns the shaping font for the current run. It
// is nil when the face's source was closed mid-call; the engine skips
// such runs.
func (it *fontRuns) currentShapingFace() *font.Face { return it.currentHandle }
