package shaper

import (
	"sync"

	"github.com/go-text/typesetting/font"
)

// Face represents a font face at a specific size.
// This is a lightweight object that can be created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// HasGlyph reports whether the face can render the given rune,
	// i.e. maps it to a glyph other than notdef.
	HasGlyph(r rune) bool

	// Size returns the size of this face in pixels per em.
	Size() float64

	// ScaleX returns the horizontal scale factor of this face.
	ScaleX() float64

	// Language returns the BCP 47 language tag used during shaping.
	Language() string

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// shapingFace builds a fresh shaping font for this face, with the
	// face's variation axis values applied. It returns nil when the
	// underlying source has been closed. The result is not safe for
	// concurrent use; one is built per run of fallback selection.
	// Also prevents external implementations of Face.
	shapingFace() *font.Face
}

// sourceFace is the standard implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig

	// mu guards coverage, the lazily-built font.Face used for
	// HasGlyph queries. font.Face is not safe for concurrent use.
	mu       sync.Mutex
	coverage *font.Face
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.coverage == nil {
		parsed := f.source.parsedFont()
		if parsed == nil {
			return false
		}
		f.coverage = font.NewFace(parsed)
	}
	_, ok := f.coverage.NominalGlyph(r)
	return ok
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// ScaleX implements Face.ScaleX.
func (f *sourceFace) ScaleX() float64 {
	return f.config.scaleX
}

// Language implements Face.Language.
func (f *sourceFace) Language() string {
	return f.config.language
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// shapingFace implements Face.shapingFace.
// font.NewFace is cheap: it wraps the shared read-only *font.Font and
// initializes per-face state (variation coordinates, glyph caches).
func (f *sourceFace) shapingFace() *font.Face {
	parsed := f.source.parsedFont()
	if parsed == nil {
		return nil
	}
	face := font.NewFace(parsed)
	if len(f.config.variations) > 0 {
		face.SetVariations(f.config.variations)
	}
	return face
}
