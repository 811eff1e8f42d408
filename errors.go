package shaper

import "errors"

// Sentinel errors for the shaper package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("shaper: empty font data")

	// ErrFaceIndexOutOfRange is returned when a collection index does not
	// exist in the font data.
	ErrFaceIndexOutOfRange = errors.New("shaper: face index out of range")

	// ErrTextTooLong is returned by Shape when the input exceeds the
	// integer range required by bidi analysis.
	ErrTextTooLong = errors.New("shaper: text too long")

	// ErrBidiAnalysis is returned by Shape when paragraph-level bidi
	// analysis fails. Nothing is emitted for that call.
	ErrBidiAnalysis = errors.New("shaper: bidi analysis failed")

	// ErrUnusableFont is returned by NewShaper when the face cannot
	// produce a shaping font, for example after its source was closed.
	ErrUnusableFont = errors.New("shaper: font not usable for shaping")
)
