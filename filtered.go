package shaper

import "github.com/go-text/typesetting/font"

// UnicodeRange represents a contiguous range of code points.
type UnicodeRange struct {
	Start rune
	End   rune
}

// Contains reports whether the rune is in the range.
func (ur UnicodeRange) Contains(r rune) bool {
	return r >= ur.Start && r <= ur.End
}

// Common Unicode ranges for filtering faces.
var (
	// Latin Scripts
	RangeBasicLatin = UnicodeRange{0x0000, 0x007F} // ASCII
	RangeLatin1Sup  = UnicodeRange{0x0080, 0x00FF} // Latin-1 Supplement

	// Cyrillic Scripts
	RangeCyrillic = UnicodeRange{0x0400, 0x04FF} // Cyrillic

	// Greek Scripts
	RangeGreek = UnicodeRange{0x0370, 0x03FF} // Greek and Coptic

	// Middle Eastern Scripts
	RangeArabic = UnicodeRange{0x0600, 0x06FF} // Arabic
	RangeHebrew = UnicodeRange{0x0590, 0x05FF} // Hebrew

	// CJK Scripts
	RangeCJKUnified = UnicodeRange{0x4E00, 0x9FFF} // CJK Unified Ideographs
	RangeHiragana   = UnicodeRange{0x3040, 0x309F} // Hiragana
	RangeKatakana   = UnicodeRange{0x30A0, 0x30FF} // Katakana
	RangeHangul     = UnicodeRange{0xAC00, 0xD7AF} // Hangul Syllables
)

// FilteredFace wraps a face and restricts its reported coverage to
// specific Unicode ranges. Shaping still uses the full underlying font;
// only HasGlyph is filtered, which steers font-run segmentation and
// fallback selection. FilteredFace is safe for concurrent use.
type FilteredFace struct {
	face   Face
	ranges []UnicodeRange
}

// NewFilteredFace creates a FilteredFace.
// Only runes in the specified ranges are reported as covered.
// If no ranges are specified, the face's coverage is unchanged.
func NewFilteredFace(face Face, ranges ...UnicodeRange) *FilteredFace {
	return &FilteredFace{
		face:   face,
		ranges: ranges,
	}
}

// HasGlyph implements Face.HasGlyph.
// Returns true only if the rune is in a permitted range and the
// underlying face covers it.
func (f *FilteredFace) HasGlyph(r rune) bool {
	if len(f.ranges) == 0 {
		return f.face.HasGlyph(r)
	}
	for _, ur := range f.ranges {
		if ur.Contains(r) {
			return f.face.HasGlyph(r)
		}
	}
	return false
}

// Size implements Face.Size.
func (f *FilteredFace) Size() float64 {
	return f.face.Size()
}

// ScaleX implements Face.ScaleX.
func (f *FilteredFace) ScaleX() float64 {
	return f.face.ScaleX()
}

// Language implements Face.Language.
func (f *FilteredFace) Language() string {
	return f.face.Language()
}

// Source implements Face.Source.
func (f *FilteredFace) Source() *FontSource {
	return f.face.Source()
}

// shapingFace implements Face.shapingFace by delegating to the
// underlying face.
func (f *FilteredFace) shapingFace() *font.Face {
	return f.face.shapingFace()
}
