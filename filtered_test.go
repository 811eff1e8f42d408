package shaper

import "testing"

func TestUnicodeRange_Contains(t *testing.T) {
	if !RangeBasicLatin.Contains('A') {
		t.Error("BasicLatin must contain 'A'")
	}
	if RangeBasicLatin.Contains('б') {
		t.Error("BasicLatin must not contain Cyrillic")
	}
	if !RangeCyrillic.Contains('б') {
		t.Error("Cyrillic must contain 'б'")
	}
}

func TestFilteredFace_RestrictsCoverage(t *testing.T) {
	full := testFace(t)
	filtered := NewFilteredFace(full, RangeBasicLatin)

	if !filtered.HasGlyph('A') {
		t.Error("HasGlyph('A'): got false, want true")
	}
	// Covered by the underlying font, but outside the permitted range.
	if filtered.HasGlyph('б') {
		t.Error("HasGlyph('б'): got true, want false")
	}
	// Neither in range nor covered by the font.
	if filtered.HasGlyph('ש') {
		t.Error("HasGlyph('ש'): got true, want false")
	}
}

func TestFilteredFace_NoRangesPassesThrough(t *testing.T) {
	full := testFace(t)
	filtered := NewFilteredFace(full)
	if filtered.HasGlyph('б') != full.HasGlyph('б') {
		t.Error("no-range filter must not change coverage")
	}
}

func TestFilteredFace_DelegatesProperties(t *testing.T) {
	full := testFace(t, WithScaleX(2.0), WithLanguage("ru"))
	filtered := NewFilteredFace(full, RangeCyrillic)
	if filtered.Size() != full.Size() {
		t.Errorf("Size: got %v, want %v", filtered.Size(), full.Size())
	}
	if filtered.ScaleX() != 2.0 {
		t.Errorf("ScaleX: got %v, want 2", filtered.ScaleX())
	}
	if filtered.Language() != "ru" {
		t.Errorf("Language: got %q, want \"ru\"", filtered.Language())
	}
	if filtered.Source() != full.Source() {
		t.Error("Source: want the underlying face's source")
	}
}

func TestFaceList_ResolveFace(t *testing.T) {
	full := testFace(t)
	latin := NewFilteredFace(full, RangeBasicLatin)
	cyrillic := NewFilteredFace(full, RangeCyrillic)
	list := FaceList{latin, cyrillic}

	if got := list.ResolveFace('A'); got != Face(latin) {
		t.Error("ResolveFace('A'): want the Latin face")
	}
	if got := list.ResolveFace('б'); got != Face(cyrillic) {
		t.Error("ResolveFace('б'): want the Cyrillic face")
	}
	if got := list.ResolveFace('ש'); got != nil {
		t.Error("ResolveFace('ש'): want nil, nothing covers Hebrew")
	}
	if got := FaceList(nil).ResolveFace('A'); got != nil {
		t.Error("empty list must resolve nothing")
	}
}
