package shaper

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource_EmptyData(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Fatalf("NewFontSource(nil): got %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSource_InvalidData(t *testing.T) {
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Fatal("NewFontSource with garbage: expected an error")
	}
}

func TestNewFontSource_FaceIndexOutOfRange(t *testing.T) {
	// goregular.TTF is a plain TTF, not a collection, so any nonzero
	// index must fail.
	_, err := NewFontSource(goregular.TTF, WithFaceIndex(3))
	if err == nil {
		t.Fatal("WithFaceIndex(3) on a TTF: expected an error")
	}
}

func TestNewFontSourceFromFile_Missing(t *testing.T) {
	if _, err := NewFontSourceFromFile("does/not/exist.ttf"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestFontSource_DataIsCopied(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	t.Cleanup(func() { _ = source.Close() })

	// Clobbering the caller's slice must not affect the source.
	for i := range data {
		data[i] = 0
	}
	face := source.Face(16.0)
	if !face.HasGlyph('A') {
		t.Fatal("face unusable after caller mutated the input slice")
	}
}

func TestFace_Defaults(t *testing.T) {
	face := testFace(t)
	if face.Size() != 16.0 {
		t.Errorf("Size: got %v, want 16", face.Size())
	}
	if face.ScaleX() != 1.0 {
		t.Errorf("ScaleX: got %v, want 1", face.ScaleX())
	}
	if face.Language() != "en" {
		t.Errorf("Language: got %q, want \"en\"", face.Language())
	}
	if face.Source() == nil {
		t.Error("Source: got nil")
	}
}

func TestFace_Options(t *testing.T) {
	face := testFace(t, WithScaleX(1.5), WithLanguage("ru"))
	if face.ScaleX() != 1.5 {
		t.Errorf("ScaleX: got %v, want 1.5", face.ScaleX())
	}
	if face.Language() != "ru" {
		t.Errorf("Language: got %q, want \"ru\"", face.Language())
	}
}

func TestFace_HasGlyph(t *testing.T) {
	face := testFace(t)
	tests := []struct {
		r    rune
		want bool
	}{
		{'A', true},
		{'б', true},  // Go Regular covers Cyrillic
		{'ש', false}, // but not Hebrew
	}
	for _, tt := range tests {
		if got := face.HasGlyph(tt.r); got != tt.want {
			t.Errorf("HasGlyph(%q): got %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestFontSource_Close(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	face := source.Face(16.0)
	if err := source.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if face.HasGlyph('A') {
		t.Error("HasGlyph after Close: got true, want false")
	}
}

func TestFontSource_ScaleXAffectsAdvance(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	t.Cleanup(func() { _ = source.Close() })

	plain, err := NewShaper(source.Face(16.0))
	if err != nil {
		t.Fatal(err)
	}
	wide, err := NewShaper(source.Face(16.0, WithScaleX(2.0)))
	if err != nil {
		t.Fatal(err)
	}

	w1, err := plain.Measure("Hello", DirectionLTR)
	if err != nil {
		t.Fatal(err)
	}
	w2, err := wide.Measure("Hello", DirectionLTR)
	if err != nil {
		t.Fatal(err)
	}
	if w2 <= w1 {
		t.Errorf("scaled advance %v not greater than unscaled %v", w2, w1)
	}
}

func TestFontSource_NotConstructedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a FontSource not made by NewFontSource")
		}
	}()
	var bad FontSource
	bad.Face(16.0)
}
