package shaper

import "github.com/go-text/typesetting/font"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	faceIndex int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{faceIndex: 0}
}

// WithFaceIndex selects a face within a font collection (TTC).
// The default is 0, which also works for plain TTF/OTF files.
func WithFaceIndex(n int) SourceOption {
	return func(c *sourceConfig) {
		c.faceIndex = n
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	scaleX     float64
	language   string
	variations []font.Variation
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		scaleX:   1.0,
		language: "en",
	}
}

// WithScaleX sets a horizontal scale factor applied to glyph X offsets
// and X advances, for condensed or expanded rendering. The default is 1.
func WithScaleX(scale float64) FaceOption {
	return func(c *faceConfig) {
		c.scaleX = scale
	}
}

// WithLanguage sets the BCP 47 language tag used during shaping
// (e.g. "en", "ja", "ar"). The default is "en".
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithVariations sets variable-font axis values for the face.
// The values are applied to every shaping font built from the face.
func WithVariations(variations []font.Variation) FaceOption {
	return func(c *faceConfig) {
		c.variations = variations
	}
}

// ShaperOption configures Shaper creation.
type ShaperOption func(*shaperConfig)

// shaperConfig holds configuration for Shaper.
type shaperConfig struct {
	fallback Fallback
}

// defaultShaperConfig returns the default shaper configuration.
func defaultShaperConfig() shaperConfig {
	return shaperConfig{}
}

// WithFallback sets the font-fallback resolver consulted when neither the
// pinned face nor the current fallback face can render a character.
// Without a resolver, unsupported characters render as the pinned face's
// notdef glyph.
func WithFallback(f Fallback) ShaperOption {
	return func(c *shaperConfig) {
		c.fallback = f
	}
}

// ShapeOptions configures a single Shape call.
type ShapeOptions struct {
	// Direction is the base paragraph direction, used only when the text
	// contains no strong directional character.
	Direction Direction

	// Origin is the starting pen position. The first baseline is placed
	// below it by the line's ascent.
	Origin Point

	// MaxWidth is the target line width in pixels.
	// If 0, no line wrapping is performed.
	MaxWidth float64
}

// DefaultShapeOptions returns the default shape options:
// left-to-right, origin (0,0), no wrapping.
func DefaultShapeOptions() ShapeOptions {
	return ShapeOptions{}
}
