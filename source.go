package shaper

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource itself.
	addr *FontSource

	// mu protects font against Close.
	mu sync.RWMutex

	// data is the raw font file, kept alive for the lifetime of the source.
	data []byte

	// font is the parsed font. font.Font is read-only and safe for
	// concurrent use, unlike font.Face which is created per consumer.
	font *font.Font
}

// NewFontSource creates a FontSource from font data (TTF, OTF or TTC).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := parseFont(dataCopy, config.faceIndex)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data: dataCopy,
		font: parsed,
	}
	s.addr = s // Self-reference for copy detection
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shaper: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// parseFont parses font data, selecting faceIndex within a collection.
// A non-collection file only has face index 0.
func parseFont(data []byte, faceIndex int) (*font.Font, error) {
	reader := bytes.NewReader(data)

	if faceIndex == 0 {
		face, err := font.ParseTTF(reader)
		if err != nil {
			return nil, fmt.Errorf("shaper: failed to parse font: %w", err)
		}
		return face.Font, nil
	}

	faces, err := font.ParseTTC(reader)
	if err != nil {
		return nil, fmt.Errorf("shaper: failed to parse font collection: %w", err)
	}
	if faceIndex < 0 || faceIndex >= len(faces) {
		return nil, fmt.Errorf("%w: index %d, collection has %d face(s)",
			ErrFaceIndexOutOfRange, faceIndex, len(faces))
	}
	return faces[faceIndex].Font, nil
}

// Face creates a Face at the specified size (in pixels per em).
// Multiple faces can be created from the same FontSource.
//
// Face is a lightweight object that shares the parsed font with the source.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("shaper: FontSource is nil - did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
}

// parsedFont returns the parsed font, or nil after Close.
func (s *FontSource) parsedFont() *font.Font {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.font
}

// Close releases resources associated with the FontSource.
// All faces created from this source become unusable after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.font = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("shaper: FontSource must not be copied by value")
	}
}
