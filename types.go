package shaper

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the base paragraph direction for shaping.
// It only decides the paragraph direction when the text contains no
// strong directional character; the bidi algorithm decides the rest.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// GlyphID is a glyph index within a font.
type GlyphID uint32

// Point is a position or vector in pixel units.
// Y grows downward, matching render-target coordinates.
type Point struct {
	X, Y float64
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Metrics holds line metrics at a specific size, in pixels.
// All values are positive distances from the baseline.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line.
	// Unlike the underlying font tables, this is stored as a positive value.
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
