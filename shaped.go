package shaper

// ShapedGlyph is one positioned glyph produced by shaping.
// Offsets and advances are in pixels, already scaled from font units.
type ShapedGlyph struct {
	// GID identifies the glyph within its run's face.
	GID GlyphID

	// Cluster is the byte offset, within the run's text, of the first
	// character this glyph renders. Several glyphs may share a cluster
	// (ligatures, marks); clusters are monotonic in logical order.
	Cluster int

	// XOffset and YOffset displace the glyph from the pen position
	// without moving the pen. Y grows downward.
	XOffset float64
	YOffset float64

	// XAdvance and YAdvance move the pen after the glyph is placed.
	XAdvance float64
	YAdvance float64

	// mayBreakBefore marks a legal line break opportunity immediately
	// before this glyph. mustBreakBefore marks a mandatory break.
	mayBreakBefore  bool
	mustBreakBefore bool
}

// ShapedRun is a maximal stretch of text that is uniform in bidi level,
// script, and face, shaped as one unit. Glyphs are stored in logical
// order regardless of direction.
type ShapedRun struct {
	// Start and End bound the run's text as byte offsets into the
	// original string, End exclusive.
	Start int
	End   int

	// Face is the face the run was shaped with.
	Face Face

	// Level is the bidi embedding level; odd levels read right to left.
	Level int

	// Glyphs holds the run's glyphs in logical order.
	Glyphs []ShapedGlyph

	// Advance is the summed advance of all glyphs in the run.
	Advance Point

	// metrics carries the run's line metrics, used for line placement.
	metrics Metrics
}

// Direction returns the reading direction implied by the run's level.
func (r *ShapedRun) Direction() Direction {
	if r.Level%2 == 1 {
		return DirectionRTL
	}
	return DirectionLTR
}

// runGlyphIterator walks every glyph of a run list in logical order.
// It is a small value type: copying one saves a position that a later
// assignment restores, which the line breaker uses to roll back to the
// last break candidate.
type runGlyphIterator struct {
	runs       []ShapedRun
	runIndex   int
	glyphIndex int
}

// current returns the glyph at the iterator position, or nil when all
// runs are exhausted.
func (gi *runGlyphIterator) current() *ShapedGlyph {
	if gi.runIndex >= len(gi.runs) {
		return nil
	}
	return &gi.runs[gi.runIndex].Glyphs[gi.glyphIndex]
}

// next moves to the following glyph, skipping empty runs.
func (gi *runGlyphIterator) next() {
	gi.glyphIndex++
	for gi.runIndex < len(gi.runs) && gi.glyphIndex >= len(gi.runs[gi.runIndex].Glyphs) {
		gi.runIndex++
		gi.glyphIndex = 0
	}
}
