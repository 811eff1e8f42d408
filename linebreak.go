package shaper

// breakLines runs a single greedy forward pass over the shaped glyphs
// and marks line starts by setting mustBreakBefore. Glyphs already
// marked (hard break characters) end their line unconditionally.
//
// The pass accumulates glyph advances until adding the next glyph
// would reach maxWidth, then breaks at the most recent break
// opportunity seen on the line. With no opportunity available it
// breaks anyway: after the current glyph when it is the only glyph on
// the line, otherwise before it. There is no backtracking beyond the
// recorded opportunity and no paragraph-level optimization.
func breakLines(runs []ShapedRun, maxWidth float64) {
	var widthSoFar float64
	previousBreakValid := false
	canAddBreakNow := false
	previousBreak := runGlyphIterator{runs: runs}
	glyphIterator := runGlyphIterator{runs: runs}

	for {
		glyph := glyphIterator.current()
		if glyph == nil {
			return
		}
		if glyph.mustBreakBefore && widthSoFar > 0 {
			// Hard break: the line ends here regardless of width.
			widthSoFar = 0
			previousBreakValid = false
			canAddBreakNow = false
		}
		current := glyphIterator
		if canAddBreakNow && glyph.mayBreakBefore {
			previousBreakValid = true
			previousBreak = current
		}
		if widthSoFar+glyph.XAdvance < maxWidth {
			widthSoFar += glyph.XAdvance
			glyphIterator.next()
			canAddBreakNow = true
			continue
		}

		if widthSoFar == 0 {
			// A single glyph wider than the line; emergency break
			// after it so the line carries exactly this glyph.
			glyphIterator.next()
			previousBreak = glyphIterator
		} else if !previousBreakValid {
			// No opportunity on this line; emergency break before
			// the glyph that does not fit.
			previousBreak = current
		}
		glyphIterator = previousBreak
		if g := glyphIterator.current(); g != nil {
			g.mustBreakBefore = true
		}
		widthSoFar = 0
		previousBreakValid = false
		canAddBreakNow = false
	}
}
