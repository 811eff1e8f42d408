package shaper

import "math"

// emitLines walks the shaped runs line by line, reorders each line's
// runs into visual order, and writes every run through the handler.
// It returns the pen position after the last line.
//
// Vertically, the pen drops by the line's maximal ascent before the
// line is placed, and by its maximal descent plus leading after; the
// maxima are taken over every run touching the line. Horizontally the
// pen resets to the origin at each line start.
func emitLines(h RunHandler, runs []ShapedRun, text string, origin Point) Point {
	pen := origin
	glyphIterator := runGlyphIterator{runs: runs}
	if glyphIterator.current() == nil {
		return pen
	}

	lineStart := glyphIterator
	lineIndex := 0
	var maxAscent, maxDescent, maxLeading float64
	previousRun := -1

	for glyphIterator.current() != nil {
		if glyphIterator.runIndex != previousRun {
			m := runs[glyphIterator.runIndex].metrics
			maxAscent = math.Max(maxAscent, m.Ascent)
			maxDescent = math.Max(maxDescent, m.Descent)
			maxLeading = math.Max(maxLeading, m.LineGap)
			previousRun = glyphIterator.runIndex
		}
		glyphIterator.next()
		if next := glyphIterator.current(); next != nil && !next.mustBreakBefore {
			continue
		}

		pen.Y += maxAscent
		pen = emitLine(h, runs, text, lineStart, glyphIterator, RunInfo{
			LineIndex: lineIndex,
			Ascent:    maxAscent,
			Descent:   maxDescent,
			Leading:   maxLeading,
		}, pen)
		pen.Y += maxDescent + maxLeading
		pen.X = origin.X

		maxAscent, maxDescent, maxLeading = 0, 0, 0
		previousRun = -1
		lineIndex++
		lineStart = glyphIterator
	}
	return pen
}

// emitLine writes the glyph range [start, end) as one visual line.
// Runs are emitted in visual order per their bidi levels; within an
// odd-level run glyphs are written right to left so the buffer always
// reads left to right. info carries the line index and metrics; the
// per-run advance is filled in here.
func emitLine(h RunHandler, runs []ShapedRun, text string, start, end runGlyphIterator, info RunInfo, pen Point) Point {
	firstRun := start.runIndex
	lastRun := end.runIndex
	if end.runIndex >= len(runs) || end.glyphIndex == 0 {
		lastRun = end.runIndex - 1
	}

	levels := make([]int, lastRun-firstRun+1)
	for i := range levels {
		levels[i] = runs[firstRun+i].Level
	}
	visual := reorderVisual(levels)

	for _, v := range visual {
		runIndex := firstRun + v
		run := &runs[runIndex]

		startGlyph := 0
		if runIndex == start.runIndex {
			startGlyph = start.glyphIndex
		}
		endGlyph := len(run.Glyphs)
		if runIndex == end.runIndex {
			endGlyph = end.glyphIndex
		}
		glyphs := run.Glyphs[startGlyph:endGlyph]

		info.Advance = Point{}
		for i := range glyphs {
			info.Advance.X += glyphs[i].XAdvance
			info.Advance.Y += glyphs[i].YAdvance
		}

		// Clusters are monotone in logical order, so the emitted text
		// range runs from the first glyph's cluster to the next one's.
		textStart := run.Start + glyphs[0].Cluster
		textEnd := run.End
		if endGlyph < len(run.Glyphs) {
			textEnd = run.Start + run.Glyphs[endGlyph].Cluster
		}

		buf := h.NewRunBuffer(info, run.Face, len(glyphs), textEnd-textStart)
		if len(buf.Glyphs) < len(glyphs) || len(buf.Positions) < len(glyphs) {
			panic("shaper: RunBuffer too small")
		}

		rtl := run.Level%2 == 1
		for i := range glyphs {
			src := i
			if rtl {
				src = len(glyphs) - 1 - i
			}
			g := &glyphs[src]
			buf.Glyphs[i] = g.GID
			buf.Positions[i] = Point{X: pen.X + g.XOffset, Y: pen.Y - g.YOffset}
			if buf.Clusters != nil {
				buf.Clusters[i] = run.Start + g.Cluster
			}
			pen.X += g.XAdvance
			pen.Y += g.YAdvance
		}
		if buf.Text != nil {
			copy(buf.Text, text[textStart:textEnd])
		}
	}
	return pen
}
