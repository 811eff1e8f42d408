package shaper

// RunInfo describes an emitted run to the output sink.
type RunInfo struct {
	// LineIndex is the zero-based index of the visual line the run
	// belongs to. Runs arrive grouped by line, in visual order.
	LineIndex int

	// Advance is the summed advance of the run's emitted glyphs.
	Advance Point

	// Ascent, Descent and Leading are the line's metrics in pixels,
	// all positive, maximized over every run on the line.
	Ascent  float64
	Descent float64
	Leading float64
}

// RunBuffer is the destination the engine fills for one emitted run.
// The sink allocates Glyphs and Positions with the requested glyph
// count; Clusters and Text are optional and filled only when non-nil,
// sized to the glyph count and the run's byte length respectively.
type RunBuffer struct {
	// Glyphs receives glyph IDs in visual (left to right) order.
	Glyphs []GlyphID

	// Positions receives the absolute pen position plus glyph offset
	// for each glyph, parallel to Glyphs.
	Positions []Point

	// Clusters, when non-nil, receives each glyph's cluster as a byte
	// offset into the original text.
	Clusters []int

	// Text, when non-nil, receives the run's slice of the original
	// UTF-8 text.
	Text []byte
}

// RunHandler consumes the engine's output one run at a time.
//
// For every emitted run the engine calls NewRunBuffer and then fills
// the returned buffer's slices before the next call. A handler that
// returns undersized slices causes a panic.
type RunHandler interface {
	NewRunBuffer(info RunInfo, face Face, glyphCount, textLen int) RunBuffer
}

// RecordedRun is one run captured by a LineRecorder.
type RecordedRun struct {
	Info      RunInfo
	Face      Face
	Glyphs    []GlyphID
	Positions []Point
	Clusters  []int
	Text      []byte
}

// Line is one visual line captured by a LineRecorder.
type Line struct {
	Runs []RecordedRun
}

// Advance returns the summed advance of all runs on the line.
func (l *Line) Advance() Point {
	var sum Point
	for i := range l.Runs {
		sum = sum.Add(l.Runs[i].Info.Advance)
	}
	return sum
}

// LineRecorder is a RunHandler that retains everything it is handed,
// grouped into lines. It is the simplest way to inspect engine output
// and is what most tests use. The zero value is ready to use; it is
// not safe for concurrent use.
type LineRecorder struct {
	Lines []Line
}

// NewRunBuffer implements RunHandler.
func (lr *LineRecorder) NewRunBuffer(info RunInfo, face Face, glyphCount, textLen int) RunBuffer {
	for info.LineIndex >= len(lr.Lines) {
		lr.Lines = append(lr.Lines, Line{})
	}
	line := &lr.Lines[info.LineIndex]
	line.Runs = append(line.Runs, RecordedRun{
		Info:      info,
		Face:      face,
		Glyphs:    make([]GlyphID, glyphCount),
		Positions: make([]Point, glyphCount),
		Clusters:  make([]int, glyphCount),
		Text:      make([]byte, textLen),
	})
	run := &line.Runs[len(line.Runs)-1]
	return RunBuffer{
		Glyphs:    run.Glyphs,
		Positions: run.Positions,
		Clusters:  run.Clusters,
		Text:      run.Text,
	}
}

// Reset discards all recorded lines.
func (lr *LineRecorder) Reset() {
	lr.Lines = nil
}
