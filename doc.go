// Package shaper provides HarfBuzz-level text shaping and line breaking
// built on github.com/go-text/typesetting.
//
// The engine turns a UTF-8 string plus a starting font face into lines of
// positioned glyph runs. Internally the text is segmented three ways at
// once: by bidirectional embedding level, by Unicode script, and by the
// font able to render each character. The three boundary streams are
// merged so that every shaped run is uniform across all three axes. Runs
// are shaped through go-text's HarfBuzz port, broken greedily into lines
// at Unicode line-break opportunities (with emergency breaks when nothing
// fits), reordered into visual order per line, and handed to a RunHandler.
//
// # Example usage
//
//	source, err := shaper.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	eng, err := shaper.NewShaper(source.Face(16))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var rec shaper.LineRecorder
//	end, err := eng.Shape(&rec, "Hello, World!", &shaper.ShapeOptions{
//	    MaxWidth: 200,
//	})
//
// A Shaper instance is not safe for concurrent use; callers that shape from
// multiple goroutines must create one Shaper per goroutine. FontSource is
// safe to share.
package shaper
