package shaper

// Fallback resolves a substitute face for characters the current face
// cannot render. Implementations may consult a system font index, a
// fixed list (see FaceList), or any other source.
//
// ResolveFace may return nil to signal that no substitute exists; the
// engine then keeps the pinned face and renders notdef glyphs.
type Fallback interface {
	ResolveFace(r rune) Face
}

// FaceList is a fixed-priority Fallback: the first face able to render
// the rune wins. An empty list resolves nothing.
type FaceList []Face

// ResolveFace implements Fallback.
func (fl FaceList) ResolveFace(r rune) Face {
	for _, f := range fl {
		if f.HasGlyph(r) {
			return f
		}
	}
	return nil
}
