package rtk

// FontDesc selects a font for text drawing and measurement.
// Shaping and rasterization are backend concerns; the core only carries
// the descriptor through.
type FontDesc struct {
	Family string
	Size   float32
	Bold   bool
	Italic bool
}

// HAlign is horizontal text alignment.
type HAlign uint8

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

// VAlign is vertical text alignment.
type VAlign uint8

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// TextDrawMode positions a text run inside a widget.
type TextDrawMode interface {
	isTextDrawMode()
}

// TextAt anchors the text's top-left corner at a point.
type TextAt struct {
	Pos Pointf
}

// TextBounded lays the text out inside a rectangle with alignment.
type TextBounded struct {
	Rect   Rect
	HAlign HAlign
	VAlign VAlign
}

func (TextAt) isTextDrawMode()      {}
func (TextBounded) isTextDrawMode() {}

// translate returns the mode moved by the given offset.
func (m TextAt) translate(offset Position) TextDrawMode {
	return TextAt{Pos: m.Pos.Add(CastPoint[float32](offset))}
}

func (m TextBounded) translate(offset Position) TextDrawMode {
	return TextBounded{Rect: m.Rect.Offset(offset), HAlign: m.HAlign, VAlign: m.VAlign}
}

// translateTextMode moves any draw mode by the given offset.
func translateTextMode(m TextDrawMode, offset Position) TextDrawMode {
	switch m := m.(type) {
	case TextAt:
		return m.translate(offset)
	case TextBounded:
		return m.translate(offset)
	default:
		return m
	}
}
