package rtk

// Empty is the null widget: it occupies a rectangle and does nothing.
// Useful as a filler or placeholder leaf. Its ID is always zero.
type Empty struct {
	bounds Rect
}

// NewEmpty creates a zero-sized empty widget.
func NewEmpty() *Empty {
	return &Empty{}
}

// EmptyWithBounds creates an empty widget occupying the given rectangle.
func EmptyWithBounds(bounds Rect) *Empty {
	return &Empty{bounds: bounds}
}

// EmptyWithSize creates an empty widget of the given size at the origin.
func EmptyWithSize(size Size) *Empty {
	return &Empty{bounds: RectFromSize(size)}
}

func (e *Empty) ID() WidgetID { return 0 }

func (e *Empty) Position() Position       { return e.bounds.Pos }
func (e *Empty) SetPosition(pos Position) { e.bounds.Pos = pos }
func (e *Empty) Size() Size               { return e.bounds.Size }
func (e *Empty) SetSize(size Size)        { e.bounds.Size = size }
func (e *Empty) Bounds() Rect             { return e.bounds }

func (e *Empty) ChildrenVisit(func(Widget) bool) {}

func (e *Empty) UpdateLayout(Rect, Resources) {}

func (e *Empty) Draw(*DrawContext) {}

func (e *Empty) HandleEvent(Event, EventContext) EventResult { return Pass }

func (e *Empty) EventConsumed(Event, EventContext) {}

func (e *Empty) ViewportOrigin() Position { return Position{} }

func (e *Empty) IsClipped() bool { return true }
