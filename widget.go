package rtk

// ObjectID identifies a tree node.
type ObjectID interface {
	// ID returns this node's widget ID.
	ID() WidgetID
}

// BoundedObject exposes the drawing bounds of a tree node.
type BoundedObject interface {
	// Position returns the node position relative to its parent.
	Position() Position
	// SetPosition moves the node relative to its parent.
	SetPosition(pos Position)
	// Size returns the node extent.
	Size() Size
	// SetSize resizes the node.
	SetSize(size Size)
	// Bounds returns position and size as a rectangle.
	Bounds() Rect
}

// Visitable is implemented by nodes that offer descendants to a traversal.
// A node decides which children it exposes and in what order.
type Visitable interface {
	// ChildrenVisit calls fn for each direct child in declaration order.
	// It stops early when fn returns false.
	ChildrenVisit(fn func(child Widget) bool)
}

// Widget is the full contract of a drawable, event-handling tree node.
type Widget interface {
	ObjectID
	BoundedObject
	Visitable

	// UpdateLayout recomputes the widget's layout within the parent rect.
	UpdateLayout(parent Rect, res Resources)
	// Draw renders the widget's contents.
	Draw(dc *DrawContext)
	// HandleEvent processes an input event routed to this widget.
	HandleEvent(ev Event, ctx EventContext) EventResult
	// EventConsumed notifies the widget that a descendant consumed an event.
	EventConsumed(ev Event, ctx EventContext)
	// ViewportOrigin returns the scroll/pan offset applied to children's
	// drawing and hit-testing. Zero for non-scrolling widgets.
	ViewportOrigin() Position
	// IsClipped reports whether the widget's drawing area is clipped to
	// its bounds.
	IsClipped() bool
}

// Base provides the boilerplate half of the Widget contract: identity,
// bounds storage and the default behaviors (leaf traversal, zero viewport
// origin, clipped drawing, ignored consumption notices). Embed it and
// implement UpdateLayout, Draw and HandleEvent.
type Base struct {
	id     WidgetID
	bounds Rect
}

// NewBase creates widget base state with a fresh ID and the given bounds.
func NewBase(bounds Rect) Base {
	return Base{id: NewWidgetID(), bounds: bounds}
}

// ID returns the widget ID.
func (b *Base) ID() WidgetID { return b.id }

// Position returns the widget position.
func (b *Base) Position() Position { return b.bounds.Pos }

// SetPosition moves the widget.
func (b *Base) SetPosition(pos Position) { b.bounds.Pos = pos }

// Size returns the widget extent.
func (b *Base) Size() Size { return b.bounds.Size }

// SetSize resizes the widget.
func (b *Base) SetSize(size Size) { b.bounds.Size = size }

// Bounds returns the widget rectangle.
func (b *Base) Bounds() Rect { return b.bounds }

// ChildrenVisit offers no children; container widgets override this.
func (b *Base) ChildrenVisit(func(Widget) bool) {}

// EventConsumed ignores consumption notices by default.
func (b *Base) EventConsumed(Event, EventContext) {}

// ViewportOrigin returns a zero offset by default.
func (b *Base) ViewportOrigin() Position { return Position{} }

// IsClipped reports true by default.
func (b *Base) IsClipped() bool { return true }
