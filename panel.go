package rtk

// Panel is a basic container widget: a colored rectangle holding an
// ordered list of children, with an optional scroll offset applied to
// their drawing and hit-testing.
type Panel struct {
	Base

	// Color fills the panel background; a zero color draws nothing.
	Color Color

	children []Widget
	origin   Position
	noClip   bool
}

// NewPanel creates a panel occupying the given rectangle.
func NewPanel(bounds Rect, color Color) *Panel {
	return &Panel{Base: NewBase(bounds), Color: color}
}

// AddChild appends a child; children are visited and drawn in insertion
// order.
func (p *Panel) AddChild(child Widget) {
	p.children = append(p.children, child)
}

// Children returns the panel's children in insertion order.
func (p *Panel) Children() []Widget {
	return p.children
}

// ChildrenVisit offers the children in insertion order.
func (p *Panel) ChildrenVisit(fn func(Widget) bool) {
	for _, child := range p.children {
		if !fn(child) {
			return
		}
	}
}

// SetViewportOrigin sets the scroll offset applied to the children.
func (p *Panel) SetViewportOrigin(origin Position) {
	p.origin = origin
}

// ScrollBy moves the scroll offset by a delta.
func (p *Panel) ScrollBy(dx, dy int32) {
	p.origin = p.origin.Offset(dx, dy)
}

// ViewportOrigin returns the scroll offset.
func (p *Panel) ViewportOrigin() Position {
	return p.origin
}

// SetClipped controls whether children may paint outside the panel.
func (p *Panel) SetClipped(clipped bool) {
	p.noClip = !clipped
}

// IsClipped reports whether drawing is clipped to the panel bounds.
func (p *Panel) IsClipped() bool {
	return !p.noClip
}

// UpdateLayout lays the children out against the panel's own rectangle.
func (p *Panel) UpdateLayout(_ Rect, res Resources) {
	inner := RectFromSize(p.Size())
	for _, child := range p.children {
		child.UpdateLayout(inner, res)
	}
}

// Draw fills the background and draws the children front to back.
func (p *Panel) Draw(dc *DrawContext) {
	if p.Color != (Color{}) {
		dc.DrawRect(Rect{Pos: dc.Origin(), Size: p.Size()}, p.Color)
	}
	for _, child := range p.children {
		dc.DrawChild(child)
	}
}

// HandleEvent passes everything; panels are inert containers.
func (p *Panel) HandleEvent(Event, EventContext) EventResult {
	return Pass
}
