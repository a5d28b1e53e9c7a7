package rtk

// DrawBackend is the rendering capability the core draws through.
// Vertices handed to DrawTriangles are viewport-relative; implementations
// translate them by the viewport position so stored geometry ends up
// window-relative.
type DrawBackend interface {
	// Clear fills the viewport with a single color.
	Clear(color Color, viewport Rect)
	// DrawTriangles submits triangle geometry sharing one render state.
	// A nil image selects the backend's white fallback texture.
	DrawTriangles(vertices []Vertex, indices []uint32, image *Image, viewport Rect) error
	// DrawText draws a text run; shaping is the backend's concern.
	DrawText(text string, font FontDesc, mode TextDrawMode, color Color, viewport Rect)
}

// Resources supplies layout-time queries without granting drawing access.
type Resources interface {
	// MeasureText returns the pixel extent of a text run.
	MeasureText(text string, font FontDesc) Size
}

// DrawContext is the drawing surface handed to a widget's Draw method.
// It threads the clip-narrowed absolute viewport and the widget's content
// origin down the tree, so widgets draw in their own local coordinates.
type DrawContext struct {
	backend  DrawBackend
	viewport Rect
	offset   Position
	vpOrig   Position
}

// NewDrawContext creates a root context covering the given viewport.
func NewDrawContext(backend DrawBackend, viewport Rect) *DrawContext {
	return &DrawContext{
		backend:  backend,
		viewport: viewport,
		offset:   viewport.Pos,
	}
}

// Origin returns the widget's viewport origin (scroll offset).
func (dc *DrawContext) Origin() Position {
	return dc.vpOrig
}

// Viewport returns the absolute clip rectangle of this context.
func (dc *DrawContext) Viewport() Rect {
	return dc.viewport
}

// DrawChild draws a child widget in a context derived from this one.
// Fully clipped children are pruned: their Draw is never called.
func (dc *DrawContext) DrawChild(child Widget) {
	childVP := child.Bounds().Offset(dc.offset)
	viewport, ok := childVP.ClipInside(dc.viewport)
	if !ok {
		return
	}
	if !child.IsClipped() {
		// unclipped widgets may paint over the whole parent area
		viewport = dc.viewport
	}
	vpOrig := child.ViewportOrigin()
	child.Draw(&DrawContext{
		backend:  dc.backend,
		viewport: viewport,
		offset:   childVP.Pos.Sub(vpOrig),
		vpOrig:   vpOrig,
	})
}

// Clear fills the entire viewport using the backend clear path.
func (dc *DrawContext) Clear(color Color) {
	dc.backend.Clear(color, dc.viewport)
}

// Fill covers the whole drawing area with a single color.
func (dc *DrawContext) Fill(color Color) {
	dc.DrawRect(RectFromSize(dc.viewport.Size).WithPos(dc.viewport.Pos.Sub(dc.offset)), color)
}

// DrawRect draws a filled rectangle in widget-local coordinates.
func (dc *DrawContext) DrawRect(rect Rect, color Color) {
	dc.DrawRectTinted(rect, nil, TintMul(color))
}

// DrawRectTinted draws a rectangle sampling the given image through a
// color transform. A nil image produces a solid fill.
func (dc *DrawContext) DrawRectTinted(rect Rect, image *Image, tint ColorOp) {
	p0 := CastPoint[float32](rect.Pos)
	p1 := CastPoint[float32](rect.End())
	verts := []Vertex{
		TexVertex(p0, tint, TexCoord{0, 0}),
		TexVertex(Pointf{X: p1.X, Y: p0.Y}, tint, TexCoord{1, 0}),
		TexVertex(p1, tint, TexCoord{1, 1}),
		TexVertex(Pointf{X: p0.X, Y: p1.Y}, tint, TexCoord{0, 1}),
	}
	// indices are local to this push, they cannot be out of range
	_ = dc.DrawTriangles(verts, []uint32{0, 1, 2, 0, 2, 3}, image)
}

// DrawImage draws an image at its natural size.
func (dc *DrawContext) DrawImage(pos Position, image *Image) {
	dc.DrawRectTinted(Rect{Pos: pos, Size: image.Size()}, image, ColorOpIdentity)
}

// DrawTriangle draws a single filled triangle in widget-local coordinates.
func (dc *DrawContext) DrawTriangle(p0, p1, p2 Pointf, color Color) {
	verts := []Vertex{
		ColorVertex(p0, color),
		ColorVertex(p1, color),
		ColorVertex(p2, color),
	}
	_ = dc.DrawTriangles(verts, []uint32{0, 1, 2}, nil)
}

// DrawTriangles submits widget-local triangle geometry.
func (dc *DrawContext) DrawTriangles(vertices []Vertex, indices []uint32, image *Image) error {
	delta := CastPoint[float32](dc.offset.Sub(dc.viewport.Pos))
	translated := make([]Vertex, len(vertices))
	for i, v := range vertices {
		translated[i] = v.Translate(delta)
	}
	return dc.backend.DrawTriangles(translated, indices, image, dc.viewport)
}

// DrawText draws a text run positioned in widget-local coordinates.
func (dc *DrawContext) DrawText(text string, font FontDesc, mode TextDrawMode, color Color) {
	dc.backend.DrawText(text, font, translateTextMode(mode, dc.offset), color, dc.viewport)
}
