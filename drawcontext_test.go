package rtk_test

import (
	"testing"

	"github.com/go-rtk/rtk"
)

func TestDrawChildPrunesFullyClipped(t *testing.T) {
	visible := newTestNode("visible", rtk.NewRect(10, 10, 20, 20))
	offscreen := newTestNode("offscreen", rtk.NewRect(200, 200, 20, 20))
	root := newTestNode("root", rtk.NewRect(0, 0, 100, 100), visible, offscreen)

	q := rtk.NewDrawQueue()
	dc := rtk.NewDrawContext(q, rtk.NewRect(0, 0, 100, 100))
	dc.DrawChild(root)

	if visible.draws != 1 {
		t.Errorf("visible child drawn %d times, want 1", visible.draws)
	}
	if offscreen.draws != 0 {
		t.Errorf("fully clipped child drawn %d times, want 0", offscreen.draws)
	}
}

func TestDrawChildNarrowsViewport(t *testing.T) {
	// child extends past the parent's right edge
	child := &viewportProbe{Base: rtk.NewBase(rtk.NewRect(40, 0, 30, 20))}

	q := rtk.NewDrawQueue()
	dc := rtk.NewDrawContext(q, rtk.NewRect(0, 0, 50, 50))
	dc.DrawChild(child)

	want := rtk.NewRect(40, 0, 10, 20)
	if child.viewport != want {
		t.Errorf("child viewport = %v, want %v", child.viewport, want)
	}
}

func TestDrawChildUnclippedKeepsParentViewport(t *testing.T) {
	child := &viewportProbe{Base: rtk.NewBase(rtk.NewRect(40, 0, 30, 20)), unclipped: true}

	q := rtk.NewDrawQueue()
	parentVP := rtk.NewRect(0, 0, 50, 50)
	dc := rtk.NewDrawContext(q, parentVP)
	dc.DrawChild(child)

	if child.viewport != parentVP {
		t.Errorf("unclipped child viewport = %v, want parent %v", child.viewport, parentVP)
	}
}

func TestDrawRectLocalCoordinates(t *testing.T) {
	// a widget at (10,10) drawing at its local origin lands at the
	// window position of the widget
	child := &rectDrawer{Base: rtk.NewBase(rtk.NewRect(10, 10, 20, 20))}

	q := rtk.NewDrawQueue()
	dc := rtk.NewDrawContext(q, rtk.NewRect(0, 0, 100, 100))
	dc.DrawChild(child)

	if len(q.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(q.Vertices))
	}
	if got := q.Vertices[0].Pos; got != (rtk.Pointf{X: 10, Y: 10}) {
		t.Errorf("first vertex at %v, want {10 10}", got)
	}
	if got := q.Vertices[2].Pos; got != (rtk.Pointf{X: 30, Y: 30}) {
		t.Errorf("third vertex at %v, want {30 30}", got)
	}
}

func TestFillOnUnclippedChildSpansParentViewport(t *testing.T) {
	// Fill covers the whole drawing area. For an unclipped child that
	// area is the parent viewport, not the child's bounds.
	child := &fillDrawer{Base: rtk.NewBase(rtk.NewRect(10, 10, 30, 30)), unclipped: true}

	q := rtk.NewDrawQueue()
	dc := rtk.NewDrawContext(q, rtk.NewRect(0, 0, 320, 240))
	dc.DrawChild(child)

	if len(q.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(q.Vertices))
	}
	if got := q.Vertices[0].Pos; got != (rtk.Pointf{X: 0, Y: 0}) {
		t.Errorf("first vertex at %v, want {0 0}", got)
	}
	if got := q.Vertices[2].Pos; got != (rtk.Pointf{X: 320, Y: 240}) {
		t.Errorf("third vertex at %v, want {320 240}", got)
	}
}

func TestUnclippedChildDrawRectKeepsOwnExtent(t *testing.T) {
	// an unclipped widget that wants to paint only itself draws a rect
	// of its own size instead of calling Fill
	child := &rectDrawer{Base: rtk.NewBase(rtk.NewRect(10, 10, 30, 30)), unclipped: true}

	q := rtk.NewDrawQueue()
	dc := rtk.NewDrawContext(q, rtk.NewRect(0, 0, 320, 240))
	dc.DrawChild(child)

	if len(q.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(q.Vertices))
	}
	if got := q.Vertices[0].Pos; got != (rtk.Pointf{X: 10, Y: 10}) {
		t.Errorf("first vertex at %v, want {10 10}", got)
	}
	if got := q.Vertices[2].Pos; got != (rtk.Pointf{X: 40, Y: 40}) {
		t.Errorf("third vertex at %v, want {40 40}", got)
	}
}

func TestClearCoversViewport(t *testing.T) {
	q := rtk.NewDrawQueue()
	vp := rtk.NewRect(5, 5, 50, 50)
	dc := rtk.NewDrawContext(q, vp)
	dc.Clear(rtk.ColorBlack)

	if len(q.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(q.Commands))
	}
	clear, ok := q.Commands[0].(rtk.ClearCmd)
	if !ok {
		t.Fatalf("expected ClearCmd, got %T", q.Commands[0])
	}
	if clear.Viewport != vp {
		t.Errorf("clear viewport = %v, want %v", clear.Viewport, vp)
	}
}

// viewportProbe records the viewport its Draw runs with.
type viewportProbe struct {
	rtk.Base
	unclipped bool
	viewport  rtk.Rect
}

func (p *viewportProbe) UpdateLayout(rtk.Rect, rtk.Resources) {}

func (p *viewportProbe) Draw(dc *rtk.DrawContext) {
	p.viewport = dc.Viewport()
}

func (p *viewportProbe) HandleEvent(rtk.Event, rtk.EventContext) rtk.EventResult {
	return rtk.Pass
}

func (p *viewportProbe) IsClipped() bool { return !p.unclipped }

// rectDrawer fills its own area with a single rect at the local origin.
type rectDrawer struct {
	rtk.Base
	unclipped bool
}

func (r *rectDrawer) UpdateLayout(rtk.Rect, rtk.Resources) {}

func (r *rectDrawer) Draw(dc *rtk.DrawContext) {
	dc.DrawRect(rtk.RectFromSize(r.Size()), rtk.ColorRed)
}

func (r *rectDrawer) HandleEvent(rtk.Event, rtk.EventContext) rtk.EventResult {
	return rtk.Pass
}

func (r *rectDrawer) IsClipped() bool { return !r.unclipped }

// fillDrawer covers its whole drawing area with Fill.
type fillDrawer struct {
	rtk.Base
	unclipped bool
}

func (f *fillDrawer) UpdateLayout(rtk.Rect, rtk.Resources) {}

func (f *fillDrawer) Draw(dc *rtk.DrawContext) {
	dc.Fill(rtk.ColorGreen)
}

func (f *fillDrawer) HandleEvent(rtk.Event, rtk.EventContext) rtk.EventResult {
	return rtk.Pass
}

func (f *fillDrawer) IsClipped() bool { return !f.unclipped }
