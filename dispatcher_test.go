package rtk_test

import (
	"testing"

	"github.com/go-rtk/rtk"
)

func moveTo(x, y float64) rtk.Event {
	return rtk.MouseMovedEvent{Axis: rtk.AxisPosition{Pos: rtk.Point[float64]{X: x, Y: y}}}
}

func leftClick() rtk.Event {
	return rtk.MouseButtonEvent{State: rtk.Pressed, Button: rtk.MouseButtonLeft}
}

func keyPress(key rtk.Key) rtk.Event {
	return rtk.KeyboardEvent{State: rtk.Pressed, Key: key}
}

// dispatchTree builds:
//
//	a (0,0,100,100)
//	├── b (0,0,50,50)
//	│   └── d (10,10,20,20)
//	└── c (50,0,50,50)
func dispatchTree() (a, b, c, d *testNode) {
	d = newTestNode("d", rtk.NewRect(10, 10, 20, 20))
	b = newTestNode("b", rtk.NewRect(0, 0, 50, 50), d)
	c = newTestNode("c", rtk.NewRect(50, 0, 50, 50))
	a = newTestNode("a", rtk.NewRect(0, 0, 100, 100), b, c)
	return
}

func TestDispatchHitTesting(t *testing.T) {
	a, b, c, d := dispatchTree()
	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	disp.DispatchEvent(moveTo(15, 15), winSize, a)
	if id := disp.DispatchEvent(leftClick(), winSize, a); id != 0 {
		t.Errorf("nothing consumes, got consumer %v", id)
	}

	// d, b and a contain the pointer; c does not
	for _, n := range []*testNode{d, b, a} {
		if got := countEvents[rtk.MouseButtonEvent](n); got != 1 {
			t.Errorf("%s saw %d button events, want 1", n.name, got)
		}
	}
	if got := countEvents[rtk.MouseButtonEvent](c); got != 0 {
		t.Errorf("c saw %d button events, want 0", got)
	}
}

func TestDispatchConsumptionStopsAndNotifies(t *testing.T) {
	a, b, c, d := dispatchTree()
	d.result = rtk.Consumed

	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	// d consumes the positioning move as well, so clear the logs before
	// the click under test
	disp.DispatchEvent(moveTo(15, 15), winSize, a)
	d.events, b.events, a.events = nil, nil, nil
	b.consumed, a.consumed, c.consumed = nil, nil, nil

	if id := disp.DispatchEvent(leftClick(), winSize, a); id != d.ID() {
		t.Fatalf("consumer = %v, want d (%v)", id, d.ID())
	}

	// the event stops at d; b and a are notified instead of handled
	if len(b.events) != 0 || len(a.events) != 0 {
		t.Errorf("ancestors handled a consumed event: b=%d a=%d", len(b.events), len(a.events))
	}
	if len(b.consumed) != 1 || b.consumed[0] != d.ID() {
		t.Errorf("b consumed notices = %v, want [%v]", b.consumed, d.ID())
	}
	if len(a.consumed) != 1 || a.consumed[0] != d.ID() {
		t.Errorf("a consumed notices = %v, want [%v]", a.consumed, d.ID())
	}
	if len(c.consumed) != 0 {
		t.Errorf("c is not an ancestor but got notices: %v", c.consumed)
	}
}

func TestDispatchDeepestFirst(t *testing.T) {
	a, b, _, d := dispatchTree()
	// both claim clicks; the deeper widget must win
	d.result = rtk.Consumed
	b.result = rtk.Consumed

	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	disp.DispatchEvent(moveTo(15, 15), winSize, a)
	if id := disp.DispatchEvent(leftClick(), winSize, a); id != d.ID() {
		t.Errorf("consumer = %v, want the deeper widget %v", id, d.ID())
	}

	// outside d but inside b, the parent takes it
	disp2 := rtk.EventDispatcher{}
	disp2.DispatchEvent(moveTo(45, 45), winSize, a)
	if id := disp2.DispatchEvent(leftClick(), winSize, a); id != b.ID() {
		t.Errorf("consumer = %v, want b (%v)", id, b.ID())
	}
}

func TestDispatchWidgetRelativePosition(t *testing.T) {
	a, _, _, d := dispatchTree()
	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	disp.DispatchEvent(moveTo(15, 17), winSize, a)
	disp.DispatchEvent(leftClick(), winSize, a)

	ctx := lastContext[rtk.MouseButtonEvent](t, d)
	if ctx.PointerPos != (rtk.Point[float64]{X: 5, Y: 7}) {
		t.Errorf("d pointer pos = %v, want {5 7}", ctx.PointerPos)
	}
	if ctx.AbsPos != (rtk.Point[float64]{X: 15, Y: 17}) {
		t.Errorf("abs pos = %v, want {15 17}", ctx.AbsPos)
	}

	actx := lastContext[rtk.MouseButtonEvent](t, a)
	if actx.PointerPos != (rtk.Point[float64]{X: 15, Y: 17}) {
		t.Errorf("a pointer pos = %v, want {15 17}", actx.PointerPos)
	}
}

func TestDispatchViewportOriginShiftsChildren(t *testing.T) {
	a, b, _, d := dispatchTree()
	// scroll b's content right by 5: d's absolute rect becomes (5,10,20,20)
	b.origin = rtk.Position{X: 5, Y: 0}

	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	disp.DispatchEvent(moveTo(7, 12), winSize, a)
	disp.DispatchEvent(leftClick(), winSize, a)
	if got := countEvents[rtk.MouseButtonEvent](d); got != 1 {
		t.Errorf("scrolled d saw %d button events, want 1", got)
	}

	// the former left edge position no longer hits d
	disp.DispatchEvent(moveTo(27, 12), winSize, a)
	disp.DispatchEvent(leftClick(), winSize, a)
	if got := countEvents[rtk.MouseButtonEvent](d); got != 1 {
		t.Errorf("d saw %d button events after scrolled-out click, want still 1", got)
	}
}

func TestDispatchClippedChildUnreachable(t *testing.T) {
	// leaf sticks out of its parent; the overhang must not be hittable
	leaf := newTestNode("leaf", rtk.NewRect(40, 0, 30, 20))
	parent := newTestNode("parent", rtk.NewRect(0, 0, 50, 50), leaf)
	root := newTestNode("root", rtk.NewRect(0, 0, 100, 100), parent)
	leaf.result = rtk.Consumed

	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	disp.DispatchEvent(moveTo(45, 10), winSize, root)
	if id := disp.DispatchEvent(leftClick(), winSize, root); id != leaf.ID() {
		t.Errorf("consumer = %v, want leaf inside parent", id)
	}

	disp2 := rtk.EventDispatcher{}
	disp2.DispatchEvent(moveTo(60, 10), winSize, root)
	disp2.DispatchEvent(leftClick(), winSize, root)
	if got := countEvents[rtk.MouseButtonEvent](leaf); got != 1 {
		t.Errorf("leaf overhang was hittable: %d button events", got)
	}
}

func TestKeyboardBroadcast(t *testing.T) {
	a, b, c, d := dispatchTree()
	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	if id := disp.DispatchEvent(keyPress(rtk.KeyA), winSize, a); id != 0 {
		t.Errorf("unconsumed broadcast returned %v", id)
	}
	for _, n := range []*testNode{a, b, c, d} {
		if got := countEvents[rtk.KeyboardEvent](n); got != 1 {
			t.Errorf("%s saw %d keyboard events, want 1", n.name, got)
		}
	}

	// a consumer stops the broadcast
	b.result = rtk.Consumed
	if id := disp.DispatchEvent(keyPress(rtk.KeyB), winSize, a); id != b.ID() {
		t.Errorf("consumer = %v, want b", id)
	}
	if got := countEvents[rtk.KeyboardEvent](c); got != 1 {
		t.Errorf("c saw %d keyboard events, want still 1", got)
	}
}

func TestKeyboardFocusedPolicy(t *testing.T) {
	a, b, c, d := dispatchTree()
	disp := rtk.EventDispatcher{Policy: rtk.KeyboardFocused}
	winSize := rtk.Sz(100, 100)

	// no focus set: keyboard input is dropped
	disp.DispatchEvent(keyPress(rtk.KeyA), winSize, a)
	for _, n := range []*testNode{a, b, c, d} {
		if got := countEvents[rtk.KeyboardEvent](n); got != 0 {
			t.Errorf("%s saw %d keyboard events without focus", n.name, got)
		}
	}

	disp.SetFocus(c.ID())
	disp.DispatchEvent(keyPress(rtk.KeyA), winSize, a)
	if got := countEvents[rtk.KeyboardEvent](c); got != 1 {
		t.Errorf("focused c saw %d keyboard events, want 1", got)
	}
	for _, n := range []*testNode{a, b, d} {
		if got := countEvents[rtk.KeyboardEvent](n); got != 0 {
			t.Errorf("unfocused %s saw %d keyboard events", n.name, got)
		}
	}
}

func TestHoverEnterLeave(t *testing.T) {
	a, _, c, d := dispatchTree()
	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	disp.DispatchEvent(moveTo(15, 15), winSize, a)
	if disp.Hovered() != d.ID() {
		t.Fatalf("hovered = %v, want d (%v)", disp.Hovered(), d.ID())
	}
	if got := insideNotices(d); !equalBools(got, []bool{true}) {
		t.Errorf("d inside notices = %v, want [true]", got)
	}

	disp.DispatchEvent(moveTo(60, 10), winSize, a)
	if disp.Hovered() != c.ID() {
		t.Fatalf("hovered = %v, want c (%v)", disp.Hovered(), c.ID())
	}
	if got := insideNotices(d); !equalBools(got, []bool{true, false}) {
		t.Errorf("d inside notices = %v, want [true false]", got)
	}
	if got := insideNotices(c); !equalBools(got, []bool{true}) {
		t.Errorf("c inside notices = %v, want [true]", got)
	}

	// moving within the same widget sends no further notices
	disp.DispatchEvent(moveTo(61, 11), winSize, a)
	if got := insideNotices(c); !equalBools(got, []bool{true}) {
		t.Errorf("c inside notices after same-widget move = %v", got)
	}
}

func TestHoverNoticeCarriesWidgetRelativePosition(t *testing.T) {
	a, _, _, d := dispatchTree()
	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	// d sits at absolute (10, 10)
	disp.DispatchEvent(moveTo(15, 17), winSize, a)

	ctx := lastContext[rtk.PointerInsideEvent](t, d)
	if ctx.PointerPos != (rtk.Point[float64]{X: 5, Y: 7}) {
		t.Errorf("enter notice pointer = %v, want {5 7}", ctx.PointerPos)
	}
	if ctx.AbsPos != (rtk.Point[float64]{X: 15, Y: 17}) {
		t.Errorf("enter notice abs = %v, want {15 17}", ctx.AbsPos)
	}

	// leaving d delivers the leave notice with the new position
	disp.DispatchEvent(moveTo(60, 10), winSize, a)
	ctx = lastContext[rtk.PointerInsideEvent](t, d)
	if ctx.PointerPos != (rtk.Point[float64]{X: 50, Y: 0}) {
		t.Errorf("leave notice pointer = %v, want {50 0}", ctx.PointerPos)
	}
}

func TestDispatchTracksButtonsAndMods(t *testing.T) {
	a, _, _, d := dispatchTree()
	var disp rtk.EventDispatcher
	winSize := rtk.Sz(100, 100)

	disp.DispatchEvent(moveTo(15, 15), winSize, a)
	disp.DispatchEvent(keyPress(rtk.KeyShiftLeft), winSize, a)
	disp.DispatchEvent(leftClick(), winSize, a)

	ctx := lastContext[rtk.MouseButtonEvent](t, d)
	if !ctx.Buttons.Left() {
		t.Error("left button should be tracked as pressed during its own press")
	}
	if !ctx.Mods.Shift {
		t.Error("shift modifier should be tracked")
	}

	disp.DispatchEvent(rtk.MouseButtonEvent{State: rtk.Released, Button: rtk.MouseButtonLeft}, winSize, a)
	disp.DispatchEvent(rtk.KeyboardEvent{State: rtk.Released, Key: rtk.KeyShiftLeft}, winSize, a)
	disp.DispatchEvent(moveTo(16, 16), winSize, a)

	mctx := lastContext[rtk.MouseMovedEvent](t, d)
	if mctx.Buttons.Left() || mctx.Mods.Shift {
		t.Errorf("state not cleared after release: %+v", mctx)
	}
}

func TestWindowLevelEventsNotRouted(t *testing.T) {
	a, _, _, _ := dispatchTree()
	var disp rtk.EventDispatcher

	if id := disp.DispatchEvent(rtk.ResizedEvent{Size: rtk.Sz(10, 10)}, rtk.Sz(100, 100), a); id != 0 {
		t.Errorf("window event consumed by %v", id)
	}
	if len(a.events) != 0 {
		t.Errorf("window event reached a widget: %v", a.events)
	}
}

func countEvents[E rtk.Event](n *testNode) int {
	count := 0
	for _, ev := range n.events {
		if _, ok := ev.(E); ok {
			count++
		}
	}
	return count
}

func lastContext[E rtk.Event](t *testing.T, n *testNode) rtk.EventContext {
	t.Helper()
	for i := len(n.events) - 1; i >= 0; i-- {
		if _, ok := n.events[i].(E); ok {
			return n.contexts[i]
		}
	}
	t.Fatalf("%s saw no matching event", n.name)
	return rtk.EventContext{}
}

func insideNotices(n *testNode) []bool {
	var out []bool
	for _, ev := range n.events {
		if pi, ok := ev.(rtk.PointerInsideEvent); ok {
			out = append(out, pi.Inside)
		}
	}
	return out
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
