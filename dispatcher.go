package rtk

import "time"

// KeyboardPolicy selects how keyboard and character events are routed.
type KeyboardPolicy uint8

const (
	// KeyboardBroadcast delivers keyboard input to every visited widget
	// until one consumes it.
	KeyboardBroadcast KeyboardPolicy = iota
	// KeyboardFocused delivers keyboard input only to the widget holding
	// focus. With no focus set, keyboard input is dropped.
	KeyboardFocused
)

// DispatchContext is the per-node state threaded through an event walk:
// the node's absolute clip-narrowed viewport and the absolute origin its
// children's bounds are relative to (viewport origin folded in).
type DispatchContext struct {
	Viewport Rect
	Offset   Position
}

// EventDispatcher routes input events over a widget tree. It hit-tests
// position-carrying events against each node's absolute bounds and
// delivers bottom-up, so a widget sees the event before its ancestors.
// Traversal stops at the first consumer and the consumer's ancestors are
// notified while unwinding.
//
// The dispatcher also tracks aggregate input state (pointer position,
// button and modifier state, hovered widget) across events, so each
// dispatched event carries a complete EventContext snapshot.
type EventDispatcher struct {
	// Policy selects keyboard routing; broadcast matches the historical
	// behavior, focused routing uses the focus widget set via SetFocus.
	Policy KeyboardPolicy

	focus      WidgetID
	event      Event
	ctx        EventContext
	lastInside WidgetID
	inside     WidgetID
	consumer   WidgetID

	pointer Point[float64]
	buttons ButtonState
	mods    ModState
}

// SetFocus sets the widget receiving keyboard input under KeyboardFocused.
func (d *EventDispatcher) SetFocus(id WidgetID) {
	d.focus = id
}

// Focus returns the current keyboard focus widget.
func (d *EventDispatcher) Focus() WidgetID {
	return d.focus
}

// Hovered returns the widget currently under the pointer, if any.
func (d *EventDispatcher) Hovered() WidgetID {
	return d.lastInside
}

// DispatchEvent routes one event through the tree rooted at root, with
// the window occupying winSize. It returns the consuming widget's ID, or
// zero when no widget consumed the event.
func (d *EventDispatcher) DispatchEvent(ev Event, winSize Size, root Widget) WidgetID {
	d.trackState(ev)

	d.event = ev
	d.consumer = 0
	d.ctx = EventContext{
		Timestamp: time.Now(),
		AbsPos:    d.pointer,
		Buttons:   d.buttons,
		Mods:      d.mods,
	}

	isMove := false
	if mv, ok := ev.(MouseMovedEvent); ok {
		if _, ok := mv.Axis.(AxisPosition); ok {
			isMove = true
			d.inside = 0
		}
	}

	rootCtx := DispatchContext{Viewport: RectFromSize(winSize)}
	Accept(root, d, rootCtx)

	if isMove && d.inside != d.lastInside {
		// hovered widget changed, deliver enter/leave notices directly
		if d.lastInside.Valid() {
			deliverTo(root, rootCtx, d.lastInside, PointerInsideEvent{Inside: false}, d.ctx)
		}
		if d.inside.Valid() {
			deliverTo(root, rootCtx, d.inside, PointerInsideEvent{Inside: true}, d.ctx)
		}
		d.lastInside = d.inside
	}

	return d.consumer
}

// trackState folds the event into the aggregate input state. The backend
// delivers modifier changes before the key/button events depending on
// them, so this runs before dispatch.
func (d *EventDispatcher) trackState(ev Event) {
	switch ev := ev.(type) {
	case MouseMovedEvent:
		if ax, ok := ev.Axis.(AxisPosition); ok {
			d.pointer = ax.Pos
		}
	case MouseButtonEvent:
		if ev.State == Pressed {
			d.buttons.Set(ev.Button)
		} else {
			d.buttons.Unset(ev.Button)
		}
	case KeyboardEvent:
		pressed := ev.State == Pressed
		switch ev.Key {
		case KeyShiftLeft, KeyShiftRight:
			d.mods.Shift = pressed
		case KeyControlLeft, KeyControlRight:
			d.mods.Ctrl = pressed
		case KeyAltLeft, KeyAltRight:
			d.mods.Alt = pressed
		case KeySuperLeft, KeySuperRight:
			d.mods.Meta = pressed
		}
	}
}

// Finished implements Visitor; the walk stops once a widget consumed.
func (d *EventDispatcher) Finished() bool {
	return d.consumer.Valid()
}

// NewContext implements Visitor: the node's bounds are offset into
// absolute coordinates and clipped against the parent viewport. A fully
// clipped node prunes its whole subtree.
func (d *EventDispatcher) NewContext(w Widget, parent DispatchContext) (DispatchContext, bool) {
	abs := w.Bounds().Offset(parent.Offset)
	viewport, ok := abs.ClipInside(parent.Viewport)
	if !ok {
		return DispatchContext{}, false
	}
	return DispatchContext{
		Viewport: viewport,
		Offset:   abs.Pos.Sub(w.ViewportOrigin()),
	}, true
}

// VisitBefore implements Visitor. Delivery happens on the way out, so
// descendants get the event before their ancestors.
func (d *EventDispatcher) VisitBefore(Widget, DispatchContext) {}

// VisitAfter implements Visitor: deliver the event to the node unless a
// descendant already consumed it, in which case the node is notified
// through EventConsumed instead.
func (d *EventDispatcher) VisitAfter(w Widget, ctx DispatchContext) {
	if d.consumer.Valid() {
		if w.ID() != d.consumer {
			ectx := d.widgetContext(ctx)
			ectx.Consumer = d.consumer
			w.EventConsumed(d.event, ectx)
		}
		return
	}
	if d.dispatch(w, ctx).IsConsumed() {
		d.consumer = w.ID()
	}
}

// dispatch applies the per-kind routing rule against the node's absolute
// bounds and hands the event over when it applies.
func (d *EventDispatcher) dispatch(w Widget, ctx DispatchContext) EventResult {
	switch ev := d.event.(type) {
	case KeyboardEvent, CharacterEvent:
		if d.Policy == KeyboardFocused && w.ID() != d.focus {
			return Pass
		}
		return w.HandleEvent(d.event, d.widgetContext(ctx))
	case MouseMovedEvent:
		if !d.pointer.Inside(ctx.Viewport) {
			return Pass
		}
		// delivery is bottom-up, so the first containing node is the
		// deepest one and wins the hover
		if _, isPos := ev.Axis.(AxisPosition); isPos && !d.inside.Valid() {
			d.inside = w.ID()
		}
		return w.HandleEvent(d.event, d.widgetContext(ctx))
	case MouseButtonEvent:
		if !d.pointer.Inside(ctx.Viewport) {
			return Pass
		}
		return w.HandleEvent(d.event, d.widgetContext(ctx))
	case FileDroppedEvent:
		if !d.pointer.Inside(ctx.Viewport) {
			return Pass
		}
		return w.HandleEvent(d.event, d.widgetContext(ctx))
	default:
		// window-level events are not routed to widgets
		return Pass
	}
}

// widgetContext derives the widget-relative event context for a node.
func (d *EventDispatcher) widgetContext(ctx DispatchContext) EventContext {
	ectx := d.ctx
	ectx.PointerPos = d.pointer.Sub(CastPoint[float64](ctx.Offset))
	return ectx
}

// deliverTo hands an event directly to one widget by ID, bypassing the
// hit-testing rules. Used for pointer enter/leave notices.
func deliverTo(root Widget, rootCtx DispatchContext, target WidgetID, ev Event, ctx EventContext) {
	n := &targetedDelivery{target: target, event: ev, ctx: ctx}
	Accept(root, n, rootCtx)
}

// targetedDelivery is a visitor that finds one widget and delivers a
// single event to it with a widget-relative pointer position.
type targetedDelivery struct {
	target WidgetID
	event  Event
	ctx    EventContext
	done   bool
}

func (n *targetedDelivery) Finished() bool {
	return n.done
}

func (n *targetedDelivery) NewContext(w Widget, parent DispatchContext) (DispatchContext, bool) {
	abs := w.Bounds().Offset(parent.Offset)
	viewport, ok := abs.ClipInside(parent.Viewport)
	if !ok {
		return DispatchContext{}, false
	}
	return DispatchContext{
		Viewport: viewport,
		Offset:   abs.Pos.Sub(w.ViewportOrigin()),
	}, true
}

func (n *targetedDelivery) VisitBefore(w Widget, ctx DispatchContext) {
	if w.ID() != n.target {
		return
	}
	ectx := n.ctx
	ectx.PointerPos = ectx.AbsPos.Sub(CastPoint[float64](ctx.Offset))
	w.HandleEvent(n.event, ectx)
	n.done = true
}

func (n *targetedDelivery) VisitAfter(Widget, DispatchContext) {}
