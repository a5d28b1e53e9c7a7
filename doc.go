/*
Package rtk provides the core of a retained-mode widget toolkit: a widget
tree with generic traversal, an event dispatcher with hit-testing and
consumption, and a draw-command batching engine that backends execute.

# Overview

Applications build a tree of Widget values once and keep it alive across
frames. The toolkit walks that tree for three purposes: layout
(UpdateLayout), drawing (Draw through a DrawContext) and input routing
(HandleEvent through the EventDispatcher). All three are built on the same
traversal primitive, the generic Accept function, so a widget only has to
expose its children once via ChildrenVisit.

# Quick Start

	// A panel holding two colored children.
	root := rtk.NewPanel(rtk.NewRect(0, 0, 320, 240), rtk.Gray(0.1))
	root.AddChild(rtk.NewPanel(rtk.NewRect(10, 10, 100, 100), rtk.ColorRed))
	root.AddChild(rtk.NewPanel(rtk.NewRect(120, 10, 100, 100), rtk.ColorBlue))

	win := rtk.NewWindow(root,
	    rtk.WithTitle("demo"),
	    rtk.WithBackground(rtk.ColorBlack),
	)

	// The opengl backend owns the OS window and the frame loop.
	if err := opengl.Run(win); err != nil {
	    log.Fatal(err)
	}

# Widgets

Widget is a composition of small capability interfaces: ObjectID for
identity, BoundedObject for geometry, Visitable for traversal, plus the
layout, drawing and event-handling methods. Embed Base to get identity,
bounds storage and sensible leaf defaults, then implement UpdateLayout,
Draw and HandleEvent.

Container widgets additionally override ChildrenVisit to expose their
children, and may override ViewportOrigin to scroll their content and
IsClipped to let children paint outside their bounds.

# Drawing

Widgets draw in their own local coordinates through a DrawContext, which
carries the absolute clip rectangle down the tree. Geometry accumulates in
a DrawQueue: shared vertex and index buffers plus a minimal list of
coalesced draw commands, rebuilt every frame. Consecutive pushes that
share primitive kind, texture and viewport merge into one command, so a
backend typically issues far fewer GPU calls than the tree issued draws.

Fully clipped children are pruned before their Draw method runs.

# Events

Backends translate native input into the Event variants and feed them to
Window.PushEvent. Position-carrying events are routed by hit-testing
against each widget's clipped absolute viewport; keyboard and character
events are broadcast, or sent to a single focused widget when the
dispatcher's KeyboardPolicy says so. A widget returns Consumed to claim an
event, which stops the traversal and notifies the widget's ancestors
through EventConsumed.

Colors are linear-space throughout; use the SRGB constructors when
converting from 8-bit component values.
*/
package rtk
