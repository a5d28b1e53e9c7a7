// Example demonstrates a window hosting a scrollable colored board with
// a row of clickable swatches.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Click a swatch to copy its color onto the board, hover the board to
// brighten it, and use the arrow keys to scroll the board contents.
package main

import (
	"fmt"
	"os"

	"github.com/go-rtk/rtk"
	"github.com/go-rtk/rtk/backend/opengl"
)

// board is a container that reacts to clicks, hover and arrow keys.
type board struct {
	rtk.Base

	color  rtk.Color
	hover  bool
	origin rtk.Position
	childs []*swatch
}

func (b *board) ChildrenVisit(fn func(rtk.Widget) bool) {
	for _, child := range b.childs {
		if !fn(child) {
			return
		}
	}
}

func (b *board) ViewportOrigin() rtk.Position {
	return b.origin
}

func (b *board) UpdateLayout(parent rtk.Rect, res rtk.Resources) {
	for _, child := range b.childs {
		child.UpdateLayout(b.Bounds(), res)
	}
	b.SetSize(parent.Size.SaturatingSub(b.Position().AsSize()))
	rtk.FlowHoriz(b.childs, rtk.VAlignBottom, b.Size().W, 0, 0)
}

func (b *board) Draw(dc *rtk.DrawContext) {
	color := b.color
	if b.hover {
		color = color.Add(rtk.Gray(0.05))
	}
	dc.DrawRect(rtk.Rect{Pos: dc.Origin(), Size: b.Size()}, color)
	dc.DrawTriangle(
		rtk.Pointf{X: 10, Y: 110},
		rtk.Pointf{X: 100, Y: 150},
		rtk.Pointf{X: 50, Y: 200},
		rtk.ColorBlue.WithAlpha(0.5),
	)
	dc.DrawText(
		fmt.Sprintf("%v", b.color),
		rtk.FontDesc{},
		rtk.TextBounded{
			Rect:   rtk.RectFromSize(b.Size()),
			HAlign: rtk.HAlignCenter,
			VAlign: rtk.VAlignCenter,
		},
		rtk.ColorWhite,
	)
	for _, child := range b.childs {
		dc.DrawChild(child)
	}
}

func (b *board) HandleEvent(ev rtk.Event, ctx rtk.EventContext) rtk.EventResult {
	switch ev := ev.(type) {
	case rtk.MouseButtonEvent:
		if ev.State == rtk.Pressed && ev.Button == rtk.MouseButtonLeft {
			fmt.Printf("board clicked at %v\n", ctx.PointerPos)
			b.color = rtk.ColorWhite
			return rtk.Consumed
		}
	case rtk.KeyboardEvent:
		if ev.State != rtk.Pressed {
			break
		}
		switch ev.Key {
		case rtk.KeyLeft:
			b.origin.X--
		case rtk.KeyRight:
			b.origin.X++
		case rtk.KeyUp:
			b.origin.Y--
		case rtk.KeyDown:
			b.origin.Y++
		default:
			return rtk.Pass
		}
		return rtk.Consumed
	case rtk.PointerInsideEvent:
		b.hover = ev.Inside
		return rtk.Consumed
	}
	return rtk.Pass
}

// EventConsumed mirrors the clicked swatch's color onto the board.
func (b *board) EventConsumed(ev rtk.Event, ctx rtk.EventContext) {
	if mb, ok := ev.(rtk.MouseButtonEvent); ok && mb.State == rtk.Pressed {
		for _, child := range b.childs {
			if child.ID() == ctx.Consumer {
				b.color = child.color
				return
			}
		}
	}
}

// swatch is a small colored leaf that consumes left clicks.
type swatch struct {
	rtk.Base

	color rtk.Color
	label string
}

func (s *swatch) UpdateLayout(rtk.Rect, rtk.Resources) {}

func (s *swatch) Draw(dc *rtk.DrawContext) {
	// the swatch is unclipped, so Fill would cover the whole board;
	// paint only the swatch's own extent
	dc.DrawRect(rtk.RectFromSize(s.Size()), s.color)
	dc.DrawText(s.label, rtk.FontDesc{}, rtk.TextAt{}, rtk.ColorBlack)
}

func (s *swatch) HandleEvent(ev rtk.Event, ctx rtk.EventContext) rtk.EventResult {
	if mb, ok := ev.(rtk.MouseButtonEvent); ok && mb.State == rtk.Pressed && mb.Button == rtk.MouseButtonLeft {
		fmt.Printf("swatch %s clicked at %v\n", s.label, ctx.PointerPos)
		return rtk.Consumed
	}
	return rtk.Pass
}

func (s *swatch) IsClipped() bool { return false }

func main() {
	root := &board{
		Base:  rtk.NewBase(rtk.NewRect(20, 10, 320, 240)),
		color: rtk.ColorWhite,
	}
	for i := 0; i < 20; i++ {
		v := float32(i) / 19
		s := uint32(i % 7)
		root.childs = append(root.childs, &swatch{
			Base:  rtk.NewBase(rtk.NewRect(0, 0, 30+s, 30+s*2)),
			color: rtk.HSL(v*360, 1, 0.5),
			label: fmt.Sprint(i),
		})
	}

	win := rtk.NewWindow(root,
		rtk.WithTitle("awoo"),
		rtk.WithBackground(rtk.Gray(0.1)),
		rtk.WithResizable(true),
		rtk.WithDecorations(true),
	)

	if err := opengl.Run(win); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
