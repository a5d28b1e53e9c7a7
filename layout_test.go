package rtk_test

import (
	"testing"

	"github.com/go-rtk/rtk"
)

func TestAttachmentHelpers(t *testing.T) {
	anchor := rtk.NewRect(10, 20, 30, 40)
	w := rtk.EmptyWithBounds(rtk.NewRect(0, 0, 10, 10))

	rtk.RightOf(w, anchor, 5)
	if got := w.Position().X; got != 45 {
		t.Errorf("RightOf x = %d, want 45", got)
	}

	rtk.Below(w, anchor, 5)
	if got := w.Position().Y; got != 65 {
		t.Errorf("Below y = %d, want 65", got)
	}

	rtk.LeftOf(w, anchor, 0)
	if got := w.Position().X; got != 0 {
		t.Errorf("LeftOf x = %d, want 0", got)
	}

	rtk.Above(w, anchor, 2)
	if got := w.Position().Y; got != 8 {
		t.Errorf("Above y = %d, want 8", got)
	}

	rtk.AlignHCenter(w, anchor)
	if got := w.Position().X; got != 20 {
		t.Errorf("AlignHCenter x = %d, want 20", got)
	}

	rtk.AlignVCenter(w, anchor)
	if got := w.Position().Y; got != 35 {
		t.Errorf("AlignVCenter y = %d, want 35", got)
	}
}

func TestFlowHoriz(t *testing.T) {
	items := []*rtk.Empty{
		rtk.EmptyWithSize(rtk.Sz(30, 10)),
		rtk.EmptyWithSize(rtk.Sz(30, 20)),
		rtk.EmptyWithSize(rtk.Sz(30, 15)),
	}

	// wide enough for one row
	content := rtk.FlowHoriz(items, rtk.VAlignTop, 100, 0, 0)
	if content != rtk.Sz(90, 20) {
		t.Errorf("content = %v, want {90 20}", content)
	}
	wantX := []int32{0, 30, 60}
	for i, item := range items {
		if got := item.Position(); got.X != wantX[i] || got.Y != 0 {
			t.Errorf("item %d at %v, want {%d 0}", i, got, wantX[i])
		}
	}
}

func TestFlowHorizWraps(t *testing.T) {
	items := []*rtk.Empty{
		rtk.EmptyWithSize(rtk.Sz(30, 10)),
		rtk.EmptyWithSize(rtk.Sz(30, 20)),
		rtk.EmptyWithSize(rtk.Sz(30, 15)),
	}

	content := rtk.FlowHoriz(items, rtk.VAlignTop, 70, 5, 5)
	// rows: [0 1] then [2]
	if got := items[0].Position(); got != (rtk.Position{X: 0, Y: 0}) {
		t.Errorf("item 0 at %v", got)
	}
	if got := items[1].Position(); got != (rtk.Position{X: 35, Y: 0}) {
		t.Errorf("item 1 at %v", got)
	}
	if got := items[2].Position(); got != (rtk.Position{X: 0, Y: 25}) {
		t.Errorf("item 2 at %v", got)
	}
	if content != rtk.Sz(65, 40) {
		t.Errorf("content = %v, want {65 40}", content)
	}
}

func TestFlowHorizBottomAlign(t *testing.T) {
	items := []*rtk.Empty{
		rtk.EmptyWithSize(rtk.Sz(10, 10)),
		rtk.EmptyWithSize(rtk.Sz(10, 30)),
	}

	rtk.FlowHoriz(items, rtk.VAlignBottom, 100, 0, 0)
	if got := items[0].Position().Y; got != 20 {
		t.Errorf("short item y = %d, want 20 (bottom aligned)", got)
	}
	if got := items[1].Position().Y; got != 0 {
		t.Errorf("tall item y = %d, want 0", got)
	}
}

func TestFlowVert(t *testing.T) {
	items := []*rtk.Empty{
		rtk.EmptyWithSize(rtk.Sz(10, 30)),
		rtk.EmptyWithSize(rtk.Sz(20, 30)),
		rtk.EmptyWithSize(rtk.Sz(15, 30)),
	}

	content := rtk.FlowVert(items, rtk.HAlignLeft, 70, 5, 5)
	// columns: [0 1] then [2]
	if got := items[0].Position(); got != (rtk.Position{X: 0, Y: 0}) {
		t.Errorf("item 0 at %v", got)
	}
	if got := items[1].Position(); got != (rtk.Position{X: 0, Y: 35}) {
		t.Errorf("item 1 at %v", got)
	}
	if got := items[2].Position(); got != (rtk.Position{X: 25, Y: 0}) {
		t.Errorf("item 2 at %v", got)
	}
	if content != rtk.Sz(40, 65) {
		t.Errorf("content = %v, want {40 65}", content)
	}
}

func TestForeachChain(t *testing.T) {
	items := []*rtk.Empty{
		rtk.EmptyWithBounds(rtk.NewRect(5, 5, 20, 10)),
		rtk.EmptyWithSize(rtk.Sz(20, 10)),
		rtk.EmptyWithSize(rtk.Sz(20, 10)),
	}

	rtk.Foreach(items, func(this, prev, first *rtk.Empty) {
		rtk.RightOf(this, prev.Bounds(), 2)
		rtk.AlignVCenter(this, first.Bounds())
	})

	if got := items[1].Position(); got != (rtk.Position{X: 27, Y: 5}) {
		t.Errorf("item 1 at %v, want {27 5}", got)
	}
	if got := items[2].Position(); got != (rtk.Position{X: 49, Y: 5}) {
		t.Errorf("item 2 at %v, want {49 5}", got)
	}
}