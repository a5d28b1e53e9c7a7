package rtk_test

import (
	"testing"

	"github.com/go-rtk/rtk"
)

func TestWidgetIDMonotonic(t *testing.T) {
	a := rtk.NewWidgetID()
	b := rtk.NewWidgetID()
	if !a.Valid() || !b.Valid() {
		t.Fatal("fresh IDs must be valid")
	}
	if b <= a {
		t.Errorf("IDs not increasing: %v then %v", a, b)
	}
}

func TestZeroWidgetIDInvalid(t *testing.T) {
	var id rtk.WidgetID
	if id.Valid() {
		t.Error("zero ID must be invalid")
	}
}

func TestEmptyWidget(t *testing.T) {
	e := rtk.NewEmpty()
	if e.ID().Valid() {
		t.Error("the null widget has no identity")
	}
	if got := e.HandleEvent(rtk.CharacterEvent{Char: 'x'}, rtk.EventContext{}); got != rtk.Pass {
		t.Errorf("null widget handled an event: %v", got)
	}
	if !e.Size().IsZeroArea() {
		t.Errorf("null widget has extent %v", e.Size())
	}
}
