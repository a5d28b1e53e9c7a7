package rtk

import "sync/atomic"

// WidgetID uniquely identifies a widget within the process.
// The zero value means "no widget". IDs are never reused.
type WidgetID uint64

// widgetIDCounter backs NewWidgetID. It spans the whole process and is
// never reset, so the first generated ID is 1.
var widgetIDCounter atomic.Uint64

// NewWidgetID returns a fresh process-unique widget ID.
func NewWidgetID() WidgetID {
	return WidgetID(widgetIDCounter.Add(1))
}

// Valid reports whether the ID refers to an actual widget.
func (id WidgetID) Valid() bool {
	return id != 0
}
