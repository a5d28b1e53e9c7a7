package rtk

import "time"

// ScanCode is a raw key id from hardware.
type ScanCode uint32

// Event is an input or window event delivered by the backend.
// The concrete types below form a closed set of variants.
type Event interface {
	isEvent()
}

// KeyboardEvent is raw keyboard input.
type KeyboardEvent struct {
	State    EvState
	Key      Key
	ScanCode ScanCode
}

// CharacterEvent is processed keyboard input as a unicode character.
type CharacterEvent struct {
	Char rune
}

// MouseMovedEvent is mouse pointer motion on one of the pointer axes.
type MouseMovedEvent struct {
	Axis AxisValue
}

// MouseButtonEvent is mouse button input.
type MouseButtonEvent struct {
	State  EvState
	Button MouseButton
}

// PointerInsideEvent signals the pointer crossing a boundary.
type PointerInsideEvent struct {
	Inside bool
}

// FileDroppedEvent signals a file dropped into the window.
type FileDroppedEvent struct {
	Path string
}

// ResizedEvent signals a window resize.
type ResizedEvent struct {
	Size Size
}

// MovedEvent signals a window move.
type MovedEvent struct {
	Pos Position
}

// FocusedEvent signals a window focus change.
type FocusedEvent struct {
	Focused bool
}

// CloseRequestEvent signals the window close button was pressed.
// It is informational; the core does not veto a close request.
type CloseRequestEvent struct{}

// CreatedEvent signals the window has been created.
type CreatedEvent struct{}

// DestroyedEvent signals the window has been destroyed.
type DestroyedEvent struct{}

func (KeyboardEvent) isEvent()      {}
func (CharacterEvent) isEvent()     {}
func (MouseMovedEvent) isEvent()    {}
func (MouseButtonEvent) isEvent()   {}
func (PointerInsideEvent) isEvent() {}
func (FileDroppedEvent) isEvent()   {}
func (ResizedEvent) isEvent()       {}
func (MovedEvent) isEvent()         {}
func (FocusedEvent) isEvent()       {}
func (CloseRequestEvent) isEvent()  {}
func (CreatedEvent) isEvent()       {}
func (DestroyedEvent) isEvent()     {}

// AxisValue is the axis of movement carried by a MouseMovedEvent.
type AxisValue interface {
	isAxisValue()
}

// AxisPosition is absolute pointer position in window coordinates.
type AxisPosition struct {
	Pos Point[float64]
}

// AxisScroll is scroll wheel movement.
type AxisScroll struct {
	X, Y float32
}

// AxisPressure is stylus/touchpad pressure.
type AxisPressure struct {
	Pressure float64
}

// AxisTilt is stylus tilt.
type AxisTilt struct {
	X, Y float64
}

func (AxisPosition) isAxisValue() {}
func (AxisScroll) isAxisValue()   {}
func (AxisPressure) isAxisValue() {}
func (AxisTilt) isAxisValue()     {}

// EvState is the state of a key or mouse button.
type EvState uint8

const (
	Released EvState = iota
	Pressed
)

// MouseButton identifies a mouse button by number.
// Left, middle and right have fixed numbers; others are device-specific.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = 1
	MouseButtonMiddle MouseButton = 2
	MouseButtonRight  MouseButton = 3
)

// mask returns the ButtonState bit for this button.
func (b MouseButton) mask() uint64 {
	switch b {
	case MouseButtonLeft:
		return 1
	case MouseButtonMiddle:
		return 2
	case MouseButtonRight:
		return 4
	default:
		return 1 << b
	}
}

// ButtonState is a bitmask of currently pressed mouse buttons.
type ButtonState uint64

// Set marks the button as pressed.
func (s *ButtonState) Set(b MouseButton) {
	*s |= ButtonState(b.mask())
}

// Unset marks the button as released.
func (s *ButtonState) Unset(b MouseButton) {
	*s &^= ButtonState(b.mask())
}

// IsSet reports whether the button is pressed.
func (s ButtonState) IsSet(b MouseButton) bool {
	return s&ButtonState(b.mask()) != 0
}

// Left reports whether the left button is pressed.
func (s ButtonState) Left() bool { return s.IsSet(MouseButtonLeft) }

// Middle reports whether the middle button is pressed.
func (s ButtonState) Middle() bool { return s.IsSet(MouseButtonMiddle) }

// Right reports whether the right button is pressed.
func (s ButtonState) Right() bool { return s.IsSet(MouseButtonRight) }

// ModState is the keyboard modifier state.
type ModState struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// EventContext is the input state snapshot attached to a dispatched event.
// It is immutable per dispatch.
type EventContext struct {
	// Timestamp is the instant the event was received.
	Timestamp time.Time
	// PointerPos is the last known cursor position relative to the widget.
	PointerPos Point[float64]
	// AbsPos is the last known cursor position relative to the window.
	AbsPos Point[float64]
	// Buttons is the current mouse button state.
	Buttons ButtonState
	// Mods is the current keyboard modifier state.
	Mods ModState
	// Consumer is the widget that consumed the event. It is only set on
	// EventConsumed notifications delivered to ancestors.
	Consumer WidgetID
}

// NewEventContext creates an event context for the given pointer position.
func NewEventContext(pointer Point[float64], buttons ButtonState, mods ModState) EventContext {
	return EventContext{
		Timestamp:  time.Now(),
		PointerPos: pointer,
		AbsPos:     pointer,
		Buttons:    buttons,
		Mods:       mods,
	}
}

// EventResult is a widget's verdict on a routed event.
type EventResult uint8

const (
	// Pass declines the event; traversal continues.
	Pass EventResult = iota
	// Consumed claims the event; traversal stops and ancestors are
	// notified through EventConsumed.
	Consumed
)

// IsConsumed reports whether the result claims the event.
func (r EventResult) IsConsumed() bool {
	return r == Consumed
}

// Key is a symbolic, layout-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyMenu
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeySuperLeft
	KeySuperRight
	KeyMinus
	KeyEquals
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyNumpadEnter
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
)

// Key0 through Key9 are the main-row digit keys.
const (
	Key0 Key = 100 + iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// KeyNumpad0 through KeyNumpad9 are the numeric keypad digits.
const (
	KeyNumpad0 Key = 110 + iota
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
)

// KeyA through KeyZ are the letter keys.
const (
	KeyA Key = 130 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// KeyF1 through KeyF12 are the function keys.
const (
	KeyF1 Key = 160 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)
