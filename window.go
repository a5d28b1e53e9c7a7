package rtk

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultWindowSize is used when neither the attributes nor the content
// provide a usable size.
var DefaultWindowSize = Sz(320, 240)

// WindowAttributes configures a top-level window. The zero-ish defaults
// are: no title, backend-chosen position, auto size (zero means "derive
// from content"), opaque black background, resizable with decorations.
type WindowAttributes struct {
	Title       *string   `yaml:"title,omitempty"`
	Position    *Position `yaml:"position,omitempty"`
	Size        Size      `yaml:"size,omitempty"`
	MinSize     Size      `yaml:"min_size,omitempty"`
	MaxSize     Size      `yaml:"max_size,omitempty"`
	Background  *Color    `yaml:"background,omitempty"`
	Resizable   bool      `yaml:"resizable"`
	Maximized   bool      `yaml:"maximized"`
	Transparent bool      `yaml:"transparent"`
	AlwaysOnTop bool      `yaml:"always_on_top"`
	Decorations bool      `yaml:"decorations"`
}

// DefaultWindowAttributes returns the documented defaults.
func DefaultWindowAttributes() WindowAttributes {
	bg := ColorBlack
	return WindowAttributes{
		Background:  &bg,
		Resizable:   true,
		Decorations: true,
	}
}

// SetTitle sets the window title.
func (a *WindowAttributes) SetTitle(title string) {
	a.Title = &title
}

// SetPosition sets an explicit window position.
func (a *WindowAttributes) SetPosition(pos Position) {
	a.Position = &pos
}

// SetSize sets the window size; zero means "derive from content".
func (a *WindowAttributes) SetSize(size Size) {
	a.Size = size
}

// SetMinSize sets the minimum window size.
func (a *WindowAttributes) SetMinSize(size Size) {
	a.MinSize = size
}

// SetMaxSize sets the maximum window size.
func (a *WindowAttributes) SetMaxSize(size Size) {
	a.MaxSize = size
}

// SetBackground sets the clear color painted before the content.
func (a *WindowAttributes) SetBackground(bg Color) {
	a.Background = &bg
}

// ClearBackground disables the background clear.
func (a *WindowAttributes) ClearBackground() {
	a.Background = nil
}

// LoadWindowAttributes parses YAML window configuration over the
// defaults.
func LoadWindowAttributes(data []byte) (WindowAttributes, error) {
	attr := DefaultWindowAttributes()
	if err := yaml.Unmarshal(data, &attr); err != nil {
		return WindowAttributes{}, fmt.Errorf("parsing window attributes: %w", err)
	}
	return attr, nil
}

// UnmarshalYAML parses a color from a "#RRGGBB" or "#AARRGGBB" hex
// string, converting from sRGB to linear space.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if len(s) == 0 || s[0] != '#' {
		return fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	var v uint32
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s[1:], "%06x", &v); err != nil {
			return fmt.Errorf("invalid color %q: %w", s, err)
		}
		*c = SRGB32(v)
	case 9:
		if _, err := fmt.Sscanf(s[1:], "%08x", &v); err != nil {
			return fmt.Errorf("invalid color %q: %w", s, err)
		}
		*c = SRGBA32(v)
	default:
		return fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	return nil
}

// WindowOption configures a window at construction, mirroring the named
// setters.
type WindowOption func(*WindowAttributes)

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(a *WindowAttributes) { a.SetTitle(title) }
}

// WithPosition sets an explicit window position.
func WithPosition(pos Position) WindowOption {
	return func(a *WindowAttributes) { a.SetPosition(pos) }
}

// WithSize sets the window size.
func WithSize(size Size) WindowOption {
	return func(a *WindowAttributes) { a.SetSize(size) }
}

// WithMinSize sets the minimum window size.
func WithMinSize(size Size) WindowOption {
	return func(a *WindowAttributes) { a.SetMinSize(size) }
}

// WithMaxSize sets the maximum window size.
func WithMaxSize(size Size) WindowOption {
	return func(a *WindowAttributes) { a.SetMaxSize(size) }
}

// WithBackground sets the background clear color.
func WithBackground(bg Color) WindowOption {
	return func(a *WindowAttributes) { a.SetBackground(bg) }
}

// WithResizable toggles window resizing.
func WithResizable(resizable bool) WindowOption {
	return func(a *WindowAttributes) { a.Resizable = resizable }
}

// WithDecorations toggles the window frame.
func WithDecorations(decorations bool) WindowOption {
	return func(a *WindowAttributes) { a.Decorations = decorations }
}

// WithTransparent toggles framebuffer transparency.
func WithTransparent(transparent bool) WindowOption {
	return func(a *WindowAttributes) { a.Transparent = transparent }
}

// WithAlwaysOnTop keeps the window above others.
func WithAlwaysOnTop(onTop bool) WindowOption {
	return func(a *WindowAttributes) { a.AlwaysOnTop = onTop }
}

// WithMaximized opens the window maximized.
func WithMaximized(maximized bool) WindowOption {
	return func(a *WindowAttributes) { a.Maximized = maximized }
}

// TopLevel is an object that can be hosted by a backend as a window.
type TopLevel interface {
	// Update recomputes the content layout.
	Update(res Resources)
	// Draw repopulates the draw queue with this frame's content.
	Draw(q *DrawQueue)
	// PushEvent routes an event through the content tree and returns the
	// consuming widget ID, or zero.
	PushEvent(ev Event) WidgetID
	// Attributes exposes the window configuration.
	Attributes() *WindowAttributes
}

// Window is a top-level window holding a single content widget.
type Window struct {
	attr       WindowAttributes
	dispatcher EventDispatcher
	child      Widget
}

// NewWindow creates a window around the given content widget.
func NewWindow(child Widget, opts ...WindowOption) *Window {
	attr := DefaultWindowAttributes()
	for _, opt := range opts {
		opt(&attr)
	}
	return NewWindowWithAttr(child, attr)
}

// NewWindowWithAttr creates a window with explicit attributes.
func NewWindowWithAttr(child Widget, attr WindowAttributes) *Window {
	return &Window{attr: attr, child: child}
}

// Attributes returns the window configuration for mutation.
func (w *Window) Attributes() *WindowAttributes {
	return &w.attr
}

// Child returns the content widget.
func (w *Window) Child() Widget {
	return w.child
}

// Dispatcher exposes the event dispatcher, e.g. to set keyboard focus.
func (w *Window) Dispatcher() *EventDispatcher {
	return &w.dispatcher
}

// Position returns the window position, or zero when backend-chosen.
func (w *Window) Position() Position {
	if w.attr.Position == nil {
		return Position{}
	}
	return *w.attr.Position
}

// SetPosition sets an explicit window position.
func (w *Window) SetPosition(pos Position) {
	w.attr.SetPosition(pos)
}

// Size returns the window size.
func (w *Window) Size() Size {
	return w.attr.Size
}

// SetSize resizes the window.
func (w *Window) SetSize(size Size) {
	w.attr.Size = size
}

// Update performs the layout phase. A window without an explicit size
// derives one from its content: the child lays itself out against a
// provisional rect, and the resulting bounds (expanded to the origin)
// become the window size, falling back to DefaultWindowSize.
func (w *Window) Update(res Resources) {
	if w.attr.Size.IsZeroArea() {
		initial := w.child.Bounds().
			ExpandToOrigin().
			MapSize(func(s Size) Size { return s.NonzeroOr(DefaultWindowSize) })
		w.child.UpdateLayout(initial, res)

		updated := w.child.Bounds().ExpandToOrigin().Size.NonzeroOr(DefaultWindowSize)
		w.SetSize(updated)
		return
	}
	w.child.UpdateLayout(RectFromSize(w.attr.Size), res)
}

// Draw repopulates the queue with this window's frame: background clear
// first, then the content tree.
func (w *Window) Draw(q *DrawQueue) {
	viewport := RectFromSize(w.Size())
	dc := NewDrawContext(q, viewport)
	if bg := w.attr.Background; bg != nil {
		dc.Clear(*bg)
	}
	dc.DrawChild(w.child)
}

// PushEvent routes an event through the content tree. Window geometry
// events update the attributes before dispatch.
func (w *Window) PushEvent(ev Event) WidgetID {
	switch ev := ev.(type) {
	case ResizedEvent:
		w.attr.Size = ev.Size
	case MovedEvent:
		w.attr.SetPosition(ev.Pos)
	}
	return w.dispatcher.DispatchEvent(ev, w.Size(), w.child)
}
