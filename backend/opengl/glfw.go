package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-rtk/rtk"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Host owns the OS window for one top-level and pumps its event loop.
type Host struct {
	win       *glfw.Window
	renderer  *Renderer
	resources *FontResources
	top       *rtk.Window
}

// NewHost creates the OS window for a top-level and wires native input
// into its event dispatch.
func NewHost(top *rtk.Window) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing GLFW: %w", err)
	}

	attr := top.Attributes()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(attr.Resizable))
	glfw.WindowHint(glfw.Decorated, boolHint(attr.Decorations))
	glfw.WindowHint(glfw.TransparentFramebuffer, boolHint(attr.Transparent))
	glfw.WindowHint(glfw.Floating, boolHint(attr.AlwaysOnTop))
	glfw.WindowHint(glfw.Maximized, boolHint(attr.Maximized))

	title := ""
	if attr.Title != nil {
		title = *attr.Title
	}
	size := attr.Size.NonzeroOr(rtk.DefaultWindowSize)

	win, err := glfw.CreateWindow(int(size.W), int(size.H), title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if attr.Position != nil {
		win.SetPos(int(attr.Position.X), int(attr.Position.Y))
	}
	if !attr.MinSize.IsZeroArea() || !attr.MaxSize.IsZeroArea() {
		win.SetSizeLimits(
			sizeLimit(attr.MinSize.W), sizeLimit(attr.MinSize.H),
			sizeLimit(attr.MaxSize.W), sizeLimit(attr.MaxSize.H),
		)
	}

	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	// colors are linear throughout the core; let the GPU encode on output
	gl.Enable(gl.FRAMEBUFFER_SRGB)

	fbW, fbH := win.GetFramebufferSize()
	renderer, err := NewRenderer(fbW, fbH)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	h := &Host{
		win:       win,
		renderer:  renderer,
		resources: NewFontResources(),
		top:       top,
	}
	h.installCallbacks()

	top.PushEvent(rtk.CreatedEvent{})

	return h, nil
}

func (h *Host) installCallbacks() {
	h.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.renderer.Resize(width, height)
		h.top.PushEvent(rtk.ResizedEvent{Size: rtk.Sz(uint32(width), uint32(height))})
	})
	h.win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		h.top.PushEvent(rtk.MovedEvent{Pos: rtk.Position{X: int32(x), Y: int32(y)}})
	})
	h.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		h.top.PushEvent(rtk.FocusedEvent{Focused: focused})
	})
	h.win.SetCloseCallback(func(_ *glfw.Window) {
		h.top.PushEvent(rtk.CloseRequestEvent{})
	})
	h.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.top.PushEvent(rtk.MouseMovedEvent{
			Axis: rtk.AxisPosition{Pos: rtk.Point[float64]{X: x, Y: y}},
		})
	})
	h.win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		h.top.PushEvent(rtk.PointerInsideEvent{Inside: entered})
	})
	h.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		h.top.PushEvent(rtk.MouseMovedEvent{
			Axis: rtk.AxisScroll{X: float32(xoff), Y: float32(yoff)},
		})
	})
	h.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		h.top.PushEvent(rtk.MouseButtonEvent{
			State:  buttonState(action),
			Button: mouseButton(button),
		})
	})
	h.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		h.top.PushEvent(rtk.KeyboardEvent{
			State:    buttonState(action),
			Key:      translateKey(key),
			ScanCode: rtk.ScanCode(scancode),
		})
	})
	h.win.SetCharCallback(func(_ *glfw.Window, char rune) {
		h.top.PushEvent(rtk.CharacterEvent{Char: char})
	})
	h.win.SetDropCallback(func(_ *glfw.Window, names []string) {
		for _, name := range names {
			h.top.PushEvent(rtk.FileDroppedEvent{Path: name})
		}
	})
}

// Run pumps the event loop until the window is closed. It blocks the
// calling goroutine, which must be the main OS thread.
func (h *Host) Run() error {
	for !h.win.ShouldClose() {
		glfw.PollEvents()

		h.top.Update(h.resources)
		h.syncSize()

		q := rtk.AcquireDrawQueue()
		h.top.Draw(q)
		err := h.renderer.Execute(q)
		rtk.ReleaseDrawQueue(q)
		if err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}

		h.win.SwapBuffers()
	}

	h.top.PushEvent(rtk.DestroyedEvent{})
	return nil
}

// syncSize pushes size changes made by layout back to the OS window.
func (h *Host) syncSize() {
	want := h.top.Size()
	curW, curH := h.win.GetSize()
	if int(want.W) != curW || int(want.H) != curH {
		h.win.SetSize(int(want.W), int(want.H))
	}
}

// Close releases the OS window and its GL resources.
func (h *Host) Close() {
	h.renderer.Delete()
	h.win.Destroy()
	glfw.Terminate()
}

// Run opens an OS window for the top-level and runs it to completion.
func Run(top *rtk.Window) error {
	h, err := NewHost(top)
	if err != nil {
		return err
	}
	defer h.Close()
	return h.Run()
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// sizeLimit converts a size component to a GLFW limit, where zero means
// unconstrained.
func sizeLimit(v uint32) int {
	if v == 0 {
		return glfw.DontCare
	}
	return int(v)
}

func buttonState(action glfw.Action) rtk.EvState {
	if action == glfw.Release {
		return rtk.Released
	}
	return rtk.Pressed
}

func mouseButton(button glfw.MouseButton) rtk.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return rtk.MouseButtonLeft
	case glfw.MouseButtonMiddle:
		return rtk.MouseButtonMiddle
	case glfw.MouseButtonRight:
		return rtk.MouseButtonRight
	default:
		return rtk.MouseButton(4 + (button - glfw.MouseButton4))
	}
}

// translateKey maps GLFW key codes to the symbolic key set.
func translateKey(key glfw.Key) rtk.Key {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return rtk.KeyA + rtk.Key(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		return rtk.Key0 + rtk.Key(key-glfw.Key0)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return rtk.KeyNumpad0 + rtk.Key(key-glfw.KeyKP0)
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return rtk.KeyF1 + rtk.Key(key-glfw.KeyF1)
	}

	switch key {
	case glfw.KeyEscape:
		return rtk.KeyEscape
	case glfw.KeyEnter:
		return rtk.KeyEnter
	case glfw.KeyTab:
		return rtk.KeyTab
	case glfw.KeyBackspace:
		return rtk.KeyBackspace
	case glfw.KeyInsert:
		return rtk.KeyInsert
	case glfw.KeyDelete:
		return rtk.KeyDelete
	case glfw.KeyHome:
		return rtk.KeyHome
	case glfw.KeyEnd:
		return rtk.KeyEnd
	case glfw.KeyPageUp:
		return rtk.KeyPageUp
	case glfw.KeyPageDown:
		return rtk.KeyPageDown
	case glfw.KeyUp:
		return rtk.KeyUp
	case glfw.KeyDown:
		return rtk.KeyDown
	case glfw.KeyLeft:
		return rtk.KeyLeft
	case glfw.KeyRight:
		return rtk.KeyRight
	case glfw.KeySpace:
		return rtk.KeySpace
	case glfw.KeyCapsLock:
		return rtk.KeyCapsLock
	case glfw.KeyScrollLock:
		return rtk.KeyScrollLock
	case glfw.KeyNumLock:
		return rtk.KeyNumLock
	case glfw.KeyPrintScreen:
		return rtk.KeyPrintScreen
	case glfw.KeyPause:
		return rtk.KeyPause
	case glfw.KeyMenu:
		return rtk.KeyMenu
	case glfw.KeyLeftShift:
		return rtk.KeyShiftLeft
	case glfw.KeyRightShift:
		return rtk.KeyShiftRight
	case glfw.KeyLeftControl:
		return rtk.KeyControlLeft
	case glfw.KeyRightControl:
		return rtk.KeyControlRight
	case glfw.KeyLeftAlt:
		return rtk.KeyAltLeft
	case glfw.KeyRightAlt:
		return rtk.KeyAltRight
	case glfw.KeyLeftSuper:
		return rtk.KeySuperLeft
	case glfw.KeyRightSuper:
		return rtk.KeySuperRight
	case glfw.KeyMinus:
		return rtk.KeyMinus
	case glfw.KeyEqual:
		return rtk.KeyEquals
	case glfw.KeyLeftBracket:
		return rtk.KeyBracketLeft
	case glfw.KeyRightBracket:
		return rtk.KeyBracketRight
	case glfw.KeyBackslash:
		return rtk.KeyBackslash
	case glfw.KeySemicolon:
		return rtk.KeySemicolon
	case glfw.KeyApostrophe:
		return rtk.KeyApostrophe
	case glfw.KeyGraveAccent:
		return rtk.KeyGrave
	case glfw.KeyComma:
		return rtk.KeyComma
	case glfw.KeyPeriod:
		return rtk.KeyPeriod
	case glfw.KeySlash:
		return rtk.KeySlash
	case glfw.KeyKPEnter:
		return rtk.KeyNumpadEnter
	case glfw.KeyKPAdd:
		return rtk.KeyNumpadAdd
	case glfw.KeyKPSubtract:
		return rtk.KeyNumpadSubtract
	case glfw.KeyKPMultiply:
		return rtk.KeyNumpadMultiply
	case glfw.KeyKPDivide:
		return rtk.KeyNumpadDivide
	case glfw.KeyKPDecimal:
		return rtk.KeyNumpadDecimal
	default:
		return rtk.KeyUnknown
	}
}
