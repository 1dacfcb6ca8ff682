package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

const (
	SeatCapabilityPointer  uint32 = 1
	SeatCapabilityKeyboard uint32 = 2
	SeatCapabilityTouch    uint32 = 4
)

// SeatHandlers mirrors wl_seat's events.
type SeatHandlers struct {
	OnCapabilities func(wl.Event)
	OnName         func(wl.Event)
}

// Seat is the wl_seat global; foamshot only needs its pointer and
// keyboard capabilities.
type Seat struct {
	global
	handlers *SeatHandlers
}

type SeatCapabilitiesEvent struct {
	proxy        wl.Proxy
	Capabilities uint32
}

func (e *SeatCapabilitiesEvent) Proxy() wl.Proxy { return e.proxy }

type SeatNameEvent struct {
	proxy wl.Proxy
	Name  string
}

func (e *SeatNameEvent) Proxy() wl.Proxy { return e.proxy }

func NewSeat(h *SeatHandlers) *Seat {
	s := &Seat{handlers: h}
	s.iface, s.version = "wl_seat", 7
	return s
}

func (s *Seat) bindGlobal(conn *wl.Conn, name, version uint32) {
	s.proxy = conn.Bind(name, s.iface, min(version, s.version), s.dispatch)
}

func (s *Seat) dispatch(evt wl.Event) {
	if s.handlers == nil {
		return
	}
	switch evt.(type) {
	case *SeatCapabilitiesEvent:
		if s.handlers.OnCapabilities != nil {
			s.handlers.OnCapabilities(evt)
		}
	case *SeatNameEvent:
		if s.handlers.OnName != nil {
			s.handlers.OnName(evt)
		}
	}
}

// GetPointer issues wl_seat.get_pointer.
func (s *Seat) GetPointer(h *PointerHandlers) *Pointer {
	p := &Pointer{handlers: h}
	p.object = newChild(s.proxy, "wl_pointer", s.version, p.dispatch)
	s.proxy.Request(0, p.proxy)
	return p
}

// GetKeyboard issues wl_seat.get_keyboard.
func (s *Seat) GetKeyboard(h *KeyboardHandlers) *Keyboard {
	k := &Keyboard{handlers: h}
	k.object = newChild(s.proxy, "wl_keyboard", s.version, k.dispatch)
	s.proxy.Request(1, k.proxy)
	return k
}

// Release issues wl_seat.release.
func (s *Seat) Release() { s.proxy.Request(3) }

// PointerHandlers mirrors the wl_pointer events the engine's
// PointerTracker needs; axis/frame events are accepted but unused.
type PointerHandlers struct {
	OnEnter  func(wl.Event)
	OnLeave  func(wl.Event)
	OnMotion func(wl.Event)
	OnButton func(wl.Event)
	OnFrame  func(wl.Event)
	OnAxis   func(wl.Event)
}

// Pointer is wl_pointer.
type Pointer struct {
	object
	handlers *PointerHandlers
}

type PointerEnterEvent struct {
	proxy     wl.Proxy
	Serial    uint32
	Surface   wl.Proxy
	SurfaceX  float64
	SurfaceY  float64
}

func (e *PointerEnterEvent) Proxy() wl.Proxy { return e.proxy }

type PointerLeaveEvent struct {
	proxy   wl.Proxy
	Serial  uint32
	Surface wl.Proxy
}

func (e *PointerLeaveEvent) Proxy() wl.Proxy { return e.proxy }

type PointerMotionEvent struct {
	proxy    wl.Proxy
	Time     uint32
	SurfaceX float64
	SurfaceY float64
}

func (e *PointerMotionEvent) Proxy() wl.Proxy { return e.proxy }

// PointerButtonState mirrors wl_pointer.button_state.
type PointerButtonState uint32

const (
	PointerButtonStateReleased PointerButtonState = 0
	PointerButtonStatePressed  PointerButtonState = 1
)

type PointerButtonEvent struct {
	proxy  wl.Proxy
	Serial uint32
	Time   uint32
	Button uint32
	State  PointerButtonState
}

func (e *PointerButtonEvent) Proxy() wl.Proxy { return e.proxy }

type PointerFrameEvent struct{ proxy wl.Proxy }

func (e *PointerFrameEvent) Proxy() wl.Proxy { return e.proxy }

func (p *Pointer) dispatch(evt wl.Event) {
	if p.handlers == nil {
		return
	}
	switch evt.(type) {
	case *PointerEnterEvent:
		if p.handlers.OnEnter != nil {
			p.handlers.OnEnter(evt)
		}
	case *PointerLeaveEvent:
		if p.handlers.OnLeave != nil {
			p.handlers.OnLeave(evt)
		}
	case *PointerMotionEvent:
		if p.handlers.OnMotion != nil {
			p.handlers.OnMotion(evt)
		}
	case *PointerButtonEvent:
		if p.handlers.OnButton != nil {
			p.handlers.OnButton(evt)
		}
	case *PointerFrameEvent:
		if p.handlers.OnFrame != nil {
			p.handlers.OnFrame(evt)
		}
	}
}

// Release issues wl_pointer.release.
func (p *Pointer) Release() { p.proxy.Request(1) }

// KeyboardHandlers mirrors the wl_keyboard events the engine's key
// bindings (Esc/f/a/s) need.
type KeyboardHandlers struct {
	OnKeymap func(wl.Event)
	OnKey    func(wl.Event)
}

// Keyboard is wl_keyboard.
type Keyboard struct {
	object
	handlers *KeyboardHandlers
}

// KeyState mirrors wl_keyboard.key_state.
type KeyState uint32

const (
	KeyStateReleased KeyState = 0
	KeyStatePressed  KeyState = 1
)

type KeyboardKeymapEvent struct {
	proxy  wl.Proxy
	Format uint32
	Fd     int
	Size   uint32
}

func (e *KeyboardKeymapEvent) Proxy() wl.Proxy { return e.proxy }

type KeyboardKeyEvent struct {
	proxy   wl.Proxy
	Serial  uint32
	Time    uint32
	Key     uint32
	State   KeyState
}

func (e *KeyboardKeyEvent) Proxy() wl.Proxy { return e.proxy }

func (k *Keyboard) dispatch(evt wl.Event) {
	if k.handlers == nil {
		return
	}
	switch evt.(type) {
	case *KeyboardKeymapEvent:
		if k.handlers.OnKeymap != nil {
			k.handlers.OnKeymap(evt)
		}
	case *KeyboardKeyEvent:
		if k.handlers.OnKey != nil {
			k.handlers.OnKey(evt)
		}
	}
}

// Release issues wl_keyboard.release.
func (k *Keyboard) Release() { k.proxy.Request(0) }
