package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

// LayerShellLayer mirrors zwlr_layer_shell_v1.layer.
type LayerShellLayer uint32

const (
	LayerShellLayerBackground LayerShellLayer = 0
	LayerShellLayerBottom     LayerShellLayer = 1
	LayerShellLayerTop        LayerShellLayer = 2
	LayerShellLayerOverlay    LayerShellLayer = 3
)

// LayerSurfaceAnchor mirrors zwlr_layer_surface_v1.anchor (bitfield).
type LayerSurfaceAnchor uint32

const (
	LayerSurfaceAnchorTop LayerSurfaceAnchor = 1 << iota
	LayerSurfaceAnchorBottom
	LayerSurfaceAnchorLeft
	LayerSurfaceAnchorRight
)

// LayerSurfaceAnchorAll anchors all four edges, as every overlay surface
// in foamshot does (it must cover its whole monitor).
const LayerSurfaceAnchorAll = LayerSurfaceAnchorTop | LayerSurfaceAnchorBottom | LayerSurfaceAnchorLeft | LayerSurfaceAnchorRight

// LayerSurfaceKeyboardInteractivity mirrors the same-named enum.
type LayerSurfaceKeyboardInteractivity uint32

const (
	LayerSurfaceKeyboardInteractivityNone     LayerSurfaceKeyboardInteractivity = 0
	LayerSurfaceKeyboardInteractivityExclusive LayerSurfaceKeyboardInteractivity = 1
	LayerSurfaceKeyboardInteractivityOnDemand LayerSurfaceKeyboardInteractivity = 2
)

// LayerShellHandlers is empty: zwlr_layer_shell_v1 has no events.
type LayerShellHandlers struct{}

// LayerShell is the zwlr_layer_shell_v1 global.
type LayerShell struct {
	global
	handlers *LayerShellHandlers
}

func NewLayerShell(h *LayerShellHandlers) *LayerShell {
	l := &LayerShell{handlers: h}
	l.iface, l.version = "zwlr_layer_shell_v1", 4
	return l
}

func (l *LayerShell) bindGlobal(conn *wl.Conn, name, version uint32) {
	l.proxy = conn.Bind(name, l.iface, min(version, l.version), nil)
}

// GetLayerSurface issues zwlr_layer_shell_v1.get_layer_surface. output may
// be nil to let the compositor choose, but MonitorSet always passes the
// Output each overlay belongs to so it lands on the right monitor.
func (l *LayerShell) GetLayerSurface(surface *WlSurface, output *Output, layer LayerShellLayer, namespace string, h *LayerSurfaceHandlers) *LayerSurface {
	s := &LayerSurface{handlers: h}
	s.object = newChild(l.proxy, "zwlr_layer_surface_v1", l.version, s.dispatch)
	var outputProxy wl.Proxy
	if output != nil {
		outputProxy = output.proxy
	}
	l.proxy.Request(0, s.proxy, surface.proxy, outputProxy, uint32(layer), namespace)
	return s
}

// LayerSurfaceHandlers mirrors zwlr_layer_surface_v1's events.
type LayerSurfaceHandlers struct {
	OnConfigure func(wl.Event)
	OnClosed    func(wl.Event)
}

// LayerSurface is zwlr_layer_surface_v1, the per-monitor overlay.
type LayerSurface struct {
	object
	handlers *LayerSurfaceHandlers
}

type LayerSurfaceConfigureEvent struct {
	proxy         wl.Proxy
	Serial        uint32
	Width, Height uint32
}

func (e *LayerSurfaceConfigureEvent) Proxy() wl.Proxy { return e.proxy }

type LayerSurfaceClosedEvent struct{ proxy wl.Proxy }

func (e *LayerSurfaceClosedEvent) Proxy() wl.Proxy { return e.proxy }

func (s *LayerSurface) dispatch(evt wl.Event) {
	if s.handlers == nil {
		return
	}
	switch evt.(type) {
	case *LayerSurfaceConfigureEvent:
		if s.handlers.OnConfigure != nil {
			s.handlers.OnConfigure(evt)
		}
	case *LayerSurfaceClosedEvent:
		if s.handlers.OnClosed != nil {
			s.handlers.OnClosed(evt)
		}
	}
}

// SetSize issues zwlr_layer_surface_v1.set_size (a hint; the compositor
// may override it via configure).
func (s *LayerSurface) SetSize(width, height uint32) { s.proxy.Request(0, width, height) }

// SetAnchor issues zwlr_layer_surface_v1.set_anchor.
func (s *LayerSurface) SetAnchor(anchor LayerSurfaceAnchor) { s.proxy.Request(1, uint32(anchor)) }

// SetExclusiveZone issues zwlr_layer_surface_v1.set_exclusive_zone; -1
// reserves no screen-estate and asks other surfaces not to avoid this one.
func (s *LayerSurface) SetExclusiveZone(zone int32) { s.proxy.Request(2, zone) }

// SetKeyboardInteractivity issues zwlr_layer_surface_v1.set_keyboard_interactivity.
func (s *LayerSurface) SetKeyboardInteractivity(v LayerSurfaceKeyboardInteractivity) {
	s.proxy.Request(4, uint32(v))
}

// AckConfigure issues zwlr_layer_surface_v1.ack_configure; required before
// the first buffer attach after every configure event.
func (s *LayerSurface) AckConfigure(serial uint32) { s.proxy.Request(6, serial) }

// Destroy issues zwlr_layer_surface_v1.destroy (overrides object.Destroy,
// which would otherwise call the generic wl_proxy destructor).
func (s *LayerSurface) Destroy() error {
	s.proxy.Request(7)
	return s.object.Destroy()
}
