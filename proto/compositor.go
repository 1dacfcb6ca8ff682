package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

// Compositor is the wl_compositor global; its only job here is minting
// wl_surface objects for overlays.
type Compositor struct {
	global
	handlers *CompositorHandlers
}

// CompositorHandlers is empty today (wl_compositor has no events) but kept
// for symmetry with every other NewXxx(handlers) constructor.
type CompositorHandlers struct{}

func NewCompositor(h *CompositorHandlers) *Compositor {
	c := &Compositor{handlers: h}
	c.iface, c.version = "wl_compositor", 4
	return c
}

func (c *Compositor) bindGlobal(conn *wl.Conn, name, version uint32) {
	c.proxy = conn.Bind(name, c.iface, min(version, c.version), nil)
}

// CreateSurface issues wl_compositor.create_surface.
func (c *Compositor) CreateSurface(h *WlSurfaceHandlers) *WlSurface {
	s := &WlSurface{handlers: h}
	s.object = newChild(c.proxy, "wl_surface", 1, s.dispatch)
	c.proxy.Request(0, s.proxy)
	return s
}

// WlSurfaceHandlers mirrors the wl_surface events foamshot consumes
// (enter/leave are unused here; surfaces never move between outputs).
type WlSurfaceHandlers struct {
	OnEnter func(wl.Event)
	OnLeave func(wl.Event)
}

// WlSurface is the drawable the layer-shell surface and its buffers attach
// to.
type WlSurface struct {
	object
	handlers *WlSurfaceHandlers
}

func (s *WlSurface) dispatch(evt wl.Event) {}

// Attach issues wl_surface.attach.
func (s *WlSurface) Attach(buf *Buffer, x, y int32) {
	var p wl.Proxy
	if buf != nil {
		p = buf.proxy
	}
	s.proxy.Request(1, p, x, y)
}

// Damage issues wl_surface.damage (surface-local coordinates).
func (s *WlSurface) Damage(x, y, w, h int32) {
	s.proxy.Request(2, x, y, w, h)
}

// DamageBuffer issues wl_surface.damage_buffer (buffer-local coordinates,
// required once a viewport/fractional-scale is in play).
func (s *WlSurface) DamageBuffer(x, y, w, h int32) {
	s.proxy.Request(9, x, y, w, h)
}

// Frame issues wl_surface.frame, requesting a one-shot callback the next
// time this surface may redraw.
func (s *WlSurface) Frame(h *CallbackHandlers) *Callback {
	c := &Callback{handlers: h}
	c.object = newChild(s.proxy, "wl_callback", 1, c.dispatch)
	s.proxy.Request(3, c.proxy)
	return c
}

// Commit issues wl_surface.commit.
func (s *WlSurface) Commit() {
	s.proxy.Request(6)
}

// SetInputRegion issues wl_surface.set_input_region; nil clears the region
// back to "whole surface accepts input".
func (s *WlSurface) SetInputRegion(region wl.Proxy) {
	s.proxy.Request(5, region)
}
