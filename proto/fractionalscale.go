package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

// FractionalScaleManagerHandlers is empty: wp_fractional_scale_manager_v1
// has no events.
type FractionalScaleManagerHandlers struct{}

// FractionalScaleManager is the wp_fractional_scale_manager_v1 global.
type FractionalScaleManager struct {
	global
	handlers *FractionalScaleManagerHandlers
}

func NewFractionalScaleManager(h *FractionalScaleManagerHandlers) *FractionalScaleManager {
	m := &FractionalScaleManager{handlers: h}
	m.iface, m.version = "wp_fractional_scale_manager_v1", 1
	return m
}

func (m *FractionalScaleManager) bindGlobal(conn *wl.Conn, name, version uint32) {
	m.proxy = conn.Bind(name, m.iface, min(version, m.version), nil)
}

// GetFractionalScale issues wp_fractional_scale_manager_v1.get_fractional_scale.
func (m *FractionalScaleManager) GetFractionalScale(surface *WlSurface, h *FractionalScaleHandlers) *FractionalScale {
	f := &FractionalScale{handlers: h}
	f.object = newChild(m.proxy, "wp_fractional_scale_v1", m.version, f.dispatch)
	m.proxy.Request(1, f.proxy, surface.proxy)
	return f
}

// FractionalScaleHandlers mirrors wp_fractional_scale_v1's event.
type FractionalScaleHandlers struct {
	OnPreferredScale func(wl.Event)
}

// FractionalScale is wp_fractional_scale_v1, bound to one surface.
type FractionalScale struct {
	object
	handlers *FractionalScaleHandlers
}

// FractionalScalePreferredScaleEvent carries scale as a 120ths-of-a-unit
// integer; divide by 120 to get the float scale factor.
type FractionalScalePreferredScaleEvent struct {
	proxy wl.Proxy
	Scale uint32
}

func (e *FractionalScalePreferredScaleEvent) Proxy() wl.Proxy { return e.proxy }

func (f *FractionalScale) dispatch(evt wl.Event) {
	if f.handlers == nil || f.handlers.OnPreferredScale == nil {
		return
	}
	if _, ok := evt.(*FractionalScalePreferredScaleEvent); ok {
		f.handlers.OnPreferredScale(evt)
	}
}

// Destroy issues wp_fractional_scale_v1.destroy.
func (f *FractionalScale) Destroy() error {
	f.proxy.Request(0)
	return f.object.Destroy()
}
