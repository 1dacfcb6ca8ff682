package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

// ViewporterHandlers is empty: wp_viewporter has no events.
type ViewporterHandlers struct{}

// Viewporter is the wp_viewporter global, used to scale an overlay's
// fractionally-sized buffer to its logical destination size.
type Viewporter struct {
	global
	handlers *ViewporterHandlers
}

func NewViewporter(h *ViewporterHandlers) *Viewporter {
	v := &Viewporter{handlers: h}
	v.iface, v.version = "wp_viewporter", 1
	return v
}

func (v *Viewporter) bindGlobal(conn *wl.Conn, name, version uint32) {
	v.proxy = conn.Bind(name, v.iface, min(version, v.version), nil)
}

// GetViewport issues wp_viewporter.get_viewport for the given surface.
func (v *Viewporter) GetViewport(surface *WlSurface, h *ViewportHandlers) *Viewport {
	p := &Viewport{handlers: h}
	p.object = newChild(v.proxy, "wp_viewport", v.version, nil)
	v.proxy.Request(1, p.proxy, surface.proxy)
	return p
}

// ViewportHandlers is empty: wp_viewport has no events.
type ViewportHandlers struct{}

// Viewport is wp_viewport, bound to exactly one wl_surface.
type Viewport struct {
	object
	handlers *ViewportHandlers
}

// SetSource issues wp_viewport.set_source, in buffer-pixel fixed-point
// coordinates; x, y, width, height of -1 clears a previously-set source.
func (v *Viewport) SetSource(x, y, width, height float64) {
	v.proxy.Request(1, toFixed(x), toFixed(y), toFixed(width), toFixed(height))
}

// SetDestination issues wp_viewport.set_destination, in surface-local
// logical coordinates; this is how a HiDPI monitor's overlay buffer is
// scaled back down to its logical (non-pixel) size.
func (v *Viewport) SetDestination(width, height int32) {
	v.proxy.Request(2, width, height)
}

// Destroy issues wp_viewport.destroy.
func (v *Viewport) Destroy() error {
	v.proxy.Request(0)
	return v.object.Destroy()
}

func toFixed(f float64) int32 { return int32(f * 256) }
