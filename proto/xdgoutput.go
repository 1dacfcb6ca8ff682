package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

// XdgOutputManagerHandlers is empty: zxdg_output_manager_v1 has no events.
type XdgOutputManagerHandlers struct{}

// XdgOutputManager is the zxdg_output_manager_v1 global; it mints one
// XdgOutput per wl_output to learn its logical position/size/name.
type XdgOutputManager struct {
	global
	handlers *XdgOutputManagerHandlers
}

func NewXdgOutputManager(h *XdgOutputManagerHandlers) *XdgOutputManager {
	m := &XdgOutputManager{handlers: h}
	m.iface, m.version = "zxdg_output_manager_v1", 3
	return m
}

func (m *XdgOutputManager) bindGlobal(conn *wl.Conn, name, version uint32) {
	m.proxy = conn.Bind(name, m.iface, min(version, m.version), nil)
}

// GetXdgOutput issues zxdg_output_manager_v1.get_xdg_output for the given
// wl_output.
func (m *XdgOutputManager) GetXdgOutput(output *Output, h *XdgOutputHandlers) *XdgOutput {
	x := &XdgOutput{handlers: h}
	x.object = newChild(m.proxy, "zxdg_output_v1", m.version, x.dispatch)
	m.proxy.Request(1, x.proxy, output.proxy)
	return x
}

// XdgOutputHandlers mirrors zxdg_output_v1's events; MonitorSet needs the
// logical position/size to build the global coordinate space.
type XdgOutputHandlers struct {
	OnLogicalPosition func(wl.Event)
	OnLogicalSize     func(wl.Event)
	OnName            func(wl.Event)
	OnDescription     func(wl.Event)
	OnDone            func(wl.Event)
}

// XdgOutput is zxdg_output_v1.
type XdgOutput struct {
	object
	handlers *XdgOutputHandlers
}

type XdgOutputLogicalPositionEvent struct {
	proxy wl.Proxy
	X, Y  int32
}

func (e *XdgOutputLogicalPositionEvent) Proxy() wl.Proxy { return e.proxy }

type XdgOutputLogicalSizeEvent struct {
	proxy         wl.Proxy
	Width, Height int32
}

func (e *XdgOutputLogicalSizeEvent) Proxy() wl.Proxy { return e.proxy }

type XdgOutputNameEvent struct {
	proxy wl.Proxy
	Name  string
}

func (e *XdgOutputNameEvent) Proxy() wl.Proxy { return e.proxy }

type XdgOutputDoneEvent struct{ proxy wl.Proxy }

func (e *XdgOutputDoneEvent) Proxy() wl.Proxy { return e.proxy }

func (x *XdgOutput) dispatch(evt wl.Event) {
	if x.handlers == nil {
		return
	}
	switch evt.(type) {
	case *XdgOutputLogicalPositionEvent:
		if x.handlers.OnLogicalPosition != nil {
			x.handlers.OnLogicalPosition(evt)
		}
	case *XdgOutputLogicalSizeEvent:
		if x.handlers.OnLogicalSize != nil {
			x.handlers.OnLogicalSize(evt)
		}
	case *XdgOutputNameEvent:
		if x.handlers.OnName != nil {
			x.handlers.OnName(evt)
		}
	case *XdgOutputDoneEvent:
		if x.handlers.OnDone != nil {
			x.handlers.OnDone(evt)
		}
	}
}
