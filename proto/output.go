package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

// OutputHandlers mirrors the wl_output events MonitorSet needs to
// assemble a Monitor's pixel geometry and integer scale.
type OutputHandlers struct {
	OnGeometry func(wl.Event)
	OnMode     func(wl.Event)
	OnScale    func(wl.Event)
	OnName     func(wl.Event)
	OnDone     func(wl.Event)
}

// Output is a wl_output global: one per connected monitor.
type Output struct {
	global
	handlers *OutputHandlers
}

type OutputGeometryEvent struct {
	proxy           wl.Proxy
	X, Y            int32
	PhysicalWidth   int32
	PhysicalHeight  int32
	Subpixel        int32
	Make, Model     string
	Transform       int32
}

func (e *OutputGeometryEvent) Proxy() wl.Proxy { return e.proxy }

// OutputModeFlags mirrors wl_output.mode's bitfield (current/preferred).
type OutputModeFlags uint32

const (
	OutputModeCurrent   OutputModeFlags = 0x1
	OutputModePreferred OutputModeFlags = 0x2
)

type OutputModeEvent struct {
	proxy         wl.Proxy
	Flags         OutputModeFlags
	Width, Height int32
	Refresh       int32
}

func (e *OutputModeEvent) Proxy() wl.Proxy { return e.proxy }

type OutputScaleEvent struct {
	proxy  wl.Proxy
	Factor int32
}

func (e *OutputScaleEvent) Proxy() wl.Proxy { return e.proxy }

type OutputNameEvent struct {
	proxy wl.Proxy
	Name  string
}

func (e *OutputNameEvent) Proxy() wl.Proxy { return e.proxy }

type OutputDoneEvent struct{ proxy wl.Proxy }

func (e *OutputDoneEvent) Proxy() wl.Proxy { return e.proxy }

func NewOutput(h *OutputHandlers) *Output {
	o := &Output{handlers: h}
	o.iface, o.version = "wl_output", 4
	return o
}

func (o *Output) bindGlobal(conn *wl.Conn, name, version uint32) {
	o.proxy = conn.Bind(name, o.iface, min(version, o.version), o.dispatch)
}

func (o *Output) dispatch(evt wl.Event) {
	if o.handlers == nil {
		return
	}
	switch evt.(type) {
	case *OutputGeometryEvent:
		if o.handlers.OnGeometry != nil {
			o.handlers.OnGeometry(evt)
		}
	case *OutputModeEvent:
		if o.handlers.OnMode != nil {
			o.handlers.OnMode(evt)
		}
	case *OutputScaleEvent:
		if o.handlers.OnScale != nil {
			o.handlers.OnScale(evt)
		}
	case *OutputNameEvent:
		if o.handlers.OnName != nil {
			o.handlers.OnName(evt)
		}
	case *OutputDoneEvent:
		if o.handlers.OnDone != nil {
			o.handlers.OnDone(evt)
		}
	}
}
