package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

// DisplayHandlers mirrors the wl_display event set foamshot cares about.
type DisplayHandlers struct {
	OnError func(wl.Event)
}

// Display is the wl_display singleton; always object id 1 on the wire.
type Display struct {
	object
	handlers *DisplayHandlers
}

// DisplayErrorEvent is raised when any object produces a protocol error;
// the source object's interface name is used for the diagnostic message.
type DisplayErrorEvent struct {
	proxy    wl.Proxy
	ObjectId wl.Object
	Code     uint32
	Message  string
}

func (e *DisplayErrorEvent) Proxy() wl.Proxy { return e.proxy }

// NewDisplay constructs the placeholder wl_display wrapper; Conn.Register
// assigns the real proxy (always id 1) and starts routing its events here.
func NewDisplay(h *DisplayHandlers) *Display {
	return &Display{handlers: h}
}

func (d *Display) Dispatch(evt wl.Event) {
	if d.handlers == nil {
		return
	}
	if e, ok := evt.(*DisplayErrorEvent); ok && d.handlers.OnError != nil {
		d.handlers.OnError(e)
	}
}

// GetRegistry issues wl_display.get_registry.
func (d *Display) GetRegistry(h *RegistryHandlers) *Registry {
	r := &Registry{handlers: h}
	r.object = newChild(d.proxy, "wl_registry", 1, r.dispatch)
	d.proxy.Request(1, r.proxy)
	return r
}

// Sync issues wl_display.sync; the returned callback fires OnDone once the
// server has processed every request sent before it (used for roundtrips).
func (d *Display) Sync(h *CallbackHandlers) *Callback {
	c := &Callback{handlers: h}
	c.object = newChild(d.proxy, "wl_callback", 1, c.dispatch)
	d.proxy.Request(0, c.proxy)
	return c
}

// RegistryHandlers mirrors wl_registry's events.
type RegistryHandlers struct {
	OnGlobal       func(wl.Event)
	OnGlobalRemove func(wl.Event)
}

// Registry is wl_registry, the enumeration of compositor globals.
type Registry struct {
	object
	handlers *RegistryHandlers
}

// RegistryGlobalEvent announces one compositor global; conn is carried so
// Registrar.Handler can bind it without the caller threading the
// connection through every handler closure.
type RegistryGlobalEvent struct {
	proxy     wl.Proxy
	conn      *wl.Conn
	Name      uint32
	Interface string
	Version   uint32
}

func (e *RegistryGlobalEvent) Proxy() wl.Proxy { return e.proxy }

// RegistryGlobalRemoveEvent announces the removal of a previously
// advertised global (output unplug, etc).
type RegistryGlobalRemoveEvent struct {
	proxy wl.Proxy
	Name  uint32
}

func (e *RegistryGlobalRemoveEvent) Proxy() wl.Proxy { return e.proxy }

func (r *Registry) dispatch(evt wl.Event) {
	if r.handlers == nil {
		return
	}
	switch evt.(type) {
	case *RegistryGlobalEvent:
		if r.handlers.OnGlobal != nil {
			r.handlers.OnGlobal(evt)
		}
	case *RegistryGlobalRemoveEvent:
		if r.handlers.OnGlobalRemove != nil {
			r.handlers.OnGlobalRemove(evt)
		}
	}
}

// Bind issues wl_registry.bind for a given global name/interface/version.
func (r *Registry) Bind(name uint32, iface string, version uint32, fn func(wl.Event)) wl.Proxy {
	child := r.proxy.NewChild(iface, version)
	child.SetHandler(fn)
	r.proxy.Request(0, name, iface, version, child)
	return child
}

// CallbackHandlers mirrors wl_callback's single event.
type CallbackHandlers struct {
	OnDone func(wl.Event)
}

// Callback is the one-shot wl_callback object returned by sync and by
// per-surface frame requests.
type Callback struct {
	object
	handlers *CallbackHandlers
}

// CallbackDoneEvent fires once, carrying an opaque "data" word (frame
// callbacks place a timestamp there; sync leaves it unspecified).
type CallbackDoneEvent struct {
	proxy    wl.Proxy
	CallbackData uint32
}

func (e *CallbackDoneEvent) Proxy() wl.Proxy { return e.proxy }

func (c *Callback) dispatch(evt wl.Event) {
	if c.handlers == nil || c.handlers.OnDone == nil {
		return
	}
	if _, ok := evt.(*CallbackDoneEvent); ok {
		c.handlers.OnDone(evt)
	}
}
