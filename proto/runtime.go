// Package proto contains the wayland-scanner-style protocol bindings
// foamshot needs: the core protocol plus wlr-layer-shell, wlr-screencopy,
// xdg-output, viewporter, fractional-scale and cursor-shape. It completes
// what the upstream project only sketched (see wayland.go in the ctxmenu
// prototype this is descended from), wiring the same Handlers-struct shape
// onto the real go-wayland wire runtime instead of an abandoned fork.
package proto

import (
	wl "github.com/rajveermalviya/go-wayland/wayland"
)

// object is embedded by every protocol wrapper below. It owns the wire
// proxy; Proxy()/Destroy() are shared by every generated type.
type object struct {
	proxy wl.Proxy
}

// Proxy returns the underlying wire object; used by OnRelease/OnDone style
// handlers that need to act on the object that raised the event.
func (o *object) Proxy() wl.Proxy { return o.proxy }

// SetProxy is called by wl.Conn.Register/Bind once the server-side object
// id has been allocated, completing construction of types that are built
// via NewXxx(handlers) before the object exists on the wire (wl_display
// itself, and every singleton reachable only through the registry).
func (o *object) SetProxy(p wl.Proxy) { o.proxy = p }

// Destroy releases the protocol object. Objects created purely as requests
// (wl_callback, one-shot frames) are destroyed this way once consumed.
func (o *object) Destroy() error {
	if o.proxy == nil {
		return nil
	}
	return o.proxy.Destroy()
}

// newChild allocates a new server-side object as a request result of proxy
// (e.g. wl_compositor.create_surface), and wires dispatch to fn.
func newChild(parent wl.Proxy, iface string, version uint32, fn func(wl.Event)) object {
	child := parent.NewChild(iface, version)
	child.SetHandler(fn)
	return object{proxy: child}
}

// global is embedded by every wrapper type that can be discovered through
// wl_registry.global (as opposed to objects created by a request, like
// wl_surface or wl_buffer). It defers binding until the matching global
// name/version is seen, so NewXxx(handlers) can be called before the
// registry roundtrip completes.
type global struct {
	object
	iface   string
	version uint32
}

func (g *global) interfaceName() string { return g.iface }

// boundGlobal is satisfied by every *Xxx wrapper that can appear in a
// Registrar; bindGlobal is called once, when wl_registry.global advertises
// a matching interface name.
type boundGlobal interface {
	interfaceName() string
	bindGlobal(conn *wl.Conn, name, version uint32)
}

// Registrar binds a fixed set of singleton globals against wl_registry's
// global events by matching the advertised interface name, same shape the
// prototype used (wayland.Registrar{compositor, shm, seat, ...}).
type Registrar []boundGlobal

// Handler is passed as RegistryHandlers.OnGlobal.
func (r Registrar) Handler(evt wl.Event) {
	e, ok := evt.(*RegistryGlobalEvent)
	if !ok {
		return
	}
	for _, target := range r {
		if target.interfaceName() == e.Interface {
			target.bindGlobal(e.conn, e.Name, e.Version)
			return
		}
	}
}
