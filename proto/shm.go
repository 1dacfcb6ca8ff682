package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

// ShmFormat enumerates the wl_shm pixel formats foamshot deals with.
type ShmFormat uint32

const (
	ShmFormatArgb8888 ShmFormat = 0
	ShmFormatXrgb8888 ShmFormat = 1
	ShmFormatAbgr8888 ShmFormat = 0x34324241
	ShmFormatXbgr8888 ShmFormat = 0x34324258
)

// ShmHandlers mirrors wl_shm's format advertisement.
type ShmHandlers struct {
	OnFormat func(wl.Event)
}

// Shm is the wl_shm global used to allocate pooled pixel buffers.
type Shm struct {
	global
	handlers *ShmHandlers
}

type ShmFormatEvent struct {
	proxy  wl.Proxy
	Format ShmFormat
}

func (e *ShmFormatEvent) Proxy() wl.Proxy { return e.proxy }

func NewShm(h *ShmHandlers) *Shm {
	s := &Shm{handlers: h}
	s.iface, s.version = "wl_shm", 1
	return s
}

func (s *Shm) bindGlobal(conn *wl.Conn, name, version uint32) {
	s.proxy = conn.Bind(name, s.iface, min(version, s.version), s.dispatch)
}

func (s *Shm) dispatch(evt wl.Event) {
	if s.handlers == nil || s.handlers.OnFormat == nil {
		return
	}
	if _, ok := evt.(*ShmFormatEvent); ok {
		s.handlers.OnFormat(evt)
	}
}

// CreatePool issues wl_shm.create_pool against an already-sized fd (a
// memfd or a truncated+unlinked tmpfile, per §6's shm contract).
func (s *Shm) CreatePool(fd int, size int32, h *ShmPoolHandlers) *ShmPool {
	p := &ShmPool{handlers: h, fd: fd, size: size}
	p.object = newChild(s.proxy, "wl_shm_pool", 1, nil)
	s.proxy.Request(0, p.proxy, fd, size)
	return p
}

// ShmPoolHandlers is empty: wl_shm_pool has no events.
type ShmPoolHandlers struct{}

// ShmPool is the per-monitor shared-memory pool backing every attached
// buffer for that monitor (MonitorSet owns one pool per Monitor).
type ShmPool struct {
	object
	handlers *ShmPoolHandlers
	fd       int
	size     int32
}

// Resize issues wl_shm_pool.resize; used when a monitor's mode changes.
func (p *ShmPool) Resize(size int32) {
	p.size = size
	p.proxy.Request(2, size)
}

// CreateBuffer issues wl_shm_pool.create_buffer at the given byte offset.
func (p *ShmPool) CreateBuffer(offset, width, height, stride int32, format ShmFormat, h *BufferHandlers) *Buffer {
	b := &Buffer{handlers: h}
	b.object = newChild(p.proxy, "wl_buffer", 1, b.dispatch)
	p.proxy.Request(0, b.proxy, offset, width, height, stride, uint32(format))
	return b
}

// BufferHandlers mirrors wl_buffer.release.
type BufferHandlers struct {
	OnRelease func(wl.Event)
}

// Buffer is a single wl_buffer backed by a region of its pool's fd.
type Buffer struct {
	object
	handlers *BufferHandlers
}

type BufferReleaseEvent struct {
	proxy wl.Proxy
}

func (e *BufferReleaseEvent) Proxy() wl.Proxy { return e.proxy }

func (b *Buffer) dispatch(evt wl.Event) {
	if b.handlers == nil || b.handlers.OnRelease == nil {
		return
	}
	if _, ok := evt.(*BufferReleaseEvent); ok {
		b.handlers.OnRelease(evt)
	}
}
