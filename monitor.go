package foamshot

import (
	"errors"
	"os"

	"github.com/Thirdwinter/foamshot/proto"
	wl "github.com/rajveermalviya/go-wayland/wayland"
	"golang.org/x/sys/unix"
)

// createTmpfile allocates an anonymous, already-sized shm backing file in
// XDG_RUNTIME_DIR, unlinked immediately so it disappears with the fd.
func createTmpfile(size int64) (*os.File, error) {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		return nil, errors.New("XDG_RUNTIME_DIR is not defined in env")
	}
	file, err := os.CreateTemp(dir, "foamshot_shm_*")
	if err != nil {
		return nil, err
	}
	if err := file.Truncate(size); err != nil {
		file.Close()
		return nil, err
	}
	if err := os.Remove(file.Name()); err != nil {
		file.Close()
		return nil, err
	}
	return file, nil
}

// AttachMode selects what Monitor.Attach paints into a freshly attached
// buffer before the Renderer adds its own wash/border pass.
type AttachMode int

const (
	AttachFrozen AttachMode = iota
	AttachTransparent
	AttachEmpty
)

// SubRect is a monitor-local pixel rectangle: the projection of the
// global selection onto one monitor.
type SubRect struct {
	X, Y, W, H int
}

// Monitor is one connected wl_output, per spec.md §3.
type Monitor struct {
	ID   int
	Name string

	PixelWidth, PixelHeight int

	LogicalX, LogicalY          int
	LogicalWidth, LogicalHeight int

	// Scale is either the integer wl_output.scale or a 120-based
	// fractional value divided out to a float; fractional, once
	// received, takes precedence over integer.
	Scale        float64
	hasFractional bool

	CaptureCanvas []byte // ARGB32, stride = PixelWidth*4

	Subrect     *SubRect
	NeedsRedraw bool

	output     *proto.Output
	xdgOutput  *proto.XdgOutput
	layer      *proto.LayerSurface
	surface    *proto.WlSurface
	viewport   *proto.Viewport
	fracScale  *proto.FractionalScale

	pool     *proto.ShmPool
	poolFile *os.File
	poolSize int32

	currentBuffer *proto.Buffer

	configured bool
	pendingConfigureSerial uint32
}

// MonitorSet is the ordered-by-bind-order collection of every known
// Monitor, indexed by stable small integer id (never by address, per
// spec.md §9's "per-monitor indexed collections" note).
type MonitorSet struct {
	monitors []*Monitor
	byID     map[int]*Monitor
	nextID   int
}

func NewMonitorSet() *MonitorSet {
	return &MonitorSet{byID: make(map[int]*Monitor)}
}

// Insert allocates a monitor record with placeholder geometry, tagged
// with the output handle it is bound to. The shared-memory pool is
// created lazily once pixel dimensions are known (see ensurePool).
func (ms *MonitorSet) Insert(output *proto.Output) *Monitor {
	id := ms.nextID
	ms.nextID++
	m := &Monitor{ID: id, Scale: 1, output: output}
	ms.monitors = append(ms.monitors, m)
	ms.byID[id] = m
	return m
}

// Remove tears down a monitor. It is called when the compositor closes
// the monitor's layer surface; registry.global_remove is not mapped to a
// monitor and does not reach here.
func (ms *MonitorSet) Remove(id int) {
	m, ok := ms.byID[id]
	if !ok {
		return
	}
	if m.layer != nil {
		m.layer.Destroy()
	}
	if m.poolFile != nil {
		m.poolFile.Close()
	}
	delete(ms.byID, id)
	for i, mm := range ms.monitors {
		if mm.ID == id {
			ms.monitors = append(ms.monitors[:i], ms.monitors[i+1:]...)
			break
		}
	}
}

func (ms *MonitorSet) Get(id int) (*Monitor, bool) {
	m, ok := ms.byID[id]
	return m, ok
}

func (ms *MonitorSet) All() []*Monitor { return ms.monitors }

// UpdateGeometry sets the pixel size from a mode or screencopy buffer
// event; SetLogical, SetIntegerScale, SetFractionalScale and SetName fill
// in the rest. Idempotent: repeated calls with the same values are
// harmless.
func (m *Monitor) UpdateGeometry(pixelW, pixelH int) {
	m.PixelWidth, m.PixelHeight = pixelW, pixelH
}

func (m *Monitor) SetLogical(x, y, w, h int) {
	m.LogicalX, m.LogicalY, m.LogicalWidth, m.LogicalHeight = x, y, w, h
}

func (m *Monitor) SetIntegerScale(scale int) {
	if m.hasFractional {
		return
	}
	m.Scale = float64(scale)
}

// SetFractionalScale receives the 120ths-of-a-unit value from
// wp_fractional_scale_v1.preferred_scale; it takes precedence over any
// integer scale already received.
func (m *Monitor) SetFractionalScale(scale120 uint32) {
	m.hasFractional = true
	m.Scale = float64(scale120) / 120.0
}

func (m *Monitor) SetName(name string) { m.Name = name }

// Complete reports whether enough geometry has arrived to create an
// overlay and request a capture.
func (m *Monitor) Complete() bool {
	return m.PixelWidth > 0 && m.PixelHeight > 0 && m.LogicalWidth > 0 && m.LogicalHeight > 0
}

// ensurePool (re)allocates the per-monitor shm pool once pixel
// dimensions are known, or resizes it if the mode changed.
func (m *Monitor) ensurePool(shm *proto.Shm) error {
	stride := int32(m.PixelWidth * 4)
	size := stride * int32(m.PixelHeight)
	if size <= 0 {
		return errors.New("monitor has zero pixel area")
	}
	if m.pool != nil {
		if size > m.poolSize {
			if err := m.poolFile.Truncate(int64(size)); err != nil {
				return err
			}
			m.pool.Resize(size)
			m.poolSize = size
		}
		return nil
	}
	file, err := createTmpfile(int64(size))
	if err != nil {
		return err
	}
	m.poolFile = file
	m.poolSize = size
	m.pool = shm.CreatePool(int(file.Fd()), size, nil)
	return nil
}

// InitOverlays creates, per monitor, a surface, a viewport bound to it
// (destination = logical size), a fractional-scale listener if the
// manager is available, and a layer-shell surface anchored to all four
// edges with exclusive-zone -1 and keyboard interactivity exclusive, then
// commits once so the compositor issues the first configure.
func (ms *MonitorSet) InitOverlays(
	compositor *proto.Compositor,
	layerShell *proto.LayerShell,
	viewporter *proto.Viewporter,
	fracMgr *proto.FractionalScaleManager,
	onConfigure func(*Monitor, uint32, uint32, uint32),
	onClosed func(*Monitor),
) {
	for _, m := range ms.monitors {
		mon := m
		mon.surface = compositor.CreateSurface(nil)

		if viewporter != nil {
			mon.viewport = viewporter.GetViewport(mon.surface, nil)
			mon.viewport.SetDestination(int32(mon.LogicalWidth), int32(mon.LogicalHeight))
		}

		if fracMgr != nil {
			mon.fracScale = fracMgr.GetFractionalScale(mon.surface, &proto.FractionalScaleHandlers{
				OnPreferredScale: func(evt wl.Event) {
					e := evt.(*proto.FractionalScalePreferredScaleEvent)
					mon.SetFractionalScale(e.Scale)
				},
			})
		}

		mon.layer = layerShell.GetLayerSurface(mon.surface, mon.output, proto.LayerShellLayerOverlay, "foamshot", &proto.LayerSurfaceHandlers{
			OnConfigure: func(evt wl.Event) {
				e := evt.(*proto.LayerSurfaceConfigureEvent)
				mon.configured = true
				mon.pendingConfigureSerial = e.Serial
				mon.layer.AckConfigure(e.Serial)
				if onConfigure != nil {
					onConfigure(mon, e.Serial, e.Width, e.Height)
				}
			},
			OnClosed: func(evt wl.Event) {
				if onClosed != nil {
					onClosed(mon)
				}
			},
		})
		mon.layer.SetAnchor(proto.LayerSurfaceAnchorAll)
		mon.layer.SetExclusiveZone(-1)
		mon.layer.SetKeyboardInteractivity(proto.LayerSurfaceKeyboardInteractivityExclusive)
		mon.layer.SetSize(uint32(mon.LogicalWidth), uint32(mon.LogicalHeight))
		mon.surface.Commit()
	}
}

// Attach creates a buffer from this monitor's pool at its pixel
// dimensions, fills it per mode, attaches it to the overlay surface,
// damages the whole buffer and commits. The buffer is retained in
// currentBuffer so the compositor may safely read it until the next
// Attach replaces it.
func (m *Monitor) Attach(shm *proto.Shm, mode AttachMode) error {
	if err := m.ensurePool(shm); err != nil {
		return fatalf("shm pool allocation failed", err)
	}
	stride := int32(m.PixelWidth * 4)
	buf := m.pool.CreateBuffer(0, int32(m.PixelWidth), int32(m.PixelHeight), stride, proto.ShmFormatArgb8888, nil)

	data := mmapPool(m.poolFile, int(m.poolSize))
	if data == nil {
		return &RecoverableError{Reason: "buffer-create failed, skipping this frame"}
	}
	switch mode {
	case AttachFrozen:
		copy(data, m.CaptureCanvas)
	case AttachEmpty:
		clear(data)
	case AttachTransparent:
		clear(data)
		fillTranslucentGrey(data)
	}

	m.currentBuffer = buf
	m.surface.Attach(buf, 0, 0)
	m.surface.DamageBuffer(0, 0, int32(m.PixelWidth), int32(m.PixelHeight))
	m.surface.Commit()
	return nil
}

// mmapPool is a thin indirection point for mapping the pool's backing
// file into memory; kept as a seam so tests can substitute an in-memory
// buffer without a real memfd.
var mmapPool = func(f *os.File, size int) []byte {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil
	}
	return data
}

func clear(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// fillTranslucentGrey fills an ARGB32 buffer with a translucent grey,
// used for the WaitPointerPress pre-capture frame when freezing is
// disabled (mode Transparent).
func fillTranslucentGrey(b []byte) {
	const a, r, g, bl byte = 0x60, 0x20, 0x20, 0x20
	for i := 0; i+3 < len(b); i += 4 {
		b[i+0] = bl
		b[i+1] = g
		b[i+2] = r
		b[i+3] = a
	}
}
