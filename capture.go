package foamshot

import (
	"github.com/Thirdwinter/foamshot/proto"
	"github.com/daaku/swizzle"
	wl "github.com/rajveermalviya/go-wayland/wayland"
)

// CaptureSession issues per-output capture requests and tracks the
// buffer/bufferdone/ready barrier described in spec.md §4.2.
type CaptureSession struct {
	manager *proto.ScreencopyManager
	shm     *proto.Shm

	frames     map[int]*proto.ScreencopyFrame
	readyCount int
	total      int
	failed     bool

	onDone   func()
	onFailed func(id int)
}

func NewCaptureSession(manager *proto.ScreencopyManager, shm *proto.Shm) *CaptureSession {
	return &CaptureSession{manager: manager, shm: shm, frames: make(map[int]*proto.ScreencopyFrame)}
}

// RequestAll obtains one capture-frame object per monitor, tagged with
// the monitor's id, and wires the buffer/buffer_done/ready/failed event
// routing. At most one outstanding frame per monitor per cycle.
func (cs *CaptureSession) RequestAll(monitors *MonitorSet, showCursor bool, onDone func(), onFailed func(id int)) {
	cs.readyCount = 0
	cs.failed = false
	cs.total = len(monitors.All())
	cs.onDone = onDone
	cs.onFailed = onFailed

	overlayCursor := int32(0)
	if showCursor {
		overlayCursor = 1
	}

	for _, m := range monitors.All() {
		mon := m
		frame := cs.manager.CaptureOutput(overlayCursor, mon.output, &proto.ScreencopyFrameHandlers{
			OnBuffer: func(evt wl.Event) {
				e := evt.(*proto.ScreencopyFrameBufferEvent)
				mon.UpdateGeometry(int(e.Width), int(e.Height))
				if err := mon.ensurePool(cs.shm); err != nil {
					cs.failed = true
					if cs.onFailed != nil {
						cs.onFailed(mon.ID)
					}
					return
				}
			},
			OnBufferDone: func(evt wl.Event) {
				f := cs.frames[mon.ID]
				buf := mon.pool.CreateBuffer(0, int32(mon.PixelWidth), int32(mon.PixelHeight), int32(mon.PixelWidth*4), proto.ShmFormatArgb8888, nil)
				f.Copy(buf)
			},
			OnReady: func(evt wl.Event) {
				f := cs.frames[mon.ID]
				delete(cs.frames, mon.ID)
				f.Destroy()
				cs.readyCount++
				cs.captureCanvasFrom(mon)
				if cs.readyCount == cs.total {
					if cs.onDone != nil {
						cs.onDone()
					}
				}
			},
			OnFailed: func(evt wl.Event) {
				cs.failed = true
				if cs.onFailed != nil {
					cs.onFailed(mon.ID)
				}
			},
		})
		cs.frames[mon.ID] = frame
	}
}

// captureCanvasFrom copies the mapped pixels of a monitor's pool into
// its capture_canvas, swizzling from wl_shm's little-endian BGRA byte
// order into the engine's canonical ARGB32.
func (cs *CaptureSession) captureCanvasFrom(m *Monitor) {
	size := m.PixelWidth * m.PixelHeight * 4
	data := mmapPool(m.poolFile, size)
	if data == nil {
		return
	}
	canvas := make([]byte, size)
	copy(canvas, data)
	swizzle.BGRA(canvas)
	m.CaptureCanvas = canvas
}

// AwaitAll is a synchronous convenience used by tests and by the
// Compositor's startup path: block-dispatches conn until ready_count
// reaches the monitor count (or a frame has failed), then resets
// ready_count to zero for the next cycle.
func (cs *CaptureSession) AwaitAll(dispatch func() error) error {
	for cs.readyCount < cs.total && !cs.failed {
		if err := dispatch(); err != nil {
			return err
		}
	}
	cs.readyCount = 0
	return nil
}
