package foamshot

import "github.com/Thirdwinter/foamshot/proto"

// PointerTracker converts compositor enter/motion coordinates — local to
// whichever overlay surface emitted them — into a stable global logical
// coordinate, per spec.md §4.4.
type PointerTracker struct {
	monitors *MonitorSet

	unknownID    int
	haveUnknown  bool
	startMonitor int
	haveStart    bool

	current Point
	haveCur bool

	lastEnterSerial uint32

	shapeManager *proto.CursorShapeManager
	shapeDevice  *proto.CursorShapeDevice
	pointer      *proto.Pointer
}

func NewPointerTracker(monitors *MonitorSet) *PointerTracker {
	return &PointerTracker{monitors: monitors}
}

// Enter handles wl_pointer.enter against the surface belonging to
// monitor id. surfaceX/Y are surface-local logical coordinates, unless
// they fall outside the monitor's logical bounds — a spurious event some
// compositors emit — in which case they are defensively treated as
// already-global.
func (pt *PointerTracker) Enter(id int, surfaceX, surfaceY float64, serial uint32) {
	pt.lastEnterSerial = serial
	pt.unknownID = id
	pt.haveUnknown = true

	m, ok := pt.monitors.Get(id)
	if !ok {
		return
	}

	var global Point
	if surfaceX < 0 || surfaceY < 0 || surfaceX > float64(m.LogicalWidth) || surfaceY > float64(m.LogicalHeight) {
		global = Point{X: int(surfaceX), Y: int(surfaceY)}
	} else {
		global = Point{X: m.LogicalX + int(surfaceX), Y: m.LogicalY + int(surfaceY)}
	}

	if !pt.haveCur {
		pt.current = global
		pt.haveCur = true
	}
	if !pt.haveStart {
		pt.startMonitor = id
		pt.haveStart = true
	}
}

// Motion handles wl_pointer.motion. Per the Open Question resolution,
// surfaceX/Y are reinterpreted relative to startMonitor's surface (a
// projection across the known per-monitor offsets) and converted to
// global by adding startMonitor's logical origin (surface coordinates are
// already logical, so no scale is applied), so a drag stays continuous
// in the frame where the press began even as the pointer crosses
// monitor boundaries.
func (pt *PointerTracker) Motion(emittingID int, surfaceX, surfaceY float64) {
	refID := emittingID
	if pt.haveStart {
		refID = pt.startMonitor
	}
	ref, ok := pt.monitors.Get(refID)
	if !ok {
		return
	}

	emitting, ok := pt.monitors.Get(emittingID)
	if ok && emittingID != refID {
		// Re-project the emitting surface's local coordinate into
		// startMonitor's local frame via the global space.
		globalX := emitting.LogicalX + int(surfaceX)
		globalY := emitting.LogicalY + int(surfaceY)
		surfaceX = float64(globalX - ref.LogicalX)
		surfaceY = float64(globalY - ref.LogicalY)
	}

	pt.current = Point{X: ref.LogicalX + int(surfaceX), Y: ref.LogicalY + int(surfaceY)}
	pt.haveCur = true
}

// Current returns the last-known global pointer position.
func (pt *PointerTracker) Current() (Point, bool) { return pt.current, pt.haveCur }

// StartMonitor returns the monitor id that emitted the first valid enter
// of the current gesture.
func (pt *PointerTracker) StartMonitor() (int, bool) { return pt.startMonitor, pt.haveStart }

// ResetGesture clears the start-monitor anchor; called when a new press
// begins a fresh drag.
func (pt *PointerTracker) ResetGesture() { pt.haveStart = false }

// BindShapeDevice records the cursor-shape manager and pointer;
// SetCursorShape creates the device lazily on first use. Setting a shape
// requires a valid enter serial.
func (pt *PointerTracker) BindShapeDevice(mgr *proto.CursorShapeManager, pointer *proto.Pointer) {
	pt.shapeManager = mgr
	pt.pointer = pointer
}

// SetCursorShape hints the compositor-drawn cursor for the current
// region. Failure to have a serial yet, or a nil shape manager
// (feature not advertised), is Recoverable: the call is skipped.
func (pt *PointerTracker) SetCursorShape(shape proto.CursorShape) error {
	if pt.shapeManager == nil || pt.pointer == nil {
		return &RecoverableError{Reason: "cursor-shape manager unavailable"}
	}
	if pt.lastEnterSerial == 0 {
		return &RecoverableError{Reason: "no enter serial yet"}
	}
	if pt.shapeDevice == nil {
		pt.shapeDevice = pt.shapeManager.GetPointer(pt.pointer)
	}
	pt.shapeDevice.SetShape(pt.lastEnterSerial, shape)
	return nil
}

// CursorShapeForAction maps an edit action to the cursor shape the
// original implementation uses, grounded in action.rs's to_cursor_shape.
func CursorShapeForAction(action HitRegion) proto.CursorShape {
	switch action {
	case HitLeft, HitRight:
		return proto.CursorShapeEwResize
	case HitTop, HitBottom:
		return proto.CursorShapeNsResize
	case HitTopLeft, HitBottomRight:
		return proto.CursorShapeNwseResize
	case HitTopRight, HitBottomLeft:
		return proto.CursorShapeNeswResize
	case HitMove:
		return proto.CursorShapeMove
	default:
		return proto.CursorShapeDefault
	}
}
