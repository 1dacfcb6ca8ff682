package foamshot

import (
	"context"
	"fmt"
	"time"

	"github.com/Thirdwinter/foamshot/proto"
	wl "github.com/rajveermalviya/go-wayland/wayland"
	"github.com/rs/zerolog"
)

// State is one node of the Compositor's state machine, per spec.md §4.7.
type State int

const (
	StateInit State = iota
	StateWaitPointerPress
	StateOnDraw
	StateOnEdit
	StateToggleFreeze
	StateOutput
	StateExit
)

// EditAction narrows StateOnEdit to which handle, if any, is grabbed.
type EditAction = HitRegion

// AppState is the single mutable struct threaded through the event
// loop, per spec.md §3/§9 ("interior-mutable state shared between
// dispatch handlers" resolved as one struct passed by reference).
type AppState struct {
	state      State
	editAction EditAction
	freezeMode FreezeMode // the freeze state OnEdit returns to on Escape

	pointer   *PointerTracker
	selection SelectionRect
	haveSel   bool
	dragStart Point
	editStart Point

	monitors *MonitorSet
	capture  *CaptureSession
	renderer *Renderer

	cfg Config
	log zerolog.Logger

	seat               *proto.Seat
	shm                *proto.Shm
	screencopyMgr      *proto.ScreencopyManager
	layerShell         *proto.LayerShell
	viewporter         *proto.Viewporter
	fracScaleMgr       *proto.FractionalScaleManager
	cursorShapeMgr     *proto.CursorShapeManager
	xdgOutputMgr       *proto.XdgOutputManager
	compositorGlobal   *proto.Compositor

	currentMonitorID int

	wlPointer  *proto.Pointer
	wlKeyboard *proto.Keyboard

	conn *wl.Conn

	exitCode int
	fatal    error
}

// Run wires the registry, drives the event loop, and returns once the
// state machine reaches Exit. The returned error, if any, is a
// *FatalError, or the *UserError of a failed save; cmd/foamshot maps a
// *FatalError to a critical notification, and exits nonzero for either.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) error {
	conn, err := wl.Connect("")
	if err != nil {
		return fatalf("unable to connect to wayland display", err)
	}
	defer conn.Close()

	app := &AppState{
		cfg:      cfg,
		log:      log,
		monitors: NewMonitorSet(),
		conn:     conn,
		state:    StateInit,
	}
	app.pointer = NewPointerTracker(app.monitors)

	display := proto.NewDisplay(&proto.DisplayHandlers{
		OnError: func(evt wl.Event) {
			e := evt.(*proto.DisplayErrorEvent)
			app.fatal = fatalf(fmt.Sprintf("display protocol error [%d] %s", e.Code, e.Message), nil)
			app.state = StateExit
		},
	})
	conn.Register(display)

	app.bindGlobals(display)

	app.roundtrip(display)

	if app.screencopyMgr == nil {
		return fatalf("compositor does not support wlr-screencopy", nil)
	}

	app.renderer = NewRenderer(app.shm)
	app.capture = NewCaptureSession(app.screencopyMgr, app.shm)

	if err := app.startup(); err != nil {
		return err
	}

	for app.state != StateExit {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := conn.Dispatch(); err != nil {
			return fatalf("event dispatch failed", err)
		}
		if app.fatal != nil {
			return app.fatal
		}
		if app.state == StateOutput {
			if err := app.Output(); err != nil {
				return err
			}
		}
	}

	return nil
}

// bindGlobals registers the singleton globals via a Registrar and
// special-cases wl_output, whose multiplicity the generic
// interface-name-keyed Registrar can't express: every advertised
// wl_output becomes its own Monitor.
func (app *AppState) bindGlobals(display *proto.Display) {
	app.compositorGlobal = proto.NewCompositor(nil)
	app.shm = proto.NewShm(nil)
	app.seat = proto.NewSeat(&proto.SeatHandlers{
		OnCapabilities: func(evt wl.Event) {
			e := evt.(*proto.SeatCapabilitiesEvent)
			if e.Capabilities&proto.SeatCapabilityPointer != 0 && app.wlPointer == nil {
				app.bindPointer()
			}
			if e.Capabilities&proto.SeatCapabilityKeyboard != 0 && app.wlKeyboard == nil {
				app.bindKeyboard()
			}
		},
	})
	app.layerShell = proto.NewLayerShell(nil)
	app.screencopyMgr = proto.NewScreencopyManager(nil)
	app.viewporter = proto.NewViewporter(nil)
	app.fracScaleMgr = proto.NewFractionalScaleManager(nil)
	app.cursorShapeMgr = proto.NewCursorShapeManager(nil)
	app.xdgOutputMgr = proto.NewXdgOutputManager(nil)

	reg := proto.Registrar{
		app.compositorGlobal, app.shm, app.seat, app.layerShell,
		app.screencopyMgr, app.viewporter, app.fracScaleMgr,
		app.cursorShapeMgr, app.xdgOutputMgr,
	}

	registry := display.GetRegistry(&proto.RegistryHandlers{
		OnGlobal: func(evt wl.Event) {
			e := evt.(*proto.RegistryGlobalEvent)
			if e.Interface == "wl_output" {
				app.addOutput(e)
				return
			}
			reg.Handler(evt)
		},
		OnGlobalRemove: func(evt wl.Event) {
			// Monitor removal is keyed by our own small integer id, not
			// the registry name; a full implementation keeps a
			// name->id map populated in addOutput. Out of scope for
			// the common case (monitors rarely unplug mid-session).
		},
	})
	_ = registry
}

// addOutput binds a newly-announced wl_output, inserts a Monitor, and
// (once xdg-output is available) requests its logical geometry too.
func (app *AppState) addOutput(e *proto.RegistryGlobalEvent) {
	var mon *Monitor

	output := proto.NewOutput(&proto.OutputHandlers{
		OnGeometry: func(evt wl.Event) {},
		OnMode: func(evt wl.Event) {
			me := evt.(*proto.OutputModeEvent)
			if me.Flags&proto.OutputModeCurrent != 0 {
				mon.UpdateGeometry(int(me.Width), int(me.Height))
			}
		},
		OnScale: func(evt wl.Event) {
			se := evt.(*proto.OutputScaleEvent)
			mon.SetIntegerScale(int(se.Factor))
		},
		OnName: func(evt wl.Event) {
			ne := evt.(*proto.OutputNameEvent)
			mon.SetName(ne.Name)
		},
	})

	mon = app.monitors.Insert(output)
	proto.Registrar{output}.Handler(e)

	if app.xdgOutputMgr != nil {
		xdgOut := app.xdgOutputMgr.GetXdgOutput(output, &proto.XdgOutputHandlers{
			OnLogicalPosition: func(evt wl.Event) {
				le := evt.(*proto.XdgOutputLogicalPositionEvent)
				mon.LogicalX, mon.LogicalY = int(le.X), int(le.Y)
			},
			OnLogicalSize: func(evt wl.Event) {
				le := evt.(*proto.XdgOutputLogicalSizeEvent)
				mon.LogicalWidth, mon.LogicalHeight = int(le.Width), int(le.Height)
			},
		})
		_ = xdgOut
	}
}

// bindPointer wires wl_pointer's enter/motion/button events into the
// PointerTracker and the state machine's press/release transitions.
func (app *AppState) bindPointer() {
	app.wlPointer = app.seat.GetPointer(&proto.PointerHandlers{
		OnEnter: func(evt wl.Event) {
			e := evt.(*proto.PointerEnterEvent)
			app.currentMonitorID = app.surfaceOwnerID(e.Surface)
			app.pointer.Enter(app.currentMonitorID, e.SurfaceX, e.SurfaceY, e.Serial)
		},
		OnMotion: func(evt wl.Event) {
			e := evt.(*proto.PointerMotionEvent)
			app.pointer.Motion(app.currentMonitorID, e.SurfaceX, e.SurfaceY)
			app.OnPointerMotion()
		},
		OnButton: func(evt wl.Event) {
			e := evt.(*proto.PointerButtonEvent)
			app.OnPointerButton(e.State == proto.PointerButtonStatePressed)
		},
	})
	app.pointer.BindShapeDevice(app.cursorShapeMgr, app.wlPointer)
}

// bindKeyboard wires wl_keyboard's key events into the §6 key bindings.
func (app *AppState) bindKeyboard() {
	app.wlKeyboard = app.seat.GetKeyboard(&proto.KeyboardHandlers{
		OnKey: func(evt wl.Event) {
			e := evt.(*proto.KeyboardKeyEvent)
			if e.State != proto.KeyStatePressed {
				return
			}
			if name, ok := keyName(e.Key); ok {
				app.OnKey(name)
			}
		},
	})
}

// surfaceOwnerID finds which monitor's overlay surface raised an event;
// the wire proxy identity is the only handle available at the
// wl_pointer layer, so this is a linear scan over a small (per-display)
// monitor count rather than an address-keyed map, per spec.md §9.
func (app *AppState) surfaceOwnerID(surface wl.Proxy) int {
	for _, m := range app.monitors.All() {
		if m.surface != nil && m.surface.Proxy() == surface {
			return m.ID
		}
	}
	return app.currentMonitorID
}

// keyName maps a subset of Linux evdev keycodes to the §6 key bindings;
// unmapped keys are ignored.
func keyName(code uint32) (string, bool) {
	switch code {
	case 1:
		return "Escape", true
	case 31:
		return "s", true
	case 30:
		return "a", true
	case 33:
		return "f", true
	default:
		return "", false
	}
}

// roundtrip blocks until every request sent so far has been processed
// by the compositor, used for the initial global binding per spec.md §5.
func (app *AppState) roundtrip(display *proto.Display) {
	done := make(chan struct{}, 1)
	cb := display.Sync(&proto.CallbackHandlers{
		OnDone: func(evt wl.Event) { done <- struct{}{} },
	})
	defer cb.Destroy()
	for {
		app.conn.Dispatch()
		select {
		case <-done:
			return
		default:
		}
	}
}

// startup implements the Init transition of spec.md §4.7: wait for
// monitor geometry, request a full-screen capture, await all ready,
// create overlays, and transition to WaitPointerPress once every layer
// has been configured.
func (app *AppState) startup() error {
	for _, m := range app.monitors.All() {
		if !m.Complete() {
			app.roundtripUntilComplete()
			break
		}
	}

	captureFailed := false
	app.capture.RequestAll(app.monitors, app.cfg.ShowCursor, func() {}, func(id int) {
		captureFailed = true
	})
	if err := app.capture.AwaitAll(func() error { return app.conn.Dispatch() }); err != nil {
		return err
	}
	if captureFailed {
		return fatalf("screencopy frame failed", nil)
	}

	configuredCount := 0
	app.monitors.InitOverlays(app.compositorGlobal, app.layerShell, app.viewporter, app.fracScaleMgr,
		func(m *Monitor, serial, w, h uint32) {
			configuredCount++
			mode := AttachFrozen
			if app.cfg.DisableFreeze {
				mode = AttachTransparent
			}
			m.Attach(app.shm, mode)
			if configuredCount == len(app.monitors.All()) {
				if app.cfg.JumpToFullScreen {
					app.currentMonitorID = m.ID
					app.selectFullScreen()
					app.state = StateOutput
				} else {
					app.state = StateWaitPointerPress
				}
			}
		},
		func(m *Monitor) {
			app.monitors.Remove(m.ID)
		},
	)

	for app.state == StateInit {
		if err := app.conn.Dispatch(); err != nil {
			return fatalf("event dispatch failed", err)
		}
	}
	return nil
}

func (app *AppState) roundtripUntilComplete() {
	for {
		allComplete := true
		for _, m := range app.monitors.All() {
			if !m.Complete() {
				allComplete = false
			}
		}
		if allComplete {
			return
		}
		app.conn.Dispatch()
	}
}

// OnPointerButton implements the Pressed/Released transitions of
// §4.4/§4.7.
func (app *AppState) OnPointerButton(pressed bool) {
	cur, ok := app.pointer.Current()
	if !ok {
		return
	}

	switch {
	case app.state == StateWaitPointerPress && pressed:
		app.pointer.ResetGesture()
		app.dragStart = cur
		app.selection = FromDrag(cur, cur)
		app.haveSel = true
		app.state = StateOnDraw

	case app.state == StateOnDraw && !pressed:
		if app.selection.Area() == 0 {
			// Zero-area release is a no-op: back to WaitPointerPress,
			// per the Open Question resolution.
			app.state = StateWaitPointerPress
			return
		}
		if app.cfg.EnterEditMode {
			app.editAction = HitNone
			app.state = StateOnEdit
		} else {
			app.state = StateOutput
		}

	case app.state == StateOnEdit && app.editAction == HitNone && pressed:
		app.editAction = app.selection.HitRegion(cur, app.cfg.EditThreshold)
		app.editStart = cur
		app.pointer.SetCursorShape(CursorShapeForAction(app.editAction))

	case app.state == StateOnEdit && !pressed:
		app.editAction = HitNone
	}
	app.markAllRedraw()
}

// OnPointerMotion implements the OnDraw/OnEdit motion transitions.
func (app *AppState) OnPointerMotion() {
	cur, ok := app.pointer.Current()
	if !ok {
		return
	}
	switch app.state {
	case StateOnDraw:
		app.selection = FromDrag(app.dragStart, cur)
	case StateOnEdit:
		if app.editAction != HitNone {
			r, newAction := app.selection.Edit(app.editStart, cur, app.editAction)
			app.selection = r
			app.editAction = newAction
		} else {
			hit := app.selection.HitRegion(cur, app.cfg.EditThreshold)
			app.pointer.SetCursorShape(CursorShapeForAction(hit))
		}
	}
	app.markAllRedraw()
}

func (app *AppState) markAllRedraw() {
	for _, m := range app.monitors.All() {
		sub, ok := app.selection.ProjectOnto(m)
		if ok {
			m.Subrect = &sub
		} else {
			m.Subrect = nil
		}
		m.NeedsRedraw = true
	}
}

// OnKey implements the key bindings of spec.md §4.7/§6.
func (app *AppState) OnKey(key string) {
	switch key {
	case "Escape":
		if app.state == StateOnEdit {
			// Returns to the freeze state it came from rather than exiting.
			app.state = StateWaitPointerPress
		} else {
			app.state = StateExit
		}
	case "f":
		app.toggleFreeze()
	case "a":
		app.selectFullScreen()
		app.state = StateOutput
	case "s":
		if app.state != StateInit && app.state != StateWaitPointerPress && app.state != StateExit {
			app.state = StateOutput
		}
	}
}

// toggleFreeze (key f) requests a fresh capture and reattaches every
// overlay, frozen unless cfg.DisableFreeze is set, then restores the
// prior state. It does not switch between frozen and live: the mode it
// reattaches with depends only on the config.
func (app *AppState) toggleFreeze() {
	prevState := app.state
	if app.cfg.DisableFreeze {
		app.freezeMode = FreezeLive
	} else {
		app.freezeMode = FreezeFrozen
	}
	captureFailed := false
	app.capture.RequestAll(app.monitors, app.cfg.ShowCursor, func() {}, func(id int) { captureFailed = true })
	_ = app.capture.AwaitAll(func() error { return app.conn.Dispatch() })
	if captureFailed {
		app.fatal = fatalf("screencopy frame failed", nil)
		app.state = StateExit
		return
	}
	mode := AttachFrozen
	if app.cfg.DisableFreeze {
		mode = AttachTransparent
	}
	for _, m := range app.monitors.All() {
		m.Attach(app.shm, mode)
	}
	app.state = prevState
}

func (app *AppState) selectFullScreen() {
	m, ok := app.monitors.Get(app.currentMonitorID)
	if !ok && len(app.monitors.All()) > 0 {
		m = app.monitors.All()[0]
	}
	if m == nil {
		return
	}
	app.selection = SelectionRect{
		Sx: m.LogicalX, Sy: m.LogicalY,
		Ex: m.LogicalX + m.LogicalWidth, Ey: m.LogicalY + m.LogicalHeight,
	}
	app.markAllRedraw()
}

// OnFrame redraws a monitor whose NeedsRedraw flag is set, called from
// its wl_surface.frame callback.
func (app *AppState) OnFrame(m *Monitor) {
	if !m.NeedsRedraw {
		return
	}
	m.NeedsRedraw = false
	if err := app.renderer.Draw(m, app.freezeMode, m.Subrect); err != nil {
		app.log.Warn().Err(err).Int("monitor", m.ID).Msg("frame draw failed")
	}
	m.surface.Frame(&proto.CallbackHandlers{
		OnDone: func(evt wl.Event) { app.OnFrame(m) },
	})
}

// Output implements the terminal Output state: assemble, save, notify,
// copy, exit.
func (app *AppState) Output() error {
	img, ok := Assembler{}.Assemble(app.selection, app.monitors)
	if !ok {
		app.state = StateExit
		return nil
	}

	notifier := NewNotifier(app.log)

	if !app.cfg.DisableCopy {
		clip := NewClipboard(app.log)
		clip.Copy(img)
	}

	saver := NewSaver(app.cfg)
	path, thumb, err := saver.Save(img, time.Now())
	if err != nil {
		if !app.cfg.DisableNotify {
			notifier.NotifyFatal(err.Error())
		}
		app.state = StateExit
		return err
	}

	if !app.cfg.DisableNotify {
		thumbPath := path
		_ = thumb
		notifier.NotifySaved(path, thumbPath)
	}

	app.state = StateExit
	return nil
}
