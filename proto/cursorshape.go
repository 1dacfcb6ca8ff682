package proto

import wl "github.com/rajveermalviya/go-wayland/wayland"

// CursorShape mirrors wp_cursor_shape_device_v1.shape. Only the subset
// the editing state machine's hit-test regions map to is named here.
type CursorShape uint32

const (
	CursorShapeDefault    CursorShape = 1
	CursorShapeMove       CursorShape = 13
	CursorShapeEwResize   CursorShape = 26
	CursorShapeNsResize   CursorShape = 27
	CursorShapeNwseResize CursorShape = 29
	CursorShapeNeswResize CursorShape = 28
)

// CursorShapeManagerHandlers is empty: wp_cursor_shape_manager_v1 has no
// events.
type CursorShapeManagerHandlers struct{}

// CursorShapeManager is the wp_cursor_shape_manager_v1 global.
type CursorShapeManager struct {
	global
	handlers *CursorShapeManagerHandlers
}

func NewCursorShapeManager(h *CursorShapeManagerHandlers) *CursorShapeManager {
	m := &CursorShapeManager{handlers: h}
	m.iface, m.version = "wp_cursor_shape_manager_v1", 1
	return m
}

func (m *CursorShapeManager) bindGlobal(conn *wl.Conn, name, version uint32) {
	m.proxy = conn.Bind(name, m.iface, min(version, m.version), nil)
}

// GetPointer issues wp_cursor_shape_manager_v1.get_pointer, binding a
// cursor-shape device to the given wl_pointer.
func (m *CursorShapeManager) GetPointer(pointer *Pointer) *CursorShapeDevice {
	d := &CursorShapeDevice{}
	d.object = newChild(m.proxy, "wp_cursor_shape_device_v1", m.version, nil)
	m.proxy.Request(1, d.proxy, pointer.proxy)
	return d
}

// CursorShapeDevice is wp_cursor_shape_device_v1, bound to one pointer.
type CursorShapeDevice struct {
	object
}

// SetShape issues wp_cursor_shape_device_v1.set_shape, hinting the
// compositor-drawn cursor for the given pointer-enter/motion serial. The
// editing state machine calls this every time its hit-test region changes
// under the pointer.
func (d *CursorShapeDevice) SetShape(serial uint32, shape CursorShape) {
	d.proxy.Request(1, serial, uint32(shape))
}

// Destroy issues wp_cursor_shape_device_v1.destroy.
func (d *CursorShapeDevice) Destroy() error {
	d.proxy.Request(0)
	return d.object.Destroy()
}
