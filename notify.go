package foamshot

import (
	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
)

// Urgency mirrors org.freedesktop.Notifications' urgency hint byte.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notifier sends desktop notifications via D-Bus directly, rather than
// shelling out to notify-send.
type Notifier struct {
	log  zerolog.Logger
	conn *dbus.Conn
}

func NewNotifier(log zerolog.Logger) *Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		log.Warn().Err(err).Msg("notifier: session bus unavailable, notifications disabled")
		return &Notifier{log: log}
	}
	return &Notifier{log: log, conn: conn}
}

// Notify calls org.freedesktop.Notifications.Notify. A missing session
// bus or Notifications service is Recoverable: it logs a warning and
// returns nil rather than surfacing an error, matching §7's "falls back
// to a logged warning" contract.
func (n *Notifier) Notify(summary, body string, urgency Urgency, iconPath string) error {
	if n.conn == nil {
		n.log.Warn().Str("summary", summary).Msg("notifier: no bus connection, skipping")
		return nil
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(urgency)),
	}

	obj := n.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"foamshot", uint32(0), iconPath, summary, body, []string{}, hints, int32(5000))
	if call.Err != nil {
		n.log.Warn().Err(call.Err).Msg("notifier: Notify call failed")
		return nil
	}
	return nil
}

// NotifySaved sends the success notification carrying the final file
// path and a thumbnail, per §7.
func (n *Notifier) NotifySaved(path, thumbnailPath string) error {
	return n.Notify("Screenshot saved", path, UrgencyNormal, thumbnailPath)
}

// NotifyFatal sends the critical-urgency failure notification.
func (n *Notifier) NotifyFatal(reason string) error {
	return n.Notify("foamshot failed", reason, UrgencyCritical, "")
}
