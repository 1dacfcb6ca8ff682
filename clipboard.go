package foamshot

import (
	"bytes"
	"image"
	"image/png"
	"os/exec"

	"github.com/rs/zerolog"
)

// Clipboard hands the encoded PNG bytes off to a wl-copy subprocess.
// Failure is User-signalled: logged as a warning, never fatal.
type Clipboard struct {
	log zerolog.Logger
}

func NewClipboard(log zerolog.Logger) *Clipboard { return &Clipboard{log: log} }

func (c *Clipboard) Copy(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.log.Warn().Err(err).Msg("clipboard: encode failed")
		return &UserError{Reason: "clipboard encode failed", Err: err}
	}

	cmd := exec.Command("wl-copy", "--type", "image/png")
	cmd.Stdin = &buf
	if err := cmd.Run(); err != nil {
		c.log.Warn().Err(err).Msg("clipboard: wl-copy failed")
		return &UserError{Reason: "wl-copy failed", Err: err}
	}
	return nil
}
