package foamshot

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KononK/resize"
)

// Saver encodes the assembled canvas to PNG or JPEG, resolves filename
// collisions, and produces a notification thumbnail.
type Saver struct {
	cfg Config
}

func NewSaver(cfg Config) *Saver { return &Saver{cfg: cfg} }

// expandTemplate translates the %Y %m %d %H %M %S placeholders via
// time.Now().Format, then substitutes them into OutputFile.
func expandTemplate(tmpl string, now time.Time) string {
	replacer := strings.NewReplacer(
		"%Y", now.Format("2006"),
		"%m", now.Format("01"),
		"%d", now.Format("02"),
		"%H", now.Format("15"),
		"%M", now.Format("04"),
		"%S", now.Format("05"),
	)
	return replacer.Replace(tmpl)
}

// resolveCollision appends -1, -2, … before the extension until the
// path does not yet exist.
func resolveCollision(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// Save encodes img to disk, choosing PNG or JPEG by the resolved
// filename's extension (defaulting to PNG for anything else), and
// returns the final path plus a downsampled thumbnail (at most 256x256).
func (s *Saver) Save(img image.Image, now time.Time) (path string, thumbnail image.Image, err error) {
	name := expandTemplate(s.cfg.OutputFile, now)
	full := resolveCollision(filepath.Join(s.cfg.OutputDir, name))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", nil, &UserError{Reason: "could not create output directory", Err: err}
	}

	f, err := os.Create(full)
	if err != nil {
		return "", nil, &UserError{Reason: "could not create output file", Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(full)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: s.cfg.JPEGQuality})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return "", nil, &UserError{Reason: "encode failed", Err: err}
	}

	thumb := resize.Thumbnail(256, 256, img, resize.Lanczos3)
	return full, thumb, nil
}
