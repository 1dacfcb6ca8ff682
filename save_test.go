package foamshot

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTemplate(t *testing.T) {
	now := time.Date(2026, 7, 30, 14, 5, 9, 0, time.UTC)
	got := expandTemplate("%Y%m%d_%H%M%S_foamshot.png", now)
	assert.Equal(t, "20260730_140509_foamshot.png", got)
}

func TestResolveCollisionAppendsSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	got := resolveCollision(path)
	assert.Equal(t, filepath.Join(dir, "shot-1.png"), got)

	require.NoError(t, os.WriteFile(got, []byte("x"), 0o644))
	got2 := resolveCollision(path)
	assert.Equal(t, filepath.Join(dir, "shot-2.png"), got2)
}

func TestSaverSavesPNG(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir
	cfg.OutputFile = "fixed.png"

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{1, 2, 3, 255})
		}
	}

	s := NewSaver(cfg)
	path, thumb, err := s.Save(img, time.Now())

	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.NotNil(t, thumb)
}
