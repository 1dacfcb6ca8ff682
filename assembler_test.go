package foamshot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidCanvas(w, h int, c color.RGBA) []byte {
	pix := make([]byte, w*h*4)
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
	return pix
}

func TestAssembleSingleMonitor(t *testing.T) {
	m := &Monitor{
		ID: 0, PixelWidth: 1920, PixelHeight: 1080,
		LogicalX: 0, LogicalY: 0, LogicalWidth: 1920, LogicalHeight: 1080,
		Scale:         1,
		CaptureCanvas: solidCanvas(1920, 1080, color.RGBA{10, 20, 30, 255}),
	}
	ms := NewMonitorSet()
	ms.monitors = []*Monitor{m}
	ms.byID = map[int]*Monitor{0: m}

	sel := FromDrag(Point{100, 200}, Point{300, 500})

	img, ok := Assembler{}.Assemble(sel, ms)
	require.True(t, ok)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestAssembleCrossMonitor(t *testing.T) {
	a := &Monitor{
		ID: 0, PixelWidth: 1920, PixelHeight: 1080,
		LogicalX: 0, LogicalY: 0, LogicalWidth: 1920, LogicalHeight: 1080,
		Scale:         1,
		CaptureCanvas: solidCanvas(1920, 1080, color.RGBA{255, 0, 0, 255}),
	}
	b := &Monitor{
		ID: 1, PixelWidth: 1920, PixelHeight: 1080,
		LogicalX: 1920, LogicalY: 0, LogicalWidth: 1920, LogicalHeight: 1080,
		Scale:         1,
		CaptureCanvas: solidCanvas(1920, 1080, color.RGBA{0, 0, 255, 255}),
	}
	ms := NewMonitorSet()
	ms.monitors = []*Monitor{a, b}
	ms.byID = map[int]*Monitor{0: a, 1: b}

	sel := FromDrag(Point{1800, 400}, Point{2100, 600})

	img, ok := Assembler{}.Assemble(sel, ms)
	require.True(t, ok)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	left := img.At(10, 10)
	right := img.At(290, 10)
	assert.NotEqual(t, left, right)
}

func TestAssembleNoProjectionYieldsFalse(t *testing.T) {
	m := &Monitor{LogicalX: 5000, LogicalY: 5000, LogicalWidth: 100, LogicalHeight: 100, Scale: 1}
	ms := NewMonitorSet()
	ms.monitors = []*Monitor{m}
	ms.byID = map[int]*Monitor{0: m}

	sel := FromDrag(Point{0, 0}, Point{10, 10})

	_, ok := Assembler{}.Assemble(sel, ms)
	assert.False(t, ok)
}
