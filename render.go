package foamshot

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/Thirdwinter/foamshot/proto"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FreezeMode selects what background the Renderer paints before the
// wash/cut-out/border pass.
type FreezeMode int

const (
	FreezeFrozen FreezeMode = iota
	FreezeLive
)

// Renderer draws one frame per monitor, per spec.md §4.5's 4-step
// pipeline: allocate a buffer, fill background, wash+cutout+border, then
// attach/damage/commit.
type Renderer struct {
	shm *proto.Shm
}

func NewRenderer(shm *proto.Shm) *Renderer { return &Renderer{shm: shm} }

// Draw renders a single frame for monitor m. mode selects whether the
// background is the frozen capture or a live/transparent fill; subrect,
// if present, is painted as a cut-out with a border on interior sides.
func (r *Renderer) Draw(m *Monitor, mode FreezeMode, subrect *SubRect) error {
	attachMode := AttachTransparent
	if mode == FreezeFrozen {
		attachMode = AttachFrozen
	}
	if err := m.Attach(r.shm, attachMode); err != nil {
		return err
	}

	data := mmapPool(m.poolFile, m.PixelWidth*m.PixelHeight*4)
	if data == nil {
		return &RecoverableError{Reason: "buffer-create failed, skipping this frame"}
	}

	img := &image.RGBA{
		Pix:    data,
		Stride: m.PixelWidth * 4,
		Rect:   image.Rect(0, 0, m.PixelWidth, m.PixelHeight),
	}

	paintWash(img)
	if subrect != nil {
		cutOut(img, m, mode, *subrect)
		drawBorder(img, m, *subrect)
		drawSizeLabel(img, *subrect)
	}

	m.surface.DamageBuffer(0, 0, int32(m.PixelWidth), int32(m.PixelHeight))
	m.surface.Commit()
	return nil
}

// washColor is a semi-transparent grey, painted over the whole frame
// before the cut-out punches the selection back through.
var washColor = [4]byte{0x00, 0x00, 0x00, 0x78} // B,G,R,A premultiplied-ish, alpha ~47%

func paintWash(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			blendWash(row[x : x+4])
		}
	}
}

func blendWash(px []byte) {
	alpha := int(washColor[3])
	px[0] = byte((int(px[0])*(255-alpha) + int(washColor[0])*alpha) / 255)
	px[1] = byte((int(px[1])*(255-alpha) + int(washColor[1])*alpha) / 255)
	px[2] = byte((int(px[2])*(255-alpha) + int(washColor[2])*alpha) / 255)
}

// cutOut re-paints the area inside subrect as plain background (an
// even-odd fill rule in spirit: the wash is applied everywhere, then
// undone inside the rect). For a live (non-frozen) fill the background
// is simply cleared again rather than restored from the capture canvas.
func cutOut(img *image.RGBA, m *Monitor, mode FreezeMode, s SubRect) {
	rect := image.Rect(s.X, s.Y, s.X+s.W, s.Y+s.H).Intersect(img.Bounds())
	if rect.Empty() {
		return
	}
	if mode == FreezeFrozen && len(m.CaptureCanvas) == len(img.Pix) {
		src := &image.RGBA{Pix: m.CaptureCanvas, Stride: img.Stride, Rect: img.Bounds()}
		draw.Draw(img, rect, src, rect.Min, draw.Src)
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		off := y*img.Stride + rect.Min.X*4
		row := img.Pix[off : off+rect.Dx()*4]
		for i := range row {
			row[i] = 0
		}
	}
}

// drawBorder draws a 1-pixel black border on each side of subrect that
// is interior to the monitor — per the Open Question resolution, a
// side is skipped exactly when it coincides with the monitor's pixel
// bounds, so multi-monitor selections read as seamless.
func drawBorder(img *image.RGBA, m *Monitor, s SubRect) {
	black := []byte{0, 0, 0, 0xff}

	if s.X != 0 {
		drawVLine(img, s.X, s.Y, s.Y+s.H, black)
	}
	if s.X+s.W != m.PixelWidth {
		drawVLine(img, s.X+s.W-1, s.Y, s.Y+s.H, black)
	}
	if s.Y != 0 {
		drawHLine(img, s.Y, s.X, s.X+s.W, black)
	}
	if s.Y+s.H != m.PixelHeight {
		drawHLine(img, s.Y+s.H-1, s.X, s.X+s.W, black)
	}
}

func drawVLine(img *image.RGBA, x, y0, y1 int, color []byte) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := y0; y < y1; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		off := y*img.Stride + x*4
		copy(img.Pix[off:off+4], color)
	}
}

func drawHLine(img *image.RGBA, y, x0, x1 int, color []byte) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := x0; x < x1; x++ {
		if x < b.Min.X || x >= b.Max.X {
			continue
		}
		off := y*img.Stride + x*4
		copy(img.Pix[off:off+4], color)
	}
}

var labelFace = basicfont.Face7x13

// drawSizeLabel draws the subrect's pixel dimensions just above its
// top-left corner, the "optional size label" of spec.md §4.5. Skipped
// if there is no room above the rect (it sits against the monitor's
// top edge), matching the border-skip-at-edge spirit of the pipeline.
func drawSizeLabel(img *image.RGBA, s SubRect) {
	if s.Y < 14 {
		return
	}
	text := fmt.Sprintf("%d x %d", s.W, s.H)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: labelFace,
		Dot:  fixed.P(s.X, s.Y-4),
	}
	d.DrawString(text)
}
