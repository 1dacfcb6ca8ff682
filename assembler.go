package foamshot

import (
	"image"
	"image/draw"
)

// Assembler composites each monitor's captured canvas, cropped to its
// projection of the final selection, onto one output image, per
// spec.md §4.6. Coordinates are pixel units throughout; logical->pixel
// conversion already happened in SelectionRect.ProjectOnto.
type Assembler struct{}

// Assemble returns the final cropped image, or ok=false if the
// selection projects onto no monitor (zero total area).
func (Assembler) Assemble(selection SelectionRect, monitors *MonitorSet) (*image.RGBA, bool) {
	type projection struct {
		mon *Monitor
		sub SubRect
	}

	var projections []projection
	bbox := image.Rectangle{}
	first := true

	for _, m := range monitors.All() {
		sub, ok := selection.ProjectOnto(m)
		if !ok {
			continue
		}
		// destination rectangle in output-image coordinates =
		// monitor.logical_xy + subrect.xy - bounding_box.xy, computed
		// below once the bbox origin is known; for now accumulate the
		// global-space footprint to find that origin.
		globalRect := image.Rect(
			int(float64(m.LogicalX)*m.Scale)+sub.X,
			int(float64(m.LogicalY)*m.Scale)+sub.Y,
			int(float64(m.LogicalX)*m.Scale)+sub.X+sub.W,
			int(float64(m.LogicalY)*m.Scale)+sub.Y+sub.H,
		)
		if first {
			bbox = globalRect
			first = false
		} else {
			bbox = bbox.Union(globalRect)
		}
		projections = append(projections, projection{mon: m, sub: sub})
	}

	if len(projections) == 0 {
		return nil, false
	}

	outW := bbox.Dx()
	outH := bbox.Dy()
	out := image.NewRGBA(image.Rect(0, 0, outW, outH))

	for _, p := range projections {
		m := p.mon
		canvas := &image.RGBA{
			Pix:    m.CaptureCanvas,
			Stride: m.PixelWidth * 4,
			Rect:   image.Rect(0, 0, m.PixelWidth, m.PixelHeight),
		}
		srcRect := image.Rect(p.sub.X, p.sub.Y, p.sub.X+p.sub.W, p.sub.Y+p.sub.H)
		view := &SubImage{Src: canvas, Rect: srcRect}

		destX := int(float64(m.LogicalX)*m.Scale) + p.sub.X - bbox.Min.X
		destY := int(float64(m.LogicalY)*m.Scale) + p.sub.Y - bbox.Min.Y
		destRect := image.Rect(destX, destY, destX+p.sub.W, destY+p.sub.H)

		draw.Draw(out, destRect, view, image.Point{}, draw.Src)
	}

	return out, true
}
