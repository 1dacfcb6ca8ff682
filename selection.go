package foamshot

// HitRegion is the region hit-tested against the current rectangle,
// per spec.md §4.3.
type HitRegion int

const (
	HitNone HitRegion = iota
	HitLeft
	HitRight
	HitTop
	HitBottom
	HitTopLeft
	HitTopRight
	HitBottomLeft
	HitBottomRight
	HitMove
)

// Point is a global-logical-coordinate point.
type Point struct{ X, Y int }

// SelectionRect is a rectangle in global logical coordinates, sx<=ex,
// sy<=ey, plus the move-gesture anchors described in spec.md §3.
type SelectionRect struct {
	Sx, Sy, Ex, Ey int

	haveMoveAnchor bool
	moveAnchor     Point
	rectAnchor     *SelectionRect
}

func normalize(sx, sy, ex, ey int) SelectionRect {
	if sx > ex {
		sx, ex = ex, sx
	}
	if sy > ey {
		sy, ey = ey, sy
	}
	return SelectionRect{Sx: sx, Sy: sy, Ex: ex, Ey: ey}
}

// FromDrag builds a rectangle from the two drag endpoints, normalizing so
// Sx<=Ex, Sy<=Ey regardless of drag direction — from_drag(a,b) ==
// from_drag(b,a).
func FromDrag(start, current Point) SelectionRect {
	return normalize(start.X, start.Y, current.X, current.Y)
}

func (r SelectionRect) Width() int  { return r.Ex - r.Sx }
func (r SelectionRect) Height() int { return r.Ey - r.Sy }
func (r SelectionRect) Area() int   { return r.Width() * r.Height() }

// HitRegion classifies point p against rectangle r at threshold t.
// Corner regions are t-sized squares at each vertex; edge regions are
// t-wide strips along each side excluding the corners; Move is the
// strict interior; otherwise None. Corners dominate edges; edges
// dominate Move.
func (r SelectionRect) HitRegion(p Point, t int) HitRegion {
	if p.X < r.Sx-t || p.X > r.Ex+t || p.Y < r.Sy-t || p.Y > r.Ey+t {
		return HitNone
	}

	nearLeft := abs(p.X-r.Sx) <= t
	nearRight := abs(p.X-r.Ex) <= t
	nearTop := abs(p.Y-r.Sy) <= t
	nearBottom := abs(p.Y-r.Ey) <= t

	withinVert := p.Y >= r.Sy-t && p.Y <= r.Ey+t
	withinHoriz := p.X >= r.Sx-t && p.X <= r.Ex+t

	switch {
	case nearLeft && nearTop && withinVert && withinHoriz:
		return HitTopLeft
	case nearRight && nearTop && withinVert && withinHoriz:
		return HitTopRight
	case nearLeft && nearBottom && withinVert && withinHoriz:
		return HitBottomLeft
	case nearRight && nearBottom && withinVert && withinHoriz:
		return HitBottomRight
	}

	insideX := p.X >= r.Sx && p.X <= r.Ex
	insideY := p.Y >= r.Sy && p.Y <= r.Ey

	switch {
	case nearLeft && insideY:
		return HitLeft
	case nearRight && insideY:
		return HitRight
	case nearTop && insideX:
		return HitTop
	case nearBottom && insideX:
		return HitBottom
	}

	if p.X > r.Sx && p.X < r.Ex && p.Y > r.Sy && p.Y < r.Ey {
		return HitMove
	}
	return HitNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Edit mutates r per action, given the pointer position at gesture start
// and its current position. Edge/corner drags set the chosen side(s) to
// the current coordinate; if a side crosses its opposite, the rectangle
// flips and a new action reflecting the flipped orientation is returned
// (e.g. dragging Left past Right yields Right), so resizing stays
// WYSIWYG-continuous through a drag-through. Move drags record an anchor
// on first entry and apply a pure translation thereafter.
func (r SelectionRect) Edit(startPointer, currentPointer Point, action HitRegion) (SelectionRect, HitRegion) {
	switch action {
	case HitMove:
		if !r.haveMoveAnchor || r.moveAnchor != startPointer {
			r.haveMoveAnchor = true
			r.moveAnchor = startPointer
			r.rectAnchor = &SelectionRect{Sx: r.Sx, Sy: r.Sy, Ex: r.Ex, Ey: r.Ey}
		}
		dx := currentPointer.X - r.moveAnchor.X
		dy := currentPointer.Y - r.moveAnchor.Y
		r.Sx = r.rectAnchor.Sx + dx
		r.Sy = r.rectAnchor.Sy + dy
		r.Ex = r.rectAnchor.Ex + dx
		r.Ey = r.rectAnchor.Ey + dy
		return r, action
	default:
		r.clearMoveAnchor()
		return r.editEdge(currentPointer, action)
	}
}

func (r *SelectionRect) clearMoveAnchor() {
	r.haveMoveAnchor = false
	r.moveAnchor = Point{}
	r.rectAnchor = nil
}

func (r SelectionRect) editEdge(p Point, action HitRegion) (SelectionRect, HitRegion) {
	sx, sy, ex, ey := r.Sx, r.Sy, r.Ex, r.Ey

	switch action {
	case HitLeft:
		sx = p.X
	case HitRight:
		ex = p.X
	case HitTop:
		sy = p.Y
	case HitBottom:
		ey = p.Y
	case HitTopLeft:
		sx, sy = p.X, p.Y
	case HitTopRight:
		ex, sy = p.X, p.Y
	case HitBottomLeft:
		sx, ey = p.X, p.Y
	case HitBottomRight:
		ex, ey = p.X, p.Y
	case HitNone:
		return r, action
	}

	flippedH := sx > ex
	flippedV := sy > ey
	if flippedH {
		sx, ex = ex, sx
	}
	if flippedV {
		sy, ey = ey, sy
	}

	newAction := flipAction(action, flippedH, flippedV)
	return SelectionRect{Sx: sx, Sy: sy, Ex: ex, Ey: ey}, newAction
}

// flipAction maps an edge/corner action to the action it becomes once
// its horizontal and/or vertical side has crossed its opposite.
func flipAction(action HitRegion, flippedH, flippedV bool) HitRegion {
	horiz := map[HitRegion]HitRegion{HitLeft: HitRight, HitRight: HitLeft}
	vert := map[HitRegion]HitRegion{HitTop: HitBottom, HitBottom: HitTop}
	corner := map[HitRegion]HitRegion{
		HitTopLeft:     HitTopRight,
		HitTopRight:    HitTopLeft,
		HitBottomLeft:  HitBottomRight,
		HitBottomRight: HitBottomLeft,
	}
	cornerV := map[HitRegion]HitRegion{
		HitTopLeft:     HitBottomLeft,
		HitBottomLeft:  HitTopLeft,
		HitTopRight:    HitBottomRight,
		HitBottomRight: HitTopRight,
	}

	switch action {
	case HitLeft, HitRight:
		if flippedH {
			return horiz[action]
		}
		return action
	case HitTop, HitBottom:
		if flippedV {
			return vert[action]
		}
		return action
	case HitTopLeft, HitTopRight, HitBottomLeft, HitBottomRight:
		a := action
		if flippedH {
			a = corner[a]
		}
		if flippedV {
			a = cornerV[a]
		}
		return a
	default:
		return action
	}
}

// ProjectOnto intersects the rectangle with monitor m's logical bounds;
// if the intersection has positive area, converts it to monitor-local
// pixel coordinates (logical -> pixel uses m.Scale). Otherwise ok=false.
func (r SelectionRect) ProjectOnto(m *Monitor) (SubRect, bool) {
	ix0 := max(r.Sx, m.LogicalX)
	iy0 := max(r.Sy, m.LogicalY)
	ix1 := min(r.Ex, m.LogicalX+m.LogicalWidth)
	iy1 := min(r.Ey, m.LogicalY+m.LogicalHeight)

	if ix1 <= ix0 || iy1 <= iy0 {
		return SubRect{}, false
	}

	localX := ix0 - m.LogicalX
	localY := iy0 - m.LogicalY
	localW := ix1 - ix0
	localH := iy1 - iy0

	return SubRect{
		X: int(float64(localX) * m.Scale),
		Y: int(float64(localY) * m.Scale),
		W: int(float64(localW) * m.Scale),
		H: int(float64(localH) * m.Scale),
	}, true
}
