package foamshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDragRoundTrip(t *testing.T) {
	a := Point{X: 100, Y: 200}
	b := Point{X: 300, Y: 500}

	assert.Equal(t, FromDrag(a, b), FromDrag(b, a))
	assert.Equal(t, SelectionRect{Sx: 100, Sy: 200, Ex: 300, Ey: 500}, FromDrag(a, b))
}

func TestHitRegionClassification(t *testing.T) {
	r := SelectionRect{Sx: 100, Sy: 100, Ex: 300, Ey: 300}
	const t8 = 8

	cases := []struct {
		name string
		p    Point
		want HitRegion
	}{
		{"top-left corner", Point{100, 100}, HitTopLeft},
		{"top-right corner", Point{300, 100}, HitTopRight},
		{"bottom-left corner", Point{100, 300}, HitBottomLeft},
		{"bottom-right corner", Point{300, 300}, HitBottomRight},
		{"left edge", Point{100, 200}, HitLeft},
		{"right edge", Point{300, 200}, HitRight},
		{"top edge", Point{200, 100}, HitTop},
		{"bottom edge", Point{200, 300}, HitBottom},
		{"interior move", Point{200, 200}, HitMove},
		{"far outside", Point{1000, 1000}, HitNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, r.HitRegion(c.p, t8))
		})
	}
}

func TestHitRegionMoveIffStrictInteriorAndNoOtherRegion(t *testing.T) {
	r := SelectionRect{Sx: 0, Sy: 0, Ex: 100, Ey: 100}
	for x := 1; x < 100; x += 7 {
		for y := 1; y < 100; y += 7 {
			p := Point{X: x, Y: y}
			got := r.HitRegion(p, 5)
			strictInterior := p.X > r.Sx && p.X < r.Ex && p.Y > r.Sy && p.Y < r.Ey
			nearHandle := p.X-r.Sx <= 5 || r.Ex-p.X <= 5 || p.Y-r.Sy <= 5 || r.Ey-p.Y <= 5
			if got == HitMove {
				assert.True(t, strictInterior, "Move at %v must be strictly interior", p)
			}
			if strictInterior && !nearHandle {
				assert.Equal(t, HitMove, got, "strict interior %v outside every handle must be Move", p)
			}
		}
	}
}

func TestEditIdempotentForStationaryPointer(t *testing.T) {
	r := SelectionRect{Sx: 100, Sy: 100, Ex: 300, Ey: 300}

	// A stationary pointer rests on the handle it grabbed.
	cases := []struct {
		action HitRegion
		p      Point
	}{
		{HitLeft, Point{100, 200}}, {HitRight, Point{300, 200}},
		{HitTop, Point{200, 100}}, {HitBottom, Point{200, 300}},
		{HitTopLeft, Point{100, 100}}, {HitTopRight, Point{300, 100}},
		{HitBottomLeft, Point{100, 300}}, {HitBottomRight, Point{300, 300}},
	}
	for _, c := range cases {
		action, p := c.action, c.p
		got, gotAction := r.Edit(p, p, action)
		assert.Equal(t, action, gotAction)
		assert.Equal(t, r.Sx, got.Sx)
		assert.Equal(t, r.Sy, got.Sy)
		assert.Equal(t, r.Ex, got.Ex)
		assert.Equal(t, r.Ey, got.Ey)
	}
}

func TestEditFlipLeftPastRight(t *testing.T) {
	r := SelectionRect{Sx: 100, Sy: 100, Ex: 300, Ey: 300}
	k := 100

	flipped, action := r.Edit(Point{100, 200}, Point{300 + k, 200}, HitLeft)

	require.Equal(t, HitRight, action)
	assert.Equal(t, 300, flipped.Sx)
	assert.Equal(t, 300+k, flipped.Ex)
}

func TestEditMoveTranslatesByPointerDelta(t *testing.T) {
	r := SelectionRect{Sx: 1800, Sy: 400, Ex: 2000, Ey: 600}
	start := Point{X: 1900, Y: 500}

	moved, action := r.Edit(start, Point{X: 1950, Y: 530}, HitMove)

	assert.Equal(t, HitMove, action)
	assert.Equal(t, 1850, moved.Sx)
	assert.Equal(t, 430, moved.Sy)
	assert.Equal(t, 2050, moved.Ex)
	assert.Equal(t, 630, moved.Ey)
}

func TestProjectOntoPositiveAreaAndUnion(t *testing.T) {
	a := &Monitor{ID: 0, LogicalX: 0, LogicalY: 0, LogicalWidth: 1920, LogicalHeight: 1080, Scale: 1}
	b := &Monitor{ID: 1, LogicalX: 1920, LogicalY: 0, LogicalWidth: 1920, LogicalHeight: 1080, Scale: 1}

	sel := FromDrag(Point{1800, 400}, Point{2100, 600})

	subA, okA := sel.ProjectOnto(a)
	require.True(t, okA)
	assert.Equal(t, SubRect{X: 1800, Y: 400, W: 120, H: 200}, subA)

	subB, okB := sel.ProjectOnto(b)
	require.True(t, okB)
	assert.Equal(t, SubRect{X: 0, Y: 400, W: 180, H: 200}, subB)

	assert.Equal(t, sel.Area(), subA.W*subA.H+subB.W*subB.H)
}

func TestProjectOntoFractionalScale(t *testing.T) {
	m := &Monitor{LogicalWidth: 1920, LogicalHeight: 1080, Scale: 1.25}
	sel := FromDrag(Point{0, 0}, Point{960, 540})

	sub, ok := sel.ProjectOnto(m)
	require.True(t, ok)
	assert.Equal(t, SubRect{X: 0, Y: 0, W: 1200, H: 675}, sub)
}

func TestProjectOntoNoIntersection(t *testing.T) {
	m := &Monitor{LogicalX: 5000, LogicalY: 5000, LogicalWidth: 100, LogicalHeight: 100, Scale: 1}
	sel := FromDrag(Point{0, 0}, Point{10, 10})

	_, ok := sel.ProjectOnto(m)
	assert.False(t, ok)
}
