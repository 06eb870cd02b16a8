package collide

import "github.com/vovakirdan/tui-collide/internal/core"

// RectSegment reports whether the segment [from, to] touches rect.
//
// Endpoints are classified with SectorOf first. An endpoint inside accepts,
// endpoints sharing an outside side reject, and otherwise only the edges
// facing the endpoints are intersected exactly.
func RectSegment(rect core.Rect, from, to core.Vector2) bool {
	fromSector := SectorOf(rect, from)
	toSector := SectorOf(rect, to)

	if fromSector == SectorCenter || toSector == SectorCenter {
		return true
	}
	if fromSector&toSector != 0 {
		return false
	}

	both := fromSector | toSector
	topLeft := core.Vec(rect.Left(), rect.Top())
	topRight := core.Vec(rect.Right(), rect.Top())
	bottomLeft := core.Vec(rect.Left(), rect.Bottom())
	bottomRight := core.Vec(rect.Right(), rect.Bottom())

	if both.Has(SectorTop) && SegmentsIntersect(topLeft, topRight, from, to) {
		return true
	}
	if both.Has(SectorBottom) && SegmentsIntersect(bottomLeft, bottomRight, from, to) {
		return true
	}
	if both.Has(SectorLeft) && SegmentsIntersect(topLeft, bottomLeft, from, to) {
		return true
	}
	if both.Has(SectorRight) && SegmentsIntersect(topRight, bottomRight, from, to) {
		return true
	}
	return false
}

// SegmentsIntersect reports whether segments [a1, a2] and [b1, b2] cross.
// Touching endpoints count. Parallel segments never intersect, including
// collinear ones that overlap.
func SegmentsIntersect(a1, a2, b1, b2 core.Vector2) bool {
	_, ok := segmentParam(a1, a2, b1, b2)
	return ok
}

// SegmentIntersection is SegmentsIntersect that also returns the crossing
// point. The point is the zero vector when ok is false.
func SegmentIntersection(a1, a2, b1, b2 core.Vector2) (p core.Vector2, ok bool) {
	t, ok := segmentParam(a1, a2, b1, b2)
	if !ok {
		return core.Vector2{}, false
	}
	return a1.Add(a2.Sub(a1).Scale(t)), true
}

// segmentParam returns the parametric position t of the crossing along
// [a1, a2].
func segmentParam(a1, a2, b1, b2 core.Vector2) (float64, bool) {
	b := a2.Sub(a1)
	d := b2.Sub(b1)
	bDotDPerp := b.Cross(d)

	// Parallel or collinear: no single crossing point.
	if bDotDPerp == 0 {
		return 0, false
	}

	c := b1.Sub(a1)
	t := c.Cross(d) / bDotDPerp
	if t < 0 || t > 1 {
		return 0, false
	}

	u := c.Cross(b) / bDotDPerp
	if u < 0 || u > 1 {
		return 0, false
	}

	return t, true
}
