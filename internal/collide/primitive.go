package collide

import "github.com/vovakirdan/tui-collide/internal/core"

// CheckPoint reports whether the collider of a contains point.
func CheckPoint(a Entity, point core.Vector2) bool {
	c, ok := a.Collider()
	if !ok {
		return false
	}
	return c.CollidesWithPoint(point)
}

// CheckPointAt is CheckPoint with a temporarily moved to at.
func CheckPointAt(a Entity, point, at core.Vector2) bool {
	return withPosition(a, at, func() bool {
		return CheckPoint(a, point)
	})
}

// CheckLine reports whether the collider of a touches the segment [from, to].
func CheckLine(a Entity, from, to core.Vector2) bool {
	c, ok := a.Collider()
	if !ok {
		return false
	}
	return c.CollidesWithSegment(from, to)
}

// CheckLineAt is CheckLine with a temporarily moved to at.
func CheckLineAt(a Entity, from, to, at core.Vector2) bool {
	return withPosition(a, at, func() bool {
		return CheckLine(a, from, to)
	})
}

// CheckRect reports whether the collider of a overlaps rect.
func CheckRect(a Entity, rect core.Rect) bool {
	c, ok := a.Collider()
	if !ok {
		return false
	}
	return c.CollidesWithRect(rect)
}

// CheckRectAt is CheckRect with a temporarily moved to at.
func CheckRectAt(a Entity, rect core.Rect, at core.Vector2) bool {
	return withPosition(a, at, func() bool {
		return CheckRect(a, rect)
	})
}
