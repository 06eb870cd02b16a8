// Package collide answers narrow-phase overlap queries between entities and
// geometric primitives.
//
// The package owns no state. Entities and their colliders belong to the
// caller; collide only reads them, except for the ...At variants which move
// the subject to a hypothetical position for the duration of the query and
// always put it back. Those variants write the subject's position, so the
// same entity must not be queried from several goroutines at once.
//
// Candidate sets are plain slices supplied by the caller. There is no
// broad phase here.
package collide

import "github.com/vovakirdan/tui-collide/internal/core"

// Collider is the geometry attached to an entity.
// Implementations are expected to report overlap symmetrically.
type Collider interface {
	CollidesWithCollider(other Collider) bool
	CollidesWithPoint(p core.Vector2) bool
	CollidesWithSegment(from, to core.Vector2) bool
	CollidesWithRect(r core.Rect) bool
}

// Entity is the view of a game object needed by the queries.
type Entity interface {
	Position() core.Vector2
	SetPosition(p core.Vector2)

	// Collidable reports whether the entity may be matched as a query target.
	Collidable() bool

	// Collider returns the attached collider. ok is false when the entity
	// has no geometry, in which case it never matches anything.
	Collider() (c Collider, ok bool)
}

// Check reports whether a overlaps b.
// a never collides with itself and b must be collidable. The collidable flag
// of a is not consulted.
func Check(a, b Entity) bool {
	ca, ok := a.Collider()
	if !ok {
		return false
	}
	cb, ok := b.Collider()
	if !ok {
		return false
	}
	return a != b && b.Collidable() && ca.CollidesWithCollider(cb)
}

// CheckAt reports whether a would overlap b if a were at position at.
func CheckAt(a, b Entity, at core.Vector2) bool {
	return withPosition(a, at, func() bool {
		return Check(a, b)
	})
}

// withPosition moves e to at, runs fn and restores the original position,
// even if fn panics.
func withPosition[T any](e Entity, at core.Vector2, fn func() T) T {
	old := e.Position()
	e.SetPosition(at)
	defer e.SetPosition(old)
	return fn()
}
