// Package shape provides the concrete colliders used by entities:
// axis-aligned boxes, circles, tile grids and composite lists.
//
// Every shape is positioned relative to an owner, normally the entity it is
// attached to, so moving the entity moves its geometry.
package shape

import (
	"github.com/vovakirdan/tui-collide/internal/collide"
	"github.com/vovakirdan/tui-collide/internal/core"
)

// Shape kinds as used in scene files.
const (
	KindBox    = "box"
	KindCircle = "circle"
	KindGrid   = "grid"
	KindList   = "list"
)

// Owner supplies the world position a shape is anchored to.
type Owner interface {
	Position() core.Vector2
}

// Shape is a collider that can be attached to an owner.
type Shape interface {
	collide.Collider

	// Kind returns the shape kind (KindBox, KindCircle, ...).
	Kind() string

	// Attach anchors the shape to owner. A detached shape sits at its offset.
	Attach(owner Owner)

	// Bounds returns the world-space bounding rectangle.
	Bounds() core.Rect
}

// anchor holds the owner reference and local offset shared by all shapes.
type anchor struct {
	owner  Owner
	Offset core.Vector2
}

// Attach anchors the shape to owner.
func (a *anchor) Attach(owner Owner) {
	a.owner = owner
}

// origin returns the shape's local origin in world space.
func (a *anchor) origin() core.Vector2 {
	if a.owner == nil {
		return a.Offset
	}
	return a.owner.Position().Add(a.Offset)
}

// collides dispatches shape-vs-collider tests over the closed set of kinds.
// Colliders from outside this package are handled through their rectangle
// capability.
func collides(a, b collide.Collider) bool {
	if list, ok := b.(*List); ok {
		for _, m := range list.Members {
			if collides(a, m) {
				return true
			}
		}
		return false
	}

	switch s := a.(type) {
	case *Hitbox:
		return b.CollidesWithRect(s.Bounds())
	case *Circle:
		switch o := b.(type) {
		case *Circle:
			return circlesOverlap(s.Center(), s.Radius, o.Center(), o.Radius)
		case *Hitbox:
			return circleRect(s.Center(), s.Radius, o.Bounds())
		case *Grid:
			return o.collidesWithCircle(s.Center(), s.Radius)
		default:
			return b.CollidesWithRect(s.Bounds())
		}
	case *Grid:
		if o, ok := b.(*Circle); ok {
			return s.collidesWithCircle(o.Center(), o.Radius)
		}
		return s.collidesWithCollider(b)
	case *List:
		for _, m := range s.Members {
			if collides(m, b) {
				return true
			}
		}
		return false
	default:
		return a.CollidesWithCollider(b)
	}
}

// circlesOverlap checks if two circles overlap. Touching circles do not.
func circlesOverlap(c1 core.Vector2, r1 float64, c2 core.Vector2, r2 float64) bool {
	minDist := r1 + r2
	return core.DistanceSquared(c1, c2) < minDist*minDist
}

// circleRect checks if a circle overlaps a rectangle.
func circleRect(center core.Vector2, radius float64, r core.Rect) bool {
	if r.Width() <= 0 || r.Height() <= 0 {
		return false
	}
	if r.Contains(center) {
		return true
	}
	closest := r.ClosestPoint(center)
	return core.DistanceSquared(center, closest) < radius*radius
}
