package shape

import (
	"github.com/vovakirdan/tui-collide/internal/collide"
	"github.com/vovakirdan/tui-collide/internal/core"
)

// Circle is centered on the owner's position plus Offset.
type Circle struct {
	anchor
	Radius float64
}

// NewCircle creates a circle with the given radius.
func NewCircle(radius float64, offset core.Vector2) *Circle {
	return &Circle{
		anchor: anchor{Offset: offset},
		Radius: radius,
	}
}

// Kind returns KindCircle.
func (c *Circle) Kind() string {
	return KindCircle
}

// Center returns the circle center in world space.
func (c *Circle) Center() core.Vector2 {
	return c.origin()
}

// Bounds returns the square enclosing the circle.
func (c *Circle) Bounds() core.Rect {
	center := c.Center()
	return core.NewRectLTRB(center.X-c.Radius, center.Y-c.Radius, center.X+c.Radius, center.Y+c.Radius)
}

func (c *Circle) CollidesWithCollider(other collide.Collider) bool {
	return collides(c, other)
}

// CollidesWithPoint includes points on the circumference.
func (c *Circle) CollidesWithPoint(p core.Vector2) bool {
	return core.DistanceSquared(c.Center(), p) <= c.Radius*c.Radius
}

func (c *Circle) CollidesWithSegment(from, to core.Vector2) bool {
	center := c.Center()
	closest := core.ClosestPointOnSegment(from, to, center)
	return core.DistanceSquared(center, closest) <= c.Radius*c.Radius
}

func (c *Circle) CollidesWithRect(r core.Rect) bool {
	return circleRect(c.Center(), c.Radius, r)
}
