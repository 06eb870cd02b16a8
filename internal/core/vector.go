package core

import "math"

// Vector2 is an immutable 2D point or displacement.
type Vector2 struct {
	X, Y float64
}

// Vec creates a vector from its components.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product (perp dot product).
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// LengthSquared returns the squared length. Use this when comparing distances
// to avoid the sqrt cost.
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// DistanceSquared returns the squared distance between two points.
func DistanceSquared(a, b Vector2) float64 {
	return b.Sub(a).LengthSquared()
}

// ClosestPointOnSegment returns the point on segment [from, to] nearest to p.
func ClosestPointOnSegment(from, to, p Vector2) Vector2 {
	d := to.Sub(from)
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return from
	}
	t := ClampF(p.Sub(from).Dot(d)/lenSq, 0, 1)
	return from.Add(d.Scale(t))
}
