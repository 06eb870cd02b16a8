// Package core provides fundamental types and utilities for the collision
// playground. It contains no external dependencies (especially no Bubble Tea)
// to keep geometry pure and testable.
package core

// Rect represents an axis-aligned rectangle in world units.
// The left and top edges are inclusive, the right and bottom edges exclusive.
// The four extents are stored as given so edge tests compare against the
// exact values a caller wrote.
type Rect struct {
	Min Vector2 // Left and top edges
	Max Vector2 // Right and bottom edges
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Vector2{X: x, Y: y}, Max: Vector2{X: x + w, Y: y + h}}
}

// NewRectLTRB creates a rectangle from its four extents.
func NewRectLTRB(left, top, right, bottom float64) Rect {
	return Rect{Min: Vector2{X: left, Y: top}, Max: Vector2{X: right, Y: bottom}}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.Min.X
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Min.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Max.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Max.Y
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.Min.X >= other.Max.X || other.Min.X >= r.Max.X {
		return false
	}
	if r.Min.Y >= other.Max.Y || other.Min.Y >= r.Max.Y {
		return false
	}
	return true
}

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector2 {
	return Vector2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Offset returns the rectangle moved by v.
func (r Rect) Offset(v Vector2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// ClosestPoint returns the point of the rectangle nearest to p.
func (r Rect) ClosestPoint(p Vector2) Vector2 {
	return Vector2{
		X: ClampF(p.X, r.Left(), r.Right()),
		Y: ClampF(p.Y, r.Top(), r.Bottom()),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
