package shape

import (
	"math"

	"github.com/vovakirdan/tui-collide/internal/collide"
	"github.com/vovakirdan/tui-collide/internal/core"
)

// List is a composite collider. It matches when any member matches.
// Members are anchored to the list's owner.
type List struct {
	owner   Owner
	Members []Shape
}

// NewList creates a composite of the given members.
func NewList(members ...Shape) *List {
	return &List{Members: members}
}

// Kind returns KindList.
func (l *List) Kind() string {
	return KindList
}

// Add appends a member and anchors it to the list's owner.
func (l *List) Add(s Shape) {
	s.Attach(l.owner)
	l.Members = append(l.Members, s)
}

// Attach anchors the list and all its members to owner.
func (l *List) Attach(owner Owner) {
	l.owner = owner
	for _, m := range l.Members {
		m.Attach(owner)
	}
}

// Bounds returns the union of the member bounds. An empty list has empty
// bounds at its owner's position.
func (l *List) Bounds() core.Rect {
	if len(l.Members) == 0 {
		var p core.Vector2
		if l.owner != nil {
			p = l.owner.Position()
		}
		return core.NewRect(p.X, p.Y, 0, 0)
	}

	b := l.Members[0].Bounds()
	left, top, right, bottom := b.Left(), b.Top(), b.Right(), b.Bottom()
	for _, m := range l.Members[1:] {
		b = m.Bounds()
		left = math.Min(left, b.Left())
		top = math.Min(top, b.Top())
		right = math.Max(right, b.Right())
		bottom = math.Max(bottom, b.Bottom())
	}
	return core.NewRectLTRB(left, top, right, bottom)
}

func (l *List) CollidesWithCollider(other collide.Collider) bool {
	return collides(l, other)
}

func (l *List) CollidesWithPoint(p core.Vector2) bool {
	for _, m := range l.Members {
		if m.CollidesWithPoint(p) {
			return true
		}
	}
	return false
}

func (l *List) CollidesWithSegment(from, to core.Vector2) bool {
	for _, m := range l.Members {
		if m.CollidesWithSegment(from, to) {
			return true
		}
	}
	return false
}

func (l *List) CollidesWithRect(r core.Rect) bool {
	for _, m := range l.Members {
		if m.CollidesWithRect(r) {
			return true
		}
	}
	return false
}
