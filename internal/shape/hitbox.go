package shape

import (
	"github.com/vovakirdan/tui-collide/internal/collide"
	"github.com/vovakirdan/tui-collide/internal/core"
)

// Hitbox is an axis-aligned box whose top-left corner sits at the owner's
// position plus Offset.
type Hitbox struct {
	anchor
	Width  float64
	Height float64
}

// NewHitbox creates a box of the given size.
func NewHitbox(width, height float64, offset core.Vector2) *Hitbox {
	return &Hitbox{
		anchor: anchor{Offset: offset},
		Width:  width,
		Height: height,
	}
}

// Kind returns KindBox.
func (h *Hitbox) Kind() string {
	return KindBox
}

// Bounds returns the box in world space.
func (h *Hitbox) Bounds() core.Rect {
	o := h.origin()
	return core.NewRect(o.X, o.Y, h.Width, h.Height)
}

func (h *Hitbox) CollidesWithCollider(other collide.Collider) bool {
	return collides(h, other)
}

func (h *Hitbox) CollidesWithPoint(p core.Vector2) bool {
	return h.Bounds().Contains(p)
}

func (h *Hitbox) CollidesWithSegment(from, to core.Vector2) bool {
	return collide.RectSegment(h.Bounds(), from, to)
}

func (h *Hitbox) CollidesWithRect(r core.Rect) bool {
	return h.Bounds().Intersects(r)
}
