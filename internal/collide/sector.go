package collide

import (
	"strings"

	"github.com/vovakirdan/tui-collide/internal/core"
)

// Sector is an outcode describing on which sides of a rectangle a point lies.
// Zero means the point is inside.
type Sector uint8

const (
	SectorCenter Sector = 0
	SectorTop    Sector = 1
	SectorBottom Sector = 2
	SectorRight  Sector = 4
	SectorLeft   Sector = 8

	SectorTopLeft     = SectorTop | SectorLeft
	SectorTopRight    = SectorTop | SectorRight
	SectorBottomLeft  = SectorBottom | SectorLeft
	SectorBottomRight = SectorBottom | SectorRight
)

// Has reports whether all bits of o are set in s.
func (s Sector) Has(o Sector) bool {
	return s&o == o
}

// String returns a human-readable name for the sector.
func (s Sector) String() string {
	if s == SectorCenter {
		return "Center"
	}
	var sb strings.Builder
	if s.Has(SectorTop) {
		sb.WriteString("Top")
	}
	if s.Has(SectorBottom) {
		sb.WriteString("Bottom")
	}
	if s.Has(SectorLeft) {
		sb.WriteString("Left")
	}
	if s.Has(SectorRight) {
		sb.WriteString("Right")
	}
	return sb.String()
}

// SectorOf classifies point against rect. Bounds are half-open: a point on
// the right or bottom edge is outside.
func SectorOf(rect core.Rect, point core.Vector2) Sector {
	sector := SectorCenter

	if point.X < rect.Left() {
		sector |= SectorLeft
	} else if point.X >= rect.Right() {
		sector |= SectorRight
	}

	if point.Y < rect.Top() {
		sector |= SectorTop
	} else if point.Y >= rect.Bottom() {
		sector |= SectorBottom
	}

	return sector
}
