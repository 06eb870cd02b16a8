package shape

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-collide/internal/collide"
	"github.com/vovakirdan/tui-collide/internal/core"
)

// Grid is a tile map of solid and empty cells. Its top-left corner sits at
// the owner's position plus Offset. Only solid cells collide.
type Grid struct {
	anchor
	CellWidth  float64
	CellHeight float64
	cols       int
	rows       int
	cells      []bool
}

// NewGrid creates an empty grid of cols x rows cells.
func NewGrid(cols, rows int, cellW, cellH float64, offset core.Vector2) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{
		anchor:     anchor{Offset: offset},
		CellWidth:  cellW,
		CellHeight: cellH,
		cols:       cols,
		rows:       rows,
		cells:      make([]bool, cols*rows),
	}
}

// NewGridFromRows builds a grid from text rows where solid marks a solid cell.
// Rows shorter than the longest one are padded with empty cells.
func NewGridFromRows(rows []string, solid rune, cellW, cellH float64, offset core.Vector2) (*Grid, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("shape: grid cell size must be positive, got %vx%v", cellW, cellH)
	}

	cols := 0
	for _, row := range rows {
		cols = core.Max(cols, len([]rune(row)))
	}

	g := NewGrid(cols, len(rows), cellW, cellH, offset)
	for y, row := range rows {
		for x, r := range []rune(row) {
			g.Set(x, y, r == solid)
		}
	}
	return g, nil
}

// Kind returns KindGrid.
func (g *Grid) Kind() string {
	return KindGrid
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Set marks a cell solid or empty. Out-of-range cells are ignored.
func (g *Grid) Set(col, row int, solid bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = solid
}

// Get reports whether a cell is solid. Out-of-range cells are empty.
func (g *Grid) Get(col, row int) bool {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Bounds returns the grid area in world space.
func (g *Grid) Bounds() core.Rect {
	o := g.origin()
	return core.NewRect(o.X, o.Y, float64(g.cols)*g.CellWidth, float64(g.rows)*g.CellHeight)
}

// CellRect returns the world rectangle of a cell.
func (g *Grid) CellRect(col, row int) core.Rect {
	o := g.origin()
	return core.NewRectLTRB(
		o.X+float64(col)*g.CellWidth,
		o.Y+float64(row)*g.CellHeight,
		o.X+float64(col+1)*g.CellWidth,
		o.Y+float64(row+1)*g.CellHeight,
	)
}

func (g *Grid) CollidesWithCollider(other collide.Collider) bool {
	return collides(g, other)
}

func (g *Grid) CollidesWithPoint(p core.Vector2) bool {
	if !g.Bounds().Contains(p) {
		return false
	}
	o := g.origin()
	col := int((p.X - o.X) / g.CellWidth)
	row := int((p.Y - o.Y) / g.CellHeight)
	return g.Get(col, row)
}

func (g *Grid) CollidesWithSegment(from, to core.Vector2) bool {
	area := core.NewRectLTRB(
		math.Min(from.X, to.X), math.Min(from.Y, to.Y),
		math.Max(from.X, to.X), math.Max(from.Y, to.Y),
	)
	return g.anySolid(area, func(cell core.Rect) bool {
		return collide.RectSegment(cell, from, to)
	})
}

func (g *Grid) CollidesWithRect(r core.Rect) bool {
	if !g.Bounds().Intersects(r) {
		return false
	}
	return g.anySolid(r, func(cell core.Rect) bool {
		return cell.Intersects(r)
	})
}

// collidesWithCircle tests each solid cell under the circle's bounds.
func (g *Grid) collidesWithCircle(center core.Vector2, radius float64) bool {
	area := core.NewRectLTRB(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	return g.anySolid(area, func(cell core.Rect) bool {
		return circleRect(center, radius, cell)
	})
}

// collidesWithCollider tests each solid cell against other. When other is a
// Shape only the cells under its bounds are visited.
func (g *Grid) collidesWithCollider(other collide.Collider) bool {
	area := g.Bounds()
	if s, ok := other.(Shape); ok {
		area = s.Bounds()
	}
	return g.anySolid(area, other.CollidesWithRect)
}

// anySolid calls fn for every solid cell touching area until fn returns true.
// Cells on the far edges of area are included; fn does the exact test.
func (g *Grid) anySolid(area core.Rect, fn func(cell core.Rect) bool) bool {
	if g.cols == 0 || g.rows == 0 || g.CellWidth <= 0 || g.CellHeight <= 0 {
		return false
	}

	o := g.origin()
	c0 := cellIndex(area.Left()-o.X, g.CellWidth, g.cols)
	c1 := cellIndex(area.Right()-o.X, g.CellWidth, g.cols)
	r0 := cellIndex(area.Top()-o.Y, g.CellHeight, g.rows)
	r1 := cellIndex(area.Bottom()-o.Y, g.CellHeight, g.rows)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if g.Get(col, row) && fn(g.CellRect(col, row)) {
				return true
			}
		}
	}
	return false
}

// cellIndex maps a distance from the grid origin to a cell index in [0, n).
// The clamp happens before the int conversion so huge or infinite extents
// land on the first or last cell.
func cellIndex(d, size float64, n int) int {
	f := math.Floor(d / size)
	if math.IsNaN(f) {
		return 0
	}
	return int(core.ClampF(f, 0, float64(n-1)))
}
