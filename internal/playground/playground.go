// Package playground implements the interactive collision sandbox.
// A probe entity is moved around a scene one cell at a time; every move is
// checked with a hypothetical query first and rejected if it would overlap
// anything collidable. The package holds pure logic only: the platform layer
// maps keys to actions, calls Step and displays Render output.
package playground

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-collide/internal/collide"
	"github.com/vovakirdan/tui-collide/internal/core"
	"github.com/vovakirdan/tui-collide/internal/entity"
	"github.com/vovakirdan/tui-collide/internal/scene"
	"github.com/vovakirdan/tui-collide/internal/shape"
)

// Glyphs used by Render.
const (
	ProbeChar   = '@'
	GridChar    = '#'
	BoxChar     = '▒'
	CircleChar  = 'o'
	ListChar    = '+'
	MarkerChar  = '?' // entity without a collider
	SightChar   = '·'
	UnknownChar = '*'
)

// Status describes the probe's situation after the last step.
type Status struct {
	Probe    string
	Position core.Vector2
	Moves    int

	// Blocked names the entity that rejected the last move, if any.
	Blocked string

	// Touching lists collidable entities overlapping the probe now.
	Touching []string

	Target           string
	TargetCollidable bool
	Sector           collide.Sector // probe centre relative to target bounds

	// SightBlocker names the first entity crossing the segment from the
	// probe centre to the target centre.
	SightBlocker string

	// ResetError is set when the last reset failed. The scene is left as it
	// was before the reset.
	ResetError string
}

// Playground is the sandbox state for one scene.
type Playground struct {
	doc      *scene.Document
	world    *scene.World
	probe    *entity.Entity
	others   []*entity.Entity // everything but the probe, scene order
	targets  []*entity.Entity // others with a collider
	cursor   int
	moves    int
	blocked  string
	resetErr error
	status   Status
}

// New creates a playground for doc.
func New(doc *scene.Document) (*Playground, error) {
	p := &Playground{doc: doc}
	if err := p.Reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// ID returns the scene ID.
func (p *Playground) ID() string {
	return p.doc.ID
}

// Title returns the scene title, or its ID when untitled.
func (p *Playground) Title() string {
	if p.doc.Title != "" {
		return p.doc.Title
	}
	return p.doc.ID
}

// Reset rebuilds the scene from its document.
func (p *Playground) Reset() error {
	w, err := scene.Build(p.doc)
	if err != nil {
		return err
	}

	probe, err := pickProbe(p.doc, w)
	if err != nil {
		return err
	}

	p.world = w
	p.probe = probe
	p.others = p.others[:0]
	p.targets = p.targets[:0]
	for _, e := range w.Entities {
		if e == probe {
			continue
		}
		p.others = append(p.others, e)
		if e.Shape() != nil {
			p.targets = append(p.targets, e)
		}
	}
	p.cursor = 0
	p.moves = 0
	p.blocked = ""
	p.refresh()
	return nil
}

// pickProbe returns the document's probe, or the first entity with a collider.
func pickProbe(doc *scene.Document, w *scene.World) (*entity.Entity, error) {
	if doc.Probe != "" {
		if e, ok := w.Lookup(doc.Probe); ok {
			return e, nil
		}
		return nil, fmt.Errorf("playground: scene %s: unknown probe %q", doc.ID, doc.Probe)
	}
	for _, e := range w.Entities {
		if e.Shape() != nil {
			return e, nil
		}
	}
	return nil, fmt.Errorf("playground: scene %s has no entity with a collider", doc.ID)
}

// Step applies the frame's actions in order and returns the new status.
// Actions the playground does not own (back, quit, record) are ignored.
func (p *Playground) Step(in core.InputFrame) Status {
	p.resetErr = nil
	for _, a := range in.Actions() {
		if d, ok := a.Delta(); ok {
			p.move(d)
			continue
		}

		switch a {
		case core.ActionNext:
			p.cycle(1)
		case core.ActionPrev:
			p.cycle(-1)
		case core.ActionToggle:
			if t := p.target(); t != nil {
				t.SetCollidable(!t.Collidable())
			}
		case core.ActionReset:
			p.resetErr = p.Reset()
		}
	}

	p.refresh()
	return p.status
}

// move shifts the probe by d unless the new position would overlap something.
func (p *Playground) move(d core.Vector2) {
	next := p.probe.Position().Add(d)
	if collide.AnyAt(p.probe, p.others, next) {
		if hit, ok := collide.FirstAt(p.probe, p.others, next); ok {
			p.blocked = hit.String()
		}
		return
	}

	p.probe.SetPosition(next)
	p.blocked = ""
	p.moves++
}

func (p *Playground) cycle(dir int) {
	if len(p.targets) == 0 {
		return
	}
	p.cursor = (p.cursor + dir + len(p.targets)) % len(p.targets)
}

// target returns the selected target, or nil when the scene has none.
func (p *Playground) target() *entity.Entity {
	if len(p.targets) == 0 {
		return nil
	}
	return p.targets[p.cursor]
}

// refresh recomputes the status from the current positions.
func (p *Playground) refresh() {
	st := Status{
		Probe:    p.probe.String(),
		Position: p.probe.Position(),
		Moves:    p.moves,
		Blocked:  p.blocked,
	}
	if p.resetErr != nil {
		st.ResetError = p.resetErr.Error()
	}

	for _, e := range collide.All(p.probe, p.others) {
		st.Touching = append(st.Touching, e.String())
	}

	if t := p.target(); t != nil {
		st.Target = t.String()
		st.TargetCollidable = t.Collidable()

		from, to := p.sightLine(t)
		st.Sector = collide.SectorOf(t.Shape().Bounds(), from)
		if b := p.sightBlocker(t, from, to); b != nil {
			st.SightBlocker = b.String()
		}
	}

	p.status = st
}

// sightLine returns the segment from the probe centre to the target centre.
func (p *Playground) sightLine(t *entity.Entity) (from, to core.Vector2) {
	return centre(p.probe), centre(t)
}

// sightBlocker returns the first collidable entity other than the target
// crossing the segment.
func (p *Playground) sightBlocker(t *entity.Entity, from, to core.Vector2) *entity.Entity {
	for _, e := range p.others {
		if e == t || !e.Collidable() {
			continue
		}
		if collide.CheckLine(e, from, to) {
			return e
		}
	}
	return nil
}

// Status returns the status computed by the last step.
func (p *Playground) Status() Status {
	return p.status
}

// Probe returns the probe entity.
func (p *Playground) Probe() *entity.Entity {
	return p.probe
}

// Snapshot evaluates a first-match query for the probe at its current
// position, suitable for saving.
func (p *Playground) Snapshot() (scene.Result, error) {
	pos := scene.Vec(p.probe.Position())
	q := scene.QuerySpec{
		Name:    fmt.Sprintf("%s at %s", p.probe, scene.FormatPoint(pos.Vector())),
		Kind:    scene.KindFirst,
		Subject: p.probe.Name,
		At:      &pos,
	}
	return p.world.Eval(q)
}

// Render draws the scene at a one world unit per cell scale. Each cell shows
// the topmost entity whose collider contains the cell centre.
func (p *Playground) Render(dst *core.Screen) {
	dst.Clear()

	if t := p.target(); t != nil {
		p.renderSight(dst, t)
	}

	for i, e := range p.world.Entities {
		if e == p.probe {
			continue
		}
		p.renderEntity(dst, e, p.entityColor(i, e), glyph(e))
	}
	p.renderEntity(dst, p.probe, core.ColorBrightWhite, ProbeChar)
}

func (p *Playground) entityColor(i int, e *entity.Entity) core.Color {
	switch {
	case !e.Collidable():
		return core.ColorGray
	case e == p.target():
		return core.ColorBrightYellow
	default:
		return core.PaletteColor(i)
	}
}

func (p *Playground) renderEntity(dst *core.Screen, e *entity.Entity, c core.Color, r rune) {
	s := e.Shape()
	if s == nil {
		pos := e.Position()
		dst.SetCell(int(math.Floor(pos.X)), int(math.Floor(pos.Y)), MarkerChar, c)
		return
	}

	x0, y0, x1, y1 := visibleSpan(s.Bounds(), dst)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if collide.CheckPoint(e, core.Vec(float64(x)+0.5, float64(y)+0.5)) {
				dst.SetCell(x, y, r, c)
			}
		}
	}
}

// renderSight marks the cells the probe-to-target segment passes through.
func (p *Playground) renderSight(dst *core.Screen, t *entity.Entity) {
	from, to := p.sightLine(t)
	c := core.ColorGray
	if p.status.SightBlocker != "" {
		c = core.ColorRed
	}

	area := core.NewRectLTRB(
		math.Min(from.X, to.X), math.Min(from.Y, to.Y),
		math.Max(from.X, to.X), math.Max(from.Y, to.Y),
	)
	x0, y0, x1, y1 := visibleSpan(area, dst)
	for y := y0; y <= y1 && y < dst.Height(); y++ {
		for x := x0; x <= x1 && x < dst.Width(); x++ {
			cell := core.NewRect(float64(x), float64(y), 1, 1)
			if collide.RectSegment(cell, from, to) {
				dst.SetCell(x, y, SightChar, c)
			}
		}
	}
}

// visibleSpan clips the cell range covered by r to the screen.
func visibleSpan(r core.Rect, dst *core.Screen) (x0, y0, x1, y1 int) {
	x0 = core.Max(int(math.Floor(r.Left())), 0)
	y0 = core.Max(int(math.Floor(r.Top())), 0)
	x1 = core.Min(int(math.Ceil(r.Right())), dst.Width())
	y1 = core.Min(int(math.Ceil(r.Bottom())), dst.Height())
	return x0, y0, x1, y1
}

func glyph(e *entity.Entity) rune {
	s := e.Shape()
	if s == nil {
		return MarkerChar
	}
	switch s.Kind() {
	case shape.KindGrid:
		return GridChar
	case shape.KindBox:
		return BoxChar
	case shape.KindCircle:
		return CircleChar
	case shape.KindList:
		return ListChar
	}
	return UnknownChar
}

func centre(e *entity.Entity) core.Vector2 {
	if s := e.Shape(); s != nil {
		return s.Bounds().Center()
	}
	return e.Position()
}
