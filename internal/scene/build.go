package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-collide/internal/entity"
	"github.com/vovakirdan/tui-collide/internal/shape"
)

// World is a built scene: live entities in document order.
type World struct {
	Entities []*entity.Entity

	byName map[string]*entity.Entity
}

// Build creates the entities described by doc.
func Build(doc *Document) (*World, error) {
	w := &World{
		Entities: make([]*entity.Entity, 0, len(doc.Entities)),
		byName:   make(map[string]*entity.Entity, len(doc.Entities)),
	}

	for i, spec := range doc.Entities {
		e := entity.New(entity.ID(i+1), spec.Name, spec.Position.Vector())
		e.Tag = spec.Tag
		if spec.Collidable != nil {
			e.SetCollidable(*spec.Collidable)
		}

		if spec.Shape != nil {
			s, err := BuildShape(*spec.Shape)
			if err != nil {
				return nil, fmt.Errorf("scene %s: entity %q: %w", doc.ID, spec.Name, err)
			}
			e.SetCollider(s)
		}

		w.Entities = append(w.Entities, e)
		w.byName[spec.Name] = e
	}
	return w, nil
}

// BuildShape creates a detached shape from its description.
func BuildShape(spec ShapeSpec) (shape.Shape, error) {
	offset := spec.Offset.Vector()

	switch spec.Kind {
	case shape.KindBox:
		return shape.NewHitbox(spec.Width, spec.Height, offset), nil
	case shape.KindCircle:
		return shape.NewCircle(spec.Radius, offset), nil
	case shape.KindGrid:
		solid := '#'
		if r := []rune(spec.Solid); len(r) > 0 {
			solid = r[0]
		}
		cw, ch := spec.CellWidth, spec.CellHeight
		if cw == 0 {
			cw = 1
		}
		if ch == 0 {
			ch = 1
		}
		return shape.NewGridFromRows(spec.Rows, solid, cw, ch, offset)
	case shape.KindList:
		list := shape.NewList()
		for i, m := range spec.Members {
			s, err := BuildShape(m)
			if err != nil {
				return nil, fmt.Errorf("member %d: %w", i, err)
			}
			list.Add(s)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", spec.Kind)
	}
}

// Lookup finds an entity by name.
func (w *World) Lookup(name string) (*entity.Entity, bool) {
	e, ok := w.byName[name]
	return e, ok
}

// Select returns the named entities in the given order.
// An empty list selects every entity in document order.
func (w *World) Select(names []string) []*entity.Entity {
	if len(names) == 0 {
		out := make([]*entity.Entity, len(w.Entities))
		copy(out, w.Entities)
		return out
	}

	out := make([]*entity.Entity, 0, len(names))
	for _, n := range names {
		if e, ok := w.byName[n]; ok {
			out = append(out, e)
		}
	}
	return out
}
