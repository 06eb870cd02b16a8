// Package scene provides YAML scene documents: a set of entities with
// colliders and a list of collision queries to evaluate against them.
package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Query kinds.
const (
	KindCheck    = "check"    // subject vs exactly one target
	KindAny      = "any"      // subject vs targets, boolean
	KindFirst    = "first"    // subject vs targets, first match
	KindAll      = "all"      // subject vs targets, every match
	KindPoint    = "point"    // subject vs point
	KindLine     = "line"     // subject vs segment
	KindRect     = "rect"     // subject vs rectangle
	KindSegments = "segments" // segment vs segment, no entities
	KindRectLine = "rect_line"
	KindSector   = "sector"
)

var queryKinds = map[string]bool{
	KindCheck:    true,
	KindAny:      true,
	KindFirst:    true,
	KindAll:      true,
	KindPoint:    true,
	KindLine:     true,
	KindRect:     true,
	KindSegments: true,
	KindRectLine: true,
	KindSector:   true,
}

// NeedsSubject reports whether a query kind is evaluated against an entity.
func NeedsSubject(kind string) bool {
	switch kind {
	case KindSegments, KindRectLine, KindSector:
		return false
	}
	return true
}

// Document is a parsed scene file.
type Document struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Probe       string       `yaml:"probe"` // entity moved in the playground
	Entities    []EntitySpec `yaml:"entities"`
	Queries     []QuerySpec  `yaml:"queries"`
}

// EntitySpec describes one entity.
type EntitySpec struct {
	Name       string     `yaml:"name"`
	Tag        string     `yaml:"tag"`
	Position   Vec        `yaml:"position"`
	Collidable *bool      `yaml:"collidable"` // default true
	Shape      *ShapeSpec `yaml:"shape"`      // nil means no collider
}

// ShapeSpec describes a collider. Fields not used by Kind are ignored.
type ShapeSpec struct {
	Kind       string      `yaml:"kind"`
	Offset     Vec         `yaml:"offset"`
	Width      float64     `yaml:"width"`
	Height     float64     `yaml:"height"`
	Radius     float64     `yaml:"radius"`
	CellWidth  float64     `yaml:"cell_width"`
	CellHeight float64     `yaml:"cell_height"`
	Rows       []string    `yaml:"rows"`
	Solid      string      `yaml:"solid"` // solid cell rune, default "#"
	Members    []ShapeSpec `yaml:"members"`
}

// QuerySpec describes a query and its optional expectation.
type QuerySpec struct {
	Name    string   `yaml:"name"`
	Kind    string   `yaml:"kind"`
	Subject string   `yaml:"subject"`
	Targets []string `yaml:"targets"` // empty means every entity, in scene order
	At      *Vec     `yaml:"at"`      // hypothetical subject position

	Point     *Vec      `yaml:"point"`
	From      *Vec      `yaml:"from"`
	To        *Vec      `yaml:"to"`
	OtherFrom *Vec      `yaml:"other_from"`
	OtherTo   *Vec      `yaml:"other_to"`
	Rect      *RectSpec `yaml:"rect"`

	Expect      *bool  `yaml:"expect"`
	ExpectValue string `yaml:"expect_value"`
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: cannot parse document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks references and required fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("scene: missing id")
	}

	names := make(map[string]bool, len(d.Entities))
	for i, e := range d.Entities {
		if e.Name == "" {
			return fmt.Errorf("scene %s: entity %d has no name", d.ID, i)
		}
		if names[e.Name] {
			return fmt.Errorf("scene %s: duplicate entity %q", d.ID, e.Name)
		}
		names[e.Name] = true

		if e.Shape != nil {
			if err := e.Shape.validate(); err != nil {
				return fmt.Errorf("scene %s: entity %q: %w", d.ID, e.Name, err)
			}
		}
	}

	if d.Probe != "" && !names[d.Probe] {
		return fmt.Errorf("scene %s: probe %q is not an entity", d.ID, d.Probe)
	}

	for i, q := range d.Queries {
		if err := q.validate(names); err != nil {
			label := q.Name
			if label == "" {
				label = fmt.Sprintf("#%d", i)
			}
			return fmt.Errorf("scene %s: query %s: %w", d.ID, label, err)
		}
	}
	return nil
}

func (s *ShapeSpec) validate() error {
	switch s.Kind {
	case "box":
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("box needs positive width and height")
		}
	case "circle":
		if s.Radius <= 0 {
			return fmt.Errorf("circle needs a positive radius")
		}
	case "grid":
		if len(s.Rows) == 0 {
			return fmt.Errorf("grid needs rows")
		}
		if len([]rune(s.Solid)) > 1 {
			return fmt.Errorf("grid solid marker must be a single character")
		}
	case "list":
		for i := range s.Members {
			if err := s.Members[i].validate(); err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
		}
	case "":
		return fmt.Errorf("shape has no kind")
	default:
		return fmt.Errorf("unknown shape kind %q", s.Kind)
	}
	return nil
}

func (q *QuerySpec) validate(names map[string]bool) error {
	if !queryKinds[q.Kind] {
		return fmt.Errorf("unknown kind %q", q.Kind)
	}

	if NeedsSubject(q.Kind) {
		if q.Subject == "" {
			return fmt.Errorf("%s query needs a subject", q.Kind)
		}
		if !names[q.Subject] {
			return fmt.Errorf("unknown subject %q", q.Subject)
		}
	}
	for _, t := range q.Targets {
		if !names[t] {
			return fmt.Errorf("unknown target %q", t)
		}
	}

	switch q.Kind {
	case KindCheck:
		if len(q.Targets) != 1 {
			return fmt.Errorf("check query needs exactly one target")
		}
	case KindPoint:
		if q.Point == nil {
			return fmt.Errorf("point query needs point")
		}
	case KindLine:
		if q.From == nil || q.To == nil {
			return fmt.Errorf("line query needs from and to")
		}
	case KindRect:
		if q.Rect == nil {
			return fmt.Errorf("rect query needs rect")
		}
	case KindSegments:
		if q.From == nil || q.To == nil || q.OtherFrom == nil || q.OtherTo == nil {
			return fmt.Errorf("segments query needs from, to, other_from and other_to")
		}
	case KindRectLine:
		if q.Rect == nil || q.From == nil || q.To == nil {
			return fmt.Errorf("rect_line query needs rect, from and to")
		}
	case KindSector:
		if q.Rect == nil || q.Point == nil {
			return fmt.Errorf("sector query needs rect and point")
		}
	}
	return nil
}
