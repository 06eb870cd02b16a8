package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-collide/internal/core"
)

// Vec is a point written as a two element sequence: [x, y].
type Vec core.Vector2

// UnmarshalYAML decodes [x, y].
func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	var xy []float64
	if err := node.Decode(&xy); err != nil {
		return fmt.Errorf("line %d: point must be [x, y]: %w", node.Line, err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point must have 2 values, got %d", node.Line, len(xy))
	}
	*v = Vec{X: xy[0], Y: xy[1]}
	return nil
}

// MarshalYAML encodes the point as a flow sequence.
func (v Vec) MarshalYAML() (interface{}, error) {
	return flowSeq(v.X, v.Y), nil
}

func flowSeq(values ...float64) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range values {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: fmt.Sprint(f),
		})
	}
	return node
}

// Vector converts to a core vector.
func (v Vec) Vector() core.Vector2 {
	return core.Vector2(v)
}

// RectSpec is a rectangle written as its extents: [left, top, right, bottom].
type RectSpec core.Rect

// UnmarshalYAML decodes [left, top, right, bottom].
func (r *RectSpec) UnmarshalYAML(node *yaml.Node) error {
	var ltrb []float64
	if err := node.Decode(&ltrb); err != nil {
		return fmt.Errorf("line %d: rect must be [left, top, right, bottom]: %w", node.Line, err)
	}
	if len(ltrb) != 4 {
		return fmt.Errorf("line %d: rect must have 4 values, got %d", node.Line, len(ltrb))
	}
	if ltrb[2] < ltrb[0] || ltrb[3] < ltrb[1] {
		return fmt.Errorf("line %d: rect right/bottom must not be less than left/top", node.Line)
	}
	*r = RectSpec(core.NewRectLTRB(ltrb[0], ltrb[1], ltrb[2], ltrb[3]))
	return nil
}

// MarshalYAML encodes [left, top, right, bottom].
func (r RectSpec) MarshalYAML() (interface{}, error) {
	rect := r.Rect()
	return flowSeq(rect.Left(), rect.Top(), rect.Right(), rect.Bottom()), nil
}

// Rect converts to a core rectangle.
func (r RectSpec) Rect() core.Rect {
	return core.Rect(r)
}
