// Package entity provides the game object used by scenes and the playground.
package entity

import (
	"fmt"

	"github.com/vovakirdan/tui-collide/internal/collide"
	"github.com/vovakirdan/tui-collide/internal/core"
	"github.com/vovakirdan/tui-collide/internal/shape"
)

// ID identifies an entity within a scene.
type ID int

// Entity is a positioned object with an optional collider.
// It implements collide.Entity.
type Entity struct {
	ID   ID
	Name string
	Tag  string

	position   core.Vector2
	collidable bool
	collider   shape.Shape
}

// New creates a collidable entity without a collider.
func New(id ID, name string, pos core.Vector2) *Entity {
	return &Entity{
		ID:         id,
		Name:       name,
		position:   pos,
		collidable: true,
	}
}

// Position returns the entity position.
func (e *Entity) Position() core.Vector2 {
	return e.position
}

// SetPosition moves the entity. Attached colliders follow.
func (e *Entity) SetPosition(p core.Vector2) {
	e.position = p
}

// Move offsets the entity position by d.
func (e *Entity) Move(d core.Vector2) {
	e.position = e.position.Add(d)
}

// Collidable reports whether the entity can be matched by queries.
func (e *Entity) Collidable() bool {
	return e.collidable
}

// SetCollidable enables or disables matching against this entity.
func (e *Entity) SetCollidable(collidable bool) {
	e.collidable = collidable
}

// Collider returns the attached collider, if any.
func (e *Entity) Collider() (collide.Collider, bool) {
	if e.collider == nil {
		return nil, false
	}
	return e.collider, true
}

// Shape returns the attached shape, or nil.
func (e *Entity) Shape() shape.Shape {
	return e.collider
}

// SetCollider attaches s to the entity, replacing any previous collider.
// Passing nil removes the collider.
func (e *Entity) SetCollider(s shape.Shape) {
	if e.collider != nil {
		e.collider.Attach(nil)
	}
	e.collider = s
	if s != nil {
		s.Attach(e)
	}
}

// ClearCollider removes the collider.
func (e *Entity) ClearCollider() {
	e.SetCollider(nil)
}

// String returns the entity name for logs and reports.
func (e *Entity) String() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("entity#%d", e.ID)
}
