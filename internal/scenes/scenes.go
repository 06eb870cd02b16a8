// Package scenes registers the built-in scenes with the registry.
// Import it for side effects.
package scenes

import (
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/scene"
)

func init() {
	for _, name := range scene.Builtins() {
		id := name
		registry.Register(id, func() (*scene.Document, error) {
			return scene.Load(id, "")
		})
	}
}
