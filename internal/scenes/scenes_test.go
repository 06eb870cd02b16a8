package scenes

import (
	"testing"

	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/scene"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range scene.Builtins() {
		if !registry.Exists(name) {
			t.Errorf("built-in scene %q is not registered", name)
		}
	}

	for _, info := range registry.List() {
		if info.Title == "" {
			t.Errorf("scene %q has no title", info.ID)
		}
	}
}
