// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the CLI and
// playground to discover and load scenes without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-collide/internal/scene"
)

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID          string
	Title       string
	Description string
	Entities    int
	Queries     int
}

// Factory loads a fresh copy of a scene document.
type Factory func() (*scene.Document, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]SceneInfo)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from an init() function.
// Panics if a scene with the same ID is already registered or if the
// factory cannot produce a document.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	// Load once for the listing metadata
	doc, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: scene %q: %v", id, err))
	}

	factories[id] = f
	infos[id] = SceneInfo{
		ID:          id,
		Title:       doc.Title,
		Description: doc.Description,
		Entities:    len(doc.Entities),
		Queries:     len(doc.Queries),
	}
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create loads a scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id string) (*scene.Document, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}
	return f()
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// IDs returns the registered scene IDs, sorted.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	return ids
}
