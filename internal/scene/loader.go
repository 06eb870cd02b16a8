package scene

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var defaultScenes embed.FS

// Load loads a scene by name.
// Search order: customPath -> ~/.collide/scenes/<name>.yaml -> ./scenes/<name>.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Broken files in
// the user and local directories are skipped.
func Load(name, customPath string) (*Document, error) {
	if customPath != "" {
		doc, err := LoadFile(customPath)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}

	filename := name + ".yaml"

	// Try user scene directory
	if userPath := userScenePath(filename); userPath != "" {
		if doc, err := LoadFile(userPath); err == nil {
			return withID(doc, name), nil
		}
	}

	// Try local scenes directory
	if doc, err := LoadFile(filepath.Join("scenes", filename)); err == nil {
		return withID(doc, name), nil
	}

	return LoadEmbedded(name)
}

// LoadFile reads and parses a scene file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadEmbedded parses a built-in scene.
func LoadEmbedded(name string) (*Document, error) {
	data, err := defaultScenes.ReadFile("defaults/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scene: unknown scene %q", name)
	}
	return Parse(data)
}

// Builtins returns the names of the embedded scenes, sorted.
func Builtins() []string {
	entries, err := fs.ReadDir(defaultScenes, "defaults")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// userScenePath returns the path to a user scene file, or empty if home is unavailable.
func userScenePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".collide", "scenes", filename)
}

// withID makes an override file answer to the name it was loaded by.
func withID(doc *Document, name string) *Document {
	doc.ID = name
	return doc
}
