package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-collide/internal/scene"
)

func staticScene(id, title string, entities int) Factory {
	return func() (*scene.Document, error) {
		doc := &scene.Document{ID: id, Title: title}
		for i := 0; i < entities; i++ {
			doc.Entities = append(doc.Entities, scene.EntitySpec{Name: string(rune('a' + i))})
		}
		return doc, nil
	}
}

func TestRegisterAndList(t *testing.T) {
	Register("test-zeta", staticScene("test-zeta", "Zeta", 2))
	Register("test-alpha", staticScene("test-alpha", "Alpha", 0))

	if !Exists("test-alpha") {
		t.Error("test-alpha should exist")
	}
	if Exists("test-missing") {
		t.Error("test-missing should not exist")
	}

	alpha, zeta := -1, -1
	for i, info := range List() {
		switch info.ID {
		case "test-alpha":
			alpha = i
		case "test-zeta":
			zeta = i
			if info.Title != "Zeta" || info.Entities != 2 {
				t.Errorf("zeta info = %+v", info)
			}
		}
	}
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Errorf("List() should contain both scenes sorted by ID (alpha=%d, zeta=%d)", alpha, zeta)
	}

	doc, err := Create("test-zeta")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if doc.Title != "Zeta" {
		t.Errorf("Create() title = %q", doc.Title)
	}

	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() of an unknown scene should fail")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"duplicate", func() {
			Register("test-dup", staticScene("test-dup", "Dup", 0))
			Register("test-dup", staticScene("test-dup", "Dup", 0))
		}},
		{"broken factory", func() {
			Register("test-broken", func() (*scene.Document, error) {
				return nil, errors.New("boom")
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() should panic")
				}
			}()
			tt.run()
		})
	}
}
