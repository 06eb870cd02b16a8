package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-collide/internal/collide"
	"github.com/vovakirdan/tui-collide/internal/core"
	"github.com/vovakirdan/tui-collide/internal/playground"
	"github.com/vovakirdan/tui-collide/internal/scene"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab cd")
	s.DrawText(1, 1, "xyz")

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColor(0, 0, "red", core.ColorRed)
	s.DrawTextColor(4, 0, "ok", core.ColorGreen)

	out := RenderScreen(s)
	for _, want := range []string{"red", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown colors should render unstyled, got %q", got)
	}
}

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  playground.Status
		message string
		want    []string
	}{
		{
			name: "clear",
			status: playground.Status{
				Probe: "player", Position: core.Vec(3, 3), Moves: 4,
				Target: "crate", TargetCollidable: true, Sector: collide.SectorLeft,
			},
			want: []string{"player", "[3, 3]", "crate", "solid", "Left", "clear sight"},
		},
		{
			name: "blocked",
			status: playground.Status{
				Probe: "player", Blocked: "walls", Touching: []string{"coin"},
				Target: "coin", SightBlocker: "walls",
			},
			message: "scene reset",
			want:    []string{"blocked by walls", "touching coin", "ghost", "sight blocked by walls", "scene reset"},
		},
		{
			name:   "no targets",
			status: playground.Status{Probe: "lonely"},
			want:   []string{"no targets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderStatus(tt.status, tt.message)
			if n := strings.Count(out, "\n") + 1; n != statusLines {
				t.Errorf("RenderStatus() has %d lines, expected %d", n, statusLines)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("RenderStatus() = %q, missing %q", out, want)
				}
			}
		})
	}
}

func TestRenderReport(t *testing.T) {
	doc := &scene.Document{ID: "demo", Title: "Demo"}
	results := []scene.Result{
		{Query: scene.QuerySpec{Name: "clear", Kind: scene.KindAny}, Value: "false", Passed: true},
		{Query: scene.QuerySpec{Kind: scene.KindFirst}, Value: "crate", Matched: true, Passed: false},
	}

	out := RenderReport(doc, results)
	for _, want := range []string{"Demo (demo)", "clear", "first#1", "FAIL", "2 queries, 1 passed, 1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderReport() missing %q:\n%s", want, out)
		}
	}
}
