package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}

	if neg := NewScreen(-3, -1); neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, '@', ColorBrightYellow)
	if c := s.GetCell(5, 5); c.Rune != '@' || c.Color != ColorBrightYellow {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	// Set resets the color
	s.Set(5, 5, 'x')
	if c := s.GetCell(5, 5); c.Rune != 'x' || c.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %+v", c)
	}

	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetCell(p[0], p[1], 'A', ColorRed) // ignored
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("out of bounds Get(%d, %d) should return space", p[0], p[1])
		}
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(4, 3)
	s.Fill('#')
	if got := s.String(); got != "####\n####\n####" {
		t.Errorf("after Fill: %q", got)
	}

	s.SetCell(1, 1, '@', ColorRed)
	s.Clear()
	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("after Clear: %q", got)
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	if got := s.Row(1); !strings.HasPrefix(got, "  Hello ") {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}

	// Multi-byte runes take one cell each
	s.DrawTextColor(0, 2, "→·←", ColorCyan)
	if s.Get(1, 2) != '·' || s.Get(2, 2) != '←' || s.GetCell(2, 2).Color != ColorCyan {
		t.Errorf("unicode text misplaced: %q", s.Row(2))
	}

	s.DrawTextCentered(3, "Hi")
	if s.Get(9, 3) != 'H' || s.Get(10, 3) != 'i' {
		t.Errorf("DrawTextCentered misplaced: %q", s.Row(3))
	}
}

func TestScreenDrawRect(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want []string
	}{
		{
			name: "whole cells",
			rect: NewRect(1, 1, 2, 2),
			want: []string{"    ", " ## ", " ## ", "    "},
		},
		{
			name: "partial cells are covered",
			rect: NewRect(0.5, 0.5, 2, 1),
			want: []string{"### ", "### ", "    ", "    "},
		},
		{
			name: "clipped",
			rect: NewRect(-2, 2, 10, 10),
			want: []string{"    ", "    ", "####", "####"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(4, 4)
			s.DrawRect(tt.rect, '#', ColorGray)
			if got := s.String(); got != strings.Join(tt.want, "\n") {
				t.Errorf("got\n%s\nexpected\n%s", got, strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorBlue)

	want := strings.Join([]string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("got\n%s\nexpected\n%s", got, want)
	}
	if s.GetCell(1, 1).Color != ColorBlue {
		t.Error("box should use the given color")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawHLine(2, 0, 5, '-')
	if got := s.Row(0); got != "  -----   " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorGreen)
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorGreen {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if got := s.Row(5); strings.TrimSpace(got) != "" {
		t.Errorf("rows dropped by shrinking should stay blank, got %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(-1); got != "   " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}
