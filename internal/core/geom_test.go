package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vector2
		expected bool
	}{
		{"inside", Vec(15, 15), true},
		{"top-left corner", Vec(10, 10), true},
		{"bottom-right edge (exclusive)", Vec(30, 25), false},
		{"right edge (exclusive)", Vec(30, 15), false},
		{"outside left", Vec(5, 15), false},
		{"outside right", Vec(35, 15), false},
		{"outside top", Vec(15, 5), false},
		{"outside bottom", Vec(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Left() != 5 || r.Top() != 10 {
		t.Errorf("Left/Top = (%v, %v), expected (5, 10)", r.Left(), r.Top())
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if c != Vec(15, 17.5) {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}

	ltrb := NewRectLTRB(0, 0, 10, 10)
	if ltrb != NewRect(0, 0, 10, 10) {
		t.Errorf("NewRectLTRB() = %v, expected 10x10 at origin", ltrb)
	}
}

func TestRectExactExtents(t *testing.T) {
	r := NewRectLTRB(0.3, 0.1, 0.9, 0.7)

	if r.Right() != 0.9 || r.Bottom() != 0.7 {
		t.Errorf("Right/Bottom = (%v, %v), expected (0.9, 0.7)", r.Right(), r.Bottom())
	}
	if r.Contains(Vec(0.9, 0.5)) {
		t.Error("Contains() should exclude the right edge")
	}
	if !r.Contains(Vec(0.3, 0.1)) {
		t.Error("Contains() should include the top-left corner")
	}

	if w := r.Width(); w <= 0.59 || w >= 0.61 {
		t.Errorf("Width() = %v, expected about 0.6", w)
	}
}

func TestRectClosestPoint(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		p, expected Vector2
	}{
		{Vec(5, 5), Vec(5, 5)},
		{Vec(-3, 5), Vec(0, 5)},
		{Vec(12, -4), Vec(10, 0)},
		{Vec(20, 20), Vec(10, 10)},
	}

	for _, tc := range tests {
		if got := r.ClosestPoint(tc.p); got != tc.expected {
			t.Errorf("ClosestPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
