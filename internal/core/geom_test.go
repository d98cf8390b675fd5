package core

import "testing"

func TestRectFOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"partial overlap", NewRectF(0, 0, 10, 10), NewRectF(5, 5, 10, 10), true},
		{"apart on x", NewRectF(0, 0, 10, 10), NewRectF(15, 0, 10, 10), false},
		{"apart on y", NewRectF(0, 0, 10, 10), NewRectF(0, 15, 10, 10), false},
		{"overlap on x only", NewRectF(0, 0, 10, 10), NewRectF(5, 20, 10, 10), false},
		{"overlap on y only", NewRectF(0, 0, 10, 10), NewRectF(20, 5, 10, 10), false},
		{"touching right edge", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 10, 10), false},
		{"touching bottom edge", NewRectF(0, 0, 10, 10), NewRectF(0, 10, 10, 10), false},
		{"contained", NewRectF(0, 0, 20, 20), NewRectF(5, 5, 5, 5), true},
		{"sliver", NewRectF(0, 0, 10, 10), NewRectF(9.99, 9.99, 3, 3), true},
		{"fractional gap", NewRectF(0, 0, 45, 45), NewRectF(45.01, 0, 30, 60), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() swapped = %v, expected %v", got, tc.expected)
			}
			// Reflecting both boxes through the same axis keeps the answer.
			ma, mb := tc.a.Mirror(50), tc.b.Mirror(50)
			if got := ma.Overlaps(mb); got != tc.expected {
				t.Errorf("Overlaps() mirrored = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	m := r.Mirror(0)
	if m.X != -25 || m.W != 20 || m.Y != 10 {
		t.Errorf("Mirror(0) = %+v", m)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("edges = (%d, %d), expected (6, 8)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestRound(t *testing.T) {
	if Round(2.4) != 2 || Round(2.5) != 3 || Round(-0.6) != -1 {
		t.Error("Round should round half away from zero")
	}
}
