package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 4, 4), NewRect(2, 2, 4, 4), true},
		{"contained", NewRect(0, 0, 10, 10), NewRect(3, 3, 2, 2), true},
		{"touching edges", NewRect(0, 0, 4, 4), NewRect(4, 0, 4, 4), false},
		{"disjoint horizontal", NewRect(0, 0, 2, 2), NewRect(5, 0, 2, 2), false},
		{"disjoint vertical", NewRect(0, 0, 2, 2), NewRect(0, 5, 2, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 4, 3)

	if !r.Contains(2, 2) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(6, 2) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(2, 5) {
		t.Error("bottom edge is exclusive")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 1.0, 3.0); got != 1.5 {
		t.Errorf("ClampF(1.5) = %f", got)
	}
	if got := ClampF(3.7, 1.0, 3.0); got != 3.0 {
		t.Errorf("ClampF(3.7) = %f", got)
	}
}
