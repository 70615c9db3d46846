package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}

	s.SetColored(4, 2, '#', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(4,2) = %+v, want red '#'", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes outside the buffer must be ignored, reads return blanks.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1,0) = %q, want space", got)
	}
	if got := s.Get(10, 4); got != ' ' {
		t.Errorf("Get(10,4) = %q, want space", got)
	}

	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds write leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(0, 0, 4, 3), '#', ColorGreen)
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText placed %q%q, want \"hi\"", s.Get(2, 1), s.Get(3, 1))
	}

	// Clipped text must not wrap to the next row.
	s.DrawText(8, 0, "long")
	if s.Get(0, 1) == 'n' || s.Get(1, 1) == 'g' {
		t.Error("DrawText wrapped past the right edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorDefault)

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: row = %q", rowString(s, 1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(8, 4)
	s.Resize(12, 6)

	if s.Width() != 12 || s.Height() != 6 {
		t.Errorf("Resize: got %dx%d, want 12x6", s.Width(), s.Height())
	}
	// Whole buffer must be valid blanks after a resize.
	if s.Get(11, 5) != ' ' {
		t.Error("resized buffer not cleared")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func rowString(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}
