package core

import (
	"strings"
	"testing"
)

// row returns line y of the plain-text screen.
func row(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

// stroke writes text left to right in the default color.
func stroke(s *Screen, x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Stroke(x+i, y, r, ColorDefault)
		i++
	}
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenStrokeGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Stroke(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.FG != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", c)
	}

	// Out of bounds should be silent
	s.Stroke(-1, 0, 'A', ColorRed)  // Should not panic
	s.Stroke(100, 0, 'A', ColorRed) // Should not panic
	s.Stroke(0, -1, 'A', ColorRed)  // Should not panic
	s.Stroke(0, 100, 'A', ColorRed) // Should not panic

	// Out of bounds get should return a blank cell
	if s.GetCell(-1, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
	if s.GetCell(100, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Stroke(x, y, 'X', ColorGreen)
		}
	}
	s.Paint(3, 3, ColorBlue)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenStrokeKeepsBackground(t *testing.T) {
	s := NewScreen(4, 4)
	s.Paint(1, 1, ColorBlue)
	s.Stroke(1, 1, '|', ColorWhite)

	c := s.GetCell(1, 1)
	if c.Rune != '|' || c.FG != ColorWhite || c.BG != ColorBlue {
		t.Errorf("GetCell(1, 1) = %+v, expected '|' white on blue", c)
	}
}

func TestScreenPaintClearsRune(t *testing.T) {
	s := NewScreen(4, 4)
	s.Stroke(2, 2, 'X', ColorRed)
	s.Paint(2, 2, ColorGreen)

	c := s.GetCell(2, 2)
	if c.Rune != ' ' || c.BG != ColorGreen || c.FG != ColorDefault {
		t.Errorf("GetCell(2, 2) = %+v, expected blank on green", c)
	}

	// Out of bounds should be silent
	s.Paint(-1, 0, ColorRed)
	s.Paint(10, 10, ColorRed)
}

func TestScreenZeroSize(t *testing.T) {
	s := NewScreen(0, 0)
	s.Stroke(0, 0, 'X', ColorRed)
	s.Paint(0, 0, ColorRed)

	if s.String() != "" {
		t.Errorf("String() on empty screen = %q, expected empty", s.String())
	}

	n := NewScreen(-3, -3)
	if n.Width() != 0 || n.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", n.Width(), n.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	stroke(s, 0, 0, "AAAAA")
	stroke(s, 0, 1, "BBBBB")
	stroke(s, 0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	stroke(s, 0, 0, "Hello")
	stroke(s, 0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	if row0 := row(s, 0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if row0 := row(s, 0); !strings.HasPrefix(row0, "Hello") || len(row0) != 15 {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
	if got := row(s, 5); got != strings.Repeat(" ", 15) {
		t.Errorf("rows cut by the shrink should come back blank, got %q", got)
	}
}
