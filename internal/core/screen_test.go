package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 3, Cell{Rune: '@', Color: ColorCyan})

	c := s.GetCell(3, 3)
	if c.Rune != '@' {
		t.Errorf("GetCell rune = %q, expected '@'", c.Rune)
	}
	if c.Color != ColorCyan {
		t.Errorf("GetCell color = %v, expected ColorCyan", c.Color)
	}

	// Plain Set keeps the default color
	s.Set(4, 4, 'x')
	if s.GetCell(4, 4).Color != ColorDefault {
		t.Error("Set should write the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, Cell{Rune: 'X', Color: ColorRed})
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank default cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 0, "keep")

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("after resize got %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "keep") {
		t.Errorf("resize lost content, row 0 = %q", s.Row(0))
	}

	// Shrinking clips but keeps the surviving region
	s.Resize(2, 2)
	if s.Row(0) != "ke" {
		t.Errorf("after shrink, row 0 = %q, expected \"ke\"", s.Row(0))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawLinesAndBox(t *testing.T) {
	s := NewScreen(12, 8)

	s.DrawHLine(1, 1, 5, '-')
	for x := 1; x < 6; x++ {
		if s.Get(x, 1) != '-' {
			t.Errorf("DrawHLine missing at (%d, 1)", x)
		}
	}

	s.DrawVLine(8, 2, 4, '|')
	for y := 2; y < 6; y++ {
		if s.Get(8, y) != '|' {
			t.Errorf("DrawVLine missing at (8, %d)", y)
		}
	}

	s.DrawBox(0, 3, 5, 4)
	if s.Get(0, 3) == ' ' || s.Get(4, 6) == ' ' {
		t.Error("DrawBox should draw corners")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	if s.Row(1) != "  b" {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "  b")
	}
	if s.Row(5) != "" {
		t.Error("out of range Row should be empty")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Move = V(1, 0)
	f.Fire = true
	f.Weapon = WeaponLaser
	f.Set(ActionPause)

	if !f.Has(ActionPause) {
		t.Fatal("expected pause action to be set")
	}

	f.Clear()

	if !f.Move.IsZero() || f.Fire {
		t.Error("Clear should drop movement and fire")
	}
	if f.Has(ActionPause) {
		t.Error("Clear should drop meta actions")
	}
	if f.Weapon != WeaponLaser {
		t.Error("weapon selection should survive Clear")
	}
}
