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
		if s.Row(y) != strings.Repeat(" ", 80) {
			t.Fatalf("row %d should be blank, got %q", y, s.Row(y))
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetWithColor(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ABCD", ColorGreen)
	s.Clear()

	for x := 0; x < 4; x++ {
		if c := s.GetCell(x, 0); c != blankCell {
			t.Errorf("after Clear cell %d = %+v, expected blank", x, c)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("row 1 = %q, expected Hello at x=2", got)
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}

	s.DrawTextCentered(3, "Hi")
	if s.Get(9, 3) != 'H' || s.Get(10, 3) != 'i' {
		t.Error("DrawTextCentered placed text off center")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 4)
	s.DrawBox(NewRect(0, 0, 7, 4))

	expected := strings.Join([]string{
		"┌─────┐",
		"│     │",
		"│     │",
		"└─────┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawHLine(1, 0, 4, '-')
	s.DrawVLine(0, 1, 3, '|')
	s.DrawRect(NewRect(2, 2, 2, 2), '#')

	expected := " ---- \n|     \n| ##  \n| ##  "
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenDrawMessage(t *testing.T) {
	s := NewScreen(30, 11)
	s.DrawMessage("GAME OVER", "R to restart")

	if !strings.Contains(s.Row(4), "GAME OVER") {
		t.Errorf("title row = %q", s.Row(4))
	}
	if !strings.Contains(s.Row(6), "R to restart") {
		t.Errorf("subtitle row = %q", s.Row(6))
	}
	if !strings.Contains(s.Row(3), "┌") || !strings.Contains(s.Row(7), "┘") {
		t.Error("message should be boxed")
	}
}

func TestScreenStringDeterministic(t *testing.T) {
	draw := func() *Screen {
		s := NewScreen(12, 3)
		s.DrawTextColor(0, 0, "score 10", ColorYellow)
		s.Set(5, 2, '@')
		return s
	}

	a, b := draw(), draw()
	if a.String() != b.String() {
		t.Error("identical drawing must produce identical output")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || len(s.Row(7)) != 15 {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}

	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be blank")
	}
}

func TestColorNamesAndCodes(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Errorf("default color should have no ANSI code, got %q", ColorDefault.ANSI())
	}
	if ColorOrange.String() != "orange" || ColorOrange.ANSI() != "208" {
		t.Errorf("orange = %s/%s", ColorOrange, ColorOrange.ANSI())
	}
	if got := Color(200).String(); got != "unknown" {
		t.Errorf("out-of-range color name = %q, want unknown", got)
	}

	seen := make(map[string]bool)
	for _, c := range Colors() {
		if c.ANSI() == "" || seen[c.ANSI()] {
			t.Errorf("color %s has missing or duplicate code %q", c, c.ANSI())
		}
		seen[c.ANSI()] = true
	}
	if len(seen) != int(numColors)-1 {
		t.Errorf("Colors() returned %d colors, want %d", len(seen), numColors-1)
	}
}
