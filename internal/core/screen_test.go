package core

import (
	"strings"
	"testing"
)

var white = RGB(255, 255, 255)

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

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'Y')
	s.Set(10, 10, 'Y')
	if s.Get(-1, 0) != ' ' || s.Get(10, 10) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenPaintKeepsColors(t *testing.T) {
	s := NewScreen(10, 5)
	road := RGB(0x63, 0x6e, 0x72)

	s.Paint(2, 2, road)
	s.Draw(2, 2, '●', white)

	cell := s.GetCell(2, 2)
	if cell.Rune != '●' {
		t.Errorf("rune = %q, expected '●'", cell.Rune)
	}
	if cell.Bg != road {
		t.Errorf("Draw should keep background, got %+v", cell.Bg)
	}
	if cell.Fg != white {
		t.Errorf("Draw should set foreground, got %+v", cell.Fg)
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(4, 3)
	sky := RGB(0x87, 0xce, 0xeb)
	s.Fill(sky)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if s.GetCell(x, y).Bg != sky {
				t.Fatalf("Fill should paint (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", white)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Clipping
	s.DrawText(18, 0, "Hello", white) // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("DrawText should clip at screen edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Test", white)

	if !strings.Contains(s.Row(2), "        Test") {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenFillArea(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(255, 0, 0)
	s.FillArea(2, 3, 4, 2, red)

	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if s.GetCell(x, y).Bg != red {
				t.Errorf("FillArea: expected red at (%d, %d)", x, y)
			}
		}
	}
	if s.GetCell(1, 3).Bg == red || s.GetCell(6, 3).Bg == red {
		t.Error("FillArea should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, white)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox corners misplaced")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges misplaced")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(4, 1, 5, '─', white)

	if s.Row(1) != "    ──" {
		t.Errorf("Row(1) = %q, the line should clip at the right edge", s.Row(1))
	}
	if s.GetCell(4, 1).Fg != white {
		t.Error("DrawHLine should color the line")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", white)
	s.DrawText(0, 1, "BBBBB", white)
	s.DrawText(0, 2, "CCCCC", white)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", white)
	s.DrawText(0, 5, "World", white)

	s.Resize(20, 3)

	if s.Width() != 20 || s.Height() != 3 {
		t.Fatalf("Resize() gave %dx%d, expected 20x3", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Resize should preserve content, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 2, "Test", white)

	if s.Row(2) != "Test  " {
		t.Errorf("Row(2) = %q, expected %q", s.Row(2), "Test  ")
	}
	if s.Row(10) != "      " {
		t.Errorf("out-of-range Row should be blank, got %q", s.Row(10))
	}
}
