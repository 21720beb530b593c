package ozterm

import "testing"

func TestBlankCell(t *testing.T) {
	c := blankCell(ColorRed, ColorBlue)
	if c.Char != ' ' {
		t.Errorf("expected space, got %q", c.Char)
	}
	if c.Fg != ColorRed || c.Bg != ColorBlue {
		t.Errorf("expected fg=%d bg=%d, got fg=%d bg=%d", ColorRed, ColorBlue, c.Fg, c.Bg)
	}
	if c.Protected() {
		t.Error("expected unprotected")
	}
}

func TestCellProtected(t *testing.T) {
	c := Cell{Char: 'X', Flags: CellProtected}
	if !c.Protected() {
		t.Error("expected protected")
	}
	c.Flags |= CellDirty
	if !c.Protected() {
		t.Error("expected protected to survive an unrelated flag bit")
	}
}
