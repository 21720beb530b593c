package ozterm

import "testing"

func newTestTerminal(t *testing.T, rows, cols int, cb Callbacks) *Terminal {
	t.Helper()
	term, err := New(WithSize(rows, cols), WithCallbacks(cb))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return term
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	if _, err := New(WithSize(0, 80)); err == nil {
		t.Error("expected error for zero rows")
	}
	if _, err := New(WithSize(24, -1)); err == nil {
		t.Error("expected error for negative cols")
	}
}

func TestScenarioHelloWorld(t *testing.T) {
	term := newTestTerminal(t, 25, 80, Callbacks{})
	term.FeedString("Hello\r\nWorld")

	if got := term.LineText(0); got != "Hello" {
		t.Errorf("row0: expected %q, got %q", "Hello", got)
	}
	if got := term.LineText(1); got != "World" {
		t.Errorf("row1: expected %q, got %q", "World", got)
	}
	row, col := term.CursorPos()
	if row != 1 || col != 5 {
		t.Errorf("expected cursor (1,5), got (%d,%d)", row, col)
	}
}

func TestScenarioBackspaceOverwrite(t *testing.T) {
	term := newTestTerminal(t, 25, 80, Callbacks{})
	term.FeedString("AB\x08C")

	if term.Cell(0, 0).Char != 'A' || term.Cell(0, 1).Char != 'C' {
		t.Errorf("expected A,C got %c,%c", term.Cell(0, 0).Char, term.Cell(0, 1).Char)
	}
	row, col := term.CursorPos()
	if row != 0 || col != 2 {
		t.Errorf("expected cursor (0,2), got (%d,%d)", row, col)
	}
}

func TestScenarioEraseThenPosition(t *testing.T) {
	term := newTestTerminal(t, 25, 80, Callbacks{})
	term.FeedString("hello world")
	term.FeedString("\x1b[2J\x1b[5;10HX")

	for r := 0; r < term.Rows(); r++ {
		for c := 0; c < term.Cols(); c++ {
			if r == 4 && c == 9 {
				continue
			}
			if ch := term.Cell(r, c).Char; ch != ' ' {
				t.Fatalf("expected blank at (%d,%d), got %c", r, c, ch)
			}
		}
	}
	if got := term.Cell(4, 9).Char; got != 'X' {
		t.Errorf("expected 'X' at (4,9), got %c", got)
	}
	row, col := term.CursorPos()
	if row != 4 || col != 10 {
		t.Errorf("expected cursor (4,10), got (%d,%d)", row, col)
	}
}

func TestScenarioCursorPositionReport(t *testing.T) {
	var reply []byte
	term := newTestTerminal(t, 25, 80, Callbacks{
		WriteToMaster: func(b []byte) { reply = append([]byte(nil), b...) },
	})
	term.FeedString("\x1b[3;4H") // row 2, col 3 (0-based)
	term.FeedString("\x1b[6n")

	if string(reply) != "\x1b[3;4R" {
		t.Errorf("expected DSR reply \\x1b[3;4R, got %q", reply)
	}
}

func TestScenarioScrollRegionNewlineEviction(t *testing.T) {
	term := newTestTerminal(t, 25, 80, Callbacks{})
	term.FeedString("\x1b[1;3r") // region rows [0,2]
	term.FeedString("\x1b[3;1H")
	row, col := term.CursorPos()
	if row != 2 || col != 0 {
		t.Fatalf("setup: expected cursor (2,0), got (%d,%d)", row, col)
	}

	term.FeedString("\n")

	if term.ScrollbackLen() != 1 {
		t.Fatalf("expected one evicted row, got %d", term.ScrollbackLen())
	}
	if term.Cell(2, 0).Char != ' ' {
		t.Errorf("expected bottom-of-region row blanked, got %c", term.Cell(2, 0).Char)
	}
	row, col = term.CursorPos()
	if row != 2 || col != 0 {
		t.Errorf("expected cursor to stay at (2,0), got (%d,%d)", row, col)
	}
}

func TestSaveRestoreCursorRoundTrip(t *testing.T) {
	term := newTestTerminal(t, 25, 80, Callbacks{})
	term.FeedString("\x1b[10;20H")
	term.FeedString("\x1b7")
	term.FeedString("\x1b[1;1H")
	term.FeedString("\x1b8")

	row, col := term.CursorPos()
	if row != 9 || col != 19 {
		t.Errorf("expected restored cursor (9,19), got (%d,%d)", row, col)
	}
}

func TestAltScreenIsolatesMainContent(t *testing.T) {
	term := newTestTerminal(t, 25, 80, Callbacks{})
	term.FeedString("main screen text")
	term.FeedString("\x1b[?1049h")
	if !term.IsAlternateScreen() {
		t.Fatal("expected alternate screen active")
	}
	term.FeedString("alt screen text")
	term.FeedString("\x1b[?1049l")

	if term.IsAlternateScreen() {
		t.Error("expected main screen active after restore")
	}
	if got := term.LineText(0); got != "main screen text" {
		t.Errorf("expected main content preserved, got %q", got)
	}
}

func TestEraseDisplayIdempotent(t *testing.T) {
	term := newTestTerminal(t, 5, 10, Callbacks{})
	term.FeedString("hello")
	term.FeedString("\x1b[2J")
	first := term.String()
	term.FeedString("\x1b[2J")
	second := term.String()
	if first != second {
		t.Errorf("expected idempotent erase, got %q then %q", first, second)
	}
}

func TestScrollRegionFullRangeEqualsReset(t *testing.T) {
	term := newTestTerminal(t, 10, 80, Callbacks{})
	term.FeedString("\x1b[1;10r")
	top, bottom := term.ScrollRegion()
	if top != 0 || bottom != 9 {
		t.Errorf("expected (1,rows) to equal full-screen reset (0,9), got (%d,%d)", top, bottom)
	}
}

func TestProtectedCellSurvivesErase(t *testing.T) {
	term := newTestTerminal(t, 3, 5, Callbacks{})
	term.FeedString("\x1b[8mP\x1b[0m")
	term.FeedString("\x1b[2J")

	if got := term.Cell(0, 0).Char; got != 'P' {
		t.Errorf("expected protected cell to survive CSI 2J, got %c", got)
	}
}

func TestScrollOffsetSnapsToZeroOnWrite(t *testing.T) {
	term := newTestTerminal(t, 3, 5, Callbacks{})
	term.FeedString("one\r\ntwo\r\nthree\r\nfour\r\n") // forces at least one line off the top
	if term.ScrollbackLen() == 0 {
		t.Fatal("setup: expected at least one scrollback entry")
	}

	term.SetScrollOffset(1)
	if term.ScrollOffset() != 1 {
		t.Fatalf("setup: expected offset 1, got %d", term.ScrollOffset())
	}
	term.FeedString("x")
	if term.ScrollOffset() != 0 {
		t.Errorf("expected scroll offset to snap to 0 after a write, got %d", term.ScrollOffset())
	}
}

func TestUnknownCSICallback(t *testing.T) {
	var gotFinal byte
	term := newTestTerminal(t, 3, 5, Callbacks{
		Unknown: func(final byte, params []int, private bool) { gotFinal = final },
	})
	term.FeedString("\x1b[5y") // 'y' has no meaning in the CSI dispatch table
	if gotFinal != 'y' {
		t.Errorf("expected Unknown callback for final 'y', got %q", gotFinal)
	}
}
