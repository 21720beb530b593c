package ozterm

import "strconv"

// This file holds the semantic handlers the parser invokes once it has
// recognized a control character, an ESC shortcut, or a complete CSI
// sequence: one method per action, mutating the active Screen and firing
// host callbacks.

// moveCursorTo repositions the active screen's cursor and fires
// MoveCursor if the position actually changed.
func (t *Terminal) moveCursorTo(row, col int) {
	oldRow, oldCol := t.active.cursorRow, t.active.cursorCol
	t.active.cursorRow, t.active.cursorCol = row, col
	if oldRow != row || oldCol != col {
		t.callbacks.moveCursor(oldRow, oldCol, row, col)
	}
}

// setCursorClamped moves the cursor to (row, col), clamped to the
// screen's bounds. CSI-driven motion never leaves the cursor in the
// pending-wrap column; only putChar does that.
func (t *Terminal) setCursorClamped(row, col int) {
	t.moveCursorTo(clampInt(row, 0, t.rows-1), clampInt(col, 0, t.cols-1))
}

// writeChar writes b at the cursor under the current write attributes and
// advances the column, which may land exactly on cols (pending wrap).
// Column advance alone does not fire MoveCursor, only SetCell.
func (t *Terminal) writeChar(b byte) {
	row, col := t.active.cursorRow, t.active.cursorCol
	var flags CellFlags
	if t.active.attrProtected {
		flags = CellProtected
	}
	cell := Cell{Char: b, Fg: t.tmplFg, Bg: t.tmplBg, Flags: flags}
	if c := t.active.cell(row, col); c != nil {
		*c = cell
	}
	t.active.markDirty(row, col)
	t.active.cursorCol = col + 1
	t.callbacks.setCell(row, col, cell)
}

// wrapIfPending performs the pending-wrap transition: column to 0, row
// advances (scrolling at scrollBottom, evicting to scrollback on the
// main screen) exactly as a newline would.
func (t *Terminal) wrapIfPending() {
	if t.active.cursorCol < t.cols {
		return
	}
	t.active.cursorCol = 0
	if t.active.cursorRow == t.scrollBottom {
		t.newlineScrollUp(1)
	} else {
		t.moveCursorTo(t.active.cursorRow+1, 0)
	}
}

// putChar is the target of every control character and printable byte
// the parser's NORMAL state recognizes.
func (t *Terminal) putChar(b byte) {
	switch b {
	case '\n':
		if t.active.cursorRow == t.scrollBottom {
			t.newlineScrollUp(1)
		} else {
			t.moveCursorTo(t.active.cursorRow+1, t.active.cursorCol)
		}
	case '\r':
		t.moveCursorTo(t.active.cursorRow, 0)
	case '\b':
		if t.active.cursorCol > 0 {
			t.moveCursorTo(t.active.cursorRow, t.active.cursorCol-1)
		}
	case '\t':
		target := ((t.active.cursorCol / TabWidth) + 1) * TabWidth
		if target > t.cols {
			target = t.cols
		}
		for t.active.cursorCol < target {
			t.writeChar(' ')
		}
	default:
		t.wrapIfPending()
		t.writeChar(b)
	}
}

// newlineScrollUp scrolls the active screen's scroll region up by n,
// evicting to scrollback only when the active screen is the main one.
func (t *Terminal) newlineScrollUp(n int) {
	var evict func([]Cell)
	if t.active == t.screenMain {
		evict = func(row []Cell) { t.sb.push(row) }
	}
	t.active.scrollUp(t.scrollTop, t.scrollBottom, n, t.defaultFg, t.defaultBg, evict)
	t.callbacks.refresh()
}

// csiScrollUp is CSI S: scroll region up with no scrollback eviction,
// regardless of which screen is active.
func (t *Terminal) csiScrollUp(n int) {
	t.active.scrollUp(t.scrollTop, t.scrollBottom, n, t.defaultFg, t.defaultBg, nil)
	t.callbacks.refresh()
}

// csiScrollDown is CSI T.
func (t *Terminal) csiScrollDown(n int) {
	t.active.scrollDown(t.scrollTop, t.scrollBottom, n, t.defaultFg, t.defaultBg)
	t.callbacks.refresh()
}

// saveCursor implements ESC 7. The saved-cursor pair is global, not
// per-screen, a deliberate divergence from xterm.
func (t *Terminal) saveCursor() {
	t.savedCursorRow, t.savedCursorCol = t.active.cursorRow, t.active.cursorCol
}

// restoreCursor implements ESC 8.
func (t *Terminal) restoreCursor() {
	t.setCursorClamped(t.savedCursorRow, t.savedCursorCol)
}

// fullReset implements ESC c: clear the active screen, cursor to (0,0),
// write attributes back to default.
func (t *Terminal) fullReset() {
	t.active.clear(t.defaultFg, t.defaultBg)
	t.active.attrProtected = false
	t.tmplFg, t.tmplBg = t.defaultFg, t.defaultBg
	t.callbacks.refresh()
}

// indexDown implements ESC D (IND): moves the cursor down without
// scrolling even at the bottom of the scroll region, a deliberate
// deviation from VT100.
func (t *Terminal) indexDown() {
	t.setCursorClamped(t.active.cursorRow+1, t.active.cursorCol)
}

// nextLine implements ESC E: cursor to row+1, column 0.
func (t *Terminal) nextLine() {
	t.setCursorClamped(t.active.cursorRow+1, 0)
}

// reverseIndex implements ESC M: scroll the region down by one.
func (t *Terminal) reverseIndex() {
	t.active.scrollDown(t.scrollTop, t.scrollBottom, 1, t.defaultFg, t.defaultBg)
	t.callbacks.refresh()
}

// decaln implements HASH 8 (DECALN): fill the active screen with 'E' in
// the default colors, cursor to (0,0).
func (t *Terminal) decaln() {
	t.active.fillWithE(t.defaultFg, t.defaultBg)
	t.moveCursorTo(0, 0)
	t.callbacks.refresh()
}

// dispatchCSI is the CSI dispatch table: it maps a final byte to the
// handler for that sequence.
func (t *Terminal) dispatchCSI(final byte, params []int, private bool) {
	switch final {
	case 'A':
		t.setCursorClamped(t.active.cursorRow-param(params, 0, 1), t.active.cursorCol)
	case 'B':
		t.setCursorClamped(t.active.cursorRow+param(params, 0, 1), t.active.cursorCol)
	case 'C':
		t.setCursorClamped(t.active.cursorRow, t.active.cursorCol+param(params, 0, 1))
	case 'D':
		t.setCursorClamped(t.active.cursorRow, t.active.cursorCol-param(params, 0, 1))
	case 'H', 'f':
		t.setCursorClamped(param(params, 0, 1)-1, param(params, 1, 1)-1)
	case 'd':
		t.setCursorClamped(param(params, 0, 1)-1, t.active.cursorCol)
	case 'G':
		t.setCursorClamped(t.active.cursorRow, param(params, 0, 1)-1)
	case 'J':
		t.eraseDisplay(rawParam(params, 0, 0))
	case 'K':
		t.eraseLine(rawParam(params, 0, 0))
	case '@':
		t.active.insertBlanks(t.active.cursorRow, t.active.cursorCol, param(params, 0, 1), t.tmplFg, t.tmplBg)
	case 'P':
		t.active.deleteChars(t.active.cursorRow, t.active.cursorCol, param(params, 0, 1), t.tmplFg, t.tmplBg)
	case 'L':
		t.active.insertLines(t.active.cursorRow, t.scrollBottom, param(params, 0, 1), t.tmplFg, t.tmplBg)
		t.callbacks.refresh()
	case 'M':
		t.active.deleteLines(t.active.cursorRow, t.scrollBottom, param(params, 0, 1), t.tmplFg, t.tmplBg)
		t.callbacks.refresh()
	case 'S':
		t.csiScrollUp(param(params, 0, 1))
	case 'T':
		t.csiScrollDown(param(params, 0, 1))
	case 'r':
		t.setScrollRegion(params)
	case 'm':
		applySGR(&t.tmplFg, &t.tmplBg, &t.active.attrProtected, params)
	case 'n':
		if rawParam(params, 0, 0) == 6 {
			t.reportCursorPos()
		}
	case 'c':
		t.reportDA(private, params)
	case 'h':
		t.setMode(private, params, true)
	case 'l':
		t.setMode(private, params, false)
	case 't':
		t.windowOps(params)
	default:
		t.callbacks.unknown(final, params, private)
	}
}

// eraseDisplay implements CSI J.
func (t *Terminal) eraseDisplay(mode int) {
	row, col := t.active.cursorRow, t.active.cursorCol
	switch mode {
	case 0:
		t.active.eraseRange(row, col, t.cols, t.defaultFg, t.defaultBg)
		t.active.eraseRows(row+1, t.rows, t.defaultFg, t.defaultBg)
	case 1:
		t.active.eraseRows(0, row, t.defaultFg, t.defaultBg)
		t.active.eraseRange(row, 0, col+1, t.defaultFg, t.defaultBg)
	case 2:
		t.active.eraseRows(0, t.rows, t.defaultFg, t.defaultBg)
	}
	t.callbacks.refresh()
}

// eraseLine implements CSI K.
func (t *Terminal) eraseLine(mode int) {
	row, col := t.active.cursorRow, t.active.cursorCol
	switch mode {
	case 0:
		t.active.eraseRange(row, col, t.cols, t.defaultFg, t.defaultBg)
	case 1:
		t.active.eraseRange(row, 0, col+1, t.defaultFg, t.defaultBg)
	case 2:
		t.active.eraseRange(row, 0, t.cols, t.defaultFg, t.defaultBg)
	}
	t.callbacks.refresh()
}

// setScrollRegion implements CSI r: out-of-range bounds reset to the full
// screen rather than erroring.
func (t *Terminal) setScrollRegion(params []int) {
	top := param(params, 0, 1) - 1
	bot := param(params, 1, t.rows) - 1
	if top >= 0 && bot < t.rows && top < bot {
		t.scrollTop, t.scrollBottom = top, bot
	} else {
		t.scrollTop, t.scrollBottom = 0, t.rows-1
	}
}

// reportCursorPos implements CSI 6n (DSR): reply with the 1-based cursor
// position.
func (t *Terminal) reportCursorPos() {
	reply := "\x1b[" + strconv.Itoa(t.active.cursorRow+1) + ";" + strconv.Itoa(t.active.cursorCol+1) + "R"
	t.callbacks.writeToMaster([]byte(reply))
}

// reportDA implements CSI c (DA, primary and secondary).
func (t *Terminal) reportDA(private bool, params []int) {
	if private {
		t.callbacks.writeToMaster([]byte("\x1b[>0;0;0c"))
		return
	}
	if rawParam(params, 0, 0) == 0 {
		t.callbacks.writeToMaster([]byte("\x1b[?1;0c"))
	}
}

// setMode implements CSI h/l for the private DEC modes. Modes
// 25/12/7/2004 (cursor show/blink, autowrap, bracketed paste) are
// accepted silently, since the core has no rendering or input layer of
// its own to apply them to.
func (t *Terminal) setMode(private bool, params []int, enable bool) {
	if !private {
		return
	}
	switch rawParam(params, 0, 0) {
	case 1049:
		if enable {
			t.swapToAlt()
		} else {
			t.swapToMain()
		}
	case 25, 12, 7, 2004:
		// Accepted silently.
	default:
		t.callbacks.unknown(byteOf(enable), params, private)
	}
}

func byteOf(enable bool) byte {
	if enable {
		return 'h'
	}
	return 'l'
}

// swapToAlt implements ESC [ ? 1049 h.
func (t *Terminal) swapToAlt() {
	t.altActive = true
	t.active = t.screenAlt
	t.active.clear(t.defaultFg, t.defaultBg)
	t.callbacks.refresh()
}

// swapToMain implements ESC [ ? 1049 l.
func (t *Terminal) swapToMain() {
	t.altActive = false
	t.active = t.screenMain
	t.callbacks.refresh()
}

// windowOps implements CSI t: only the "report window state" query is
// answered; resize/iconify requests are ignored since the core has no
// window of its own.
func (t *Terminal) windowOps(params []int) {
	if rawParam(params, 0, 0) == 11 {
		t.callbacks.writeToMaster([]byte("\x1b[1t"))
	}
}
