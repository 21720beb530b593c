package ozterm

// Screen is one grid buffer: a rows×cols array of cells, its own cursor,
// and a sticky protected-write attribute. A Terminal owns two Screens,
// primary and alternate, and exactly one is active.
type Screen struct {
	rows, cols int
	cells      [][]Cell

	cursorRow, cursorCol int

	// attrProtected is the sticky write-time attribute set by SGR 8 and
	// cleared by SGR 0.
	attrProtected bool

	// hasDirty mirrors the teacher's Buffer.hasDirty: a coarse flag so
	// DirtyCells callers can skip the scan entirely when nothing changed.
	hasDirty bool
}

// markDirty flags one cell as changed since the last ClearAllDirty, a
// finer-grained alternative to SetCell for hosts that want per-cell
// redraw hints.
func (s *Screen) markDirty(row, col int) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.cells[row][col].Flags |= CellDirty
	s.hasDirty = true
}

// markRowDirty flags every cell of row as changed.
func (s *Screen) markRowDirty(row int) {
	if row < 0 || row >= s.rows {
		return
	}
	for c := range s.cells[row] {
		s.cells[row][c].Flags |= CellDirty
	}
	s.hasDirty = true
}

// DirtyCells returns the positions of every cell changed since the last
// ClearAllDirty call.
func (s *Screen) DirtyCells() []Position {
	if !s.hasDirty {
		return nil
	}
	var out []Position
	for r := range s.cells {
		for c := range s.cells[r] {
			if s.cells[r][c].Flags&CellDirty != 0 {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// ClearAllDirty resets every cell's dirty flag.
func (s *Screen) ClearAllDirty() {
	if !s.hasDirty {
		return
	}
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c].Flags &^= CellDirty
		}
	}
	s.hasDirty = false
}

// newScreen allocates a rows×cols screen, every cell initialized to a
// space in the given default colors.
func newScreen(rows, cols int, fg, bg uint8) *Screen {
	s := &Screen{rows: rows, cols: cols}
	s.cells = make([][]Cell, rows)
	for r := range s.cells {
		row := make([]Cell, cols)
		for c := range row {
			row[c] = blankCell(fg, bg)
		}
		s.cells[r] = row
	}
	return s
}

// cell returns a pointer to the cell at (row, col), or nil out of bounds.
func (s *Screen) cell(row, col int) *Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return nil
	}
	return &s.cells[row][col]
}

// clear resets every cell to a space in the given default colors and
// resets the cursor to (0,0), as done by ESC c (full reset).
func (s *Screen) clear(fg, bg uint8) {
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c] = blankCell(fg, bg)
		}
		s.markRowDirty(r)
	}
	s.cursorRow, s.cursorCol = 0, 0
}

// fillWithE fills every cell with 'E' in the default colors, unprotected,
// for the DECALN screen-alignment test.
func (s *Screen) fillWithE(fg, bg uint8) {
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c] = Cell{Char: 'E', Fg: fg, Bg: bg}
		}
		s.markRowDirty(r)
	}
}

// eraseRange clears columns [startCol, endCol) of row to blanks, skipping
// protected cells in place.
func (s *Screen) eraseRange(row, startCol, endCol int, fg, bg uint8) {
	if row < 0 || row >= s.rows {
		return
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > s.cols {
		endCol = s.cols
	}
	for c := startCol; c < endCol; c++ {
		if s.cells[row][c].Protected() {
			continue
		}
		s.cells[row][c] = blankCell(fg, bg)
		s.markDirty(row, c)
	}
}

// eraseRows clears rows [startRow, endRow) entirely, honoring protected
// cells.
func (s *Screen) eraseRows(startRow, endRow int, fg, bg uint8) {
	if startRow < 0 {
		startRow = 0
	}
	if endRow > s.rows {
		endRow = s.rows
	}
	for r := startRow; r < endRow; r++ {
		s.eraseRange(r, 0, s.cols, fg, bg)
	}
}

// --- Protected-aware horizontal shifts ---
//
// A destination cell that is protected is never overwritten. When
// shifting, protected source cells are skipped: the nearest
// non-protected source in the shift direction is used instead; if none
// remains, the hole is filled with a blank.

// insertBlanks inserts n blank cells at (row, col), shifting the
// remainder of the row right. Protected destinations keep their content;
// protected sources are skipped in favor of the next eligible source.
func (s *Screen) insertBlanks(row, col, n int, fg, bg uint8) {
	if row < 0 || row >= s.rows || n <= 0 {
		return
	}
	if col < 0 {
		col = 0
	}
	if col >= s.cols {
		return
	}
	if n > s.cols-col {
		n = s.cols - col
	}

	line := s.cells[row]
	result := make([]Cell, len(line))
	copy(result, line)

	// src walks leftward supplying cells for destinations down to
	// col+n, while destinations in [col, col+n) become blanks.
	src := s.cols - 1 - n
	for dst := s.cols - 1; dst >= col+n; dst-- {
		if line[dst].Protected() {
			// Destination keeps its own (protected) content.
			continue
		}
		for src >= col && line[src].Protected() {
			src--
		}
		if src < col {
			result[dst] = blankCell(fg, bg)
		} else {
			result[dst] = line[src]
			src--
		}
	}
	for c := col; c < col+n; c++ {
		if !line[c].Protected() {
			result[c] = blankCell(fg, bg)
		}
	}

	s.cells[row] = result
	s.markRowDirty(row)
}

// deleteChars removes n characters at (row, col), shifting the remainder
// of the row left. Symmetric to insertBlanks.
func (s *Screen) deleteChars(row, col, n int, fg, bg uint8) {
	if row < 0 || row >= s.rows || n <= 0 {
		return
	}
	if col < 0 {
		col = 0
	}
	if col >= s.cols {
		return
	}
	if n > s.cols-col {
		n = s.cols - col
	}

	line := s.cells[row]
	result := make([]Cell, len(line))
	copy(result, line)

	src := col + n
	for dst := col; dst < s.cols-n; dst++ {
		if line[dst].Protected() {
			continue
		}
		for src < s.cols && line[src].Protected() {
			src++
		}
		if src >= s.cols {
			result[dst] = blankCell(fg, bg)
		} else {
			result[dst] = line[src]
			src++
		}
	}
	for c := s.cols - n; c < s.cols; c++ {
		if !line[c].Protected() {
			result[c] = blankCell(fg, bg)
		}
	}

	s.cells[row] = result
	s.markRowDirty(row)
}

// --- Vertical shifts within [top, bottom] (inclusive) ---
//
// These move whole rows and do not consult the protected flag: a
// protected cell moves with its row and is cleared or evicted with it.

// scrollUp shifts rows [top, bottom] up by n, clearing the bottom n rows.
// evict, if non-nil, is called with each row vacated from the top of the
// region before it is overwritten, used by the main screen to populate
// scrollback.
func (s *Screen) scrollUp(top, bottom, n int, fg, bg uint8, evict func([]Cell)) {
	if top < 0 {
		top = 0
	}
	if bottom >= s.rows {
		bottom = s.rows - 1
	}
	if top > bottom || n <= 0 {
		return
	}
	span := bottom - top + 1
	if n > span {
		n = span
	}

	if evict != nil {
		for i := 0; i < n; i++ {
			row := make([]Cell, s.cols)
			copy(row, s.cells[top+i])
			evict(row)
		}
	}

	for r := top; r <= bottom-n; r++ {
		s.cells[r] = s.cells[r+n]
	}
	for r := bottom - n + 1; r <= bottom; r++ {
		row := make([]Cell, s.cols)
		for c := range row {
			row[c] = blankCell(fg, bg)
		}
		s.cells[r] = row
	}
	for r := top; r <= bottom; r++ {
		s.markRowDirty(r)
	}
}

// scrollDown shifts rows [top, bottom] down by n, clearing the top n
// rows. Never touches scrollback.
func (s *Screen) scrollDown(top, bottom, n int, fg, bg uint8) {
	if top < 0 {
		top = 0
	}
	if bottom >= s.rows {
		bottom = s.rows - 1
	}
	if top > bottom || n <= 0 {
		return
	}
	span := bottom - top + 1
	if n > span {
		n = span
	}

	for r := bottom; r >= top+n; r-- {
		s.cells[r] = s.cells[r-n]
	}
	for r := top; r < top+n; r++ {
		row := make([]Cell, s.cols)
		for c := range row {
			row[c] = blankCell(fg, bg)
		}
		s.cells[r] = row
	}
	for r := top; r <= bottom; r++ {
		s.markRowDirty(r)
	}
}

// insertLines inserts n blank lines at row within [row, bottom],
// shifting existing lines down.
func (s *Screen) insertLines(row, bottom, n int, fg, bg uint8) {
	s.scrollDown(row, bottom, n, fg, bg)
}

// deleteLines removes n lines at row within [row, bottom], shifting
// remaining lines up. Never touches scrollback; only the
// newline-triggered scrollUp variant evicts to scrollback.
func (s *Screen) deleteLines(row, bottom, n int, fg, bg uint8) {
	s.scrollUp(row, bottom, n, fg, bg, nil)
}

// lineText returns the row's content with trailing spaces trimmed.
func (s *Screen) lineText(row int) string {
	if row < 0 || row >= s.rows {
		return ""
	}
	last := -1
	for c := s.cols - 1; c >= 0; c-- {
		if s.cells[row][c].Char != ' ' && s.cells[row][c].Char != 0 {
			last = c
			break
		}
	}
	if last < 0 {
		return ""
	}
	buf := make([]byte, 0, last+1)
	for c := 0; c <= last; c++ {
		ch := s.cells[row][c].Char
		if ch == 0 {
			ch = ' '
		}
		buf = append(buf, ch)
	}
	return string(buf)
}
