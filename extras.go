package ozterm

import "strings"

// This file holds dirty-cell tracking, text search, and a read-only
// selection query: each a thin view over grid state the core already
// maintains, reduced to this module's byte-grid model (no Unicode, no
// styled segments).

// HasDirty reports whether any cell of the active screen changed since
// the last ClearDirty call.
func (t *Terminal) HasDirty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.hasDirty
}

// DirtyCells returns the positions of every active-screen cell changed
// since the last ClearDirty call.
func (t *Terminal) DirtyCells() []Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.DirtyCells()
}

// ClearDirty resets the active screen's dirty tracking.
func (t *Terminal) ClearDirty() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.ClearAllDirty()
}

// Selection is a read-only text range over the active screen, inclusive
// of both endpoints.
type Selection struct {
	Start, End Position
	active     bool
}

// SetSelection establishes a selection range, normalizing start/end so
// Start never sorts after End.
func (t *Terminal) SetSelection(start, end Position) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if start.Row > end.Row || (start.Row == end.Row && start.Col > end.Col) {
		start, end = end, start
	}
	t.selection = Selection{Start: start, End: end, active: true}
}

// ClearSelection removes any active selection.
func (t *Terminal) ClearSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selection = Selection{}
}

// IsSelected reports whether (row, col) falls within the active
// selection.
func (t *Terminal) IsSelected(row, col int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isSelectedLocked(row, col)
}

func (t *Terminal) isSelectedLocked(row, col int) bool {
	sel := t.selection
	if !sel.active {
		return false
	}
	if row < sel.Start.Row || row > sel.End.Row {
		return false
	}
	if row == sel.Start.Row && col < sel.Start.Col {
		return false
	}
	if row == sel.End.Row && col > sel.End.Col {
		return false
	}
	return true
}

// GetSelectedText renders the active selection as newline-joined text,
// trailing spaces trimmed per row (like LineText), or "" if no selection
// is active.
func (t *Terminal) GetSelectedText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	sel := t.selection
	if !sel.active {
		return ""
	}
	var b strings.Builder
	for r := sel.Start.Row; r <= sel.End.Row; r++ {
		startCol, endCol := 0, t.cols
		if r == sel.Start.Row {
			startCol = sel.Start.Col
		}
		if r == sel.End.Row {
			endCol = sel.End.Col + 1
		}
		if r > sel.Start.Row {
			b.WriteByte('\n')
		}
		b.WriteString(t.rowSliceText(r, startCol, endCol))
	}
	return b.String()
}

func (t *Terminal) rowSliceText(row, startCol, endCol int) string {
	if startCol < 0 {
		startCol = 0
	}
	if endCol > t.cols {
		endCol = t.cols
	}
	buf := make([]byte, 0, endCol-startCol)
	for c := startCol; c < endCol; c++ {
		ch := byte(' ')
		if cell := t.active.cell(row, c); cell != nil && cell.Char != 0 {
			ch = cell.Char
		}
		buf = append(buf, ch)
	}
	return strings.TrimRight(string(buf), " ")
}

// Search returns the positions where substring s starts within the
// active screen's visible rows.
func (t *Terminal) Search(s string) []Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if s == "" {
		return nil
	}
	var out []Position
	for r := 0; r < t.rows; r++ {
		line := t.active.lineText(r)
		for col := 0; ; {
			i := strings.Index(line[col:], s)
			if i < 0 {
				break
			}
			out = append(out, Position{Row: r, Col: col + i})
			col += i + 1
			if col > len(line) {
				break
			}
		}
	}
	return out
}

// SearchScrollback returns the positions where substring s starts within
// retained scrollback, with Row as a negative offset: -1 is the newest
// scrollback line, -2 the one before it, and so on.
func (t *Terminal) SearchScrollback(s string) []Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if s == "" {
		return nil
	}
	var out []Position
	for i := 0; i < t.sb.count; i++ {
		row := t.sb.line(i)
		line := cellsToText(row)
		for col := 0; ; {
			idx := strings.Index(line[col:], s)
			if idx < 0 {
				break
			}
			out = append(out, Position{Row: -(t.sb.count - i), Col: col + idx})
			col += idx + 1
			if col > len(line) {
				break
			}
		}
	}
	return out
}

func cellsToText(row []Cell) string {
	buf := make([]byte, len(row))
	for i, c := range row {
		if c.Char == 0 {
			buf[i] = ' '
		} else {
			buf[i] = c.Char
		}
	}
	return strings.TrimRight(string(buf), " ")
}
