package ozterm

// CellFlags is a bitmask of cell attributes.
type CellFlags uint8

const (
	// CellProtected marks a cell as protected (set by SGR 8), surviving
	// erase and insert/delete-character operations until explicitly
	// overwritten. Line-based shifts move it with its row.
	CellProtected CellFlags = 1 << iota

	// CellDirty marks a cell as changed since the last ClearDirty call,
	// for hosts that want finer-grained redraw hints than SetCell alone
	// (see Terminal.DirtyCells).
	CellDirty
)

// Cell is one grid position: a displayable byte plus its palette-indexed
// colors and protection state. The core never resolves colors to pixels,
// Fg and Bg are palette indices the host interprets.
type Cell struct {
	Char  byte
	Fg    uint8
	Bg    uint8
	Flags CellFlags
}

// blankCell returns a cell initialized to a space with the given default
// colors and no protection.
func blankCell(fg, bg uint8) Cell {
	return Cell{Char: ' ', Fg: fg, Bg: bg}
}

// Protected reports whether the cell survives erase and
// insert/delete-character operations.
func (c Cell) Protected() bool {
	return c.Flags&CellProtected != 0
}
