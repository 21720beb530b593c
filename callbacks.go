package ozterm

// Callbacks is the host capability bundle a host installs to observe
// and respond to terminal activity. Every field is optional; a nil
// field is simply not invoked.
type Callbacks struct {
	// WriteToMaster delivers a reply or key-encoded payload destined for
	// the pty master.
	WriteToMaster func(data []byte)

	// Refresh hints that a broad redraw is warranted (e.g. after a full
	// reset, DECALN, or screen swap).
	Refresh func()

	// SetCell hints that a single cell changed.
	SetCell func(row, col int, cell Cell)

	// MoveCursor hints that the cursor moved.
	MoveCursor func(oldRow, oldCol, newRow, newCol int)

	// Unknown reports an unrecognized CSI sequence, at most once per
	// occurrence: its final byte, or 'h'/'l' for an unrecognized private
	// mode. Optional diagnostic only, never required for correctness.
	Unknown func(final byte, params []int, private bool)

	// UserData is an opaque pointer for host use; ozterm never reads it.
	UserData any
}

func (c *Callbacks) writeToMaster(data []byte) {
	if c != nil && c.WriteToMaster != nil {
		c.WriteToMaster(data)
	}
}

func (c *Callbacks) refresh() {
	if c != nil && c.Refresh != nil {
		c.Refresh()
	}
}

func (c *Callbacks) setCell(row, col int, cell Cell) {
	if c != nil && c.SetCell != nil {
		c.SetCell(row, col, cell)
	}
}

func (c *Callbacks) moveCursor(oldRow, oldCol, newRow, newCol int) {
	if c != nil && c.MoveCursor != nil {
		c.MoveCursor(oldRow, oldCol, newRow, newCol)
	}
}

func (c *Callbacks) unknown(final byte, params []int, private bool) {
	if c != nil && c.Unknown != nil {
		c.Unknown(final, params, private)
	}
}
