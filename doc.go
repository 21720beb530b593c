// Package ozterm is a headless VT-compatible terminal emulator core: it
// consumes the raw byte stream a pseudo-terminal slave produces and
// maintains an in-memory grid of what a terminal would display, and it
// translates keyboard events into the byte sequences a shell expects back.
//
// It has no pty, no font rasterizer, no window: those are host
// concerns. ozterm owns exactly three things: the byte-level parser, the
// dual-buffer screen model with scrollback, and the key-to-bytes encoder.
//
// # Quick Start
//
//	term, err := ozterm.New(ozterm.WithSize(24, 80))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	term.FeedString("Hello\r\nWorld")
//	fmt.Println(term.String()) // "Hello\nWorld"
//
// # Architecture
//
//   - [Terminal]: owns both screens, the scrollback ring, and parser state
//   - [Screen]: one rows×cols grid, its own cursor and protected-write attribute
//   - [Cell]: one grid position, a byte plus palette-indexed colors
//   - [EncodeKey]: the inverse direction, named key + modifiers → outbound bytes
//
// # Feeding Bytes
//
// Terminal implements [io.Writer]. Feed it a command's stdout directly:
//
//	cmd := exec.Command("ls", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//
//	for row := 0; row < term.Rows(); row++ {
//	    fmt.Println(term.LineText(row))
//	}
//
// # Dual Buffers
//
// Terminal holds a main and an alternate [Screen]; exactly one is active.
// Full-screen applications (vim, less, htop) swap to the alternate buffer
// via CSI ?1049h and restore the main one via CSI ?1049l:
//
//	if term.IsAlternateScreen() {
//	    // a full-screen app currently owns the display
//	}
//
// Only the main screen feeds the scrollback ring; the alternate screen
// never does.
//
// # Colors
//
// Cell.Fg and Cell.Bg are palette indices, not resolved pixels: ozterm
// never decides what an index looks like on screen. Indices 0-15 are the
// standard and bright ANSI colors ([ColorBlack] through [ColorBrightWhite]);
// SGR 38;5;n / 48;5;n address the full 0-255 extended palette. Resolving
// an index to a color is the host's job.
//
// # Protected Cells
//
// SGR 8 marks subsequently written cells protected; SGR 0 clears the
// sticky attribute. Protected cells survive erase (J/K) and insert/delete
// char: those operations leave them in place. Line-based operations
// (scroll-region up/down, insert/delete line) move whole rows, so a
// protected cell travels with its row and is cleared or scrolled out like
// any other cell.
//
// # Scrollback
//
// Lines evicted off the top of the main screen are retained in a
// fixed-capacity ring (see [WithScrollbackCapacity]):
//
//	for i := 0; i < term.ScrollbackLen(); i++ {
//	    line := term.ScrollbackLine(i) // []Cell, oldest first
//	}
//
// [Terminal.SetScrollOffset] moves the live view back into scrollback;
// any subsequent write snaps it back to zero.
//
// # Host Callbacks
//
// [Callbacks] is the capability bundle a host installs via
// [WithCallbacks], every field optional, invoked synchronously during
// the call that triggers it ([Terminal.Feed] or [Terminal.SendKey]):
//
//	term, _ := ozterm.New(ozterm.WithCallbacks(ozterm.Callbacks{
//	    WriteToMaster: func(b []byte) { ptyMaster.Write(b) },
//	    SetCell: func(row, col int, c ozterm.Cell) { dirty.Mark(row, col) },
//	}))
//
// # Key Encoding
//
// [EncodeKey] is the parser's inverse: given a modifier mask and a named
// key (or a literal byte), it produces the bytes a shell expects on its
// input:
//
//	b := ozterm.EncodeKey(ozterm.KeyUp, ozterm.ModCtrl|ozterm.ModShift, 0)
//	// b == []byte("\x1b[1;6A")
//
// [Terminal.SendKey] encodes the same way and hands the bytes to the
// WriteToMaster callback.
//
// # Thread Safety
//
// Terminal serializes its own state with an internal mutex, but the
// intended usage is single-owner-thread: one goroutine drives
// Feed/key-encoding/view calls at a time. The lock is a safety net against
// accidental concurrent use, not a concurrency model to design against.
//
// # Scope
//
// ozterm displays one byte per cell (ASCII, no wide/combining runes), does
// not resize buffers at runtime, and treats OSC payloads, mouse reporting,
// and inline graphics (sixel/Kitty) as inert, acknowledged where the
// grammar requires it, never interpreted.
package ozterm
