package ozterm

import (
	"fmt"
	"sync"
)

const (
	// DefaultRows and DefaultCols are the dimensions New uses when
	// WithSize is not given.
	DefaultRows = 25
	DefaultCols = 80

	// TabWidth is the fixed tab stop interval.
	TabWidth = 8

	// paramBufCap and oscBufCap are the scratch-buffer caps for CSI
	// parameters and OSC payloads; overflow is silently truncated.
	paramBufCap = 31
	oscBufCap   = 63
)

// Terminal is the whole engine: fixed dimensions, two screens (exactly
// one active), a global saved-cursor pair, a scroll region, a scrollback
// ring populated only from the main screen, and the parser's per-sequence
// scratch state, all held as fields so multiple Terminals coexist
// independently.
type Terminal struct {
	mu sync.RWMutex

	rows, cols int

	screenMain *Screen
	screenAlt  *Screen
	active     *Screen
	altActive  bool

	savedCursorRow, savedCursorCol int

	defaultFg, defaultBg uint8
	tmplFg, tmplBg       uint8 // current SGR write colors

	scrollTop, scrollBottom int // inclusive row range

	sb           *scrollback
	scrollOffset int
	scrollbackCap int

	callbacks Callbacks

	selection Selection

	// Parser scratch state persists across Feed calls so a partial
	// sequence can span buffer boundaries.
	state     parseState
	paramBuf  []byte
	oscBuf    []byte
	isPrivate bool
	csiFirst  bool

	// CustomData is an opaque pointer for host use.
	CustomData any
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithSize sets the terminal dimensions. Both must be positive.
func WithSize(rows, cols int) Option {
	return func(t *Terminal) {
		t.rows = rows
		t.cols = cols
	}
}

// WithCallbacks installs the host capability bundle.
func WithCallbacks(cb Callbacks) Option {
	return func(t *Terminal) {
		t.callbacks = cb
	}
}

// WithScrollbackCapacity overrides the default scrollback ring size
// (see ScrollbackCapacity).
func WithScrollbackCapacity(n int) Option {
	return func(t *Terminal) {
		t.scrollbackCap = n
	}
}

// New creates a Terminal with fixed dimensions: immutable for a given
// instance, with no runtime resize. Returns an error if rows or cols is
// not positive, the one construction failure mode.
func New(opts ...Option) (*Terminal, error) {
	t := &Terminal{
		rows:          DefaultRows,
		cols:          DefaultCols,
		scrollbackCap: ScrollbackCapacity,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.rows <= 0 || t.cols <= 0 {
		return nil, fmt.Errorf("ozterm: invalid size %dx%d", t.rows, t.cols)
	}

	t.defaultFg, t.defaultBg = DefaultFg, DefaultBg
	t.tmplFg, t.tmplBg = DefaultFg, DefaultBg

	t.screenMain = newScreen(t.rows, t.cols, t.defaultFg, t.defaultBg)
	t.screenAlt = newScreen(t.rows, t.cols, t.defaultFg, t.defaultBg)
	t.active = t.screenMain

	t.scrollTop = 0
	t.scrollBottom = t.rows - 1

	t.sb = newScrollback(t.scrollbackCap, t.cols)

	t.paramBuf = make([]byte, 0, paramBufCap)
	t.oscBuf = make([]byte, 0, oscBufCap)

	return t, nil
}

// Rows returns the terminal height.
func (t *Terminal) Rows() int { return t.rows }

// Cols returns the terminal width.
func (t *Terminal) Cols() int { return t.cols }

// Cell returns a copy of the cell at (row, col) in the active screen, or
// the zero Cell if out of bounds.
func (t *Terminal) Cell(row, col int) Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c := t.active.cell(row, col)
	if c == nil {
		return Cell{}
	}
	return *c
}

// CursorPos returns the active screen's cursor position.
func (t *Terminal) CursorPos() (row, col int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.cursorRow, t.active.cursorCol
}

// IsAlternateScreen reports whether the alternate buffer is active.
func (t *Terminal) IsAlternateScreen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.altActive
}

// ScrollRegion returns the current DECSTBM bounds (inclusive, 0-based).
func (t *Terminal) ScrollRegion() (top, bottom int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scrollTop, t.scrollBottom
}

// ScrollbackLen returns the number of lines stored in scrollback.
func (t *Terminal) ScrollbackLen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sb.count
}

// ScrollbackLine returns scrollback entry i (0 = oldest), or nil out of
// range.
func (t *Terminal) ScrollbackLine(i int) []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sb.line(i)
}

// ScrollOffset returns the current scrollback view offset (0 = live).
func (t *Terminal) ScrollOffset() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scrollOffset
}

// SetScrollOffset sets the scrollback view offset, clamped to
// [0, scrollback_count]. It does not affect parsing; any subsequent
// write snaps the offset back to 0.
func (t *Terminal) SetScrollOffset(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scrollOffset = clampInt(n, 0, t.sb.count)
}

// ViewRow returns the cells for visible row y, accounting for the
// current scrollback offset.
func (t *Terminal) ViewRow(y int) []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.viewRowLocked(y)
}

func (t *Terminal) viewRowLocked(y int) []Cell {
	if t.scrollOffset == 0 {
		row := make([]Cell, t.cols)
		for c := 0; c < t.cols; c++ {
			if cell := t.active.cell(y, c); cell != nil {
				row[c] = *cell
			}
		}
		return row
	}

	i := t.sb.count - t.scrollOffset + y
	if i < t.sb.count {
		if line := t.sb.line(i); line != nil {
			row := make([]Cell, len(line))
			copy(row, line)
			return row
		}
	}
	row := make([]Cell, t.cols)
	for c := 0; c < t.cols; c++ {
		if cell := t.active.cell(y-t.scrollOffset, c); cell != nil {
			row[c] = *cell
		}
	}
	return row
}

// LineText returns the active screen's row content, trailing spaces
// trimmed.
func (t *Terminal) LineText(row int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.lineText(row)
}

// String renders all non-empty rows of the active screen, newline
// separated, trailing empty rows omitted.
func (t *Terminal) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lastNonEmpty := -1
	lines := make([]string, t.rows)
	for r := 0; r < t.rows; r++ {
		lines[r] = t.active.lineText(r)
		if lines[r] != "" {
			lastNonEmpty = r
		}
	}
	if lastNonEmpty < 0 {
		return ""
	}
	out := lines[0]
	for _, l := range lines[1 : lastNonEmpty+1] {
		out += "\n" + l
	}
	return out
}

// Feed processes raw bytes, advancing the parser state machine and
// mutating the active screen. Implements io.Writer.
func (t *Terminal) Feed(data []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(data) > 0 {
		t.scrollOffset = 0
	}
	for _, b := range data {
		t.step(b)
	}
	return len(data), nil
}

// Write is an alias for Feed, satisfying io.Writer.
func (t *Terminal) Write(data []byte) (int, error) { return t.Feed(data) }

// FeedString is a convenience wrapper around Feed.
func (t *Terminal) FeedString(s string) (int, error) { return t.Feed([]byte(s)) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
