package ozterm

import "fmt"

// Modifier is a bitmask of keyboard modifiers held during a key event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// NamedKey is a closed enumeration of keys the encoder knows how to
// translate beyond a literal byte.
type NamedKey int

const (
	KeyNone NamedKey = iota
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyReturn
	KeyBackspace
	KeyEscape
	KeyTab
)

// modValue computes the CSI modifier parameter: 1 + shift(1) + alt(2) +
// ctrl(4).
func modValue(mods Modifier) int {
	v := 1
	if mods&ModShift != 0 {
		v += 1
	}
	if mods&ModAlt != 0 {
		v += 2
	}
	if mods&ModCtrl != 0 {
		v += 4
	}
	return v
}

// navCSI formats a navigation-key CSI sequence: "ESC [ <final>" with no
// parameters when unmodified and code==1, "ESC [ <code> <final>" when
// unmodified and code!=1, or "ESC [ <code> ; <mod> <final>" when modified.
func navCSI(code int, final byte, mods Modifier) []byte {
	mv := modValue(mods)
	if mv == 1 {
		if code == 1 {
			return []byte{0x1b, '[', final}
		}
		return []byte(fmt.Sprintf("\x1b[%d%c", code, final))
	}
	return []byte(fmt.Sprintf("\x1b[%d;%d%c", code, mv, final))
}

// EncodeKey translates a modifier mask and named key (or a literal byte
// when key is KeyNone) into the outbound byte sequence a host should
// write to the pty master. literal is only consulted when key == KeyNone.
func EncodeKey(key NamedKey, mods Modifier, literal byte) []byte {
	switch key {
	case KeyNone:
		if mods&ModCtrl != 0 && literal >= 0x20 && literal < 0x7F {
			return []byte{toUpper(literal) - 0x40}
		}
		return []byte{literal}
	case KeyReturn:
		return []byte{'\r'}
	case KeyBackspace:
		return []byte{0x7F}
	case KeyEscape:
		return []byte{0x1b}
	case KeyTab:
		return []byte{'\t'}
	case KeyHome:
		return navCSI(1, 'H', mods)
	case KeyEnd:
		return navCSI(1, 'F', mods)
	case KeyUp:
		return navCSI(1, 'A', mods)
	case KeyDown:
		return navCSI(1, 'B', mods)
	case KeyLeft:
		return navCSI(1, 'D', mods)
	case KeyRight:
		return navCSI(1, 'C', mods)
	case KeyPageUp:
		return navCSI(5, '~', mods)
	case KeyPageDown:
		return navCSI(6, '~', mods)
	case KeyInsert:
		return navCSI(2, '~', mods)
	case KeyDelete:
		return navCSI(3, '~', mods)
	case KeyF1, KeyF2, KeyF3, KeyF4:
		final := byte('P' + (key - KeyF1))
		if modValue(mods) == 1 {
			return []byte{0x1b, 'O', final}
		}
		return []byte(fmt.Sprintf("\x1b[1;%d%c", modValue(mods), final))
	case KeyF5:
		return navCSI(15, '~', mods)
	case KeyF6:
		return navCSI(17, '~', mods)
	case KeyF7:
		return navCSI(18, '~', mods)
	case KeyF8:
		return navCSI(19, '~', mods)
	case KeyF9:
		return navCSI(20, '~', mods)
	case KeyF10:
		return navCSI(21, '~', mods)
	case KeyF11:
		return navCSI(23, '~', mods)
	case KeyF12:
		return navCSI(24, '~', mods)
	}
	return nil
}

// SendKey encodes a key event with EncodeKey and delivers the resulting
// bytes through the WriteToMaster callback. A key that encodes to nothing
// produces no callback.
func (t *Terminal) SendKey(key NamedKey, mods Modifier, literal byte) {
	b := EncodeKey(key, mods, literal)
	if len(b) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.callbacks.writeToMaster(b)
}

// toUpper uppercases an ASCII letter byte; other bytes pass through.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
