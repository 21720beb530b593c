package ozterm

import (
	"bytes"
	"testing"
)

func TestEncodeKeyLiteral(t *testing.T) {
	if got := EncodeKey(KeyNone, 0, 'a'); !bytes.Equal(got, []byte{'a'}) {
		t.Errorf("expected literal passthrough, got %q", got)
	}
}

func TestEncodeKeyCtrlLetter(t *testing.T) {
	got := EncodeKey(KeyNone, ModCtrl, 'a')
	if !bytes.Equal(got, []byte{0x01}) {
		t.Errorf("expected CTRL-A (0x01), got %v", got)
	}
}

func TestEncodeKeyNamed(t *testing.T) {
	cases := []struct {
		key  NamedKey
		want byte
	}{
		{KeyReturn, '\r'},
		{KeyBackspace, 0x7F},
		{KeyEscape, 0x1b},
		{KeyTab, '\t'},
	}
	for _, c := range cases {
		got := EncodeKey(c.key, 0, 0)
		if !bytes.Equal(got, []byte{c.want}) {
			t.Errorf("key %d: expected %q, got %q", c.key, []byte{c.want}, got)
		}
	}
}

func TestEncodeKeyUpUnmodified(t *testing.T) {
	got := EncodeKey(KeyUp, 0, 0)
	if !bytes.Equal(got, []byte("\x1b[A")) {
		t.Errorf("expected \\x1b[A, got %q", got)
	}
}

func TestEncodeKeyUpCtrlShift(t *testing.T) {
	got := EncodeKey(KeyUp, ModCtrl|ModShift, 0)
	if !bytes.Equal(got, []byte("\x1b[1;6A")) {
		t.Errorf("expected \\x1b[1;6A, got %q", got)
	}
}

func TestEncodeKeyF1UnmodifiedUsesSS3(t *testing.T) {
	got := EncodeKey(KeyF1, 0, 0)
	if !bytes.Equal(got, []byte("\x1bOP")) {
		t.Errorf("expected SS3 ESC O P, got %q", got)
	}
}

func TestEncodeKeyF1ModifiedUsesCSI(t *testing.T) {
	got := EncodeKey(KeyF1, ModShift, 0)
	if !bytes.Equal(got, []byte("\x1b[1;2P")) {
		t.Errorf("expected CSI 1;2P, got %q", got)
	}
}

func TestEncodeKeyPageUpDown(t *testing.T) {
	if got := EncodeKey(KeyPageUp, 0, 0); !bytes.Equal(got, []byte("\x1b[5~")) {
		t.Errorf("expected \\x1b[5~, got %q", got)
	}
	if got := EncodeKey(KeyPageDown, 0, 0); !bytes.Equal(got, []byte("\x1b[6~")) {
		t.Errorf("expected \\x1b[6~, got %q", got)
	}
}
