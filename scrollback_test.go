package ozterm

import "testing"

func TestScrollbackPushAndOrder(t *testing.T) {
	sb := newScrollback(3, 2)
	sb.push([]Cell{{Char: 'a'}, {Char: 'a'}})
	sb.push([]Cell{{Char: 'b'}, {Char: 'b'}})

	if sb.count != 2 {
		t.Fatalf("expected count 2, got %d", sb.count)
	}
	if sb.line(0)[0].Char != 'a' || sb.line(1)[0].Char != 'b' {
		t.Errorf("unexpected order: line0=%c line1=%c", sb.line(0)[0].Char, sb.line(1)[0].Char)
	}
}

func TestScrollbackSaturatesAtCapacity(t *testing.T) {
	sb := newScrollback(2, 1)
	sb.push([]Cell{{Char: 'a'}})
	sb.push([]Cell{{Char: 'b'}})
	sb.push([]Cell{{Char: 'c'}})

	if sb.count != 2 {
		t.Fatalf("expected count to saturate at 2, got %d", sb.count)
	}
	if sb.line(0)[0].Char != 'b' || sb.line(1)[0].Char != 'c' {
		t.Errorf("expected oldest entry evicted, got %c,%c", sb.line(0)[0].Char, sb.line(1)[0].Char)
	}
}

func TestScrollbackLineOutOfRange(t *testing.T) {
	sb := newScrollback(2, 1)
	if sb.line(0) != nil {
		t.Error("expected nil for empty ring")
	}
	sb.push([]Cell{{Char: 'a'}})
	if sb.line(-1) != nil || sb.line(5) != nil {
		t.Error("expected nil for out-of-range indices")
	}
}
