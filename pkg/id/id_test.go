package id

import (
	"testing"
)

func stubNow(t *testing.T, now *int64) {
	t.Helper()
	prev := NowMs
	NowMs = func() int64 { return *now }
	t.Cleanup(func() { NowMs = prev })
}

func TestNextMonotonic(t *testing.T) {
	g := NewGenerator()
	prev := g.Next()
	for i := 0; i < 1000; i++ {
		next := g.Next()
		if next.Compare(prev) <= 0 {
			t.Fatalf("id %d not increasing: %s then %s", i, prev, next)
		}
		prev = next
	}
}

func TestNextSameMillisecondUsesSequence(t *testing.T) {
	now := int64(1_700_000_000_000)
	stubNow(t, &now)

	g := NewGenerator()
	a := g.Next()
	b := g.Next()
	if a.Compare(b) != -1 {
		t.Fatalf("same-ms ids not ordered: %s vs %s", a, b)
	}
	if a.Bytes()[7] == b.Bytes()[7] && a.String()[:16] != b.String()[:16] {
		t.Fatalf("timestamp half changed within one ms")
	}
}

func TestNextClockBackwards(t *testing.T) {
	now := int64(2_000)
	stubNow(t, &now)

	g := NewGenerator()
	a := g.Next()
	now = 1_000
	b := g.Next()
	if b.Compare(a) <= 0 {
		t.Fatalf("backwards clock broke ordering: %s then %s", a, b)
	}
}

func TestStringAndBytes(t *testing.T) {
	id := makeID(0x0102030405060708, 0x0a0b0c0d0e0f1011)
	want := "01020304050607080a0b0c0d0e0f1011"
	if id.String() != want {
		t.Fatalf("string: %s", id.String())
	}
	b := id.Bytes()
	if len(b) != 16 || b[0] != 0x01 || b[15] != 0x11 {
		t.Fatalf("bytes: %v", b)
	}
	// Bytes returns a copy.
	b[0] = 0xff
	if id.Bytes()[0] != 0x01 {
		t.Fatalf("bytes aliases the id")
	}
}

func TestCompare(t *testing.T) {
	a := makeID(1, 0)
	b := makeID(1, 1)
	c := makeID(2, 0)
	if a.Compare(a) != 0 {
		t.Fatalf("self compare")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Fatalf("sequence ordering")
	}
	if b.Compare(c) != -1 {
		t.Fatalf("timestamp dominates sequence")
	}
}
