package record

import "testing"

func TestScalarEqualStrict(t *testing.T) {
	cases := []struct {
		name string
		a, b Scalar
		want bool
	}{
		{"str eq", Str("a"), Str("a"), true},
		{"str ne", Str("a"), Str("b"), false},
		{"int eq", Int(3), Int(3), true},
		{"int ne", Int(3), Int(4), false},
		{"float eq", Float(1.5), Float(1.5), true},
		{"bool eq", Boolean(true), Boolean(true), true},
		{"bytes eq", Bytes([]byte{1, 2}), Bytes([]byte{1, 2}), true},
		{"bytes ne", Bytes([]byte{1, 2}), Bytes([]byte{1, 3}), false},
		{"no int float coercion", Int(3), Float(3.0), false},
		{"no str int coercion", Str("3"), Int(3), false},
		{"zero never equal", Scalar{}, Scalar{}, false},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Fatalf("%s: Equal(%v, %v) = %v, want %v", c.name, c.a, c.b, got, c.want)
		}
	}
}

func TestScalarAsFloat(t *testing.T) {
	if f, ok := Int(3).AsFloat(); !ok || f != 3.0 {
		t.Fatalf("int coercion: %v %v", f, ok)
	}
	if f, ok := Float(1.5).AsFloat(); !ok || f != 1.5 {
		t.Fatalf("float coercion: %v %v", f, ok)
	}
	if _, ok := Str("1.5").AsFloat(); ok {
		t.Fatalf("string should not coerce")
	}
	if _, ok := Boolean(true).AsFloat(); ok {
		t.Fatalf("bool should not coerce")
	}
}

func TestScalarZero(t *testing.T) {
	var s Scalar
	if !s.IsZero() || s.Kind() != KindNone {
		t.Fatalf("zero scalar: %v", s)
	}
	if Str("").IsZero() {
		t.Fatalf("empty string scalar is not absent")
	}
}
