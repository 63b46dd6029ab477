package record

import (
	"bytes"
	"strconv"
)

// Kind discriminates the active Scalar variant.
type Kind uint8

// Scalar variants. KindNone is the zero value and marks an absent scalar.
const (
	KindNone Kind = iota
	KindStr
	KindInt
	KindFloat
	KindBool
	KindBytes
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindStr:
		return "str"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindBytes:
		return "bytes"
	default:
		return "none"
	}
}

// Scalar is the closed leaf value type: exactly one variant is active,
// selected by Kind. The zero Scalar has KindNone and matches nothing.
type Scalar struct {
	kind Kind
	str  string
	i64  int64
	f64  float64
	b    bool
	blob []byte
}

// Str builds a string Scalar.
func Str(s string) Scalar { return Scalar{kind: KindStr, str: s} }

// Int builds a 64-bit signed integer Scalar.
func Int(i int64) Scalar { return Scalar{kind: KindInt, i64: i} }

// Float builds a 64-bit float Scalar.
func Float(f float64) Scalar { return Scalar{kind: KindFloat, f64: f} }

// Boolean builds a bool Scalar.
func Boolean(b bool) Scalar { return Scalar{kind: KindBool, b: b} }

// Bytes builds a bytes Scalar. The slice is not copied.
func Bytes(b []byte) Scalar { return Scalar{kind: KindBytes, blob: b} }

// Kind returns the active variant.
func (s Scalar) Kind() Kind { return s.kind }

// IsZero reports whether the Scalar is the absent zero value.
func (s Scalar) IsZero() bool { return s.kind == KindNone }

// Str returns the string payload; zero value when not a string.
func (s Scalar) Str() string { return s.str }

// Int returns the integer payload; zero when not an int.
func (s Scalar) Int() int64 { return s.i64 }

// Float returns the float payload; zero when not a float.
func (s Scalar) Float() float64 { return s.f64 }

// Bool returns the bool payload; false when not a bool.
func (s Scalar) Bool() bool { return s.b }

// Blob returns the bytes payload; nil when not bytes.
func (s Scalar) Blob() []byte { return s.blob }

// AsFloat coerces Int and Float variants to float64. Other variants
// report false.
func (s Scalar) AsFloat() (float64, bool) {
	switch s.kind {
	case KindInt:
		return float64(s.i64), true
	case KindFloat:
		return s.f64, true
	default:
		return 0, false
	}
}

// Equal reports strict same-variant equality. There is no Int/Float
// cross-coercion; Bytes compares by content.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindStr:
		return s.str == o.str
	case KindInt:
		return s.i64 == o.i64
	case KindFloat:
		return s.f64 == o.f64
	case KindBool:
		return s.b == o.b
	case KindBytes:
		return bytes.Equal(s.blob, o.blob)
	default:
		return false
	}
}

// String renders the scalar for logs and test failures.
func (s Scalar) String() string {
	switch s.kind {
	case KindStr:
		return strconv.Quote(s.str)
	case KindInt:
		return strconv.FormatInt(s.i64, 10)
	case KindFloat:
		return strconv.FormatFloat(s.f64, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(s.b)
	case KindBytes:
		return "bytes(" + strconv.Itoa(len(s.blob)) + ")"
	default:
		return "none"
	}
}

// MapEntry is one scalar-valued entry of a map node, in record order.
type MapEntry struct {
	Key   string
	Value Scalar
}
