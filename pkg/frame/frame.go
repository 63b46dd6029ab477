package frame

import (
	"errors"
	"fmt"

	"github.com/telophasehq/tangent/pkg/record"
)

// Index addresses a Value inside its Frame's arena.
type Index uint32

// Kind discriminates the active Value variant.
type Kind uint8

// Value variants. KindNull is the zero value.
const (
	KindNull Kind = iota
	KindString
	KindS64
	KindF64
	KindBool
	KindBlob
	KindList
	KindMap
)

// MapEntry is one (key, child index) pair of a Map value, in insertion
// order.
type MapEntry struct {
	Key string
	Val Index
}

// Value is one arena slot. Exactly one variant is active, selected by
// Kind; List and Map reference children by index only.
type Value struct {
	Kind Kind
	Str  string
	S64  int64
	F64  float64
	Bool bool
	Blob []byte
	List []Index
	Map  []MapEntry
}

// Field is a named root into the arena.
type Field struct {
	Name string
	Val  Index
}

// Frame is the completed value graph: an arena and its named roots.
// Frames are immutable after Build; ownership passes to the caller.
type Frame struct {
	Arena  []Value
	Fields []Field
}

// ErrIndexRange reports a child or field index that does not reference an
// already-pushed value.
var ErrIndexRange = errors.New("frame: value index out of range")

// Builder accumulates a Frame bottom-up: children are pushed before the
// List/Map value that references them. Builders are single-use and not
// safe for concurrent use.
type Builder struct {
	arena  []Value
	fields []Field
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Len returns the number of values pushed so far.
func (b *Builder) Len() int { return len(b.arena) }

// PushValue appends v to the arena and returns its index. List and Map
// children must already be in the arena.
func (b *Builder) PushValue(v Value) (Index, error) {
	switch v.Kind {
	case KindList:
		for _, child := range v.List {
			if int(child) >= len(b.arena) {
				return 0, ErrIndexRange
			}
		}
	case KindMap:
		for _, e := range v.Map {
			if int(e.Val) >= len(b.arena) {
				return 0, ErrIndexRange
			}
		}
	}
	b.arena = append(b.arena, v)
	return Index(len(b.arena) - 1), nil
}

func (b *Builder) push(v Value) Index {
	b.arena = append(b.arena, v)
	return Index(len(b.arena) - 1)
}

// PushScalar maps a Scalar 1:1 onto the corresponding Value variant and
// pushes it. The absent zero Scalar pushes Null.
func (b *Builder) PushScalar(s record.Scalar) Index {
	switch s.Kind() {
	case record.KindStr:
		return b.PushString(s.Str())
	case record.KindInt:
		return b.PushInt(s.Int())
	case record.KindFloat:
		return b.PushFloat(s.Float())
	case record.KindBool:
		return b.PushBool(s.Bool())
	case record.KindBytes:
		return b.PushBlob(s.Blob())
	default:
		return b.PushNull()
	}
}

// PushNull pushes a Null value.
func (b *Builder) PushNull() Index { return b.push(Value{Kind: KindNull}) }

// PushString pushes a String value.
func (b *Builder) PushString(s string) Index {
	return b.push(Value{Kind: KindString, Str: s})
}

// PushInt pushes an S64 value.
func (b *Builder) PushInt(i int64) Index {
	return b.push(Value{Kind: KindS64, S64: i})
}

// PushFloat pushes an F64 value.
func (b *Builder) PushFloat(f float64) Index {
	return b.push(Value{Kind: KindF64, F64: f})
}

// PushBool pushes a Bool value.
func (b *Builder) PushBool(v bool) Index {
	return b.push(Value{Kind: KindBool, Bool: v})
}

// PushBlob pushes a Blob value. The slice is not copied.
func (b *Builder) PushBlob(p []byte) Index {
	return b.push(Value{Kind: KindBlob, Blob: p})
}

// PushList pushes a List referencing already-pushed children.
func (b *Builder) PushList(children ...Index) (Index, error) {
	return b.PushValue(Value{Kind: KindList, List: children})
}

// PushMap pushes a Map referencing already-pushed children.
func (b *Builder) PushMap(entries ...MapEntry) (Index, error) {
	return b.PushValue(Value{Kind: KindMap, Map: entries})
}

// AddField attaches a named root. The index must reference an
// already-pushed value; the same index may root any number of fields.
func (b *Builder) AddField(name string, idx Index) error {
	if int(idx) >= len(b.arena) {
		return ErrIndexRange
	}
	b.fields = append(b.fields, Field{Name: name, Val: idx})
	return nil
}

// Build hands the accumulated Frame to the caller. The Builder must not
// be used afterwards.
func (b *Builder) Build() Frame {
	f := Frame{Arena: b.arena, Fields: b.fields}
	b.arena = nil
	b.fields = nil
	return f
}

// Validate checks the DAG invariant over a finished Frame: every index
// referenced by the value at arena position i is strictly less than i, and
// every field index is inside the arena. Frames built through Builder
// satisfy this by construction; Validate guards frames arriving from
// other processes.
func (f Frame) Validate() error {
	for i, v := range f.Arena {
		switch v.Kind {
		case KindList:
			for _, child := range v.List {
				if int(child) >= i {
					return fmt.Errorf("frame: arena[%d] references %d: %w", i, child, ErrIndexRange)
				}
			}
		case KindMap:
			for _, e := range v.Map {
				if int(e.Val) >= i {
					return fmt.Errorf("frame: arena[%d] references %d: %w", i, e.Val, ErrIndexRange)
				}
			}
		}
	}
	for _, fld := range f.Fields {
		if int(fld.Val) >= len(f.Arena) {
			return fmt.Errorf("frame: field %q references %d: %w", fld.Name, fld.Val, ErrIndexRange)
		}
	}
	return nil
}
