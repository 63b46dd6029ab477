package record

import (
	"fmt"
	"math"

	"github.com/valyala/fastjson"
)

// Record is one parsed, read-only log record. The host owns the backing
// bytes; they must not be mutated while the Record is alive.
type Record struct {
	raw  []byte
	root *fastjson.Value

	// parser pins the arena the root points into.
	parser *fastjson.Parser
}

// Parse builds a Record from a single JSON document. The input is retained
// as the record's raw form.
func Parse(line []byte) (*Record, error) {
	p := &fastjson.Parser{}
	v, err := p.ParseBytes(line)
	if err != nil {
		return nil, fmt.Errorf("record: parse: %w", err)
	}
	return &Record{raw: line, root: v, parser: p}, nil
}

// Raw returns the record's original bytes.
func (r *Record) Raw() []byte { return r.raw }

// Root returns the root node of the record tree. The root is not always a
// map; NDJSON lines with array or scalar roots are valid records.
func (r *Record) Root() *fastjson.Value { return r.root }

// Export materializes the whole tree as maps, slices, and plain Go values.
// Used for expression-language evaluation; query paths should go through
// pathexpr instead of exporting.
func (r *Record) Export() any { return exportValue(r.root) }

func exportValue(v *fastjson.Value) any {
	if v == nil {
		return nil
	}
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil
		}
		out := make(map[string]any, obj.Len())
		obj.Visit(func(k []byte, cv *fastjson.Value) {
			out[string(k)] = exportValue(cv)
		})
		return out
	case fastjson.TypeArray:
		arr, err := v.Array()
		if err != nil {
			return nil
		}
		out := make([]any, 0, len(arr))
		for _, cv := range arr {
			out = append(out, exportValue(cv))
		}
		return out
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return i
		}
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}

// ScalarFromValue projects a leaf node onto the closed Scalar type.
// Containers, nulls, and nil report false.
func ScalarFromValue(v *fastjson.Value) (Scalar, bool) {
	if v == nil {
		return Scalar{}, false
	}
	switch v.Type() {
	case fastjson.TypeString:
		return Str(string(v.GetStringBytes())), true
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return Int(i), true
		}
		if u, err := v.Uint64(); err == nil && u > math.MaxInt64 {
			return Float(float64(u)), true
		}
		return Float(v.GetFloat64()), true
	case fastjson.TypeTrue:
		return Boolean(true), true
	case fastjson.TypeFalse:
		return Boolean(false), true
	default:
		return Scalar{}, false
	}
}
