package logview

import (
	"errors"

	"github.com/valyala/fastjson"

	"github.com/telophasehq/tangent/pkg/pathexpr"
	"github.com/telophasehq/tangent/pkg/record"
)

// ErrReleased is returned by every query made after Close. It marks a
// programmer error, not record content.
var ErrReleased = errors.New("logview: use after release")

// View is a scoped read-only handle over one record.
type View struct {
	rec      *record.Record
	released bool
}

// Open binds a View to a record for one processing step.
func Open(rec *record.Record) *View {
	return &View{rec: rec}
}

// Close releases the handle. Further queries fail with ErrReleased.
// Calling Close again is a no-op, so it is safe on failure paths.
func (v *View) Close() error {
	v.released = true
	return nil
}

// Raw returns the record's original bytes.
func (v *View) Raw() ([]byte, error) {
	if v.released {
		return nil, ErrReleased
	}
	return v.rec.Raw(), nil
}

// Export materializes the record tree as plain Go values. Intended for the
// expression predicate evaluator; field access should use the path
// accessors below.
func (v *View) Export() (any, error) {
	if v.released {
		return nil, ErrReleased
	}
	return v.rec.Export(), nil
}

// Has reports whether the path resolves to any node at all.
func (v *View) Has(path string) (bool, error) {
	if v.released {
		return false, ErrReleased
	}
	return pathexpr.Resolve(v.rec.Root(), path) != nil, nil
}

// Get returns the scalar at path. Containers, nulls, and absent paths
// report ok=false.
func (v *View) Get(path string) (record.Scalar, bool, error) {
	if v.released {
		return record.Scalar{}, false, ErrReleased
	}
	s, ok := record.ScalarFromValue(pathexpr.Resolve(v.rec.Root(), path))
	return s, ok, nil
}

// Len returns the element count of a list node or the byte length of a
// string node; anything else reports ok=false.
func (v *View) Len(path string) (int, bool, error) {
	if v.released {
		return 0, false, ErrReleased
	}
	node := pathexpr.Resolve(v.rec.Root(), path)
	if node == nil {
		return 0, false, nil
	}
	if arr, err := node.Array(); err == nil {
		return len(arr), true, nil
	}
	if sb, err := node.StringBytes(); err == nil {
		return len(sb), true, nil
	}
	return 0, false, nil
}

// GetList returns the scalar elements of the list at path in original
// order. Non-scalar elements are dropped. Non-list nodes report ok=false.
func (v *View) GetList(path string) ([]record.Scalar, bool, error) {
	if v.released {
		return nil, false, ErrReleased
	}
	node := pathexpr.Resolve(v.rec.Root(), path)
	if node == nil {
		return nil, false, nil
	}
	arr, err := node.Array()
	if err != nil {
		return nil, false, nil
	}
	out := make([]record.Scalar, 0, len(arr))
	for _, el := range arr {
		if s, ok := record.ScalarFromValue(el); ok {
			out = append(out, s)
		}
	}
	return out, true, nil
}

// GetMap returns the scalar-valued entries of the map at path in the
// record's key order. Non-scalar entries are dropped. Non-map nodes report
// ok=false.
func (v *View) GetMap(path string) ([]record.MapEntry, bool, error) {
	if v.released {
		return nil, false, ErrReleased
	}
	node := pathexpr.Resolve(v.rec.Root(), path)
	if node == nil {
		return nil, false, nil
	}
	obj, err := node.Object()
	if err != nil {
		return nil, false, nil
	}
	out := make([]record.MapEntry, 0, obj.Len())
	obj.Visit(func(k []byte, el *fastjson.Value) {
		if s, ok := record.ScalarFromValue(el); ok {
			out = append(out, record.MapEntry{Key: string(k), Value: s})
		}
	})
	return out, true, nil
}

// Keys returns the key order of the map at path. Absent paths and non-map
// nodes both yield an empty slice.
func (v *View) Keys(path string) ([]string, error) {
	if v.released {
		return nil, ErrReleased
	}
	node := pathexpr.Resolve(v.rec.Root(), path)
	if node == nil {
		return nil, nil
	}
	obj, err := node.Object()
	if err != nil {
		return nil, nil
	}
	out := make([]string, 0, obj.Len())
	obj.Visit(func(k []byte, _ *fastjson.Value) {
		out = append(out, string(k))
	})
	return out, nil
}
