package frame

import (
	"encoding/base64"
	"math"
	"strconv"

	"github.com/valyala/fastjson"
)

// AppendJSON encodes the Frame as one JSON object, fields in order, each
// rooting its value, and appends it to dst. The arena is materialized in
// a single pass in index order, which the DAG invariant makes sufficient.
// Blob values encode as base64; non-finite floats encode as null, since
// JSON cannot carry them.
func (f Frame) AppendJSON(dst []byte) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return dst, err
	}

	var a fastjson.Arena
	vals := make([]*fastjson.Value, len(f.Arena))
	for i, v := range f.Arena {
		switch v.Kind {
		case KindNull:
			vals[i] = a.NewNull()
		case KindString:
			vals[i] = a.NewString(v.Str)
		case KindS64:
			vals[i] = a.NewNumberString(strconv.FormatInt(v.S64, 10))
		case KindF64:
			if math.IsNaN(v.F64) || math.IsInf(v.F64, 0) {
				vals[i] = a.NewNull()
			} else {
				vals[i] = a.NewNumberFloat64(v.F64)
			}
		case KindBool:
			if v.Bool {
				vals[i] = a.NewTrue()
			} else {
				vals[i] = a.NewFalse()
			}
		case KindBlob:
			vals[i] = a.NewString(base64.StdEncoding.EncodeToString(v.Blob))
		case KindList:
			arr := a.NewArray()
			for j, child := range v.List {
				arr.SetArrayItem(j, vals[child])
			}
			vals[i] = arr
		case KindMap:
			obj := a.NewObject()
			for _, e := range v.Map {
				obj.Set(e.Key, vals[e.Val])
			}
			vals[i] = obj
		default:
			vals[i] = a.NewNull()
		}
	}

	root := a.NewObject()
	for _, fld := range f.Fields {
		root.Set(fld.Name, vals[fld.Val])
	}
	return root.MarshalTo(dst), nil
}

// AppendNDJSON encodes frames one per line, newline-terminated. This is
// the conventional sink format for frame-flavored mappers.
func AppendNDJSON(dst []byte, frames []Frame) ([]byte, error) {
	var err error
	for _, f := range frames {
		dst, err = f.AppendJSON(dst)
		if err != nil {
			return dst, err
		}
		dst = append(dst, '\n')
	}
	return dst, nil
}
