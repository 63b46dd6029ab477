package pathexpr

import (
	"strings"

	"github.com/valyala/fastjson"
)

// segment is one dot-separated step: a key lookup followed by zero or more
// array index lookups.
type segment struct {
	key  string
	idxs []int
}

// Path is a parsed path expression. The zero Path resolves to absent.
type Path struct {
	raw   string
	segs  []segment
	root  bool
	valid bool
}

// Parse parses a dot/bracket path expression. Malformed expressions still
// return a Path; they simply resolve to absent.
func Parse(path string) Path {
	if path == "" {
		return Path{root: true, valid: true}
	}
	p := Path{raw: path, valid: true}
	for _, part := range strings.Split(path, ".") {
		seg, ok := parseSegment(part)
		if !ok {
			return Path{raw: path}
		}
		p.segs = append(p.segs, seg)
	}
	return p
}

func parseSegment(part string) (segment, bool) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		return segment{key: part}, true
	}
	seg := segment{key: part[:open]}
	rest := part[open:]
	for rest != "" {
		if rest[0] != '[' {
			return segment{}, false
		}
		close := strings.IndexByte(rest, ']')
		if close < 0 {
			return segment{}, false
		}
		idx, ok := parseIndex(rest[1:close])
		if !ok {
			return segment{}, false
		}
		seg.idxs = append(seg.idxs, idx)
		rest = rest[close+1:]
	}
	return seg, true
}

// parseIndex accepts non-negative base-10 integers only.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n < 0 {
			return 0, false
		}
	}
	return n, true
}

// String returns the original expression.
func (p Path) String() string { return p.raw }

// IsRoot reports whether the path addresses the record root.
func (p Path) IsRoot() bool { return p.root }

// Resolve walks the record tree from root. It returns nil (absent) at the
// first mismatch: missing key, out-of-range index, or indexing a
// non-container. Resolution is deterministic for a given tree.
func (p Path) Resolve(root *fastjson.Value) *fastjson.Value {
	if root == nil || !p.valid {
		return nil
	}
	if p.root {
		return root
	}
	// A dotted raw path may name a literal top-level key; try that before
	// walking segments so records with dotted keys stay addressable.
	if obj, err := root.Object(); err == nil {
		if v := obj.Get(p.raw); v != nil {
			return v
		}
	}
	v := root
	for _, seg := range p.segs {
		obj, err := v.Object()
		if err != nil {
			return nil
		}
		v = obj.Get(seg.key)
		if v == nil {
			return nil
		}
		for _, idx := range seg.idxs {
			arr, err := v.Array()
			if err != nil || idx >= len(arr) {
				return nil
			}
			v = arr[idx]
		}
	}
	return v
}

// Resolve is the one-shot form: parse then resolve.
func Resolve(root *fastjson.Value, path string) *fastjson.Value {
	return Parse(path).Resolve(root)
}
