// Package record holds the in-memory form of a single semi-structured log
// record and the closed Scalar leaf type shared across Tangent's query and
// encode surfaces.
//
// # Overview
//
// A Record wraps one parsed JSON document (NDJSON line or equivalent). The
// tree is read-only for its whole lifetime: nested objects preserve key
// order, arrays preserve element order, and leaves reduce to the five
// Scalar variants (string, int64, float64, bool, bytes). Containers and
// nulls are not Scalars; accessors that project to Scalar drop them.
//
// Example:
//
//	rec, err := record.Parse([]byte(`{"msg":"boot","seen":3}`))
//	if err != nil { /* handle */ }
//	s, ok := record.ScalarFromValue(rec.Root().Get("msg"))
//	_ = ok // true, s.Str() == "boot"
package record
