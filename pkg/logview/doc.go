// Package logview exposes the scoped, read-only query handle a mapper
// holds over one log record while processing it.
//
// # Overview
//
// A View is bound to exactly one record for the duration of a processing
// step. Every accessor is total over record content: absence and type
// mismatch are soft-misses that report a missing result, never an error.
// The only error a View produces is ErrReleased, returned by every query
// after Close. Close is idempotent and must be called exactly once per
// processing step on every exit path:
//
//	v := logview.Open(rec)
//	defer v.Close()
//	if s, ok, _ := v.Get("source.name"); ok {
//	    _ = s.Str()
//	}
//
// Views are not safe for concurrent use and must not be shared across
// goroutines or retained across processing steps.
package logview
