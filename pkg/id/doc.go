// Package id generates compact, lexicographically sortable identifiers.
//
// Tangent tags each mapper batch invocation with an ID so that log lines
// and discarded-batch reports from the same invocation correlate. IDs are
// 16 bytes: a millisecond timestamp followed by a per-process sequence,
// so sorting IDs sorts invocations by time.
package id
