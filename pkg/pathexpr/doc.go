// Package pathexpr parses and resolves dot/bracket path expressions
// against a record tree, e.g. "detail.findings[0].CompanyName".
//
// Resolution never errors: a missing key, an index out of range, an index
// into a non-array, or a malformed expression all resolve to absent (a nil
// node). The empty path resolves to the record root. Paths are pure data
// and may be parsed once and re-evaluated across many records.
package pathexpr
