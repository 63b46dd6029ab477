package selector

import (
	"github.com/telophasehq/tangent/pkg/record"
)

type op uint8

const (
	opHas op = iota
	opEq
	opPrefix
	opIn
	opGt
	opRegex
	opExpr
)

func (o op) String() string {
	switch o {
	case opHas:
		return "has"
	case opEq:
		return "eq"
	case opPrefix:
		return "prefix"
	case opIn:
		return "in"
	case opGt:
		return "gt"
	case opRegex:
		return "regex"
	case opExpr:
		return "expr"
	default:
		return "unknown"
	}
}

// Predicate is a single boolean test. Build one with the constructors
// below; the zero Predicate matches nothing.
type Predicate struct {
	op        op
	path      string
	scalar    record.Scalar
	set       []record.Scalar
	prefix    string
	threshold float64
	pattern   string
	expr      string
}

// Has matches when the path resolves to any node.
func Has(path string) Predicate {
	return Predicate{op: opHas, path: path}
}

// Eq matches when the path resolves to a scalar of the same variant as s
// with an equal value. There is no cross-variant coercion.
func Eq(path string, s record.Scalar) Predicate {
	return Predicate{op: opEq, path: path, scalar: s}
}

// Prefix matches when the path resolves to a string scalar whose bytes
// start with pre.
func Prefix(path, pre string) Predicate {
	return Predicate{op: opPrefix, path: path, prefix: pre}
}

// In matches when Eq holds against at least one member of set.
func In(path string, set ...record.Scalar) Predicate {
	return Predicate{op: opIn, path: path, set: set}
}

// Gt matches when the path resolves to an int or float scalar strictly
// greater than threshold after float coercion.
func Gt(path string, threshold float64) Predicate {
	return Predicate{op: opGt, path: path, threshold: threshold}
}

// Regex matches when the path resolves to a string scalar and pattern
// finds an unanchored match in it. The pattern is compiled at selector
// compile time.
func Regex(path, pattern string) Predicate {
	return Predicate{op: opRegex, path: path, pattern: pattern}
}

// Expr matches when the CEL expression evaluates to true against the
// record. The expression sees two variables: record (the exported tree)
// and text (the raw line). Compiled at selector compile time.
func Expr(expr string) Predicate {
	return Predicate{op: opExpr, expr: expr}
}

// Selector is an any/all/none combination of predicates. Selectors are
// pure, stateless, and reusable across records.
type Selector struct {
	Any  []Predicate
	All  []Predicate
	None []Predicate
}

// AcceptAll returns the selector that matches every record.
func AcceptAll() Selector { return Selector{} }
