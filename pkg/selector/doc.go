// Package selector implements the routing language mappers use to claim
// records: single-path predicates combined by any/all/none selectors.
//
// # Overview
//
// A Predicate is one boolean test over one path of a record. Evaluation is
// total and side-effect-free: absence and type mismatch are false, never
// errors. A Selector combines predicate lists: at least one of Any (when
// non-empty) must hit, every one of All, and none of None. A selector with
// all three lists empty matches every record.
//
// Selectors are compiled once, at probe time, and reused across records:
//
//	sel := selector.Selector{
//	    All: []selector.Predicate{selector.Eq("source.name", record.Str("myservice"))},
//	}
//	c, err := selector.Compile(sel)
//	if err != nil { /* bad regex or expression */ }
//	matched := c.Matches(view)
//
// Beyond the six structural predicate kinds, Expr predicates carry a CEL
// expression evaluated against the whole record.
package selector
