package selector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/telophasehq/tangent/pkg/logview"
	"github.com/telophasehq/tangent/pkg/record"
)

// compiledPred is a predicate with its pattern/program compiled.
type compiledPred struct {
	pred Predicate
	re   *regexp.Regexp
	prog exprProgram
}

// Compiled is a selector ready for repeated evaluation. Compile once per
// probe; Matches many times per batch.
type Compiled struct {
	any  []compiledPred
	all  []compiledPred
	none []compiledPred
}

// Compile prepares a selector for evaluation. Regex and Expr predicates
// that fail to compile surface here, not at match time.
func Compile(sel Selector) (*Compiled, error) {
	c := &Compiled{}
	var err error
	if c.any, err = compileList(sel.Any); err != nil {
		return nil, err
	}
	if c.all, err = compileList(sel.All); err != nil {
		return nil, err
	}
	if c.none, err = compileList(sel.None); err != nil {
		return nil, err
	}
	return c, nil
}

// CompileAll compiles a probe's ordered selector list.
func CompileAll(sels []Selector) ([]*Compiled, error) {
	out := make([]*Compiled, 0, len(sels))
	for i, sel := range sels {
		c, err := Compile(sel)
		if err != nil {
			return nil, fmt.Errorf("selector %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func compileList(preds []Predicate) ([]compiledPred, error) {
	if len(preds) == 0 {
		return nil, nil
	}
	out := make([]compiledPred, 0, len(preds))
	for _, p := range preds {
		cp := compiledPred{pred: p}
		switch p.op {
		case opRegex:
			re, err := regexp.Compile(p.pattern)
			if err != nil {
				return nil, fmt.Errorf("compile pattern %q: %w", p.pattern, err)
			}
			cp.re = re
		case opExpr:
			prog, err := compileExpr(p.expr)
			if err != nil {
				return nil, fmt.Errorf("compile expr %q: %w", p.expr, err)
			}
			cp.prog = prog
		}
		out = append(out, cp)
	}
	return out, nil
}

// Matches evaluates the selector against one view: Any is vacuously
// satisfied when empty, otherwise at least one member must match; every
// All member must match; no None member may match.
func (c *Compiled) Matches(v *logview.View) bool {
	if len(c.any) > 0 {
		ok := false
		for i := range c.any {
			if c.any[i].eval(v) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for i := range c.all {
		if !c.all[i].eval(v) {
			return false
		}
	}
	for i := range c.none {
		if c.none[i].eval(v) {
			return false
		}
	}
	return true
}

// MatchAny reports whether at least one compiled selector matches the
// view. A mapper accepts a record iff its probe list matches this way; an
// empty list accepts nothing.
func MatchAny(cs []*Compiled, v *logview.View) bool {
	for _, c := range cs {
		if c.Matches(v) {
			return true
		}
	}
	return false
}

// eval reduces one predicate to a boolean. View errors (use after
// release) count as non-matches.
func (cp *compiledPred) eval(v *logview.View) bool {
	p := &cp.pred
	switch p.op {
	case opHas:
		ok, err := v.Has(p.path)
		return err == nil && ok

	case opEq:
		s, ok, err := v.Get(p.path)
		return err == nil && ok && s.Equal(p.scalar)

	case opPrefix:
		s, ok, err := v.Get(p.path)
		if err != nil || !ok || s.Kind() != record.KindStr {
			return false
		}
		return strings.HasPrefix(s.Str(), p.prefix)

	case opIn:
		s, ok, err := v.Get(p.path)
		if err != nil || !ok {
			return false
		}
		for _, member := range p.set {
			if s.Equal(member) {
				return true
			}
		}
		return false

	case opGt:
		s, ok, err := v.Get(p.path)
		if err != nil || !ok {
			return false
		}
		f, ok := s.AsFloat()
		return ok && f > p.threshold

	case opRegex:
		s, ok, err := v.Get(p.path)
		if err != nil || !ok || s.Kind() != record.KindStr {
			return false
		}
		return cp.re.MatchString(s.Str())

	case opExpr:
		return cp.prog.eval(v)

	default:
		return false
	}
}
