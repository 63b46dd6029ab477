package selector

import (
	"github.com/google/cel-go/cel"
)

// exprProgram wraps a compiled CEL program evaluated per record. The
// expression sees the exported record tree as `record` and the raw line
// as `text`.
type exprProgram struct {
	prog cel.Program
}

func compileExpr(expr string) (exprProgram, error) {
	env, err := cel.NewEnv(
		cel.Variable("record", cel.DynType),
		cel.Variable("text", cel.StringType),
	)
	if err != nil {
		return exprProgram{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return exprProgram{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return exprProgram{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return exprProgram{}, err
	}
	return exprProgram{prog: prog}, nil
}

// eval runs the program against one view. Evaluation errors and non-bool
// results count as non-matches.
func (p exprProgram) eval(v exportView) bool {
	if p.prog == nil {
		return false
	}
	exported, err := v.Export()
	if err != nil {
		return false
	}
	raw, err := v.Raw()
	if err != nil {
		return false
	}
	out, _, err := p.prog.Eval(map[string]any{
		"record": exported,
		"text":   string(raw),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

// exportView is the slice of the logview surface the expression evaluator
// needs.
type exportView interface {
	Export() (any, error)
	Raw() ([]byte, error)
}
