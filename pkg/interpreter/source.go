package interpreter

import (
	"lisp/interpreter-go/pkg/ast"
	"lisp/interpreter-go/pkg/parser"
	"lisp/interpreter-go/pkg/runtime"
)

// Outcome is the result of one top-level expression: either Value or Err is set.
type Outcome struct {
	Expression ast.Expression
	Value      runtime.Value
	Err        error
}

// String renders the outcome as a single output line.
func (o Outcome) String() string {
	if o.Err != nil {
		return FormatError(o.Err)
	}
	return FormatValue(o.Value)
}

// EvaluateSource parses one line and evaluates each top-level expression on
// its own, so a failure in one does not stop the ones after it. A parse error
// yields no outcomes.
func (i *Interpreter) EvaluateSource(source string, opts parser.Options) ([]Outcome, error) {
	forest, err := parser.ParseWithOptions(source, opts)
	if err != nil {
		return nil, err
	}
	outcomes := make([]Outcome, 0, len(forest))
	for _, expr := range forest {
		val, err := i.Evaluate(expr)
		outcomes = append(outcomes, Outcome{Expression: expr, Value: val, Err: err})
	}
	return outcomes, nil
}
