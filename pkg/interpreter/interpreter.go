package interpreter

import (
	"fmt"

	"lisp/interpreter-go/pkg/ast"
	"lisp/interpreter-go/pkg/runtime"
)

// Interpreter reduces expression trees against a table of built-ins.
type Interpreter struct {
	env *runtime.Environment
}

// New returns an interpreter over the default built-in table.
func New() *Interpreter {
	return NewWithEnvironment(runtime.DefaultEnvironment())
}

// NewWithEnvironment returns an interpreter that dispatches calls through env.
func NewWithEnvironment(env *runtime.Environment) *Interpreter {
	if env == nil {
		env = runtime.NewEnvironment()
	}
	return &Interpreter{env: env}
}

// Environment returns the interpreter’s operation table.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// Evaluate reduces expr to a value. The first error met anywhere in the tree
// aborts the whole evaluation.
func (i *Interpreter) Evaluate(expr ast.Expression) (runtime.Value, error) {
	return i.evaluateExpression(expr)
}

func (i *Interpreter) evaluateExpression(node ast.Expression) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.TextLiteral:
		return runtime.TextValue{Val: n.Value}, nil
	case *ast.ListLiteral:
		return i.evaluateListLiteral(n)
	case *ast.Call:
		return i.evaluateCall(n)
	case nil:
		return nil, fmt.Errorf("cannot evaluate nil expression")
	default:
		return nil, fmt.Errorf("unsupported expression %T", node)
	}
}

// evaluateListLiteral reduces every element so no call survives inside a list.
func (i *Interpreter) evaluateListLiteral(list *ast.ListLiteral) (runtime.Value, error) {
	elements := make([]runtime.Value, 0, len(list.Elements))
	for _, el := range list.Elements {
		val, err := i.evaluateExpression(el)
		if err != nil {
			return nil, err
		}
		elements = append(elements, val)
	}
	return &runtime.ListValue{Elements: elements}, nil
}
