package typechecker

import (
	"fmt"

	"lisp/interpreter-go/pkg/ast"
	"lisp/interpreter-go/pkg/runtime"
)

// Checker walks expression trees without evaluating them and records every
// problem evaluation would hit, not only the first.
type Checker struct {
	env *runtime.Environment
}

// Diagnostic represents a static error found in a tree.
type Diagnostic struct {
	Message string
	Node    ast.Node
}

// New returns a checker resolving names against env. A nil env means the
// default built-in table.
func New(env *runtime.Environment) *Checker {
	if env == nil {
		env = runtime.DefaultEnvironment()
	}
	return &Checker{env: env}
}

// CheckForest checks every top-level expression and returns the combined
// diagnostics in source order.
func (c *Checker) CheckForest(forest []ast.Expression) []Diagnostic {
	var diagnostics []Diagnostic
	for _, expr := range forest {
		_, diags := c.CheckExpression(expr)
		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics
}

// CheckExpression infers the type of expr.
func (c *Checker) CheckExpression(expr ast.Expression) (Type, []Diagnostic) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return numberType, nil
	case *ast.BooleanLiteral:
		return boolType, nil
	case *ast.TextLiteral:
		return textType, nil
	case *ast.ListLiteral:
		var diags []Diagnostic
		for _, el := range e.Elements {
			_, elDiags := c.CheckExpression(el)
			diags = append(diags, elDiags...)
		}
		return listType, diags
	case *ast.Call:
		return c.checkCall(e)
	default:
		return UnknownType{}, []Diagnostic{{Message: fmt.Sprintf("typechecker: unsupported expression %T", expr), Node: expr}}
	}
}

func (c *Checker) checkCall(call *ast.Call) (Type, []Diagnostic) {
	var diags []Diagnostic
	argTypes := make([]Type, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		t, argDiags := c.CheckExpression(arg)
		diags = append(diags, argDiags...)
		argTypes = append(argTypes, t)
	}

	op, ok := c.env.Lookup(call.Name)
	if !ok {
		diags = append(diags, Diagnostic{Message: fmt.Sprintf("unknown operation '%s'", call.Name), Node: call})
		return UnknownType{}, diags
	}
	arity := op.Arity()
	if !arity.Accepts(len(call.Arguments)) {
		diags = append(diags, Diagnostic{
			Message: fmt.Sprintf("'%s' expects %s argument(s), got %d", call.Name, arity, len(call.Arguments)),
			Node:    call,
		})
	}
	for idx, t := range argTypes {
		if isUnknown(t) || t == numberType {
			continue
		}
		diags = append(diags, Diagnostic{
			Message: fmt.Sprintf("'%s' argument %d must be number, got %s", call.Name, idx+1, t.Name()),
			Node:    call.Arguments[idx],
		})
	}
	return resultType(op), diags
}
