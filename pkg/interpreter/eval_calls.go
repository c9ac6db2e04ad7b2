package interpreter

import (
	"fmt"

	"lisp/interpreter-go/pkg/ast"
	"lisp/interpreter-go/pkg/runtime"
)

// evaluateCall dispatches call to its operation. Arity is checked before any
// argument is evaluated; arguments are then reduced left to right.
func (i *Interpreter) evaluateCall(call *ast.Call) (runtime.Value, error) {
	op, ok := i.env.Lookup(call.Name)
	if !ok {
		return nil, &UnknownOperationError{Name: call.Name}
	}
	arity := op.Arity()
	if !arity.Accepts(len(call.Arguments)) {
		return nil, &ArityError{Name: call.Name, Arity: arity, Got: len(call.Arguments)}
	}
	switch op {
	case runtime.OpAdd:
		return i.foldNumbers(call, 0, func(acc, n float64) float64 { return acc + n })
	case runtime.OpMul:
		return i.foldNumbers(call, 1, func(acc, n float64) float64 { return acc * n })
	case runtime.OpSub:
		if len(call.Arguments) == 1 {
			n, err := i.evaluateNumber(call, 0)
			if err != nil {
				return nil, err
			}
			return runtime.NumberValue{Val: -n}, nil
		}
		return i.reduceFromFirst(call, func(acc, n float64) float64 { return acc - n })
	case runtime.OpDiv:
		return i.reduceFromFirst(call, func(acc, n float64) float64 { return acc / n })
	case runtime.OpLess:
		return i.compareNumbers(call, func(l, r float64) bool { return l < r })
	case runtime.OpGreater:
		return i.compareNumbers(call, func(l, r float64) bool { return l > r })
	default:
		return nil, fmt.Errorf("operation %s has no evaluation rule", op)
	}
}

func (i *Interpreter) foldNumbers(call *ast.Call, identity float64, step func(acc, n float64) float64) (runtime.Value, error) {
	acc := identity
	for idx := range call.Arguments {
		n, err := i.evaluateNumber(call, idx)
		if err != nil {
			return nil, err
		}
		acc = step(acc, n)
	}
	return runtime.NumberValue{Val: acc}, nil
}

// reduceFromFirst uses the first argument as the base and folds the rest into
// it. Division follows IEEE-754, so dividing by zero yields Inf or NaN.
func (i *Interpreter) reduceFromFirst(call *ast.Call, step func(acc, n float64) float64) (runtime.Value, error) {
	acc, err := i.evaluateNumber(call, 0)
	if err != nil {
		return nil, err
	}
	for idx := 1; idx < len(call.Arguments); idx++ {
		n, err := i.evaluateNumber(call, idx)
		if err != nil {
			return nil, err
		}
		acc = step(acc, n)
	}
	return runtime.NumberValue{Val: acc}, nil
}

func (i *Interpreter) compareNumbers(call *ast.Call, cmp func(l, r float64) bool) (runtime.Value, error) {
	left, err := i.evaluateNumber(call, 0)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateNumber(call, 1)
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: cmp(left, right)}, nil
}

// evaluateNumber reduces argument idx of call and requires a number.
func (i *Interpreter) evaluateNumber(call *ast.Call, idx int) (float64, error) {
	val, err := i.evaluateExpression(call.Arguments[idx])
	if err != nil {
		return 0, err
	}
	num, ok := val.(runtime.NumberValue)
	if !ok {
		return 0, &TypeMismatchError{Name: call.Name, Position: idx + 1, Want: runtime.KindNumber, Got: val.Kind()}
	}
	return num.Val, nil
}
