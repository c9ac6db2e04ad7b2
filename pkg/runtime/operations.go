package runtime

import "fmt"

// Operation tags one built-in evaluation rule.
type Operation int

const (
	OpAdd Operation = iota
	OpSub
	OpMul
	OpDiv
	OpLess
	OpGreater
)

// Variadic marks an Arity without an upper bound.
const Variadic = -1

// Arity bounds the number of arguments an operation accepts.
type Arity struct {
	Min int
	Max int
}

// Accepts reports whether n arguments fit the bounds.
func (a Arity) Accepts(n int) bool {
	if n < a.Min {
		return false
	}
	return a.Max == Variadic || n <= a.Max
}

func (a Arity) String() string {
	switch {
	case a.Max == Variadic:
		return fmt.Sprintf("at least %d", a.Min)
	case a.Min == a.Max:
		return fmt.Sprintf("exactly %d", a.Min)
	default:
		return fmt.Sprintf("%d to %d", a.Min, a.Max)
	}
}

// Symbol is the name the operation is registered under by default.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	default:
		return fmt.Sprintf("op_%d", int(op))
	}
}

func (op Operation) String() string { return op.Symbol() }

func (op Operation) Arity() Arity {
	switch op {
	case OpAdd, OpMul:
		return Arity{Min: 0, Max: Variadic}
	case OpSub, OpDiv:
		return Arity{Min: 1, Max: Variadic}
	case OpLess, OpGreater:
		return Arity{Min: 2, Max: 2}
	default:
		return Arity{Min: 0, Max: 0}
	}
}

// Builtins lists every operation in registration order.
var Builtins = []Operation{OpAdd, OpSub, OpMul, OpDiv, OpLess, OpGreater}
