package typechecker

import "lisp/interpreter-go/pkg/runtime"

// Type is the statically known kind of an expression.
type Type interface {
	Name() string
}

type PrimitiveType struct {
	Kind runtime.Kind
}

func (p PrimitiveType) Name() string { return p.Kind.String() }

// UnknownType stands in after an error so one mistake is reported once.
type UnknownType struct{}

func (UnknownType) Name() string { return "unknown" }

var (
	numberType Type = PrimitiveType{Kind: runtime.KindNumber}
	boolType   Type = PrimitiveType{Kind: runtime.KindBool}
	textType   Type = PrimitiveType{Kind: runtime.KindText}
	listType   Type = PrimitiveType{Kind: runtime.KindList}
)

func isUnknown(t Type) bool {
	_, ok := t.(UnknownType)
	return ok
}

// resultType is the type an operation produces when its arguments check.
func resultType(op runtime.Operation) Type {
	switch op {
	case runtime.OpLess, runtime.OpGreater:
		return boolType
	default:
		return numberType
	}
}
