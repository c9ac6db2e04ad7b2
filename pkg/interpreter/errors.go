package interpreter

import (
	"errors"
	"fmt"

	"lisp/interpreter-go/pkg/runtime"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArityMismatch    = errors.New("arity mismatch")
	ErrTypeMismatch     = errors.New("type mismatch")
)

// UnknownOperationError reports a call whose name is not in the environment.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("%v '%s'", ErrUnknownOperation, e.Name)
}

func (e *UnknownOperationError) Is(target error) bool { return target == ErrUnknownOperation }

// ArityError reports a call with an argument count outside its operation's bounds.
type ArityError struct {
	Name  string
	Arity runtime.Arity
	Got   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%v: '%s' expects %s argument(s), got %d", ErrArityMismatch, e.Name, e.Arity, e.Got)
}

func (e *ArityError) Is(target error) bool { return target == ErrArityMismatch }

// TypeMismatchError reports an argument that reduced to the wrong kind.
// Position is 1-based.
type TypeMismatchError struct {
	Name     string
	Position int
	Want     runtime.Kind
	Got      runtime.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: '%s' argument %d must be %s, got %s", ErrTypeMismatch, e.Name, e.Position, e.Want, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }
