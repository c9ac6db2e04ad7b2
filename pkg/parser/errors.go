package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedGroup reports input that ended inside an open group.
	ErrUnterminatedGroup = errors.New("unterminated group")
	// ErrNestingTooDeep reports groups nested past Options.MaxDepth.
	ErrNestingTooDeep = errors.New("nesting too deep")
)

// Error carries the position of a parse failure. Offset is the index of the
// opening parenthesis token of the group that failed.
type Error struct {
	Err    error
	Offset int
	Depth  int
	Limit  int
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrNestingTooDeep):
		return fmt.Sprintf("%v: depth %d exceeds limit %d at token %d", e.Err, e.Depth, e.Limit, e.Offset)
	default:
		return fmt.Sprintf("%v: group opened at token %d is never closed", e.Err, e.Offset)
	}
}

func (e *Error) Unwrap() error { return e.Err }
