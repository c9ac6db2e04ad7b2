package parser

import (
	"errors"
	"strconv"

	"lisp/interpreter-go/pkg/ast"
)

// Options tunes parsing. The zero value parses without a nesting bound.
type Options struct {
	// MaxDepth limits how deeply groups may nest; 0 disables the check.
	MaxDepth int
}

// Parse tokenizes and parses source into its top-level expressions.
func Parse(source string) ([]ast.Expression, error) {
	return ParseWithOptions(source, Options{})
}

// ParseWithOptions is Parse with an explicit configuration.
func ParseWithOptions(source string, opts Options) ([]ast.Expression, error) {
	return ParseTokens(Tokenize(source), opts)
}

// ParseTokens builds one Call per top-level group. Top-level tokens other than
// "(" are skipped. Any failure discards the whole forest.
func ParseTokens(tokens []string, opts Options) ([]ast.Expression, error) {
	r := &reader{tokens: tokens, maxDepth: opts.MaxDepth}
	forest := make([]ast.Expression, 0)
	for {
		tok, ok := r.next()
		if !ok {
			return forest, nil
		}
		if tok != "(" {
			continue
		}
		call, err := r.readCall(r.index-1, 1)
		if err != nil {
			return nil, err
		}
		forest = append(forest, call)
	}
}

type reader struct {
	tokens   []string
	index    int
	maxDepth int
}

func (r *reader) next() (string, bool) {
	if r.index >= len(r.tokens) {
		return "", false
	}
	tok := r.tokens[r.index]
	r.index++
	return tok, true
}

// readCall reads the body of a group whose "(" sits at token open. The first
// token is taken as the name as-is, even when it is a parenthesis or a number.
func (r *reader) readCall(open int, depth int) (*ast.Call, error) {
	if r.maxDepth > 0 && depth > r.maxDepth {
		return nil, &Error{Err: ErrNestingTooDeep, Offset: open, Depth: depth, Limit: r.maxDepth}
	}
	name, ok := r.next()
	if !ok {
		return nil, &Error{Err: ErrUnterminatedGroup, Offset: open, Depth: depth}
	}
	args := make([]ast.Expression, 0)
	for {
		tok, ok := r.next()
		if !ok {
			return nil, &Error{Err: ErrUnterminatedGroup, Offset: open, Depth: depth}
		}
		switch tok {
		case ")":
			return ast.NewCall(name, args), nil
		case "(":
			nested, err := r.readCall(r.index-1, depth+1)
			if err != nil {
				return nil, err
			}
			args = append(args, nested)
		default:
			args = append(args, parseAtom(tok))
		}
	}
}

// parseAtom classifies a token: number first, then boolean, else text.
func parseAtom(tok string) ast.Expression {
	if v, err := strconv.ParseFloat(tok, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return ast.NewNumberLiteral(v)
	}
	switch tok {
	case "true":
		return ast.NewBooleanLiteral(true)
	case "false":
		return ast.NewBooleanLiteral(false)
	}
	return ast.NewTextLiteral(tok)
}
