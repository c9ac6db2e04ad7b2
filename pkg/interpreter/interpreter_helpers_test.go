package interpreter

import (
	"testing"

	"lisp/interpreter-go/pkg/ast"
	"lisp/interpreter-go/pkg/parser"
	"lisp/interpreter-go/pkg/runtime"
)

func mustParseOne(t *testing.T, source string) ast.Expression {
	t.Helper()
	forest, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	if len(forest) != 1 {
		t.Fatalf("parse %q: expected 1 expression, got %d", source, len(forest))
	}
	return forest[0]
}

func evalSource(t *testing.T, interp *Interpreter, source string) (runtime.Value, error) {
	t.Helper()
	return interp.Evaluate(mustParseOne(t, source))
}

func expectNumber(t *testing.T, val runtime.Value, want float64) {
	t.Helper()
	num, ok := val.(runtime.NumberValue)
	if !ok {
		t.Fatalf("expected number %v, got %#v", want, val)
	}
	if num.Val != want {
		t.Fatalf("expected number %v, got %v", want, num.Val)
	}
}

func expectBool(t *testing.T, val runtime.Value, want bool) {
	t.Helper()
	b, ok := val.(runtime.BoolValue)
	if !ok {
		t.Fatalf("expected bool %v, got %#v", want, val)
	}
	if b.Val != want {
		t.Fatalf("expected bool %v, got %v", want, b.Val)
	}
}
