package interpreter

import (
	"math"
	"strconv"
	"strings"

	"lisp/interpreter-go/pkg/ast"
	"lisp/interpreter-go/pkg/runtime"
)

// FormatValue renders a value for display: scalars as "(v)", lists as
// "( a, b )" or "()" when empty.
func FormatValue(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.NumberValue:
		return "(" + formatNumber(v.Val) + ")"
	case runtime.BoolValue:
		return "(" + strconv.FormatBool(v.Val) + ")"
	case runtime.TextValue:
		return "(" + v.Val + ")"
	case *runtime.ListValue:
		parts := make([]string, 0, len(v.Elements))
		for _, el := range v.Elements {
			parts = append(parts, FormatValue(el))
		}
		return formatSequence(parts)
	default:
		return "()"
	}
}

// FormatExpression renders a tree with the same rules as FormatValue. Calls
// print as "()" since only reduced values are meant for display.
func FormatExpression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return "(" + formatNumber(e.Value) + ")"
	case *ast.BooleanLiteral:
		return "(" + strconv.FormatBool(e.Value) + ")"
	case *ast.TextLiteral:
		return "(" + e.Value + ")"
	case *ast.ListLiteral:
		parts := make([]string, 0, len(e.Elements))
		for _, el := range e.Elements {
			parts = append(parts, FormatExpression(el))
		}
		return formatSequence(parts)
	default:
		return "()"
	}
}

// FormatError renders err as one output line.
func FormatError(err error) string {
	return "Error: " + err.Error()
}

func formatSequence(parts []string) string {
	if len(parts) == 0 {
		return "()"
	}
	return "( " + strings.Join(parts, ", ") + " )"
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
