package ast

// Literal helpers.

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Text(value string) *TextLiteral {
	return NewTextLiteral(value)
}

func List(elements ...Expression) *ListLiteral {
	return NewListLiteral(elements)
}

// Call helpers.

func CallOf(name string, args ...Expression) *Call {
	if args == nil {
		args = []Expression{}
	}
	return NewCall(name, args)
}
