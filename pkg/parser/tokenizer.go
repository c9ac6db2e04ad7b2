package parser

import "strings"

var parenSpacer = strings.NewReplacer("(", " ( ", ")", " ) ")

// Tokenize splits source into parentheses and atoms. Every parenthesis is
// padded with spaces before the text is split on whitespace, so "(+ 1(2))"
// and "( + 1 ( 2 ) )" produce the same tokens. Balance and atom shape are the
// parser's concern.
func Tokenize(source string) []string {
	return strings.Fields(parenSpacer.Replace(source))
}
