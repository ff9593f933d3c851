package parser

import "fmt"

// SyntaxError reports a grammar violation: an empty program, an
// unexpected token where a primary was required, a missing closing
// paren, or trailing tokens after a complete expression.
type SyntaxError struct {
	Position int
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Position, e.Message)
}
