package lexer

import "fmt"

// LexError reports a failure to tokenize the input: either a byte that
// matches none of the grammar's punctuators/digits, or a digit run that
// does not fit in a signed 64-bit integer.
type LexError struct {
	Position int
	Message  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at position %d: %s", e.Position, e.Message)
}
