// Package lexer turns an arithmetic expression into a stream of tokens.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arith-jit/jitcalc/token"
)

// Lexer holds our object-state: a cursor over the input, one character
// of lookahead.
type Lexer struct {
	position     int    // current character position
	readPosition int    // next character position
	ch           rune   // current character
	characters   []rune // rune slice of input string
}

// New builds a Lexer over the given input.
func New(input string) *Lexer {
	l := &Lexer{characters: []rune(input)}
	l.readChar()
	return l
}

// read one character forward
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.characters) {
		l.ch = rune(0)
	} else {
		l.ch = l.characters[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// NextToken advances the cursor and returns the next token, skipping
// whitespace between tokens. Once the input is exhausted it returns the
// EOF token indefinitely - repeated calls never error and never advance
// past the end.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	pos := l.position
	if pos >= len(l.characters) {
		return token.Token{Type: token.EOF}, nil
	}

	switch l.ch {
	case rune('+'):
		tok := newToken(token.PLUS, l.ch)
		l.readChar()
		return tok, nil
	case rune('-'):
		tok := newToken(token.MINUS, l.ch)
		l.readChar()
		return tok, nil
	case rune('*'):
		tok := newToken(token.ASTERISK, l.ch)
		l.readChar()
		return tok, nil
	case rune('/'):
		tok := newToken(token.SLASH, l.ch)
		l.readChar()
		return tok, nil
	case rune('('):
		tok := newToken(token.LPAREN, l.ch)
		l.readChar()
		return tok, nil
	case rune(')'):
		tok := newToken(token.RPAREN, l.ch)
		l.readChar()
		return tok, nil
	default:
		if isDigit(l.ch) {
			return l.readInteger(pos)
		}
		l.readChar()
		return token.Token{}, &LexError{
			Position: pos,
			Message:  fmt.Sprintf("unexpected character %q", l.characters[pos]),
		}
	}
}

// return new token
func newToken(tokenType token.Type, ch rune) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}

// skip white space
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// readInteger reads a maximal run of ASCII digits starting at the
// current character and parses it as a signed 64-bit value. A run that
// overflows int64 is a lexical error, not a syntactic one.
func (l *Lexer) readInteger(start int) (token.Token, error) {
	var sb strings.Builder

	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	literal := sb.String()

	if _, err := strconv.ParseInt(literal, 10, 64); err != nil {
		return token.Token{}, &LexError{
			Position: start,
			Message:  fmt.Sprintf("integer literal %q out of range for a signed 64-bit value", literal),
		}
	}

	return token.Token{Type: token.INT, Literal: literal}, nil
}

// is white space
func isWhitespace(ch rune) bool {
	return ch == rune(' ') || ch == rune('\t') || ch == rune('\n') || ch == rune('\r')
}

// is Digit
func isDigit(ch rune) bool {
	return rune('0') <= ch && ch <= rune('9')
}
