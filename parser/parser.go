// Package parser implements a precedence-climbing recursive-descent
// parser for arithmetic expressions over 64-bit signed integers.
//
// Grammar (lowest precedence first):
//
//	expression  ::= term
//	term        ::= factor  (( '+' | '-' ) factor)*
//	factor      ::= primary (( '*' | '/' ) primary)*
//	primary     ::= INT | '(' expression ')'
//
// term and factor are both left-associative: each iteration folds the
// accumulated left subtree and the freshly parsed right operand into a
// binary node whose left child is the accumulator. Because term
// delegates to factor for its operands, multiplicative operators bind
// tighter than additive ones.
package parser

import (
	"strconv"

	"github.com/arith-jit/jitcalc/ast"
	"github.com/arith-jit/jitcalc/lexer"
	"github.com/arith-jit/jitcalc/token"
)

// Parser holds one token of lookahead over a Lexer.
type Parser struct {
	lex      *lexer.Lexer
	cur      token.Token
	tokenIdx int
}

// New constructs a Parser over input, materializing the first token of
// lookahead. A lexical error surfacing before any parsing begins (e.g.
// an illegal first character) is returned here rather than from Parse.
func New(input string) (*Parser, error) {
	p := &Parser{lex: lexer.New(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses a complete expression and requires that nothing but
// end-of-input follows it. Failure returns a *SyntaxError or the
// lexer's *lexer.LexError.
func Parse(input string) (ast.Expr, error) {
	p, err := New(input)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Parse runs the grammar's top production and checks for trailing
// tokens.
func (p *Parser) Parse() (ast.Expr, error) {
	if p.cur.Type == token.EOF {
		return nil, &SyntaxError{Position: p.tokenIdx, Message: "empty input"}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.cur.Type != token.EOF {
		return nil, &SyntaxError{
			Position: p.tokenIdx,
			Message:  "unexpected token after complete expression: " + string(p.cur.Type),
		}
	}

	return expr, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	p.tokenIdx++
	return nil
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseTerm()
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.Operator
		switch p.cur.Type {
		case token.PLUS:
			op = ast.Add
		case token.MINUS:
			op = ast.Sub
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.Operator
		switch p.cur.Type {
		case token.ASTERISK:
			op = ast.Mul
		case token.SLASH:
			op = ast.Div
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.cur.Type {
	case token.INT:
		// The literal already passed the lexer's int64 range check.
		value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Position: p.tokenIdx, Message: "malformed integer literal: " + p.cur.Literal}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IntegerLiteral{Value: value}, nil

	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != token.RPAREN {
			return nil, &SyntaxError{Position: p.tokenIdx, Message: "missing closing ')'"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, &SyntaxError{
			Position: p.tokenIdx,
			Message:  "unexpected token " + string(p.cur.Type) + ", expected an integer or '('",
		}
	}
}
