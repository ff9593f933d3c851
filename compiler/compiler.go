// Package compiler lowers an expression tree to a flat x86-64 byte
// buffer following the calling convention of a no-argument function
// returning a signed 64-bit integer in rax.
//
// Generate consumes its tree by reference; the buffer it returns is
// exclusively owned by the caller.
package compiler

import (
	"github.com/arith-jit/jitcalc/ast"
	"github.com/arith-jit/jitcalc/parser"
)

// Generate lowers expr to machine code: a post-order walk that leaves
// each subexpression's value on the machine stack, followed by an
// epilogue that pops the final value into rax and returns.
func Generate(expr ast.Expr) ([]byte, error) {
	g := &generator{}

	if err := g.genExpr(expr); err != nil {
		return nil, err
	}
	g.genEpilogue()

	return g.buf.Bytes(), nil
}

// Compile parses input and generates machine code for it in one step -
// the front end and code generator composed, with no runtime
// installation. Callers that want to execute the result pass it to
// runtime.Install.
func Compile(input string) ([]byte, error) {
	expr, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return Generate(expr)
}
