// generator.go walks an expression tree and emits the byte-encoded
// instruction stream for it.

package compiler

import (
	"bytes"
	"fmt"

	"github.com/arith-jit/jitcalc/ast"
	"github.com/arith-jit/jitcalc/instructions"
)

// generator accumulates the code buffer for a single compilation. It
// holds no state beyond the buffer itself - code generation is a pure
// function of the tree, one method per node shape.
type generator struct {
	buf bytes.Buffer
}

// genExpr emits code for expr such that, when run, it leaves exactly
// one value on top of the machine stack: expr's evaluated result.
func (g *generator) genExpr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		g.genInteger(e.Value)
		return nil

	case *ast.BinaryExpr:
		return g.genBinary(e)

	default:
		return fmt.Errorf("codegen: unhandled expression node %T", expr)
	}
}

// genInteger loads an immediate into rax and pushes it.
func (g *generator) genInteger(value int64) {
	g.buf.Write(instructions.MovRAXImm64(value))
	g.buf.Write(instructions.PushRAX())
}

// genBinary emits code for both operands, then pops them off (right
// into rbx, then left into rax - the reverse of the push order), applies
// the operator, and pushes the single result back.
func (g *generator) genBinary(e *ast.BinaryExpr) error {
	if err := g.genExpr(e.Left); err != nil {
		return err
	}
	if err := g.genExpr(e.Right); err != nil {
		return err
	}

	g.buf.Write(instructions.PopRBX()) // right operand
	g.buf.Write(instructions.PopRAX()) // left operand

	switch e.Op {
	case ast.Add:
		g.genAdd()
	case ast.Sub:
		g.genSub()
	case ast.Mul:
		g.genMul()
	case ast.Div:
		g.genDiv()
	default:
		return fmt.Errorf("codegen: unknown operator %v", e.Op)
	}

	g.buf.Write(instructions.PushRAX())
	return nil
}

// genAdd: rax = rax + rbx.
func (g *generator) genAdd() {
	g.buf.Write(instructions.AddRAXRBX())
}

// genSub: rax = rax - rbx.
func (g *generator) genSub() {
	g.buf.Write(instructions.SubRAXRBX())
}

// genMul: rax = rax * rbx, truncated to 64 bits.
func (g *generator) genMul() {
	g.buf.Write(instructions.ImulRAXRBX())
}

// genDiv: rax = rax / rbx, truncating toward zero, signed. Neither
// division by zero nor INT64_MIN/-1 is checked here - both raise a
// hardware exception at execution time, which is intentional; see
// spec.md §4.D and §7.
func (g *generator) genDiv() {
	g.buf.Write(instructions.Cqo())
	g.buf.Write(instructions.IdivRBX())
}

// genEpilogue transfers the final machine-stack value into the return
// register and returns.
func (g *generator) genEpilogue() {
	g.buf.Write(instructions.PopRAX())
	g.buf.Write(instructions.Ret())
}
