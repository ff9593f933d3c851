package parser

import (
	"testing"

	"github.com/arith-jit/jitcalc/ast"
)

func mustParse(t *testing.T, input string) ast.Expr {
	t.Helper()
	expr, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", input, err)
	}
	return expr
}

func binOp(op ast.Operator, left, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}
}

func intLit(v int64) ast.Expr {
	return &ast.IntegerLiteral{Value: v}
}

func treeEqual(a, b ast.Expr) bool {
	switch av := a.(type) {
	case *ast.IntegerLiteral:
		bv, ok := b.(*ast.IntegerLiteral)
		return ok && av.Value == bv.Value
	case *ast.BinaryExpr:
		bv, ok := b.(*ast.BinaryExpr)
		return ok && av.Op == bv.Op && treeEqual(av.Left, bv.Left) && treeEqual(av.Right, bv.Right)
	default:
		return false
	}
}

func TestSingleInteger(t *testing.T) {
	got := mustParse(t, "42")
	if !treeEqual(got, intLit(42)) {
		t.Errorf("got %#v", got)
	}
}

func TestPrecedence(t *testing.T) {
	// 1 + 2 * 3 -> 1 + (2 * 3)
	got := mustParse(t, "1 + 2 * 3")
	want := binOp(ast.Add, intLit(1), binOp(ast.Mul, intLit(2), intLit(3)))
	if !treeEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}

	// 2 * 3 + 4 -> (2 * 3) + 4
	got = mustParse(t, "2 * 3 + 4")
	want = binOp(ast.Add, binOp(ast.Mul, intLit(2), intLit(3)), intLit(4))
	if !treeEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestLeftAssociativity(t *testing.T) {
	// 10 - 3 - 2 -> (10 - 3) - 2
	got := mustParse(t, "10 - 3 - 2")
	want := binOp(ast.Sub, binOp(ast.Sub, intLit(10), intLit(3)), intLit(2))
	if !treeEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}

	// 20 / 4 / 2 -> (20 / 4) / 2
	got = mustParse(t, "20 / 4 / 2")
	want = binOp(ast.Div, binOp(ast.Div, intLit(20), intLit(4)), intLit(2))
	if !treeEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParentheses(t *testing.T) {
	got := mustParse(t, "(1 + 2) * 3")
	want := binOp(ast.Mul, binOp(ast.Add, intLit(1), intLit(2)), intLit(3))
	if !treeEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}

	if !treeEqual(mustParse(t, "((((42))))"), intLit(42)) {
		t.Error("deeply nested parens should parse to the bare literal")
	}
}

func TestParenthesizationIdentity(t *testing.T) {
	inputs := []string{"42", "1 + 2 * 3", "(1 + 2) * (3 + 4)", "10 - 3 - 2"}
	for _, in := range inputs {
		a := mustParse(t, in)
		b := mustParse(t, "("+in+")")
		if !treeEqual(a, b) {
			t.Errorf("parenthesization identity failed for %q", in)
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []string{"", "1 +", "(1 + 2", "1 + 2)", "1 2"}

	for _, in := range tests {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected a syntax error, got none", in)
		}
	}
}

func TestLexicalErrorPropagates(t *testing.T) {
	if _, err := Parse("@"); err == nil {
		t.Error(`Parse("@"): expected a lexical error, got none`)
	}
	if _, err := Parse("9223372036854775808"); err == nil {
		t.Error("Parse(MaxInt64+1): expected a lexical overflow error, got none")
	}
}

func TestUnaryMinusIsRejected(t *testing.T) {
	// Per the grammar, "-" only appears as a binary operator.
	if _, err := Parse("-5"); err == nil {
		t.Error(`Parse("-5"): expected a syntax error (no unary minus), got none`)
	}
}
