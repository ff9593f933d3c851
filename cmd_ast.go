package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/arith-jit/jitcalc/ast"
	"github.com/arith-jit/jitcalc/parser"
)

// astCmd implements the ast command: a debugging aid that shows the
// tree the parser built without compiling or running it.
type astCmd struct{}

func (*astCmd) Name() string     { return "ast" }
func (*astCmd) Synopsis() string { return "Parse an expression and print its tree" }
func (*astCmd) Usage() string {
	return `ast <expression>:
  Parse the expression and print its tree, one node per line, indented
  by depth.
`
}
func (*astCmd) SetFlags(f *flag.FlagSet) {}

func (*astCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ast: expression not provided")
		return subcommands.ExitUsageError
	}

	tree, err := parser.Parse(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ast: %v\n", err)
		return subcommands.ExitFailure
	}

	printExpr(os.Stdout, tree, 0)
	return subcommands.ExitSuccess
}

func printExpr(w io.Writer, expr ast.Expr, depth int) {
	indent := strings.Repeat("  ", depth)
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		fmt.Fprintf(w, "%s%d\n", indent, e.Value)
	case *ast.BinaryExpr:
		fmt.Fprintf(w, "%s%s\n", indent, e.Op)
		printExpr(w, e.Left, depth+1)
		printExpr(w, e.Right, depth+1)
	default:
		fmt.Fprintf(w, "%s<unknown node>\n", indent)
	}
}
