package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/arith-jit/jitcalc/compiler"
	"github.com/arith-jit/jitcalc/runtime"
)

// evalCmd implements the eval command.
type evalCmd struct{}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "Compile and run a single expression" }
func (*evalCmd) Usage() string {
	return `eval <expression>:
  Compile the expression to native code, run it, and print the result.
`
}
func (*evalCmd) SetFlags(f *flag.FlagSet) {}

func (*evalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "eval: expression not provided")
		return subcommands.ExitUsageError
	}

	result, err := runExpression(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "eval: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(result)
	return subcommands.ExitSuccess
}

// runExpression compiles and executes expr in one shot, tearing the
// mapping down before returning. Shared by eval, repl, watch, and serve.
func runExpression(expr string) (int64, error) {
	code, err := compiler.Compile(expr)
	if err != nil {
		return 0, err
	}

	cc, err := runtime.Install(code)
	if err != nil {
		return 0, err
	}
	defer cc.Close()

	return cc.Run(), nil
}
