// Command jitcalc compiles and runs arithmetic expressions by emitting
// native x86-64 machine code and executing it directly, rather than
// interpreting the parsed tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
)

func main() {
	installFaultDiagnostic()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&evalCmd{}, "")
	subcommands.Register(&astCmd{}, "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&watchCmd{}, "")
	subcommands.Register(&serveCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// installFaultDiagnostic arranges for the hardware SIGFPE that a
// div-by-zero or INT64_MIN / -1 division in generated code raises to
// print a clean message before the process exits, instead of a bare
// crash dump. The faulting PC sits inside an mmap'd region with no
// entry in the Go runtime's symbol table, so this is best-effort: the
// runtime may still treat the fault as fatal before this handler runs.
func installFaultDiagnostic() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGFPE)
	go func() {
		<-sig
		fmt.Fprintln(os.Stderr, "jitcalc: division by zero or INT64_MIN / -1 overflow in compiled code (SIGFPE)")
		os.Exit(1)
	}()
}
