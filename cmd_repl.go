package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"
)

// replCmd implements the repl command.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive compile-and-run session" }
func (*replCmd) Usage() string {
	return `repl:
  Read expressions one line at a time, compile and run each, and print
  its result. Ctrl-D exits, Ctrl-C clears the current line.
`
}
func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (*replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            "jitcalc> ",
		HistoryFile:       ".jitcalc-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "repl: %v\n", err)
		return subcommands.ExitFailure
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch {
		case err == readline.ErrInterrupt:
			continue
		case err == io.EOF:
			return subcommands.ExitSuccess
		case err != nil:
			fmt.Fprintf(os.Stderr, "repl: %v\n", err)
			return subcommands.ExitFailure
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := runExpression(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(result)
	}
}
