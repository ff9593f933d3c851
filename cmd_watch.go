package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// watchCmd implements the watch command.
type watchCmd struct{}

func (*watchCmd) Name() string { return "watch" }
func (*watchCmd) Synopsis() string {
	return "Recompile and run a file's expression on every write"
}
func (*watchCmd) Usage() string {
	return `watch <file>:
  Watch a file holding a single expression. On every write, recompile
  and run it and log the result.
`
}
func (*watchCmd) SetFlags(f *flag.FlagSet) {}

func (*watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "watch: file not provided")
		return subcommands.ExitUsageError
	}
	path := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		return subcommands.ExitFailure
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		return subcommands.ExitFailure
	}

	logger := log.New(os.Stdout, "watch ", log.LstdFlags)
	evalFile(logger, path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return subcommands.ExitSuccess
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				evalFile(logger, path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return subcommands.ExitSuccess
			}
			logger.Printf("watcher error: %v", err)
		case <-ctx.Done():
			return subcommands.ExitSuccess
		}
	}
}

// evalFile reads path's contents as a single expression, compiles and
// runs it, and logs the outcome tagged with a correlation id - watch
// recompiles on every write, so concurrent edits need a way to tell
// one evaluation's log lines apart from the next.
func evalFile(logger *log.Logger, path string) {
	id := uuid.New()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Printf("%s read error: %v", id, err)
		return
	}

	expr := strings.TrimSpace(string(data))
	result, err := runExpression(expr)
	if err != nil {
		logger.Printf("%s compile error: %v", id, err)
		return
	}
	logger.Printf("%s result: %d", id, result)
}
