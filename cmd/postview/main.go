// Command postview browses a remote collection of posts in the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/postview/internal/cli"
	"github.com/rshade/postview/pkg/version"
)

func main() {
	os.Exit(exitCode(run()))
}

// run executes the root command with a context canceled on SIGINT/SIGTERM.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}

// exitCode maps the command error to a process exit code. Cobra has already
// printed the error.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
