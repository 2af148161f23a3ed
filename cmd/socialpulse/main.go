package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/socialpulse/internal/cli"
	"github.com/rshade/socialpulse/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	err := root.ExecuteContext(ctx)
	code := extractExitCode(err)
	if err != nil {
		var exitErr *cli.ExitError
		// The list failure was already rendered; the cause is in the log.
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return code
}

// extractExitCode maps an error returned by the root command to a process exit code.
func extractExitCode(err error) int {
	if err == nil {
		return cli.ExitCodeOK
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return cli.ExitCodeError
}
