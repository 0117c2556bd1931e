// Package appshell wires a RunContext-style entry point to the process:
// signals, real stdio, and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Runner is the signature of app.RunContext.
type Runner func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with a context canceled by SIGINT or SIGTERM and exits with
// its code. The first signal cancels the run; a second one kills the process.
func Main(run Runner) {
	os.Exit(run.exec(os.Args[1:], os.Stdout, os.Stderr))
}

func (run Runner) exec(argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop() // restore default handling for the next signal
	}()

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
