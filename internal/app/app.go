// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"microtpct/internal/appcore"
	"microtpct/internal/cli"
	"microtpct/internal/config"
	"microtpct/internal/logger"
)

// exitCode carries a handler's exit status through cobra.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func status(code int) error {
	if code == appcore.ExitOK {
		return nil
	}
	return exitCode(code)
}

func newLogger(stderr io.Writer, c config.Config) *slog.Logger {
	var lvl logger.Level
	lvl.SetByName(c.LogLevel)
	return logger.New(stderr, &lvl)
}

// RunContext executes argv and returns the process exit code. Results go to
// stdout (or --out); logs and errors go to stderr.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCommand(cli.Handlers{
		Match: func(cmd *cobra.Command, c config.Config) error {
			log := newLogger(stderr, c)
			wf := appcore.NewMatchWriterFactory(c.Format, c.Delim(), !c.NoHeader)
			return status(appcore.Run(cmd.Context(), stdout, log, c, wf))
		},
		Validate: func(cmd *cobra.Command, c config.Config) error {
			return status(Validate(cmd.Context(), stdout, newLogger(stderr, c), c))
		},
		Info: func(*cobra.Command) error {
			if err := Info(stdout); err != nil {
				return status(appcore.ExitIO)
			}
			return nil
		},
	})
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	var ec exitCode
	switch {
	case err == nil:
		return appcore.ExitOK
	case errors.As(err, &ec):
		return int(ec)
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\nRun 'microtpct --help' for usage.\n", err)
	return appcore.ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
