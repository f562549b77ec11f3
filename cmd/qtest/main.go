// SPDX-License-Identifier: MIT

// Command qtest reads queue commands from a script (or stdin) and runs them
// against a chain of string queues.
//
//	qtest --file traces/basic.cmd --echo
//	echo -e "new\nit b\nit a\nsort\nshow" | qtest --json
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvqueue/internal/console"
	"github.com/katalvlaran/lvqueue/internal/logging"
)

func main() {
	// run keeps its defers ahead of os.Exit.
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "qtest:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts := NewOptions()
	fs := pflag.NewFlagSet("qtest", pflag.ContinueOnError)
	opts.AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := opts.Complete(fs); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	logger, err := logging.InitLogging(opts.LogVerbosity, opts.Development)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	in := stdin
	if opts.File != "" {
		f, err := os.Open(opts.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	interp, err := console.New(
		console.WithOutput(stdout),
		console.WithLogger(logger),
		console.WithStringLength(opts.StringLength),
		console.WithJSON(opts.JSON),
		console.WithEcho(opts.Echo),
	)
	if err != nil {
		return err
	}
	defer interp.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.V(logging.VERBOSE).Info("Running script", "file", opts.File)

	return interp.Run(ctx, in)
}
