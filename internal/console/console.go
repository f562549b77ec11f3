// SPDX-License-Identifier: MIT

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/lvqueue/internal/logging"
	"github.com/katalvlaran/lvqueue/queue"
)

// Interpreter runs queue commands one line at a time.
//
// It owns a queue.Chain; "new" appends a queue to it and makes it current,
// "prev"/"next" move between queues and "merge" merges the whole chain into
// its first queue. Not safe for concurrent use.
type Interpreter struct {
	opts     Options
	chain    *queue.Chain
	current  *queue.Context
	commands map[string]*command
	buf      []byte
	done     bool
}

// New builds an Interpreter with an empty chain.
// Returns ErrOptionViolation (wrapped) for an invalid option.
func New(opts ...Option) (*Interpreter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	in := &Interpreter{
		opts:  o,
		chain: queue.NewChain(),
		buf:   make([]byte, o.StringLength),
	}
	in.commands = in.registry()

	return in, nil
}

// Chain exposes the queues managed by the interpreter.
func (in *Interpreter) Chain() *queue.Chain { return in.chain }

// Current returns the context commands operate on, or nil.
func (in *Interpreter) Current() *queue.Context { return in.current }

// Done reports whether a quit command was executed.
func (in *Interpreter) Done() bool { return in.done }

// Close frees every queue.
func (in *Interpreter) Close() {
	in.chain.Free()
	in.current = nil
}

// Exec parses and runs a single command line. Blank lines and lines starting
// with '#' are ignored.
func (in *Interpreter) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	if in.opts.Echo {
		fmt.Fprintf(in.opts.Output, "cmd> %s\n", strings.Join(fields, " "))
	}

	name, args := fields[0], fields[1:]
	cmd, ok := in.commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(args) < cmd.minArgs {
		return fmt.Errorf("%w: %s needs %d argument(s), usage: %s", ErrBadArgument, name, cmd.minArgs, cmd.usage)
	}
	if cmd.needQueue && in.current == nil {
		return fmt.Errorf("%w: %s", ErrNoQueue, name)
	}
	in.opts.Logger.V(logging.DEBUG).Info("Executing command", "command", name, "args", args)

	return cmd.run(in, args)
}

// Run executes every line read from r until EOF, a quit command or ctx is
// cancelled. A failing command does not stop the script: all failures are
// returned together, each prefixed with its line number.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	var errs error
	sc := bufio.NewScanner(r)
	lineNo := 0
	for !in.done && sc.Scan() {
		// cancellation check (once per line)
		select {
		case <-ctx.Done():
			return multierr.Append(errs, ctx.Err())
		default:
		}

		lineNo++
		if err := in.Exec(sc.Text()); err != nil {
			in.opts.Logger.Error(err, "Command failed", "line", lineNo)
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", lineNo, err))
		}
	}
	if err := sc.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	in.opts.Logger.V(logging.VERBOSE).Info("Script finished", "lines", lineNo, "failures", len(multierr.Errors(errs)))

	return errs
}

// printf writes a result line.
func (in *Interpreter) printf(format string, args ...any) {
	fmt.Fprintf(in.opts.Output, format, args...)
}
