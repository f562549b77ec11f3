// SPDX-License-Identifier: MIT

// Package console interprets line-oriented queue commands against a chain of
// queues. It is the host program around package queue: it allocates the
// queues, feeds them strings and reports results.
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
)

// Sentinel errors for command execution.
var (
	// ErrUnknownCommand is returned for a command word that is not registered.
	ErrUnknownCommand = errors.New("console: unknown command")

	// ErrNoQueue is returned when a command needs a current queue and there is none.
	ErrNoQueue = errors.New("console: no current queue")

	// ErrBadArgument is returned for a missing or malformed command argument.
	ErrBadArgument = errors.New("console: invalid argument")

	// ErrMismatch is returned when rh/rt removed a value other than the expected one.
	ErrMismatch = errors.New("console: removed value does not match")

	// ErrEmptyQueue is returned by rh/rt on an empty queue.
	ErrEmptyQueue = errors.New("console: queue is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("console: invalid option supplied")
)

// DefaultStringLength bounds how many bytes of a removed value rh/rt report.
const DefaultStringLength = 1024

// Option configures an Interpreter via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the Interpreter configuration.
type Options struct {
	// StringLength is the size of the copy-out buffer used by rh/rt,
	// terminator included. Must be at least 2.
	StringLength int

	// Output receives command results. Defaults to io.Discard.
	Output io.Writer

	// Logger receives diagnostics. Defaults to logr.Discard().
	Logger logr.Logger

	// JSON switches show output to one JSON object per queue.
	JSON bool

	// Echo prints every command before running it, prefixed with "cmd> ".
	Echo bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - StringLength = DefaultStringLength
//   - Output discarded, logger discarded
//   - plain-text show, no echo.
func DefaultOptions() Options {
	return Options{
		StringLength: DefaultStringLength,
		Output:       io.Discard,
		Logger:       logr.Discard(),
	}
}

// WithStringLength sets the rh/rt copy-out buffer size.
//
//	n >= 2: use n
//	n < 2:  invalid option → ErrOptionViolation
func WithStringLength(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: StringLength must be at least 2 (%d)", ErrOptionViolation, n)

			return
		}
		o.StringLength = n
	}
}

// WithOutput sets the writer for command results. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Output = w
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithJSON toggles JSON show output.
func WithJSON(on bool) Option {
	return func(o *Options) { o.JSON = on }
}

// WithEcho toggles command echo.
func WithEcho(on bool) Option {
	return func(o *Options) { o.Echo = on }
}
