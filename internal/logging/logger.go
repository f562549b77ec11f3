// SPDX-License-Identifier: MIT

// Package logging builds the logr.Logger used by the qtest driver, backed by zap.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logger.V(...).
const (
	DEFAULT = 2
	VERBOSE = 3
	DEBUG   = 4
	TRACE   = 5
)

// InitLogging returns a zap-backed logger writing to stderr. logVerbosity
// enables logger.V(n) for every n <= logVerbosity; development switches to
// the human-readable console encoder.
func InitLogging(logVerbosity int, development bool) (logr.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	// zap levels are negated logr verbosities
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(int8(-1 * logVerbosity)))
	cfg.Sampling = nil

	z, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return logr.Discard(), err
	}

	return zapr.NewLogger(z), nil
}

// NewTestLogger creates a development logger with every verbosity enabled.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	z, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return logr.Discard()
	}

	return zapr.NewLogger(z)
}
