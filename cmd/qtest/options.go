// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/lvqueue/internal/console"
	"github.com/katalvlaran/lvqueue/internal/logging"
)

// Options contains the qtest configuration.
type Options struct {
	File         string // Command script; stdin when empty.
	ConfigFile   string // Optional YAML file with defaults for the fields below.
	StringLength int    // Copy-out buffer size for rh/rt, terminator included.
	JSON         bool   // Print queues as JSON.
	Echo         bool   // Echo each command before its output.
	LogVerbosity int    // Number for the log level verbosity.
	Development  bool   // Human-readable development logging.
}

// fileConfig is the YAML layout of --config. Unset keys keep the defaults.
type fileConfig struct {
	StringLength *int  `json:"stringLength,omitempty"`
	JSON         *bool `json:"json,omitempty"`
	Echo         *bool `json:"echo,omitempty"`
	LogVerbosity *int  `json:"logVerbosity,omitempty"`
	Development  *bool `json:"development,omitempty"`
}

// NewOptions returns Options initialized with the default values.
func NewOptions() *Options {
	return &Options{
		StringLength: console.DefaultStringLength,
		LogVerbosity: logging.DEFAULT,
	}
}

// AddFlags registers the options on fs (pflag.CommandLine when nil).
func (opts *Options) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		fs = pflag.CommandLine
	}

	fs.StringVarP(&opts.File, "file", "f", opts.File, "Read commands from this file instead of stdin.")
	fs.StringVar(&opts.ConfigFile, "config", opts.ConfigFile, "YAML file with option defaults; flags given explicitly take precedence.")
	fs.IntVar(&opts.StringLength, "string-length", opts.StringLength, "Size of the buffer removed values are copied into, terminator included.")
	fs.BoolVar(&opts.JSON, "json", opts.JSON, "Print queues as JSON objects.")
	fs.BoolVar(&opts.Echo, "echo", opts.Echo, "Echo every command before its output.")
	fs.IntVar(&opts.LogVerbosity, "v", opts.LogVerbosity, "Number for the log level verbosity.")
	fs.BoolVar(&opts.Development, "dev", opts.Development, "Use human-readable development logging.")
}

// Complete loads ConfigFile, if any, into every option whose flag was not set
// explicitly on fs.
func (opts *Options) Complete(fs *pflag.FlagSet) error {
	if opts.ConfigFile == "" {
		return nil
	}
	raw, err := os.ReadFile(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
	}
	var cfg fileConfig
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", opts.ConfigFile, err)
	}

	changed := func(name string) bool { return fs != nil && fs.Changed(name) }
	if cfg.StringLength != nil && !changed("string-length") {
		opts.StringLength = *cfg.StringLength
	}
	if cfg.JSON != nil && !changed("json") {
		opts.JSON = *cfg.JSON
	}
	if cfg.Echo != nil && !changed("echo") {
		opts.Echo = *cfg.Echo
	}
	if cfg.LogVerbosity != nil && !changed("v") {
		opts.LogVerbosity = *cfg.LogVerbosity
	}
	if cfg.Development != nil && !changed("dev") {
		opts.Development = *cfg.Development
	}

	return nil
}

// Validate rejects values the interpreter cannot run with.
func (opts *Options) Validate() error {
	if opts.StringLength < 2 {
		return fmt.Errorf("--string-length must be at least 2, got %d", opts.StringLength)
	}
	if opts.LogVerbosity < 0 {
		return fmt.Errorf("-v must not be negative, got %d", opts.LogVerbosity)
	}

	return nil
}
