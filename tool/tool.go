// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"github.com/cockroachdb/appearance"
	"github.com/spf13/cobra"
)

// T is the container for all of the presence record tools.
type T struct {
	Commands []*cobra.Command
	records  *recordsT
	opts     appearance.Options
	verbose  bool
}

// Option is a functional option for configuring the tools.
type Option func(*T)

// Method configures the default overlap method. The --method flag overrides
// it.
func Method(m appearance.Method) Option {
	return func(t *T) {
		t.opts.Method = m
	}
}

// Logger configures the logger used by the engine, replacing the zap logger
// the tools build from the --verbose flag.
func Logger(l appearance.Logger) Option {
	return func(t *T) {
		t.opts.Logger = l
	}
}

// New creates a new set of presence record tools.
func New(opts ...Option) *T {
	t := &T{}
	for _, opt := range opts {
		opt(t)
	}
	t.records = newRecords(t)
	t.Commands = []*cobra.Command{
		t.records.Compute,
		t.records.Trace,
		t.records.Batch,
	}
	for _, c := range t.Commands {
		c.Flags().VarP((*methodFlag)(&t.opts.Method), "method", "m", "overlap method (pairwise or sweep)")
		c.Flags().IntVarP(&t.opts.Concurrency, "concurrency", "c", 0,
			"number of records evaluated concurrently (0 means GOMAXPROCS)")
		c.Flags().BoolVarP(&t.verbose, "verbose", "v", false, "enable debug logging")
	}
	return t
}

// newEngine builds an engine from the options and flags.
func (t *T) newEngine(metrics *appearance.Metrics) (*appearance.Engine, error) {
	opts := t.opts
	if opts.Logger == nil {
		opts.Logger = newZapLogger(stderr, t.verbose)
	}
	opts.Metrics = metrics
	return appearance.New(&opts)
}

func (t *T) debugf(format string, args ...interface{}) {
	if !t.verbose {
		return
	}
	if l, ok := t.opts.Logger.(interface {
		Debugf(format string, args ...interface{})
	}); ok {
		l.Debugf(format, args...)
		return
	}
	if t.opts.Logger == nil {
		newZapLogger(stderr, true).Debugf(format, args...)
	}
}
