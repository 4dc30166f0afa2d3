// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package appearance

import (
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Method selects the algorithm used to compute the overlap. All methods
// return identical results.
type Method int8

const (
	// Pairwise restricts each party to the lesson, intersects every pair of
	// intervals and merges the result. It is quadratic in the number of
	// intervals per party, which is fast for typical lessons.
	Pairwise Method = iota
	// Sweep records both parties in a region tree and reads off the regions
	// where both were present. It scales to records with many intervals.
	Sweep
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Pairwise:
		return "pairwise"
	case Sweep:
		return "sweep"
	default:
		return "unknown"
	}
}

// ParseMethod parses the string form of a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "pairwise":
		return Pairwise, nil
	case "sweep":
		return Sweep, nil
	default:
		return 0, errors.Newf("unknown method %q (expected pairwise or sweep)", s)
	}
}

// Options holds the optional parameters for an Engine. The zero value is
// usable; see EnsureDefaults.
type Options struct {
	// Method is the overlap algorithm. The default is Pairwise.
	Method Method

	// Concurrency is the maximum number of records of a batch evaluated
	// concurrently. The default is runtime.GOMAXPROCS(0).
	Concurrency int

	// Logger used to report rejected records and batch summaries. The default
	// is DefaultLogger.
	Logger Logger

	// Metrics, if set, is updated for every record evaluated by the engine.
	Metrics *Metrics
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	return o
}

// Validate returns an error if the options are inconsistent.
func (o *Options) Validate() error {
	switch o.Method {
	case Pairwise, Sweep:
	default:
		return errors.Newf("appearance: invalid method %d", errors.Safe(int(o.Method)))
	}
	return nil
}
