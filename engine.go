// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package appearance

import (
	"context"
	"fmt"

	"github.com/cockroachdb/appearance/internal/intervals"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Engine evaluates records according to a set of Options. An Engine holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// New creates an Engine. A nil opts uses the defaults.
func New(opts *Options) (*Engine, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.EnsureDefaults()
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opts: o}, nil
}

// Options returns the engine's options, with defaults filled in.
func (e *Engine) Options() Options {
	return e.opts
}

// ComputeOverlap is like the package-level ComputeOverlap, using the engine's
// method and updating its metrics.
func (e *Engine) ComputeOverlap(rec Record) (int64, error) {
	total, err := e.computeOverlap(rec)
	e.opts.Metrics.observe(total, err)
	return total, err
}

func (e *Engine) computeOverlap(rec Record) (int64, error) {
	p, err := rec.parse()
	if err != nil {
		return 0, err
	}
	switch e.opts.Method {
	case Pairwise:
		return pairwiseOverlap(p).Total, nil
	case Sweep:
		common, err := sweepOverlap(p)
		if err != nil {
			return 0, err
		}
		return intervals.TotalDuration(common), nil
	default:
		return 0, errors.AssertionFailedf("unknown method %s", e.opts.Method)
	}
}

// BatchResult is the outcome of one record of a batch.
type BatchResult struct {
	// Index is the position of the record in the batch.
	Index int
	// ID is the record's ID.
	ID string
	// Total is the overlap, valid if Err is nil.
	Total int64
	// Err is the validation error of the record, if any.
	Err error
}

// String implements fmt.Stringer.
func (r BatchResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", r.label(), r.Err)
	}
	return fmt.Sprintf("%s: %d", r.label(), r.Total)
}

// label is the record's ID, or its index if it has none.
func (r BatchResult) label() string {
	if r.ID != "" {
		return r.ID
	}
	return fmt.Sprintf("#%d", r.Index)
}

// ComputeBatch evaluates every record, using up to Options.Concurrency
// goroutines. The results are in the order of recs.
//
// A malformed record does not stop the batch: its result carries the
// validation error, which is also logged. The returned error is only non-nil
// if ctx is canceled before the batch completes.
func (e *Engine) ComputeBatch(ctx context.Context, recs []Record) ([]BatchResult, error) {
	results := make([]BatchResult, len(recs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for i := range recs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			total, err := e.ComputeOverlap(recs[i])
			results[i] = BatchResult{Index: i, ID: recs[i].ID, Total: total, Err: err}
			if err != nil {
				e.opts.Logger.Errorf("rejected record %s: %v", results[i].label(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var invalid int
	for i := range results {
		if results[i].Err != nil {
			invalid++
		}
	}
	e.opts.Logger.Infof("evaluated %d records (%d invalid) using %s", len(results), invalid, e.opts.Method)
	return results, nil
}
