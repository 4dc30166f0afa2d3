// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package appearance

import "github.com/cockroachdb/appearance/internal/base"

// Timestamp exports the base.Timestamp type.
type Timestamp = base.Timestamp

// Interval exports the base.Interval type.
type Interval = base.Interval

// MakeInterval constructs the interval [start, end).
func MakeInterval(start, end Timestamp) Interval {
	return base.MakeInterval(start, end)
}

// Logger exports the base.Logger type.
type Logger = base.Logger

// DefaultLogger exports the base.DefaultLogger type.
type DefaultLogger = base.DefaultLogger

// NoopLogger exports the base.NoopLogger type.
type NoopLogger = base.NoopLogger
