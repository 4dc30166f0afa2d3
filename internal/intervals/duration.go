// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intervals

import "github.com/cockroachdb/appearance/internal/base"

// TotalDuration returns the sum of End-Start over set. It does not check that
// the intervals are disjoint; overlapping intervals are counted once per
// interval, so callers pass the output of Merge.
func TotalDuration(set []base.Interval) int64 {
	var total int64
	for _, iv := range set {
		total += iv.Duration()
	}
	return total
}
