// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intervals

import (
	"slices"

	"github.com/cockroachdb/appearance/internal/base"
	"github.com/cockroachdb/appearance/internal/invariants"
)

// Merge returns the minimal sequence of disjoint intervals whose union equals
// the union of set, sorted by start. The input is not modified.
//
// Intervals are sorted by (start, end) and scanned left to right. The next
// interval is folded into the current one when next.Start <= cur.End; note the
// comparison is inclusive, so touching intervals merge:
//
//	[10,20) [20,30) => [10,30)
//
// Intersect uses the strict comparison instead.
//
// Empty intervals are kept when they do not touch any other interval, so that
// Merge is idempotent; they do not contribute to TotalDuration.
func Merge(set []base.Interval) []base.Interval {
	if len(set) == 0 {
		return nil
	}
	sorted := slices.Clone(set)
	slices.SortFunc(sorted, base.Interval.Compare)

	merged := sorted[:1]
	for _, next := range sorted[1:] {
		cur := &merged[len(merged)-1]
		if next.Start <= cur.End {
			cur.End = max(cur.End, next.End)
		} else {
			merged = append(merged, next)
		}
	}
	if invariants.Enabled {
		checkSortedDisjoint(merged)
	}
	return merged
}

// IsMerged returns true if set is sorted by start and no two intervals touch,
// i.e. if Merge(set) would return set unchanged.
func IsMerged(set []base.Interval) bool {
	for i := 1; i < len(set); i++ {
		if set[i].Start <= set[i-1].End {
			return false
		}
	}
	return true
}

func checkSortedDisjoint(set []base.Interval) {
	invariants.Assertf(IsMerged(set), "merge produced overlapping intervals: %s", base.FormatIntervals(set))
}
