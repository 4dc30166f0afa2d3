// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intervals

import "github.com/cockroachdb/appearance/internal/base"

// Intersect returns every non-empty intersection of an interval from a with an
// interval from b. Neither input needs to be sorted or disjoint.
//
// The intersection of [s1,e1) and [s2,e2) is [max(s1,s2), min(e1,e2)), and is
// only included if max(s1,s2) < min(e1,e2). Intervals that touch at an
// endpoint produce a zero-width intersection, which is dropped:
//
//	[10,20) ∩ [20,30) = (none)
//
// The output lists, for each interval of a in order, its intersections with
// the intervals of b in order. The result may contain overlapping intervals
// when either input does; use Merge to normalize it.
//
// Intersect runs in O(len(a)·len(b)), which is fine for the per-lesson interval
// counts it is used with. The coverage package implements a sweep over a
// region tree for larger inputs.
func Intersect(a, b []base.Interval) []base.Interval {
	var out []base.Interval
	for _, x := range a {
		for _, y := range b {
			if iv, ok := x.Intersect(y); ok {
				out = append(out, iv)
			}
		}
	}
	return out
}

// Restrict clips every interval of set to the window. Intervals outside the
// window are removed, intervals straddling a window boundary are cut at it.
// Restrict never extends an interval.
func Restrict(set []base.Interval, window base.Interval) []base.Interval {
	return Intersect(set, []base.Interval{window})
}
