// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package intervals implements the four steps of the presence overlap
// computation as free functions over []base.Interval:
//
//   - Parse pairs a flat timestamp list into intervals.
//   - Intersect computes every non-empty pairwise intersection of two sets.
//   - Merge collapses overlapping or touching intervals into a sorted,
//     disjoint cover.
//   - TotalDuration sums the durations of a set.
//
// None of the functions retain or mutate their arguments.
package intervals
