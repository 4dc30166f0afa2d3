// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines fundamental types shared by the appearance packages:
// the half-open time Interval, the Logger interface and the marker used for
// input validation errors.
//
// # Interval semantics
//
// All intervals are half-open, [Start, End). Two operations treat shared
// endpoints differently, and callers rely on the difference:
//
//   - Intersection is strict. [10,20) and [20,30) have no intersection; the
//     zero-width result is dropped rather than retained.
//   - Merging is inclusive. [10,20) and [20,30) merge into [10,30).
//
// See Interval.Overlaps and Interval.Touches.
package base
