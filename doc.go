// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package appearance computes how long a pupil and a tutor were
// simultaneously present during a lesson.
//
// A Record holds three flat timestamp lists. The lesson list holds exactly one
// start,end pair; the pupil and tutor lists hold any number of pairs, in any
// order, possibly overlapping:
//
//	rec := appearance.Record{
//		Lesson: []int64{1594663200, 1594666800},
//		Pupil:  []int64{1594663340, 1594663389, 1594663390, 1594663395, 1594663396, 1594666472},
//		Tutor:  []int64{1594663290, 1594663430, 1594663443, 1594666473},
//	}
//	total, err := appearance.ComputeOverlap(rec) // 3117
//
// The computation restricts pupil and tutor presence to the lesson window,
// intersects the two, merges the resulting fragments and sums their
// durations. Intervals are half-open: fragments that only touch at an
// endpoint do not count as overlap, while touching fragments of common
// presence are merged.
//
// Malformed records are rejected before any computation with an error for
// which errors.Is(err, ErrInvalidRecord) is true; see ValidationError.
//
// An Engine adds options on top of the free functions: the computation
// method, concurrent evaluation of record batches, logging and metrics.
package appearance
