// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package appearance

import (
	"github.com/cockroachdb/appearance/internal/base"
	"github.com/cockroachdb/appearance/internal/coverage"
	"github.com/cockroachdb/appearance/internal/intervals"
	"github.com/cockroachdb/errors"
)

// ComputeOverlap returns the total time, in the unit of the record's
// timestamps, during which both the pupil and the tutor were present within
// the lesson window.
//
// The record is validated first; a malformed record returns an error marked
// with ErrInvalidRecord and no partial result. ComputeOverlap is pure and safe
// for concurrent use.
func ComputeOverlap(rec Record) (int64, error) {
	p, err := rec.parse()
	if err != nil {
		return 0, err
	}
	return pairwiseOverlap(p).Total, nil
}

// TraceResult holds every intermediate stage of the overlap computation.
type TraceResult struct {
	// Lesson, Pupil and Tutor are the parsed input lists.
	Lesson Interval
	Pupil  []Interval
	Tutor  []Interval
	// PupilInLesson and TutorInLesson are the input lists restricted to the
	// lesson window.
	PupilInLesson []Interval
	TutorInLesson []Interval
	// Common holds the raw fragments of simultaneous presence: the pairwise
	// intersection of PupilInLesson and TutorInLesson. It may contain
	// overlapping fragments when a party's own intervals overlapped.
	Common []Interval
	// Merged is Common collapsed into sorted, disjoint intervals.
	Merged []Interval
	// Total is the summed duration of Merged.
	Total int64
}

// Trace performs the same computation as ComputeOverlap, returning all the
// intermediate stages. It is intended for debugging unexpected totals.
func Trace(rec Record) (TraceResult, error) {
	p, err := rec.parse()
	if err != nil {
		return TraceResult{}, err
	}
	return pairwiseOverlap(p), nil
}

func pairwiseOverlap(p parsedRecord) TraceResult {
	r := TraceResult{
		Lesson: p.lesson,
		Pupil:  p.pupil,
		Tutor:  p.tutor,
	}
	r.PupilInLesson = intervals.Restrict(p.pupil, p.lesson)
	r.TutorInLesson = intervals.Restrict(p.tutor, p.lesson)
	r.Common = intervals.Intersect(r.PupilInLesson, r.TutorInLesson)
	r.Merged = intervals.Merge(r.Common)
	r.Total = intervals.TotalDuration(r.Merged)
	return r
}

// sweepOverlap computes the merged common intervals with a region tree sweep.
// It returns the same intervals as pairwiseOverlap(p).Merged.
func sweepOverlap(p parsedRecord) ([]base.Interval, error) {
	common, err := coverage.Overlap(p.lesson, p.pupil, p.tutor)
	if err != nil {
		return nil, errors.Wrap(err, "sweep")
	}
	return common, nil
}
