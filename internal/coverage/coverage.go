// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package coverage computes simultaneous presence of several parties within a
// window by sweeping over a region tree, as an alternative to the pairwise
// intersection in package intervals.
//
// Each party's intervals are clipped to the window and recorded as a bit in
// the property of the region tree. Regions carrying every party's bit are the
// times at which all parties were present. The region tree coalesces adjacent
// regions with equal properties, so the resulting common regions are already
// sorted and disjoint, with touching fragments joined.
//
// The results are identical to restricting each party to the window,
// intersecting pairwise and merging: zero-width intervals and intervals that
// only touch another party's presence contribute nothing.
package coverage

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/RaduBerinde/axisds"
	"github.com/RaduBerinde/axisds/regiontree"
	"github.com/cockroachdb/appearance/internal/base"
	"github.com/cockroachdb/errors"
)

// MaxParties is the maximum number of parties a Tracker can follow.
const MaxParties = 8

// Party identifies a participant, in [0, MaxParties).
type Party uint8

// presence is the set of parties present in a region, one bit per Party. The
// zero value means nobody is present, which the region tree treats as the
// absence of a region.
type presence uint8

func (p presence) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i := Party(0); i < MaxParties; i++ {
		if p&(1<<i) != 0 {
			if buf.Len() > 1 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%d", i)
		}
	}
	buf.WriteByte('}')
	return buf.String()
}

// Tracker accumulates the presence of a fixed number of parties within a
// window.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	window  base.Interval
	parties int
	all     presence
	rt      regiontree.T[base.Timestamp, presence]
}

// Make creates a Tracker for the given number of parties within window.
func Make(window base.Interval, parties int) (Tracker, error) {
	if parties < 1 || parties > MaxParties {
		return Tracker{}, errors.AssertionFailedf("coverage: invalid number of parties %d", parties)
	}
	if !window.Valid() {
		return Tracker{}, errors.AssertionFailedf("coverage: invalid window %s", window)
	}
	return Tracker{
		window:  window,
		parties: parties,
		all:     presence(uint16(1)<<parties - 1),
		rt: regiontree.Make(
			axisds.CompareFn[base.Timestamp](cmp.Compare[base.Timestamp]),
			func(a, b presence) bool { return a == b },
		),
	}, nil
}

// Add records that party was present during iv. The interval is clipped to
// the tracker's window; empty intervals and intervals outside the window are
// ignored.
func (t *Tracker) Add(party Party, iv base.Interval) {
	if int(party) >= t.parties {
		panic(errors.AssertionFailedf("coverage: party %d out of range [0,%d)", party, t.parties))
	}
	clipped, ok := iv.Intersect(t.window)
	if !ok {
		return
	}
	bit := presence(1) << party
	t.rt.Update(clipped.Start, clipped.End, func(p presence) presence {
		return p | bit
	})
}

// AddAll records every interval of set for party.
func (t *Tracker) AddAll(party Party, set []base.Interval) {
	for _, iv := range set {
		t.Add(party, iv)
	}
}

// Common returns the sorted, disjoint intervals during which every party was
// present.
func (t *Tracker) Common() []base.Interval {
	var out []base.Interval
	for bounds, p := range t.rt.All() {
		if p != t.all {
			continue
		}
		// Regions with equal properties are coalesced by the tree, but join
		// touching results regardless so the output is always merged.
		if n := len(out); n > 0 && out[n-1].End == bounds.Start {
			out[n-1].End = bounds.End
			continue
		}
		out = append(out, base.MakeInterval(bounds.Start, bounds.End))
	}
	return out
}

// Total returns the total duration during which every party was present.
func (t *Tracker) Total() int64 {
	var total int64
	for bounds, p := range t.rt.All() {
		if p == t.all {
			total += bounds.End - bounds.Start
		}
	}
	return total
}

// IsEmpty returns true if no party was recorded as present.
func (t *Tracker) IsEmpty() bool {
	return t.rt.IsEmpty()
}

// String prints every region along with the parties present in it.
func (t *Tracker) String() string {
	if t.rt.IsEmpty() {
		return "(none)"
	}
	return strings.TrimSpace(t.rt.String(axisds.MakeIntervalFormatter(func(ts base.Timestamp) string {
		return fmt.Sprint(ts)
	})))
}

// Overlap returns the intervals within window during which all the given
// parties were present, sorted and disjoint.
func Overlap(window base.Interval, parties ...[]base.Interval) ([]base.Interval, error) {
	t, err := Make(window, len(parties))
	if err != nil {
		return nil, err
	}
	for i, set := range parties {
		t.AddAll(Party(i), set)
	}
	return t.Common(), nil
}
