// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Timestamp is a point in time, usually seconds since the Unix epoch. The
// engine only relies on timestamps being monotonic integers; no calendar or
// timezone semantics are attached.
type Timestamp = int64

// Interval is a span of time [Start, End). Start <= End always holds for an
// interval produced by this module; an interval with Start == End is empty and
// denotes an instantaneous presence that covers no time.
type Interval struct {
	Start Timestamp
	End   Timestamp
}

// MakeInterval creates the interval [start, end).
func MakeInterval(start, end Timestamp) Interval {
	return Interval{Start: start, End: end}
}

// Valid returns true if Start <= End.
func (i Interval) Valid() bool {
	return i.Start <= i.End
}

// Empty returns true if the interval covers no time.
func (i Interval) Empty() bool {
	return i.Start >= i.End
}

// Duration returns End - Start.
func (i Interval) Duration() int64 {
	return i.End - i.Start
}

// Overlaps returns true if the two intervals share a non-empty sub-interval.
// Intervals that only touch at an endpoint do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return max(i.Start, other.Start) < min(i.End, other.End)
}

// Touches returns true if the intervals overlap or share an endpoint; these
// are the intervals that merge into a single interval.
func (i Interval) Touches(other Interval) bool {
	return max(i.Start, other.Start) <= min(i.End, other.End)
}

// Intersect returns the common part of the two intervals. The second return
// value is false if the intervals do not overlap, see Overlaps.
func (i Interval) Intersect(other Interval) (Interval, bool) {
	r := Interval{Start: max(i.Start, other.Start), End: min(i.End, other.End)}
	if r.Start >= r.End {
		return Interval{}, false
	}
	return r, true
}

// Compare orders intervals by (Start, End).
func (i Interval) Compare(other Interval) int {
	switch {
	case i.Start < other.Start:
		return -1
	case i.Start > other.Start:
		return +1
	case i.End < other.End:
		return -1
	case i.End > other.End:
		return +1
	}
	return 0
}

// String implements fmt.Stringer.
func (i Interval) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i Interval) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%d,%d)", redact.Safe(i.Start), redact.Safe(i.End))
}

// FormatIntervals formats a sequence of intervals as a space separated list,
// or "(none)" if the sequence is empty.
func FormatIntervals(set []Interval) string {
	if len(set) == 0 {
		return "(none)"
	}
	var buf strings.Builder
	for j, iv := range set {
		if j > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(iv.String())
	}
	return buf.String()
}

// ParseInterval parses the string form produced by Interval.String, for
// example "[100,200)". The closing bracket may also be "]"; both denote the
// same interval. Intended for tests and debug input.
func ParseInterval(s string) (Interval, error) {
	orig := s
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || (s[len(s)-1] != ')' && s[len(s)-1] != ']') {
		return Interval{}, errors.Newf("invalid interval %q", orig)
	}
	start, end, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok {
		return Interval{}, errors.Newf("invalid interval %q: missing comma", orig)
	}
	a, err := strconv.ParseInt(strings.TrimSpace(start), 10, 64)
	if err != nil {
		return Interval{}, errors.Wrapf(err, "invalid interval %q", orig)
	}
	b, err := strconv.ParseInt(strings.TrimSpace(end), 10, 64)
	if err != nil {
		return Interval{}, errors.Wrapf(err, "invalid interval %q", orig)
	}
	iv := MakeInterval(a, b)
	if !iv.Valid() {
		return Interval{}, errors.Newf("invalid interval %q: start after end", orig)
	}
	return iv, nil
}
