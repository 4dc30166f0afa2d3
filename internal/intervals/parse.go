// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package intervals

import "github.com/cockroachdb/appearance/internal/base"

// Parse transforms a flat sequence of timestamps into intervals by pairing
// consecutive elements: (v[0],v[1]), (v[2],v[3]), ...
//
// An odd-length sequence, or a pair whose start is after its end, is rejected
// with an error marked base.ErrInvalidInput. An empty sequence yields an empty
// result.
func Parse(flat []base.Timestamp) ([]base.Interval, error) {
	if len(flat)%2 != 0 {
		return nil, base.InvalidInputf("odd number of timestamps (%d); expected start,end pairs", len(flat))
	}
	set := make([]base.Interval, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		iv := base.MakeInterval(flat[i], flat[i+1])
		if !iv.Valid() {
			return nil, base.InvalidInputf("pair %d: start %d is after end %d", i/2, iv.Start, iv.End)
		}
		set = append(set, iv)
	}
	return set, nil
}

// Flatten is the inverse of Parse.
func Flatten(set []base.Interval) []base.Timestamp {
	flat := make([]base.Timestamp, 0, 2*len(set))
	for _, iv := range set {
		flat = append(flat, iv.Start, iv.End)
	}
	return flat
}
