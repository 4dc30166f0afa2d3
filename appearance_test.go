// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package appearance

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/cockroachdb/appearance/internal/base"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestComputeOverlap(t *testing.T) {
	pairwise, err := New(&Options{Method: Pairwise, Logger: NoopLogger{}})
	require.NoError(t, err)
	sweep, err := New(&Options{Method: Sweep, Logger: NoopLogger{}})
	require.NoError(t, err)

	datadriven.RunTest(t, "testdata/compute", func(t *testing.T, td *datadriven.TestData) string {
		rec, err := DecodeRecord(strings.NewReader(td.Input))
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		switch td.Cmd {
		case "compute":
			total, err := ComputeOverlap(rec)
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			// Every method must agree with the free function.
			for _, e := range []*Engine{pairwise, sweep} {
				other, err := e.ComputeOverlap(rec)
				require.NoError(t, err)
				require.Equal(t, total, other, "method %s", e.Options().Method)
			}
			return fmt.Sprint(total)

		case "trace":
			tr, err := Trace(rec)
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			var buf strings.Builder
			fmt.Fprintf(&buf, "lesson:          %s\n", tr.Lesson)
			fmt.Fprintf(&buf, "pupil:           %s\n", base.FormatIntervals(tr.Pupil))
			fmt.Fprintf(&buf, "tutor:           %s\n", base.FormatIntervals(tr.Tutor))
			fmt.Fprintf(&buf, "pupil-in-lesson: %s\n", base.FormatIntervals(tr.PupilInLesson))
			fmt.Fprintf(&buf, "tutor-in-lesson: %s\n", base.FormatIntervals(tr.TutorInLesson))
			fmt.Fprintf(&buf, "common:          %s\n", base.FormatIntervals(tr.Common))
			fmt.Fprintf(&buf, "merged:          %s\n", base.FormatIntervals(tr.Merged))
			fmt.Fprintf(&buf, "total:           %d\n", tr.Total)
			return buf.String()

		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		}
	})
}

func TestValidation(t *testing.T) {
	lesson := []Timestamp{100, 200}
	testCases := []struct {
		rec   Record
		field string
	}{
		{Record{Lesson: nil, Pupil: nil, Tutor: nil}, "lesson"},
		{Record{Lesson: []Timestamp{100, 200, 300, 400}}, "lesson"},
		{Record{Lesson: []Timestamp{200, 100}}, "lesson"},
		{Record{Lesson: lesson, Pupil: []Timestamp{1, 2, 3}}, "pupil"},
		{Record{Lesson: lesson, Pupil: []Timestamp{150, 120}}, "pupil"},
		{Record{Lesson: lesson, Tutor: []Timestamp{1}}, "tutor"},
	}
	for _, tc := range testCases {
		t.Run(tc.rec.String(), func(t *testing.T) {
			_, err := ComputeOverlap(tc.rec)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidRecord))
			require.True(t, errors.Is(err, base.ErrInvalidInput))
			require.True(t, IsValidationError(err))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tc.field, verr.Field)
			require.EqualError(t, tc.rec.Validate(), err.Error())

			_, err = Trace(tc.rec)
			require.True(t, IsValidationError(err))
		})
	}

	require.NoError(t, Record{Lesson: lesson}.Validate())
	total, err := ComputeOverlap(Record{Lesson: lesson})
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestLessonClipping(t *testing.T) {
	tr, err := Trace(Record{
		Lesson: []Timestamp{100, 200},
		Pupil:  []Timestamp{50, 150},
		Tutor:  []Timestamp{0, 300},
	})
	require.NoError(t, err)
	require.Equal(t, []Interval{MakeInterval(100, 150)}, tr.PupilInLesson)
	require.Equal(t, []Interval{MakeInterval(100, 200)}, tr.TutorInLesson)
	require.Equal(t, int64(50), tr.Total)
}

func randomRecord(rng *rand.Rand) Record {
	start := 1594663200 + rng.Int64N(1000)
	rec := Record{Lesson: []Timestamp{start, start + rng.Int64N(3600)}}
	party := func() []Timestamp {
		flat := []Timestamp{}
		for n := rng.IntN(12); n > 0; n-- {
			a := start - 300 + rng.Int64N(4200)
			b := a + rng.Int64N(900)
			if rng.IntN(8) == 0 {
				b = a
			}
			flat = append(flat, a, b)
		}
		return flat
	}
	rec.Pupil, rec.Tutor = party(), party()
	return rec
}

func shufflePairs(rng *rand.Rand, flat []Timestamp) []Timestamp {
	out := append([]Timestamp(nil), flat...)
	rng.Shuffle(len(out)/2, func(i, j int) {
		out[2*i], out[2*j] = out[2*j], out[2*i]
		out[2*i+1], out[2*j+1] = out[2*j+1], out[2*i+1]
	})
	return out
}

// TestComputeOverlapRandomized checks the properties of the computation on
// random records: the total is bounded by the lesson, independent of the
// order of the input pairs and of the method.
func TestComputeOverlapRandomized(t *testing.T) {
	seed := rand.Uint64()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed))
	sweep, err := New(&Options{Method: Sweep, Logger: NoopLogger{}})
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		rec := randomRecord(rng)
		total, err := ComputeOverlap(rec)
		require.NoError(t, err)
		require.GreaterOrEqual(t, total, int64(0))
		require.LessOrEqual(t, total, rec.Lesson[1]-rec.Lesson[0])

		shuffled := rec
		shuffled.Pupil = shufflePairs(rng, rec.Pupil)
		shuffled.Tutor = shufflePairs(rng, rec.Tutor)
		other, err := ComputeOverlap(shuffled)
		require.NoError(t, err)
		require.Equal(t, total, other, "%s", rec)

		// Swapping the parties does not change the result either.
		swapped := Record{Lesson: rec.Lesson, Pupil: rec.Tutor, Tutor: rec.Pupil}
		other, err = ComputeOverlap(swapped)
		require.NoError(t, err)
		require.Equal(t, total, other, "%s", rec)

		other, err = sweep.ComputeOverlap(rec)
		require.NoError(t, err)
		require.Equal(t, total, other, "%s", rec)

		tr, err := Trace(rec)
		require.NoError(t, err)
		require.Equal(t, total, tr.Total)
	}
}
