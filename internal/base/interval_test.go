// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	a := MakeInterval(10, 20)
	b := MakeInterval(20, 30)
	c := MakeInterval(15, 25)
	empty := MakeInterval(15, 15)

	require.True(t, a.Valid())
	require.False(t, MakeInterval(20, 10).Valid())
	require.True(t, empty.Valid())
	require.True(t, empty.Empty())
	require.False(t, a.Empty())
	require.Equal(t, int64(10), a.Duration())
	require.Zero(t, empty.Duration())

	// Touching intervals do not overlap but do touch.
	require.False(t, a.Overlaps(b))
	require.True(t, a.Touches(b))
	_, ok := a.Intersect(b)
	require.False(t, ok)

	require.True(t, a.Overlaps(c))
	iv, ok := a.Intersect(c)
	require.True(t, ok)
	require.Equal(t, MakeInterval(15, 20), iv)
	iv, ok = c.Intersect(a)
	require.True(t, ok)
	require.Equal(t, MakeInterval(15, 20), iv)

	// An empty interval never overlaps anything, itself included.
	require.False(t, empty.Overlaps(c))
	require.False(t, empty.Overlaps(empty))
	require.True(t, empty.Touches(c))

	require.Equal(t, MakeInterval(40, 50), MakeInterval(40, 50))
	require.False(t, MakeInterval(40, 50).Touches(MakeInterval(51, 60)))
}

func TestIntervalCompare(t *testing.T) {
	ordered := []Interval{
		MakeInterval(-5, 0),
		MakeInterval(10, 10),
		MakeInterval(10, 20),
		MakeInterval(10, 30),
		MakeInterval(11, 12),
	}
	for i := range ordered {
		for j := range ordered {
			expected := 0
			if i < j {
				expected = -1
			} else if i > j {
				expected = 1
			}
			require.Equalf(t, expected, ordered[i].Compare(ordered[j]),
				"%v, %v", ordered[i], ordered[j])
		}
	}
}

func TestIntervalFormat(t *testing.T) {
	iv := MakeInterval(1594663200, 1594666800)
	require.Equal(t, "[1594663200,1594666800)", iv.String())
	require.Equal(t, "[1594663200,1594666800)", fmt.Sprint(iv))
	// Timestamps are not sensitive and survive redaction.
	require.Equal(t, redact.RedactableString("[1594663200,1594666800)"), redact.Sprint(iv).Redact())

	require.Equal(t, "(none)", FormatIntervals(nil))
	require.Equal(t, "[1,2) [-3,4)", FormatIntervals([]Interval{MakeInterval(1, 2), MakeInterval(-3, 4)}))
}

func TestParseInterval(t *testing.T) {
	for _, s := range []string{"[100,200)", "[100,200]", " [100, 200) "} {
		iv, err := ParseInterval(s)
		require.NoError(t, err, s)
		require.Equal(t, MakeInterval(100, 200), iv)
	}
	for _, s := range []string{"", "100,200", "[100;200)", "[a,200)", "[100,b)", "[200,100)", "(100,200)"} {
		_, err := ParseInterval(s)
		require.Error(t, err, s)
	}
	// Round trip.
	iv := MakeInterval(-7, 7)
	parsed, err := ParseInterval(iv.String())
	require.NoError(t, err)
	require.Equal(t, iv, parsed)
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInputf("pair %d is broken", 3)
	require.EqualError(t, err, "pair 3 is broken")
	require.True(t, errors.Is(err, ErrInvalidInput))
	wrapped := errors.Wrap(err, "pupil")
	require.True(t, errors.Is(wrapped, ErrInvalidInput))
	require.False(t, errors.Is(errors.New("pair 3 is broken"), ErrInvalidInput))
}
