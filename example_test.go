// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package appearance_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cockroachdb/appearance"
)

func Example() {
	total, err := appearance.ComputeOverlap(appearance.Record{
		Lesson: []int64{1594663200, 1594666800},
		Pupil:  []int64{1594663340, 1594663389, 1594663390, 1594663395, 1594663396, 1594666472},
		Tutor:  []int64{1594663290, 1594663430, 1594663443, 1594666473},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(total)
	// Output:
	// 3117
}

func ExampleTrace() {
	tr, err := appearance.Trace(appearance.Record{
		Lesson: []int64{100, 200},
		Pupil:  []int64{50, 150, 180, 250},
		Tutor:  []int64{75, 175, 190, 300},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tr.Merged, tr.Total)
	// Output:
	// [[100,150) [190,200)] 60
}

func ExampleEngine_ComputeBatch() {
	recs, err := appearance.DecodeRecords(strings.NewReader(`
- {id: a, lesson: [100, 200], pupil: [150, 250], tutor: [50, 175]}
- {id: b, lesson: [100, 200], pupil: [110, 120, 130], tutor: []}
`))
	if err != nil {
		log.Fatal(err)
	}
	e, err := appearance.New(&appearance.Options{
		Method: appearance.Sweep,
		Logger: appearance.NoopLogger{},
	})
	if err != nil {
		log.Fatal(err)
	}
	results, err := e.ComputeBatch(context.Background(), recs)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		fmt.Println(r)
	}
	// Output:
	// a: 25
	// b: error: invalid record: pupil: odd number of timestamps (3); expected start,end pairs
}
