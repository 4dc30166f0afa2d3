// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/appearance"
	"github.com/cockroachdb/appearance/internal/base"
	"github.com/cockroachdb/appearance/internal/intervals"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// maxOverlapSec bounds the overlap totals tracked by the batch summary.
const maxOverlapSec = 366 * 24 * 3600

// recordsT implements the presence record tools, including both
// configuration state and the commands themselves.
type recordsT struct {
	Compute *cobra.Command
	Trace   *cobra.Command
	Batch   *cobra.Command

	t       *T
	metrics bool
}

func newRecords(t *T) *recordsT {
	r := &recordsT{t: t}

	r.Compute = &cobra.Command{
		Use:   "compute <record-files>",
		Short: "compute the overlap of presence records",
		Long: `
Print the total simultaneous presence of the pupil and the tutor for each
record file. A record file holds a single JSON or YAML record:

  {"lesson": [100, 200], "pupil": [100, 150], "tutor": [120, 200]}
`,
		Args: cobra.MinimumNArgs(1),
		Run:  r.runCompute,
	}

	r.Trace = &cobra.Command{
		Use:   "trace <record-file>",
		Short: "print the stages of the overlap computation",
		Long: `
Print every intermediate stage of the overlap computation of a record: the
parsed lists, the lists restricted to the lesson, the raw common fragments
and the merged fragments.
`,
		Args: cobra.ExactArgs(1),
		Run:  r.runTrace,
	}

	r.Batch = &cobra.Command{
		Use:   "batch <records-file>",
		Short: "compute the overlap of a stream of records",
		Long: `
Compute the overlap of every record of a JSON array or YAML stream of
records, printing one line per record followed by a summary of the totals.
`,
		Args: cobra.ExactArgs(1),
		Run:  r.runBatch,
	}
	r.Batch.Flags().BoolVar(
		&r.metrics, "metrics", false, "print the engine metrics in Prometheus text format")

	return r
}

func (r *recordsT) runCompute(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	e, err := r.t.newEngine(nil)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}
	for _, path := range args {
		rec, err := readRecord(path)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", path, err)
			continue
		}
		total, err := e.ComputeOverlap(rec)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", path, err)
			continue
		}
		fmt.Fprintf(out, "%s: %d\n", path, total)
	}
}

func (r *recordsT) runTrace(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	rec, err := readRecord(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", args[0], err)
		return
	}
	tr, err := appearance.Trace(rec)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", args[0], err)
		return
	}

	tbl := tablewriter.NewWriter(out)
	tbl.SetHeader([]string{"Stage", "Intervals", "Duration"})
	tbl.SetAutoWrapText(false)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	tbl.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	for _, stage := range []struct {
		name string
		set  []base.Interval
	}{
		{"lesson", []base.Interval{tr.Lesson}},
		{"pupil", tr.Pupil},
		{"tutor", tr.Tutor},
		{"pupil in lesson", tr.PupilInLesson},
		{"tutor in lesson", tr.TutorInLesson},
		{"common", tr.Common},
		{"merged", tr.Merged},
	} {
		tbl.Append([]string{
			stage.name,
			base.FormatIntervals(stage.set),
			fmt.Sprint(intervals.TotalDuration(stage.set)),
		})
	}
	tbl.Render()
	fmt.Fprintf(out, "total: %d\n", tr.Total)
}

func (r *recordsT) runBatch(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	recs, err := readRecords(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", args[0], err)
		return
	}
	r.t.debugf("decoded %d records from %s", len(recs), args[0])

	var metrics *appearance.Metrics
	reg := prometheus.NewRegistry()
	if r.metrics {
		metrics = appearance.NewMetrics("appearance")
		if err := metrics.Register(reg); err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return
		}
	}
	e, err := r.t.newEngine(metrics)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}
	results, err := e.ComputeBatch(context.Background(), recs)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}

	hist := hdrhistogram.New(0, maxOverlapSec, 3)
	var invalid int
	for _, res := range results {
		fmt.Fprintf(out, "%s\n", res)
		if res.Err != nil {
			invalid++
			continue
		}
		if err := hist.RecordValue(min(res.Total, maxOverlapSec)); err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}
	fmt.Fprintf(out, "records: %d (%d invalid)\n", len(results), invalid)
	if hist.TotalCount() > 0 {
		fmt.Fprintf(out, "overlap: mean %.1f p50 %d p90 %d p99 %d max %d\n",
			hist.Mean(), hist.ValueAtQuantile(50), hist.ValueAtQuantile(90),
			hist.ValueAtQuantile(99), hist.Max())
	}
	if r.metrics {
		if err := writeMetrics(out, reg); err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "writing %s", mf.GetName())
		}
	}
	return nil
}

func readRecord(path string) (appearance.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return appearance.Record{}, err
	}
	defer f.Close()
	return appearance.DecodeRecord(f)
}

func readRecords(path string) ([]appearance.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return appearance.DecodeRecords(f)
}
