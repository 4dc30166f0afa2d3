// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args []string, opts ...Option) string {
	var buf bytes.Buffer
	stdout = &buf
	stderr = &buf
	osExit = func(int) {}
	encodeTime = nil
	defer func() {
		stdout = os.Stdout
		stderr = os.Stderr
		osExit = os.Exit
	}()

	c := &cobra.Command{}
	c.AddCommand(New(opts...).Commands...)
	c.SetArgs(args)
	c.SetOutput(&buf)
	if err := c.Execute(); err != nil {
		return err.Error()
	}
	return buf.String()
}

func runTests(t *testing.T, paths ...string) {
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
				args := []string{td.Cmd}
				for _, arg := range td.CmdArgs {
					args = append(args, arg.String())
				}
				args = append(args, strings.Fields(td.Input)...)
				return runCommand(t, args)
			})
		})
	}
}

func TestTools(t *testing.T) {
	runTests(t, "testdata/compute", "testdata/trace", "testdata/batch")
}

func TestBatchMetrics(t *testing.T) {
	out := runCommand(t, []string{"batch", "--metrics", "-c", "1", "testdata/records/batch.yaml"})
	for _, s := range []string{
		"# TYPE appearance_records_total counter\nappearance_records_total 4\n",
		"appearance_invalid_records_total 1\n",
		"# TYPE appearance_overlap_seconds histogram\n",
		`appearance_overlap_seconds_bucket{le="60"} 2` + "\n",
		`appearance_overlap_seconds_bucket{le="120"} 3` + "\n",
		`appearance_overlap_seconds_bucket{le="+Inf"} 3` + "\n",
		"appearance_overlap_seconds_sum 125\n",
		"appearance_overlap_seconds_count 3\n",
	} {
		require.Contains(t, out, s)
	}
}

func TestMethodFlag(t *testing.T) {
	var m methodFlag
	require.Equal(t, "pairwise", m.String())
	require.Equal(t, "method", m.Type())
	require.NoError(t, m.Set("sweep"))
	require.Equal(t, "sweep", m.String())
	require.Error(t, m.Set("bogus"))
	require.Equal(t, "sweep", m.String())
}
