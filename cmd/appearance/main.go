// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/appearance/tool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appearance [command] (flags)",
	Short: "lesson presence overlap tool",
	Long: `
Compute how long a pupil and a tutor were simultaneously present during a
lesson, from JSON or YAML presence records.
`,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	t := tool.New()
	rootCmd.AddCommand(t.Commands...)

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
