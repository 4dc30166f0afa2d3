// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package testutils

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// Logger is a logger that writes to a testing.TB.
type Logger struct {
	T testing.TB
}

func (l Logger) Infof(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

func (l Logger) Errorf(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

func (l Logger) Fatalf(format string, args ...interface{}) {
	l.T.Helper()
	l.T.Fatalf(format, args...)
}

// CaptureLogger records every line it is given, prefixed by its level. It is
// safe for concurrent use.
type CaptureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *CaptureLogger) Infof(format string, args ...interface{}) {
	l.add("info", format, args...)
}

func (l *CaptureLogger) Errorf(format string, args ...interface{}) {
	l.add("error", format, args...)
}

func (l *CaptureLogger) Fatalf(format string, args ...interface{}) {
	l.add("fatal", format, args...)
	panic(fmt.Sprintf(format, args...))
}

func (l *CaptureLogger) add(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Lines returns a copy of the recorded lines.
func (l *CaptureLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Count returns the number of recorded lines with the given level.
func (l *CaptureLogger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int
	for _, line := range l.lines {
		if strings.HasPrefix(line, level+": ") {
			n++
		}
	}
	return n
}
