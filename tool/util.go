// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"io"
	"os"

	"github.com/cockroachdb/appearance"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var stdout = io.Writer(os.Stdout)
var stderr = io.Writer(os.Stderr)
var osExit = os.Exit

// encodeTime formats log timestamps; nil omits them.
var encodeTime zapcore.TimeEncoder = zapcore.ISO8601TimeEncoder

type methodFlag appearance.Method

func (m *methodFlag) String() string {
	return appearance.Method(*m).String()
}

func (m *methodFlag) Type() string {
	return "method"
}

func (m *methodFlag) Set(v string) error {
	method, err := appearance.ParseMethod(v)
	if err != nil {
		return err
	}
	*m = methodFlag(method)
	return nil
}

// zapLogger adapts a zap logger to appearance.Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

var _ appearance.Logger = zapLogger{}

// newZapLogger builds a console logger writing to w, at debug level if
// verbose and at info level otherwise.
func newZapLogger(w io.Writer, verbose bool) zapLogger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     encodeTime,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zapLogger{s: zap.New(core).Sugar()}
}

func (l zapLogger) Debugf(format string, args ...interface{}) {
	l.s.Debugf(format, args...)
}

func (l zapLogger) Infof(format string, args ...interface{}) {
	l.s.Infof(format, args...)
}

func (l zapLogger) Errorf(format string, args ...interface{}) {
	l.s.Errorf(format, args...)
}

func (l zapLogger) Fatalf(format string, args ...interface{}) {
	l.s.Errorf(format, args...)
	_ = l.s.Sync()
	osExit(1)
}
