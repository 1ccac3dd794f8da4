// Package logging is a small structured-logging wrapper over
// go.uber.org/zap, in the shape of the teacher's own logging package (a
// level-aware Logger sitting in front of a real backend) but scoped to
// exactly what this module needs.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger is the structured logging interface consumed by dwaplanner and
// costmap. Keys and values are passed variadically, zap's SugaredLogger
// convention.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapLogger) Debugw(msg string, keysAndValues ...any) { l.sugar.Debugw(msg, keysAndValues...) }
func (l zapLogger) Infow(msg string, keysAndValues ...any)  { l.sugar.Infow(msg, keysAndValues...) }
func (l zapLogger) Warnw(msg string, keysAndValues ...any)  { l.sugar.Warnw(msg, keysAndValues...) }
func (l zapLogger) Errorw(msg string, keysAndValues ...any) { l.sugar.Errorw(msg, keysAndValues...) }

// NewLogger builds a production Logger named name.
func NewLogger(name string) Logger {
	base, err := zap.NewProduction()
	if err != nil {
		// zap.NewProduction only fails if the default config can't open its
		// sinks, which never happens for the default stderr sink.
		base = zap.NewNop()
	}
	return zapLogger{sugar: base.Named(name).Sugar()}
}

// NewTestLogger builds a Logger that writes to tb via zaptest, for use in
// package tests that want to observe planner/costmap log output.
func NewTestLogger(tb testing.TB) Logger {
	return zapLogger{sugar: zaptest.NewLogger(tb).Sugar()}
}

// NewNopLogger returns a Logger that discards everything, the default used
// by components constructed without an explicit Logger.
func NewNopLogger() Logger {
	return zapLogger{sugar: zap.NewNop().Sugar()}
}
