package logger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/logkit/logpoint"
)

// newObservedLogger creates a LoggerClient backed by an in-memory observer
// so tests can assert on emitted log entries without writing to stderr.
func newObservedLogger(level zapcore.Level, cfg Config) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return newClient(zap.New(core), cfg), logs
}

// --- NewLoggerClient ---

func TestNewLoggerClient_Levels(t *testing.T) {
	t.Parallel()
	cases := []struct {
		level    string
		expected zapcore.Level
	}{
		{Trace, TraceLevel},
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warning, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel}, // defaults to info
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()
			l := NewLoggerClient(Config{Level: tc.level, ServiceName: "test"})
			if l == nil || l.Zap == nil {
				t.Fatal("expected non-nil LoggerClient")
			}
			if !l.Zap.Core().Enabled(tc.expected) {
				t.Errorf("expected %v to be enabled", tc.expected)
			}
			if l.Zap.Core().Enabled(tc.expected - 1) {
				t.Errorf("expected %v to be disabled", tc.expected-1)
			}
		})
	}
}

func TestNewLoggerClient_TracingEnabled(t *testing.T) {
	t.Parallel()
	l := NewLoggerClient(Config{Level: Info, EnableTracing: true})
	if !l.tracingEnabled {
		t.Error("expected tracingEnabled to be true")
	}
}

func TestNewLoggerClient_FileOutput(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l := NewLoggerClient(Config{
		Level:  Info,
		Output: OutputFile,
		File:   FileConfig{Path: path, MaxSizeMB: 1},
	})
	l.Info("to file", nil)
	if err := l.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
}

// --- convertToZapFields ---

func TestConvertToZapFields_NilError(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, Config{})
	fields := l.convertToZapFields(nil)
	if len(fields) != 0 {
		t.Errorf("expected 0 fields, got %d", len(fields))
	}
}

func TestConvertToZapFields_ErrorAndFields(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, Config{})
	err := errors.New("oops")
	fields := l.convertToZapFields(err, map[string]interface{}{"k": "v"}, map[string]interface{}{"n": 1})
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields (error + k + n), got %d", len(fields))
	}
	if fields[0].Key != "error" {
		t.Errorf("expected key 'error', got %q", fields[0].Key)
	}
}

// --- Application logging ---

func TestInfo(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, Config{})
	l.Info("hello", nil, map[string]interface{}{"k": "v"})

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "hello" {
		t.Errorf("expected message 'hello', got %q", entry.Message)
	}
	if entry.ContextMap()["k"] != "v" {
		t.Errorf("expected field k=v, got %v", entry.ContextMap())
	}
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, Config{})
	l.Debug("should not appear", nil)
	if logs.Len() != 0 {
		t.Errorf("expected debug entry to be suppressed, got %d entries", logs.Len())
	}
}

func TestError(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.ErrorLevel, Config{})
	l.Error("error msg", errors.New("boom"))

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	if logs.All()[0].ContextMap()["error"] != "boom" {
		t.Errorf("expected error field to be 'boom'")
	}
}

func TestWarnWithContext_NoSpan(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, Config{EnableTracing: true})
	l.WarnWithContext(context.Background(), "ctx warn", nil)

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	if _, ok := logs.All()[0].ContextMap()["trace_id"]; ok {
		t.Error("did not expect trace_id without an active span")
	}
}

func TestExtractTracingFields_TracingDisabled(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, Config{})
	if fields := l.extractTracingFields(context.Background()); len(fields) != 0 {
		t.Errorf("expected no fields when tracing is disabled, got %d", len(fields))
	}
}

func TestExtractTracingFields_NilContext(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, Config{EnableTracing: true})
	//nolint:staticcheck // intentionally passing nil to test guard
	if fields := l.extractTracingFields(nil); len(fields) != 0 {
		t.Errorf("expected no fields for nil context, got %d", len(fields))
	}
}

// --- Backend ---

func TestEnabled_GlobalLevel(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.InfoLevel, Config{})

	if l.Enabled("orders", logpoint.Debug) {
		t.Error("expected DEBUG to be disabled at info level")
	}
	if !l.Enabled("orders", logpoint.Info) {
		t.Error("expected INFO to be enabled at info level")
	}
}

func TestEnabled_TraceNeedsTraceLevel(t *testing.T) {
	t.Parallel()
	debugOnly, _ := newObservedLogger(zapcore.DebugLevel, Config{})
	if debugOnly.Enabled("x", logpoint.Trace) {
		t.Error("expected TRACE to be disabled at debug level")
	}
	traced, _ := newObservedLogger(TraceLevel, Config{})
	if !traced.Enabled("x", logpoint.Trace) {
		t.Error("expected TRACE to be enabled at trace level")
	}
}

func TestEnabled_PerLoggerThreshold(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, Config{
		Loggers: map[string]string{"orders.Service": Warning},
	})

	if l.Enabled("orders.Service", logpoint.Info) {
		t.Error("expected INFO to be disabled for orders.Service")
	}
	if !l.Enabled("orders.Service", logpoint.Warn) {
		t.Error("expected WARN to be enabled for orders.Service")
	}
	if !l.Enabled("billing.Service", logpoint.Debug) {
		t.Error("expected DEBUG to be enabled for other loggers")
	}
}

func TestWrite_RendersTemplateOnNamedLogger(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, Config{})
	l.Write(context.Background(), Entry{
		Logger:  "orders.Service",
		Level:   logpoint.Warn,
		Message: "retry {} of {}",
		Args:    []any{2, 5},
		Err:     errors.New("timeout"),
		Fields:  map[string]any{"invocation_id": "abc"},
	})

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "retry 2 of 5" {
		t.Errorf("unexpected message %q", entry.Message)
	}
	if entry.LoggerName != "orders.Service" {
		t.Errorf("unexpected logger name %q", entry.LoggerName)
	}
	if entry.Level != zapcore.WarnLevel {
		t.Errorf("expected WARN level, got %v", entry.Level)
	}
	ctx := entry.ContextMap()
	if ctx["error"] != "timeout" || ctx["invocation_id"] != "abc" {
		t.Errorf("unexpected fields %v", ctx)
	}
}

func TestWrite_SuppressedBelowThreshold(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, Config{Loggers: map[string]string{"quiet": Error}})
	l.Write(context.Background(), Entry{Logger: "quiet", Level: logpoint.Info, Message: "hidden"})
	if logs.Len() != 0 {
		t.Errorf("expected entry to be suppressed, got %d", logs.Len())
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"no args", "plain {}", nil, "plain {}"},
		{"exact", "retry {} of {}", []any{2, 5}, "retry 2 of 5"},
		{"missing arg", "retry {} of {}", []any{2}, "retry 2 of {}"},
		{"surplus arg", "retry {}", []any{2, 5}, "retry 2"},
		{"no placeholders", "done", []any{1}, "done"},
		{"nil arg", "got {}", []any{nil}, "got <nil>"},
		{"adjacent", "{}{}", []any{"a", "b"}, "ab"},
		{"braces in value", "{} then {}", []any{"{}", "x"}, "{} then x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tc.template, tc.args); got != tc.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tc.template, tc.args, got, tc.want)
			}
		})
	}
}

// --- Interface compliance ---

func TestLoggerClient_ImplementsInterfaces(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.InfoLevel, Config{})
	var _ Logger = l
	var _ Backend = l
}
