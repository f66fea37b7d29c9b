package logger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aalemi-dev/logkit/logpoint"
)

// TraceLevel is the zap level TRACE entries are written at, one below Debug.
const TraceLevel = zapcore.DebugLevel - 1

type namedLogger struct {
	zap      *zap.Logger
	minLevel zapcore.Level
}

// Enabled implements Backend.
func (l *LoggerClient) Enabled(name string, level logpoint.Level) bool {
	return l.namedLogger(name).enabled(toZapLevel(level))
}

// Write implements Backend. Rendering is skipped when the entry's level is
// disabled for its logger.
func (l *LoggerClient) Write(_ context.Context, e Entry) {
	nl := l.namedLogger(e.Logger)
	lvl := toZapLevel(e.Level)
	if !nl.enabled(lvl) {
		return
	}
	if ce := nl.zap.Check(lvl, Format(e.Message, e.Args)); ce != nil {
		ce.Write(l.convertToZapFields(e.Err, e.Fields)...)
	}
}

func (nl *namedLogger) enabled(lvl zapcore.Level) bool {
	return lvl >= nl.minLevel && nl.zap.Core().Enabled(lvl)
}

func (l *LoggerClient) namedLogger(name string) *namedLogger {
	if v, ok := l.named.Load(name); ok {
		return v.(*namedLogger)
	}

	nl := &namedLogger{zap: l.Zap, minLevel: TraceLevel}
	if name != "" {
		nl.zap = l.Zap.Named(name)
	}
	if threshold, ok := l.thresholds[name]; ok {
		nl.minLevel = threshold
	}
	v, _ := l.named.LoadOrStore(name, nl)
	return v.(*namedLogger)
}

// Format renders template by replacing each "{}" with the next argument.
// Placeholders without an argument stay as they are, and surplus arguments
// are dropped.
//
// Example:
//
//	logger.Format("retry {} of {}", []any{2, 5}) // "retry 2 of 5"
//	logger.Format("retry {} of {}", []any{2})    // "retry 2 of {}"
func Format(template string, args []any) string {
	if len(args) == 0 || !strings.Contains(template, logpoint.Placeholder) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))
	rest := template
	for _, arg := range args {
		i := strings.Index(rest, logpoint.Placeholder)
		if i < 0 {
			break
		}
		b.WriteString(rest[:i])
		fmt.Fprint(&b, arg)
		rest = rest[i+len(logpoint.Placeholder):]
	}
	b.WriteString(rest)
	return b.String()
}

func toZapLevel(level logpoint.Level) zapcore.Level {
	switch level {
	case logpoint.Trace:
		return TraceLevel
	case logpoint.Info:
		return zapcore.InfoLevel
	case logpoint.Warn:
		return zapcore.WarnLevel
	case logpoint.Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case Trace:
		return TraceLevel
	case Debug:
		return zapcore.DebugLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func levelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if level == TraceLevel {
		enc.AppendString("TRACE")
		return
	}
	zapcore.CapitalLevelEncoder(level, enc)
}
