package logcontext

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// Field keys used by the built-in variables.
const (
	TraceIDKey      = "trace_id"
	SpanIDKey       = "span_id"
	InvocationIDKey = "invocation_id"
)

type funcVariable struct {
	name string
	fn   func(ctx context.Context) (any, bool)
}

func (v funcVariable) Name() string { return v.name }

func (v funcVariable) Value(ctx context.Context) (any, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	return v.fn(ctx)
}

// Func adapts a function to a Variable.
func Func(name string, fn func(ctx context.Context) (any, bool)) Variable {
	return funcVariable{name: name, fn: fn}
}

// Static always contributes the same value.
func Static(name string, value any) Variable {
	return Func(name, func(context.Context) (any, bool) { return value, true })
}

// FromContext contributes ctx.Value(key) when it is set.
func FromContext(name string, key any) Variable {
	return Func(name, func(ctx context.Context) (any, bool) {
		v := ctx.Value(key)
		return v, v != nil
	})
}

// InvocationID contributes a fresh random UUID per call, so that all records
// of one intercepted call (the call, its result or failure) can be correlated.
//
// The interceptor evaluates variables once per call, which keeps the id
// stable across those records.
func InvocationID() Variable {
	return Func(InvocationIDKey, func(context.Context) (any, bool) {
		return uuid.NewString(), true
	})
}

// TraceVariables contribute the OpenTelemetry trace and span ids of the
// span recording in ctx. Without a recording span they contribute nothing.
func TraceVariables() []Variable {
	return []Variable{
		Func(TraceIDKey, func(ctx context.Context) (any, bool) {
			sc, ok := recordingSpanContext(ctx)
			if !ok {
				return nil, false
			}
			return sc.TraceID().String(), true
		}),
		Func(SpanIDKey, func(ctx context.Context) (any, bool) {
			sc, ok := recordingSpanContext(ctx)
			if !ok {
				return nil, false
			}
			return sc.SpanID().String(), true
		}),
	}
}

func recordingSpanContext(ctx context.Context) (trace.SpanContext, bool) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return trace.SpanContext{}, false
	}
	sc := span.SpanContext()
	return sc, sc.IsValid()
}

// Collect evaluates vars for one call. Later variables overwrite earlier
// ones with the same name. The result is nil when nothing was contributed.
func Collect(ctx context.Context, vars []Variable) map[string]any {
	var fields map[string]any
	for _, v := range vars {
		value, ok := v.Value(ctx)
		if !ok {
			continue
		}
		if fields == nil {
			fields = make(map[string]any, len(vars))
		}
		fields[v.Name()] = value
	}
	return fields
}
