package interceptor

import (
	"context"
	"time"

	"github.com/aalemi-dev/logkit/logcontext"
	"github.com/aalemi-dev/logkit/logger"
	"github.com/aalemi-dev/logkit/logpoint"
	"github.com/aalemi-dev/logkit/observability"
	"github.com/aalemi-dev/logkit/tracer"
)

// Messages of the records written after the intercepted call returns.
const (
	ReturnMessage  = "return {}"
	FailureMessage = "failed"
)

// Invoke runs proceed as a call of m with the given arguments and logs it
// according to m's plan:
//
//  1. If the backend enables the plan's level for the plan's logger, the
//     call is written with its placeholder values. A non-nil trailing error
//     argument is attached as the entry's error, and is also rendered into
//     the template when it has one slot more than the plan has rules.
//  2. proceed is called with ctx.
//  3. A returned error is written as FailureMessage. Otherwise, when the
//     plan logs return values, the converted result is written as
//     ReturnMessage.
//
// The result and error of proceed are returned unchanged. Context variables
// are evaluated once, so every record of the call carries the same fields.
// With WithTracer the whole call runs inside a span named m.Identity().
func (i *Interceptor) Invoke(
	ctx context.Context,
	m *logpoint.Method,
	args []any,
	proceed func(ctx context.Context) (any, error),
) (result any, err error) {
	if m == nil {
		return nil, ErrNilMethod
	}

	plan := i.plans.Get(m)
	if i.tracer != nil {
		var span tracer.Span
		ctx, span = i.tracer.StartSpan(ctx, m.Identity())
		span.SetAttributes(map[string]interface{}{
			"logkit.logger": plan.Logger(),
			"logkit.level":  plan.Level(),
		})
		defer func() {
			if err != nil {
				span.RecordError(err)
			}
			span.End()
		}()
	}

	enabled := i.backend.Enabled(plan.Logger(), plan.Level())

	var (
		fields map[string]any
		values int
	)
	if enabled {
		fields = logcontext.Collect(ctx, i.variables)
		entry := i.callEntry(plan, args, fields)
		values = len(entry.Args)
		i.write(ctx, entry)
	}

	start := time.Now()
	result, err = proceed(ctx)
	elapsed := time.Since(start)

	if enabled {
		switch {
		case err != nil:
			i.write(ctx, logger.Entry{
				Logger:  plan.Logger(),
				Level:   plan.Level(),
				Message: FailureMessage,
				Err:     err,
				Fields:  fields,
			})
		case plan.LogReturnValue():
			i.write(ctx, logger.Entry{
				Logger:  plan.Logger(),
				Level:   plan.Level(),
				Message: ReturnMessage,
				Args:    []any{i.converter.Convert(result)},
				Fields:  fields,
			})
		}
	}

	i.report(plan, m, elapsed, values, err)
	return result, err
}

func (i *Interceptor) callEntry(plan *logpoint.Plan, args []any, fields map[string]any) logger.Entry {
	values := plan.Values(args, i.converter)
	entry := logger.Entry{
		Logger:  plan.Logger(),
		Level:   plan.Level(),
		Message: plan.Message(),
		Fields:  fields,
	}

	if rule, ok := plan.ErrorParam(); ok {
		if err, isErr := rule.Extract(args, nil).(error); isErr && err != nil {
			entry.Err = err
			if plan.Placeholders() > len(values) {
				values = append(values, i.converter.Convert(err))
			}
		}
	}
	entry.Args = values
	return entry
}

func (i *Interceptor) write(ctx context.Context, e logger.Entry) {
	i.backend.Write(ctx, e)
	if i.metrics != nil {
		i.metrics.records.WithLabelValues(e.Level.String()).Inc()
	}
}

func (i *Interceptor) report(plan *logpoint.Plan, m *logpoint.Method, elapsed time.Duration, values int, err error) {
	if i.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		i.metrics.invocations.WithLabelValues(plan.Logger(), outcome).Inc()
	}
	if i.observer != nil {
		i.observer.ObserveOperation(observability.OperationContext{
			Component:   component,
			Operation:   "invoke",
			Resource:    plan.Logger(),
			SubResource: m.Identity(),
			Duration:    elapsed,
			Error:       err,
			Size:        int64(values),
			Metadata:    map[string]interface{}{"level": plan.Level().String()},
		})
	}
}

// Call is a typed form of Invoke for methods returning a value and an error.
func Call[T any](
	ctx context.Context,
	i *Interceptor,
	m *logpoint.Method,
	args []any,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	res, err := i.Invoke(ctx, m, args, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	out, _ := res.(T)
	return out, err
}

// Run is a form of Invoke for methods returning only an error.
func Run(ctx context.Context, i *Interceptor, m *logpoint.Method, args []any, fn func(ctx context.Context) error) error {
	_, err := i.Invoke(ctx, m, args, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	})
	return err
}
