package tracer

import (
	"context"
)

// Tracer starts spans. The interceptor package opens one span per
// intercepted call when given a Tracer.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	// StartSpan creates a span named name as a child of the span in ctx,
	// if any, and returns a context carrying it. Call Span.End when the
	// operation completes.
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span is a single traced operation.
type Span interface {
	// End completes the span and hands it to the configured exporters.
	End()

	// SetAttributes adds key-value attributes. Scalars keep their type,
	// fmt.Stringer values are stored as their String form and anything
	// else is formatted with fmt.Sprint.
	//
	// Example:
	//   span.SetAttributes(map[string]interface{}{
	//     "logkit.logger": "orders.Service",
	//     "logkit.level":  "INFO",
	//   })
	SetAttributes(attrs map[string]interface{})

	// RecordError records err on the span and marks the span as failed.
	// A nil err is ignored.
	RecordError(err error)
}
