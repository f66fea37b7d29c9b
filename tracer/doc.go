// Package tracer provides OpenTelemetry tracing for intercepted calls.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Tracer interface: starts spans
//   - TracerClient struct: concrete implementation backed by an SDK TracerProvider
//   - Span interface: ends spans, sets attributes and records errors
//   - FXModule: provides *TracerClient and Tracer and shuts the provider down
//
// # Usage
//
//	tc, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "orders",
//		AppEnv:       "production",
//		EnableExport: true,
//	})
//	if err != nil {
//		return err
//	}
//	defer tc.Shutdown(context.Background())
//
//	ctx, span := tc.StartSpan(ctx, "orders.Service.PlaceOrder")
//	defer span.End()
//
// Passed to interceptor.WithTracer, the client opens one span per
// intercepted call. The span's context reaches the intercepted method and
// the trace_id/span_id context variables, so log records and spans
// correlate.
//
// # Configuration
//
//	TRACER_SERVICE_NAME=orders
//	TRACER_APP_ENV=production
//	TRACER_ENABLE_EXPORT=true
//	OTEL_EXPORTER_OTLP_ENDPOINT=http://collector:4318
package tracer
