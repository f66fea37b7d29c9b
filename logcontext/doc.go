// Package logcontext provides the contextual variables attached to every
// record an intercepted call emits.
//
// Variables are evaluated once per call and added to the record as
// structured fields:
//
//	vars := append(logcontext.TraceVariables(),
//	    logcontext.InvocationID(),
//	    logcontext.FromContext("tenant", tenantKey{}),
//	)
//	fields := logcontext.Collect(ctx, vars)
//
// TraceVariables read the OpenTelemetry span from the context, so records
// correlate with distributed traces without any further setup.
package logcontext
