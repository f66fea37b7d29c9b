package interceptor

import (
	"github.com/aalemi-dev/logkit/logcontext"
	"github.com/aalemi-dev/logkit/logpoint"
	"github.com/aalemi-dev/logkit/metrics"
	"github.com/aalemi-dev/logkit/observability"
	"github.com/aalemi-dev/logkit/tracer"
)

type options struct {
	converter logpoint.Converter
	variables []logcontext.Variable
	collector metrics.MetricsCollector
	observer  observability.Observer
	tracer    tracer.Tracer
}

// Option configures an Interceptor or a PlanCache.
type Option func(*options)

// WithConverter sets the converter applied to live argument values and
// return values. The default is convert.NewRegistry().
func WithConverter(c logpoint.Converter) Option {
	return func(o *options) {
		if c != nil {
			o.converter = c
		}
	}
}

// WithVariables appends context variables evaluated once per call.
func WithVariables(vars ...logcontext.Variable) Option {
	return func(o *options) {
		o.variables = append(o.variables, vars...)
	}
}

// WithMetrics registers the plan and invocation metrics on c.
func WithMetrics(c metrics.MetricsCollector) Option {
	return func(o *options) {
		o.collector = c
	}
}

// WithObserver reports "build" and "invoke" operations to obs.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithTracer opens a span named after the method identity around every
// intercepted call. The span's context is passed on to the method and to
// the context variables.
func WithTracer(t tracer.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
