package interceptor

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/logkit/logcontext"
	"github.com/aalemi-dev/logkit/logger"
	"github.com/aalemi-dev/logkit/logpoint"
	"github.com/aalemi-dev/logkit/metrics"
	"github.com/aalemi-dev/logkit/observability"
	"github.com/aalemi-dev/logkit/tracer"
)

// FXModule provides *Interceptor and its *PlanCache.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    interceptor.FXModule,
//	    fx.Provide(func() interceptor.Config { return interceptor.Config{InvocationID: true} }),
//	)
//
// Dependencies required by this module:
//   - interceptor.Config
//   - logger.Backend
//
// Optional dependencies picked up when present:
//   - metrics.MetricsCollector
//   - observability.Observer
//   - logpoint.Converter
//   - tracer.Tracer
//   - []logcontext.Variable tagged `group:"logcontext"`
var FXModule = fx.Module("interceptor",
	fx.Provide(
		NewFromParams,
		func(i *Interceptor) *PlanCache { return i.Plans() },
	),
)

// Params are the dependencies NewFromParams accepts from fx.
type Params struct {
	fx.In

	Config    Config
	Backend   logger.Backend
	Collector metrics.MetricsCollector `optional:"true"`
	Observer  observability.Observer   `optional:"true"`
	Converter logpoint.Converter       `optional:"true"`
	Tracer    tracer.Tracer            `optional:"true"`
	Variables []logcontext.Variable    `group:"logcontext"`
}

// NewFromParams builds an Interceptor from injected dependencies.
func NewFromParams(p Params) *Interceptor {
	return NewInterceptor(p.Config, p.Backend,
		WithMetrics(p.Collector),
		WithObserver(p.Observer),
		WithConverter(p.Converter),
		WithTracer(p.Tracer),
		WithVariables(p.Variables...),
	)
}
