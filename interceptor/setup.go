package interceptor

import (
	"github.com/aalemi-dev/logkit/convert"
	"github.com/aalemi-dev/logkit/logcontext"
	"github.com/aalemi-dev/logkit/logger"
	"github.com/aalemi-dev/logkit/logpoint"
	"github.com/aalemi-dev/logkit/observability"
	"github.com/aalemi-dev/logkit/tracer"
)

const component = "logkit"

// Interceptor executes log plans around calls of instrumented methods.
// It is safe for concurrent use.
type Interceptor struct {
	backend   logger.Backend
	plans     *PlanCache
	converter logpoint.Converter
	variables []logcontext.Variable
	metrics   *instruments
	observer  observability.Observer
	tracer    tracer.Tracer
}

// NewInterceptor creates an Interceptor writing to backend.
//
// The variables enabled in cfg come first, followed by any added with
// WithVariables, so a later variable overrides an earlier one of the same
// name.
//
// Example:
//
//	icpt := interceptor.NewInterceptor(interceptor.Config{InvocationID: true}, log,
//	    interceptor.WithMetrics(m),
//	)
//	total, err := interceptor.Call(ctx, icpt, placeOrder, []any{qty, sku},
//	    func(ctx context.Context) (int, error) { return svc.Place(ctx, qty, sku) })
func NewInterceptor(cfg Config, backend logger.Backend, opts ...Option) *Interceptor {
	o := newOptions(opts)
	if o.converter == nil {
		o.converter = convert.NewRegistry()
	}

	instr := newInstruments(o.collector)
	return &Interceptor{
		backend:   backend,
		plans:     newPlanCache(instr, o.observer),
		converter: o.converter,
		variables: append(configVariables(cfg), o.variables...),
		metrics:   instr,
		observer:  o.observer,
		tracer:    o.tracer,
	}
}

func configVariables(cfg Config) []logcontext.Variable {
	var vars []logcontext.Variable
	for name, value := range cfg.Fields {
		vars = append(vars, logcontext.Static(name, value))
	}
	if cfg.TraceFields {
		vars = append(vars, logcontext.TraceVariables()...)
	}
	if cfg.InvocationID {
		vars = append(vars, logcontext.InvocationID())
	}
	return vars
}

// Plans exposes the interceptor's plan cache.
func (i *Interceptor) Plans() *PlanCache {
	return i.plans
}
