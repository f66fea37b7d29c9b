package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/logkit/logger"
)

// FXModule provides *TracerClient and Tracer, and shuts the provider down
// when the application stops.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    interceptor.FXModule,
//	)
//
// Dependencies required by this module:
//   - tracer.Config
//   - logger.Logger
var FXModule = fx.Module("tracer",
	fx.Provide(
		func(cfg Config) (*TracerClient, error) { return NewClient(cfg) },
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle flushes and shuts down the tracer provider when
// the application stops.
func RegisterTracerLifecycle(lc fx.Lifecycle, tc *TracerClient, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down tracer", nil)
			return tc.Shutdown(ctx)
		},
	})
}
