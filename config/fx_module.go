package config

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/logkit/interceptor"
	"github.com/aalemi-dev/logkit/logger"
	"github.com/aalemi-dev/logkit/metrics"
	"github.com/aalemi-dev/logkit/tracer"
)

// FXModule splits a provided *Config into the per-component configs the
// logger, metrics, tracer and interceptor modules depend on.
//
// Usage:
//
//	cfg, err := config.Load("logkit.yaml")
//	if err != nil {
//	    return err
//	}
//	app := fx.New(
//	    fx.Supply(cfg),
//	    config.FXModule,
//	    logger.FXModule,
//	    metrics.FXModule,
//	    tracer.FXModule,
//	    interceptor.FXModule,
//	)
var FXModule = fx.Module("config",
	fx.Provide(
		func(c *Config) logger.Config { return c.Logger },
		func(c *Config) metrics.Config { return c.Metrics },
		func(c *Config) interceptor.Config { return c.Interceptor },
		func(c *Config) tracer.Config { return c.Tracer },
	),
)
