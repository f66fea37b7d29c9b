package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/logkit/logger"
)

// FXModule provides *Metrics and MetricsCollector and registers lifecycle
// hooks for the configured metrics servers.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ApplicationMetricsAddress: ":9091", ServiceName: "orders"}
//	    }),
//	)
//
// Dependencies required by this module:
//   - metrics.Config
//   - logger.Logger for startup and shutdown logs
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the configured metrics servers in
// background goroutines on start and shuts them down gracefully on stop.
// Servers disabled by an empty address are skipped.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log logger.Logger) {
	servers := []struct {
		name   string
		server *http.Server
	}{
		{"system", m.SystemServer},
		{"application", m.ApplicationServer},
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, s := range servers {
				if s.server == nil {
					continue
				}
				go func(name string, srv *http.Server) {
					log.Info("Starting metrics server", nil, map[string]interface{}{
						"endpoint": name,
						"address":  srv.Addr,
					})
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error("Error starting metrics server", err, map[string]interface{}{"endpoint": name})
					}
				}(s.name, s.server)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, s := range servers {
				if s.server == nil {
					continue
				}
				log.Info("Shutting down metrics server", nil, map[string]interface{}{"endpoint": s.name})
				if err := s.server.Shutdown(ctx); err != nil {
					log.Error("Error shutting down metrics server", err, map[string]interface{}{"endpoint": s.name})
				}
			}
			return nil
		},
	})
}
