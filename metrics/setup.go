package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates two separate Prometheus registries and their optional
// HTTP servers:
// 1. System metrics (Go runtime, process, build info)
// 2. Application metrics (counters, gauges and histograms created through
// the MetricsCollector interface, such as the interceptor's)
type Metrics struct {
	// SystemServer serves SystemRegistry on /metrics; nil when disabled.
	SystemServer *http.Server

	// ApplicationServer serves ApplicationRegistry on /metrics; nil when disabled.
	ApplicationServer *http.Server

	// SystemRegistry is the Prometheus registry for system-level metrics.
	SystemRegistry *prometheus.Registry

	// ApplicationRegistry is the Prometheus registry for application metrics.
	ApplicationRegistry *prometheus.Registry

	// wrappedApplicationRegisterer adds the service label to every
	// application metric.
	wrappedApplicationRegisterer prometheus.Registerer
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
//
// Parameters:
//   - cfg: Configuration for the metrics servers, including addresses and service name
//
// Returns:
//   - *Metrics: A configured Metrics instance ready for lifecycle management
//     and Fx module integration
//
// Both registries wrap all metrics with a constant `service` label when a
// service name is configured.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    SystemMetricsAddress:      ":9090",
//	    ApplicationMetricsAddress: ":9091",
//	    ServiceName:               "orders",
//	})
//	go m.ApplicationServer.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	var labels prometheus.Labels
	if cfg.ServiceName != "" {
		labels = prometheus.Labels{"service": cfg.ServiceName}
	}

	systemRegistry := prometheus.NewRegistry()
	prometheus.WrapRegistererWith(labels, systemRegistry).MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)

	applicationRegistry := prometheus.NewRegistry()

	m := &Metrics{
		SystemRegistry:               systemRegistry,
		ApplicationRegistry:          applicationRegistry,
		wrappedApplicationRegisterer: prometheus.WrapRegistererWith(labels, applicationRegistry),
	}

	if cfg.SystemMetricsAddress != "" {
		m.SystemServer = newServer(cfg.SystemMetricsAddress, systemRegistry)
	}
	if cfg.ApplicationMetricsAddress != "" {
		m.ApplicationServer = newServer(cfg.ApplicationMetricsAddress, applicationRegistry)
	}
	return m
}

func newServer(addr string, registry *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
