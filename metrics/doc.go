// Package metrics provides Prometheus registries and servers for logkit
// processes.
//
// Two registries are kept apart:
//
//  1. System registry: Go runtime, process and build info collectors.
//  2. Application registry: metrics created through MetricsCollector, such as
//     the plan cache and invocation metrics of the interceptor package.
//
// Each registry may be served on its own /metrics endpoint. An empty address
// disables the server but keeps the registry, so metrics can still be
// gathered in-process.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: creates counters, gauges and histograms
//   - Metrics struct: concrete implementation
//   - NewMetrics constructor: returns *Metrics
//   - FXModule: provides *Metrics and MetricsCollector, and manages server lifecycle
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.Config{
//		ApplicationMetricsAddress: ":9091",
//		ServiceName:               "orders",
//	})
//	go m.ApplicationServer.ListenAndServe()
//
//	built := m.CreateCounter("logkit_plans_built_total", "Log plans compiled", []string{"logger"})
//	built.WithLabelValues("orders.Service").Inc()
//
// # Configuration
//
// When loaded through the config package:
//
//	METRICS_SYSTEM_ADDRESS=:9090
//	METRICS_APPLICATION_ADDRESS=:9091
//	METRICS_SERVICE_NAME=orders
//
// All metrics carry a constant "service" label with the configured name.
package metrics
