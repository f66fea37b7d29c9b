package metrics

// MetricsCollector creates application metrics without exposing Prometheus
// types to callers. The interceptor package records its plan and invocation
// metrics through it.
//
// All metrics created through this interface are registered to the
// application registry and served on the application endpoint when one is
// configured.
type MetricsCollector interface {
	// CreateCounter creates and registers a counter.
	//
	// Example:
	//   counter := m.CreateCounter("logkit_invocations_total", "Intercepted calls", []string{"logger", "outcome"})
	//   counter.WithLabelValues("orders.Service", "ok").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram creates and registers a histogram with the given buckets.
	//
	// Example:
	//   hist := m.CreateHistogram("logkit_plan_build_seconds", "Plan build time", nil, prometheus.DefBuckets)
	//   hist.Observe(0.0002)
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram

	// CreateGauge creates and registers a gauge.
	//
	// Example:
	//   gauge := m.CreateGauge("logkit_cached_plans", "Plans held by the cache", nil)
	//   gauge.Set(12)
	CreateGauge(name, help string, labels []string) Gauge
}
