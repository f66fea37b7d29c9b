package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates a new counter metric and registers it to the
// application metrics registry.
//
// Example:
//
//	counter := m.CreateCounter("logkit_plans_built_total", "Log plans compiled", []string{"logger"})
//	counter.WithLabelValues("orders.Service").Inc()
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
	m.wrappedApplicationRegisterer.MustRegister(vec)
	return &counterVec{vec: vec}
}

// CreateHistogram creates a new histogram metric and registers it to the
// application metrics registry. A nil buckets slice selects
// prometheus.DefBuckets.
//
// Example:
//
//	hist := m.CreateHistogram(
//	    "logkit_plan_build_seconds",
//	    "Time spent compiling a log plan",
//	    nil,
//	    []float64{.00001, .0001, .001, .01},
//	)
//	hist.Observe(0.00025)
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, labels)
	m.wrappedApplicationRegisterer.MustRegister(vec)
	return &histogramVec{vec: vec}
}

// CreateGauge creates a new gauge metric and registers it to the
// application metrics registry.
//
// Example:
//
//	gauge := m.CreateGauge("logkit_cached_plans", "Log plans held by the cache", nil)
//	gauge.Set(42)
func (m *Metrics) CreateGauge(name, help string, labels []string) Gauge {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels)
	m.wrappedApplicationRegisterer.MustRegister(vec)
	return &gaugeVec{vec: vec}
}
