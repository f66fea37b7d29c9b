package interceptor

import (
	"github.com/aalemi-dev/logkit/metrics"
)

// Metric names registered by WithMetrics.
const (
	MetricPlansBuilt     = "logkit_plans_built_total"
	MetricPlanBuildTime  = "logkit_plan_build_seconds"
	MetricCachedPlans    = "logkit_cached_plans"
	MetricInvocations    = "logkit_invocations_total"
	MetricRecordsWritten = "logkit_records_written_total"
)

var buildBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01}

type instruments struct {
	plansBuilt  metrics.Counter
	buildTime   metrics.Histogram
	cachedPlans metrics.Gauge
	invocations metrics.Counter
	records     metrics.Counter
}

func newInstruments(c metrics.MetricsCollector) *instruments {
	if c == nil {
		return nil
	}
	return &instruments{
		plansBuilt:  c.CreateCounter(MetricPlansBuilt, "Log plans compiled, by logger.", []string{"logger"}),
		buildTime:   c.CreateHistogram(MetricPlanBuildTime, "Time spent compiling one log plan.", nil, buildBuckets),
		cachedPlans: c.CreateGauge(MetricCachedPlans, "Log plans held by the plan cache.", nil),
		invocations: c.CreateCounter(MetricInvocations, "Intercepted calls, by logger and outcome.", []string{"logger", "outcome"}),
		records:     c.CreateCounter(MetricRecordsWritten, "Records handed to the backend, by level.", []string{"level"}),
	}
}
