package interceptor

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/logkit/logpoint"
	"github.com/aalemi-dev/logkit/metrics"
)

func TestPlanCache_GetCachesByIdentity(t *testing.T) {
	t.Parallel()
	c := NewPlanCache()
	m := &logpoint.Method{Name: "Get", Scopes: []logpoint.Scope{{Name: "store.Client"}}}

	first := c.Get(m)
	second := c.Get(&logpoint.Method{Name: "Get", Scopes: []logpoint.Scope{{Name: "store.Client"}}})

	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())

	c.Get(&logpoint.Method{Name: "Put", Scopes: []logpoint.Scope{{Name: "store.Client"}}})
	assert.Equal(t, 2, c.Len())
}

func TestPlanCache_FlushForcesRebuild(t *testing.T) {
	t.Parallel()
	m := metrics.NewMetrics(metrics.Config{})
	c := NewPlanCache(WithMetrics(m))
	method := &logpoint.Method{Name: "Get"}

	before := c.Get(method)
	assert.NoError(t, testutil.GatherAndCompare(m.ApplicationRegistry, strings.NewReader(`
# HELP logkit_cached_plans Log plans held by the plan cache.
# TYPE logkit_cached_plans gauge
logkit_cached_plans 1
`), MetricCachedPlans))

	c.Flush()
	assert.Equal(t, 0, c.Len())

	after := c.Get(method)
	assert.NotSame(t, before, after)
	assert.Equal(t, before, after)
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()
	plan := logpoint.Build(&logpoint.Method{
		Name:   "Find",
		Params: []logpoint.Parameter{{Name: "id"}},
		Logged: &logpoint.Logged{Message: "find {0} {1} {x}"},
	})
	require.Equal(t, 3, plan.Placeholders())
	assert.Equal(t, 2, Diagnostics(plan))
}
