package interceptor

import (
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/aalemi-dev/logkit/logpoint"
	"github.com/aalemi-dev/logkit/observability"
)

// PlanCache compiles each method's plan at most once and shares it between
// all callers. Plans are keyed by Method.Identity and never expire.
//
// Concurrent first calls for the same identity wait for a single build.
type PlanCache struct {
	store    *cache.Cache
	group    singleflight.Group
	metrics  *instruments
	observer observability.Observer
}

// NewPlanCache creates an empty cache. WithMetrics and WithObserver are
// honoured; other options are ignored.
func NewPlanCache(opts ...Option) *PlanCache {
	o := newOptions(opts)
	return newPlanCache(newInstruments(o.collector), o.observer)
}

func newPlanCache(instr *instruments, obs observability.Observer) *PlanCache {
	return &PlanCache{
		store:    cache.New(cache.NoExpiration, 0),
		metrics:  instr,
		observer: obs,
	}
}

// Get returns the plan for m, building it on first use.
func (c *PlanCache) Get(m *logpoint.Method) *logpoint.Plan {
	key := m.Identity()
	if p, ok := c.store.Get(key); ok {
		return p.(*logpoint.Plan)
	}

	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		if p, ok := c.store.Get(key); ok {
			return p, nil
		}
		plan := c.build(m)
		c.store.Set(key, plan, cache.NoExpiration)
		if c.metrics != nil {
			c.metrics.cachedPlans.Set(float64(c.store.ItemCount()))
		}
		return plan, nil
	})
	return v.(*logpoint.Plan)
}

func (c *PlanCache) build(m *logpoint.Method) *logpoint.Plan {
	start := time.Now()
	plan := logpoint.Build(m)
	elapsed := time.Since(start)

	if c.metrics != nil {
		c.metrics.plansBuilt.WithLabelValues(plan.Logger()).Inc()
		c.metrics.buildTime.Observe(elapsed.Seconds())
	}
	if c.observer != nil {
		c.observer.ObserveOperation(observability.OperationContext{
			Component:   component,
			Operation:   "build",
			Resource:    plan.Logger(),
			SubResource: m.Identity(),
			Duration:    elapsed,
			Size:        int64(plan.Placeholders()),
			Metadata: map[string]interface{}{
				"level":       plan.Level().String(),
				"diagnostics": Diagnostics(plan),
			},
		})
	}
	return plan
}

// Len is the number of cached plans.
func (c *PlanCache) Len() int {
	return c.store.ItemCount()
}

// Flush drops every cached plan. Plans already handed out stay valid.
func (c *PlanCache) Flush() {
	c.store.Flush()
	if c.metrics != nil {
		c.metrics.cachedPlans.Set(0)
	}
}

// Diagnostics counts the static rules of p: placeholders whose expression
// could not be resolved to a parameter.
func Diagnostics(p *logpoint.Plan) int {
	n := 0
	for _, r := range p.Params() {
		if r.IsStatic() {
			n++
		}
	}
	return n
}
