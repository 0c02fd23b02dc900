package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for plan generation.
type Metrics struct {
	registry *prometheus.Registry

	PlansGenerated     *prometheus.CounterVec
	ValidationFailures prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	SPFDropped         prometheus.Counter
	BuildDuration      prometheus.Histogram
}

// New creates the collectors on a fresh registry, so tests can build as many
// instances as they need.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		PlansGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skinplan_plans_generated_total",
			Help: "Total plans built, by routine type",
		}, []string{"routine"}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "skinplan_validation_failures_total",
			Help: "Total surveys rejected as invalid input",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "skinplan_cache_hits_total",
			Help: "Plans served from the plan cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "skinplan_cache_misses_total",
			Help: "Plans built because the cache had no entry",
		}),
		SPFDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "skinplan_spf_dropped_total",
			Help: "Plans whose SPF recommendation was cut by the product cap",
		}),
		BuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skinplan_build_duration_seconds",
			Help:    "Time spent running the rule engine for one uncached plan",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes metrics in Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// ObservePlan records a successfully built plan.
func (m *Metrics) ObservePlan(routine string, seconds float64, spfDropped bool) {
	if m == nil {
		return
	}
	m.PlansGenerated.WithLabelValues(routine).Inc()
	m.BuildDuration.Observe(seconds)
	if spfDropped {
		m.SPFDropped.Inc()
	}
}

// IncValidationFailure counts a rejected survey.
func (m *Metrics) IncValidationFailure() {
	if m == nil {
		return
	}
	m.ValidationFailures.Inc()
}

// ObserveCache counts a cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
		return
	}
	m.CacheMisses.Inc()
}
