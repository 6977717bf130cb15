package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mooh"

// Collector holds the service counters. A nil *Collector is valid and
// records nothing.
type Collector struct {
	selections     *prometheus.CounterVec
	quotaRaces     prometheus.Counter
	rejectedTraces prometheus.Counter
	skipped        prometheus.Counter
	routeDistance  prometheus.Histogram

	gatherer prometheus.Gatherer
}

// NewCollector creates the collectors and registers them on a fresh
// registry together with the Go and process collectors.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "Position reports answered, by outcome (campaign or fallback).",
		}, []string{"outcome"}),
		quotaRaces: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_races_lost_total",
			Help:      "Selected campaigns whose quota was consumed by a concurrent dispatch.",
		}),
		rejectedTraces: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_traces_total",
			Help:      "Route traces that failed to decode.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_campaigns_total",
			Help:      "Pending campaigns left out of selection because their windows could not be decoded.",
		}),
		routeDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_distance_km",
			Help:      "Distance of ingested route traces.",
			Buckets:   []float64{0.2, 0.5, 1, 2, 5, 10, 25, 50, 100},
		}),
		gatherer: reg,
	}
	reg.MustRegister(
		c.selections, c.quotaRaces, c.rejectedTraces, c.skipped, c.routeDistance,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func (c *Collector) Selected(fallback bool) {
	if c == nil {
		return
	}
	outcome := "campaign"
	if fallback {
		outcome = "fallback"
	}
	c.selections.WithLabelValues(outcome).Inc()
}

func (c *Collector) QuotaRaceLost() {
	if c == nil {
		return
	}
	c.quotaRaces.Inc()
}

func (c *Collector) TraceRejected() {
	if c == nil {
		return
	}
	c.rejectedTraces.Inc()
}

func (c *Collector) CampaignsSkipped(n int) {
	if c == nil {
		return
	}
	c.skipped.Add(float64(n))
}

func (c *Collector) RouteIngested(distanceKm float64) {
	if c == nil {
		return
	}
	c.routeDistance.Observe(distanceKm)
}
