// Package monitoring records advisory traffic as Prometheus metrics.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sells-group/succession-cli/internal/model"
)

// Collector counts analyses by scenario and timeframe, and rejected requests
// by reason. Each Collector owns its registry so tests and servers do not
// share global state.
type Collector struct {
	registry *prometheus.Registry
	analyses *prometheus.CounterVec
	rejected *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "analyses_total",
			Help:      "Reports produced, by succession scenario and handover timeframe.",
		}, []string{"scenario", "timeframe"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "rejected_requests_total",
			Help:      "Requests rejected before analysis, by reason.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "advisor",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent decoding, validating, and analyzing one request.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
	}
	c.registry.MustRegister(c.analyses, c.rejected, c.duration)
	return c
}

// ObserveAnalysis records one produced report.
func (c *Collector) ObserveAnalysis(scenario model.Scenario, timeframe model.Timeframe, elapsed time.Duration) {
	c.analyses.WithLabelValues(scenario.String(), string(timeframe)).Inc()
	c.duration.Observe(elapsed.Seconds())
}

// ObserveRejection records one rejected request.
func (c *Collector) ObserveRejection(reason string) {
	c.rejected.WithLabelValues(reason).Inc()
}

// Handler serves the collector's metrics in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
