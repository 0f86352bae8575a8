package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	provisioning         *prometheus.CounterVec
	provisioningDuration *prometheus.HistogramVec
	mutations            *prometheus.CounterVec
	httpRequests         *prometheus.CounterVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		provisioning: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catalog",
				Name:      "provisioning_total",
				Help:      "Template applications by template and outcome.",
			},
			[]string{"template", "outcome"},
		),
		provisioningDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "catalog",
				Name:      "provisioning_duration_seconds",
				Help:      "Duration of template applications.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"template"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catalog",
				Name:      "mutations_total",
				Help:      "Single-entity catalog mutations by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catalog",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
	}
	m.registry.MustRegister(m.provisioning, m.provisioningDuration, m.mutations, m.httpRequests)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveProvisioning records one template application. A nil receiver is a no-op.
func (m *Metrics) ObserveProvisioning(templateID string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.provisioning.WithLabelValues(templateID, outcome(err)).Inc()
	m.provisioningDuration.WithLabelValues(templateID).Observe(d.Seconds())
}

// ObserveMutation records one catalog mutation. A nil receiver is a no-op.
func (m *Metrics) ObserveMutation(operation string, err error) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(operation, outcome(err)).Inc()
}

// GinMiddleware counts requests by matched route template.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
