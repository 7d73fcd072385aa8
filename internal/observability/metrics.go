package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the service.
type Metrics struct {
	// HTTP metrics.
	HTTPRequests        *prometheus.CounterVec   // labels: method, path, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, path

	// Alert pipeline metrics.
	AlertEventsQueued    prometheus.Counter
	AlertEventsDelivered *prometheus.CounterVec // labels: outcome={success,failure}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wildfire_risk",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wildfire_risk",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request handling duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "path"}),
		AlertEventsQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wildfire_risk",
			Name:      "alert_events_queued_total",
			Help:      "Alert events pushed onto the delivery queue.",
		}),
		AlertEventsDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wildfire_risk",
			Name:      "alert_events_delivered_total",
			Help:      "Alert webhook delivery attempts by final outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.AlertEventsQueued,
		m.AlertEventsDelivered,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "wildfire_risk", Name: "http_requests_total"}, []string{"method", "path", "status"}),
		HTTPRequestDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "wildfire_risk", Name: "http_request_duration_seconds"}, []string{"method", "path"}),
		AlertEventsQueued:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "wildfire_risk", Name: "alert_events_queued_total"}),
		AlertEventsDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "wildfire_risk", Name: "alert_events_delivered_total"}, []string{"outcome"}),
	}
}

// GinMiddleware records request counts and durations per route. The route
// template is used instead of the raw path to keep label cardinality low.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
