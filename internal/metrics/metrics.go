package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded for CMS fetches.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Outcomes recorded for lead submissions.
const (
	LeadCreated   = "created"
	LeadDuplicate = "duplicate"
	LeadInvalid   = "invalid"
	LeadFailed    = "error"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry        *prometheus.Registry
	cmsFetches      *prometheus.CounterVec
	leads           *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the site collectors plus the Go/process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		cmsFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dfwhvac_cms_fetch_total",
			Help: "CMS queries by query name and outcome.",
		}, []string{"query", "outcome"}),
		leads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dfwhvac_leads_total",
			Help: "Lead submissions by lead type and outcome.",
		}, []string{"lead_type", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dfwhvac_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.cmsFetches,
		m.leads,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCMSFetch is nil-safe so components can run without metrics.
func (m *Metrics) ObserveCMSFetch(query, outcome string) {
	if m == nil {
		return
	}
	m.cmsFetches.WithLabelValues(query, outcome).Inc()
}

// ObserveLead records one lead submission.
func (m *Metrics) ObserveLead(leadType, outcome string) {
	if m == nil {
		return
	}
	m.leads.WithLabelValues(leadType, outcome).Inc()
}

// CMSFetchCounter returns the counter of one query/outcome pair.
func (m *Metrics) CMSFetchCounter(query, outcome string) prometheus.Counter {
	return m.cmsFetches.WithLabelValues(query, outcome)
}

// LeadCounter returns the counter of one lead type/outcome pair.
func (m *Metrics) LeadCounter(leadType, outcome string) prometheus.Counter {
	return m.leads.WithLabelValues(leadType, outcome)
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware times every request by its route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
