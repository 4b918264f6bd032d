// Package metrics exposes Prometheus collectors for the landing site.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded for form submissions.
const (
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeDuplicate   = "duplicate"
	OutcomeRateLimited = "rate_limited"
	OutcomeError       = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	DemoRequests      *prometheus.CounterVec
	NewsletterSignups *prometheus.CounterVec
	BillingToggles    *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

// New registers the site collectors, plus the Go and process collectors, on
// a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		DemoRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "demo_requests_total",
			Help:      "Demo request form submissions by outcome.",
		}, []string{"outcome"}),
		NewsletterSignups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "newsletter_signups_total",
			Help:      "Newsletter form submissions by outcome.",
		}, []string{"outcome"}),
		BillingToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "billing_toggles_total",
			Help:      "Pricing billing cycle switches by selected cycle.",
		}, []string{"cycle"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "landing",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(
		m.DemoRequests,
		m.NewsletterSignups,
		m.BillingToggles,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware observes request durations labelled with the chi route pattern,
// so /contact and /contact?x=1 share a series and unknown paths collapse
// into "unmatched".
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
