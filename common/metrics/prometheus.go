// Package metrics exposes Prometheus instruments for the card tracker API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "card_tracker"

// Ingestion outcomes.
const (
	OutcomeStored        = "stored"
	OutcomeUpstreamError = "upstream_error"
	OutcomeStoreError    = "store_error"
)

// Recorder owns the service's instruments on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	ingestions          *prometheus.CounterVec
	eventsStored        prometheus.Counter
	upstreamDuration    *prometheus.HistogramVec
}

// New builds a Recorder registered on a fresh registry that also carries the
// Go runtime and process collectors.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(reg)

	return &Recorder{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		ingestions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "ingestions_total",
			Help:      "Card history ingestions by outcome.",
		}, []string{"outcome"}),
		eventsStored: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "events_stored_total",
			Help:      "Normalized card events written to the store.",
		}),
		upstreamDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "trello",
			Name:      "fetch_duration_seconds",
			Help:      "Latency of Trello API calls by operation and status code.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"op", "status"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (r *Recorder) RecordIngestion(outcome string, stored int) {
	if r == nil {
		return
	}
	r.ingestions.WithLabelValues(outcome).Inc()
	if stored > 0 {
		r.eventsStored.Add(float64(stored))
	}
}

// ObserveUpstream records a Trello call. status is 0 for transport failures.
func (r *Recorder) ObserveUpstream(op string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.upstreamDuration.WithLabelValues(op, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
