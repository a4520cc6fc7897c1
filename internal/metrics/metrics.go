// Package metrics defines Prometheus metrics for approveit.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of a change recorder invocation.
const (
	OutcomeNoop             = "noop"
	OutcomeRecorded         = "recorded"
	OutcomeActorError       = "actor_error"
	OutcomeValidationError  = "validation_error"
	OutcomePersistenceError = "persistence_error"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "approveit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approveit_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HistoryInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approveit_history_invocations_total",
			Help: "Change recorder invocations by outcome",
		},
		[]string{"outcome"},
	)

	HistoryEntriesAppended = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "approveit_history_entries_appended_total",
			Help: "Change history rows committed",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal,
		HistoryInvocations, HistoryEntriesAppended,
	)
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
