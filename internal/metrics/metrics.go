// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JournalsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tally_journals_created_total",
		Help: "Journals persisted.",
	})

	JournalsPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tally_journals_posted_total",
		Help: "Journals transitioned to posted.",
	})

	JournalsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tally_journals_post_skipped_total",
		Help: "Journals skipped during batch posting, by reason.",
	}, []string{"reason"})

	JournalsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tally_journals_rejected_total",
		Help: "Journal creations rejected by validation, by reason.",
	}, []string{"reason"})

	Statements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tally_statements_total",
		Help: "Statement ingestions, by outcome.",
	}, []string{"outcome"})

	BankTransactionsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tally_bank_transactions_generated_total",
		Help: "Bank-ledger rows generated from posted journal lines.",
	})

	ReconciliationRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tally_reconciliation_feed_rows_total",
		Help: "Imported bank-feed rows, by match result.",
	}, []string{"result"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tally_http_requests_total",
		Help: "Total HTTP requests.",
	}, []string{"method", "route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tally_http_request_duration_seconds",
		Help:    "Request latency.",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"method", "route"})
)

// Middleware records request counts and latency labelled by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
