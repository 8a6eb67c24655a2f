package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MrJamesThe3rd/tally/internal/http/account"
	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	"github.com/MrJamesThe3rd/tally/internal/http/journal"
	"github.com/MrJamesThe3rd/tally/internal/http/reconcile"
	"github.com/MrJamesThe3rd/tally/internal/http/render"
	"github.com/MrJamesThe3rd/tally/internal/http/statement"
	"github.com/MrJamesThe3rd/tally/internal/metrics"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
	Verifier       *auth.Verifier
	DB             Pinger
}

func New(
	opts Options,
	accountsV1 *account.Handler,
	journalsV1 *journal.Handler,
	statementsV1 *statement.Handler,
	reconcileV1 *reconcile.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", auth.HeaderUserID},
		MaxAge:         300,
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", health(opts.DB))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(opts.Timeout))
		r.Use(opts.Verifier.Middleware)

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		r.Route("/journals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			journalsV1.Routes(r)
		})

		r.Route("/statements", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			statementsV1.Routes(r)
		})

		r.Route("/reconciliation", reconcileV1.Routes)
	})

	return router
}

func health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			render.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
