package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rider-dispatch/internal/http/handlers"
	obs "rider-dispatch/internal/http/middleware"
	"rider-dispatch/internal/http/middleware/ratelimit"
	"rider-dispatch/internal/logx"
)

// Deps groups everything the router mounts.
type Deps struct {
	Base        *handlers.Handlers
	Dispatch    *handlers.DispatchHandler
	Assignments *handlers.AssignmentHandler
	Riders      *handlers.RiderHandler
	Logger      logx.Logger
	HTTPMetrics *obs.HTTPMetrics
	RateLimit   *ratelimit.Middleware
	Metrics     http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(d.Logger, d.HTTPMetrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/dispatch", func(r chi.Router) {
		r.Post("/", d.Dispatch.Dispatch)
		r.Post("/manual", d.Dispatch.AssignManually)
		r.Post("/claim", d.Dispatch.Claim)
	})

	r.Route("/assignments/{id}", func(r chi.Router) {
		r.Get("/", d.Assignments.Get)
		r.Post("/accept", d.Assignments.Accept)
		r.Post("/reject", d.Assignments.Reject)
		r.Post("/pickup", d.Assignments.Pickup)
		r.Post("/deliver", d.Assignments.Deliver)
		r.Post("/cancel", d.Assignments.Cancel)
		r.Post("/rating", d.Assignments.Rate)
	})

	r.Route("/riders", func(r chi.Router) {
		r.Get("/candidates", d.Riders.Candidates)
		r.Route("/{id}", func(r chi.Router) {
			var loc chi.Router = r
			if d.RateLimit != nil {
				loc = r.With(d.RateLimit.Handler())
			}
			loc.Post("/location", d.Riders.RecordLocation)
			r.Get("/location", d.Riders.CurrentLocation)
			r.Get("/locations", d.Riders.History)
			r.Put("/status", d.Riders.SetStatus)
		})
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}

// RiderKey buckets rate limiting by the {id} URL parameter.
func RiderKey(r *http.Request) string {
	if id := chi.URLParam(r, "id"); id != "" {
		return "rider:" + id
	}
	return "rider:unknown"
}
