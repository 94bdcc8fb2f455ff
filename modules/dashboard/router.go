package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures what the dashboard router serves.
// Only Dashboard is required.
type RouterOptions struct {
	Dashboard Mountable

	// Metrics is served on /metrics when set.
	Metrics http.Handler
	// Liveness and Readiness are served under /health when set.
	Liveness  http.Handler
	Readiness http.Handler

	// Middlewares wrap every route, probes included.
	Middlewares []func(http.Handler) http.Handler
}

// Router creates the top-level router of the admin dashboard.
//
// Example:
//
//	svc := dashboard.NewService(cfg, scanner, remediator, store, views.Dashboard(), errHandler)
//	r := dashboard.Router(dashboard.RouterOptions{
//	    Dashboard: svc,
//	    Metrics:   metrics.Handler(reg),
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(opts.Middlewares...)

	if opts.Liveness != nil || opts.Readiness != nil {
		r.Route("/health", func(h chi.Router) {
			if opts.Liveness != nil {
				h.Method(http.MethodGet, "/live", opts.Liveness)
			}
			if opts.Readiness != nil {
				h.Method(http.MethodGet, "/ready", opts.Readiness)
			}
		})
	}
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Mount("/", opts.Dashboard.Handle())

	return r
}
