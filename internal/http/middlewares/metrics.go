package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/mailcheck/internal/metrics"
)

// unmatchedRoute agrupa 404/405 para no explotar la cardinalidad del label path.
const unmatchedRoute = "unmatched"

// WithMetrics instrumenta requests HTTP (contador, latencia, inflight).
// Debe montarse con router.Use para que el patrón de chi esté disponible.
func WithMetrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := metrics.TrackInflight(r.Method)
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			defer func() {
				done()
				metrics.ObserveHTTP(r.Method, routePattern(r), rec.status, time.Since(start))
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
