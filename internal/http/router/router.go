// Package router arma el chi.Router con las rutas del servidor.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/mailcheck/internal/http/controllers"
	httperrors "github.com/dropDatabas3/mailcheck/internal/http/errors"
	mw "github.com/dropDatabas3/mailcheck/internal/http/middlewares"
)

// Deps contiene las dependencias del router.
type Deps struct {
	Controllers *controllers.Controllers
	// Metrics es el handler de /metrics. nil deshabilita la ruta y la
	// instrumentación HTTP.
	Metrics http.Handler
}

// New registra todas las rutas. Todas son GET, sin body ni parámetros.
func New(d Deps) http.Handler {
	c := d.Controllers
	r := chi.NewRouter()

	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithSecurityHeaders(),
		mw.WithLogging(),
	)
	if d.Metrics != nil {
		r.Use(mw.WithMetrics())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperrors.WriteError(w, httperrors.ErrRouteNotFound.WithDetail(r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", http.MethodGet)
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed.WithDetail(r.Method+" "+r.URL.Path))
	})

	r.Get("/", c.Index.Index)
	r.Get("/health", c.Health.Health)
	r.With(mw.WithNoStore()).Get("/test-email", c.Mailing.TestEmail)

	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	return r
}
