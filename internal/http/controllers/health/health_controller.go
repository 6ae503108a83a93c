// Package health contiene el controller del health check.
package health

import (
	"net/http"

	"github.com/dropDatabas3/mailcheck/internal/http/helpers"
	svc "github.com/dropDatabas3/mailcheck/internal/http/services/health"
)

// HealthController maneja GET /health.
type HealthController struct {
	service svc.HealthService
}

// NewHealthController crea un nuevo controller de health check.
func NewHealthController(service svc.HealthService) *HealthController {
	return &HealthController{service: service}
}

// Health siempre responde 200; no depende de la config de mail.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, c.service.Check(r.Context()))
}
