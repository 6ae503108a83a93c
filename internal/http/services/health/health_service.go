// Package health contiene el service del health check.
package health

import (
	"context"
	"time"

	dto "github.com/dropDatabas3/mailcheck/internal/http/dto/health"
	"github.com/dropDatabas3/mailcheck/internal/http/helpers"
)

// HealthService define las operaciones de health check.
type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

type healthService struct {
	now func() time.Time
}

// NewHealthService crea el service. now == nil usa time.Now.
func NewHealthService(now func() time.Time) HealthService {
	if now == nil {
		now = time.Now
	}
	return &healthService{now: now}
}

// Check no consulta la configuración ni el proveedor: sólo confirma que el
// proceso atiende requests.
func (s *healthService) Check(_ context.Context) dto.HealthResponse {
	return dto.HealthResponse{
		Status:    "OK",
		Message:   "Email test server is running",
		Timestamp: helpers.ISOTime(s.now()),
		Endpoints: dto.HealthEndpoints{
			TestEmail: "GET /test-email",
			Health:    "GET /health",
		},
	}
}
