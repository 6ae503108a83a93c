// Package health contiene DTOs para el health check.
package health

// HealthEndpoints lista las rutas probe del servidor.
type HealthEndpoints struct {
	TestEmail string `json:"testEmail"`
	Health    string `json:"health"`
}

// HealthResponse es la respuesta de GET /health.
// Timestamp es ISO-8601 UTC con milisegundos.
type HealthResponse struct {
	Status    string          `json:"status"`
	Message   string          `json:"message"`
	Timestamp string          `json:"timestamp"`
	Endpoints HealthEndpoints `json:"endpoints"`
}
