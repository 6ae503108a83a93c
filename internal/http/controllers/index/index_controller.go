// Package index contiene el controller de la ruta raíz.
package index

import (
	"net/http"

	dto "github.com/dropDatabas3/mailcheck/internal/http/dto/index"
	"github.com/dropDatabas3/mailcheck/internal/http/helpers"
)

// IndexController describe el servidor y sus endpoints.
type IndexController struct {
	publicURL string
}

// NewIndexController crea el controller. publicURL se usa en el texto de uso.
func NewIndexController(publicURL string) *IndexController {
	return &IndexController{publicURL: publicURL}
}

// Index maneja GET /
func (c *IndexController) Index(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, dto.IndexResponse{
		Message: "Email Test Server for Student Mentoring System",
		AvailableEndpoints: []string{
			"GET / - This message",
			"GET /health - Health check",
			"GET /test-email - Send test email",
		},
		Usage: "Visit " + c.publicURL + "/test-email to test email functionality",
	})
}
