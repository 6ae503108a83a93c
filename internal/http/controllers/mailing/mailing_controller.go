// Package mailing contiene el controller del envío de prueba.
package mailing

import (
	"net/http"

	"github.com/dropDatabas3/mailcheck/internal/http/helpers"
	svc "github.com/dropDatabas3/mailcheck/internal/http/services/mailing"
	"github.com/dropDatabas3/mailcheck/internal/observability/logger"
)

// MailingController maneja GET /test-email.
type MailingController struct {
	service svc.MailingService
}

// NewMailingController crea el controller.
func NewMailingController(service svc.MailingService) *MailingController {
	return &MailingController{service: service}
}

// TestEmail ejecuta verify → send. Cualquier error es 500 con troubleshooting fijo.
func (c *MailingController) TestEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("MailingController.TestEmail"))

	resp, err := c.service.SendTestEmail(ctx)
	if err != nil {
		log.Error("email test failed", logger.Err(err))
		helpers.WriteJSON(w, http.StatusInternalServerError, svc.Failure(err))
		return
	}

	helpers.WriteJSON(w, http.StatusOK, resp)
}
