// Package controllers agrupa los controllers HTTP.
//
//	services.New(deps) → controllers.New(svcs, publicURL) → router.New(ctrls, …)
package controllers

import (
	"github.com/dropDatabas3/mailcheck/internal/http/controllers/health"
	"github.com/dropDatabas3/mailcheck/internal/http/controllers/index"
	"github.com/dropDatabas3/mailcheck/internal/http/controllers/mailing"
	"github.com/dropDatabas3/mailcheck/internal/http/services"
)

// Controllers agrupa los controllers por dominio.
type Controllers struct {
	Index   *index.IndexController
	Health  *health.HealthController
	Mailing *mailing.MailingController
}

// New construye los controllers inyectando los services.
func New(svcs services.Services, publicURL string) *Controllers {
	return &Controllers{
		Index:   index.NewIndexController(publicURL),
		Health:  health.NewHealthController(svcs.Health),
		Mailing: mailing.NewMailingController(svcs.Mailing),
	}
}
