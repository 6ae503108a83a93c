// Package services agrupa los services HTTP. Es el "composition root" de la
// capa: main arma Deps, services.New construye todo y controllers.New los
// consume.
package services

import (
	"time"

	"github.com/dropDatabas3/mailcheck/internal/config"
	"github.com/dropDatabas3/mailcheck/internal/email"
	"github.com/dropDatabas3/mailcheck/internal/http/services/health"
	"github.com/dropDatabas3/mailcheck/internal/http/services/mailing"
)

// Deps contiene las dependencias compartidas por los services.
type Deps struct {
	Mail      config.Mail
	Transport email.Factory    // nil => SMTP real
	Now       func() time.Time // nil => time.Now
}

// Services agrupa los services por dominio.
type Services struct {
	Health  health.HealthService
	Mailing mailing.MailingService
}

// New construye todos los services.
func New(d Deps) Services {
	return Services{
		Health: health.NewHealthService(d.Now),
		Mailing: mailing.NewMailingService(mailing.Deps{
			Mail:      d.Mail,
			Transport: d.Transport,
			Now:       d.Now,
		}),
	}
}
