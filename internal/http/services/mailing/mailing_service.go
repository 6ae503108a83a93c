// Package mailing contiene el service que ejecuta el probe verify → send.
package mailing

import (
	"context"
	"time"

	"github.com/dropDatabas3/mailcheck/internal/config"
	"github.com/dropDatabas3/mailcheck/internal/email"
	dto "github.com/dropDatabas3/mailcheck/internal/http/dto/mailing"
	"github.com/dropDatabas3/mailcheck/internal/http/helpers"
	"github.com/dropDatabas3/mailcheck/internal/metrics"
	"github.com/dropDatabas3/mailcheck/internal/observability/logger"
	"github.com/dropDatabas3/mailcheck/internal/util"
	"go.uber.org/zap"
)

// MailingService define el probe de envío.
type MailingService interface {
	// SendTestEmail verifica la conexión y, sólo si verifica, envía el email
	// de prueba de Mail.SenderEmail a Mail.User. El error es el del transporte.
	SendTestEmail(ctx context.Context) (dto.TestEmailResponse, error)
}

// Deps contiene las dependencias del service.
type Deps struct {
	Mail      config.Mail
	Transport email.Factory    // nil => SMTP real
	Now       func() time.Time // nil => time.Now
}

type mailingService struct {
	mail    config.Mail
	factory email.Factory
	now     func() time.Time
}

// NewMailingService crea el service.
func NewMailingService(d Deps) MailingService {
	s := &mailingService{mail: d.Mail, factory: d.Transport, now: d.Now}
	if s.factory == nil {
		s.factory = email.NewSMTPFactory()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// SettingsFromConfig traduce la config de mail a los Settings del transporte.
func SettingsFromConfig(m config.Mail) email.Settings {
	return email.Settings{
		Service:            m.Service,
		User:               m.User,
		Pass:               m.Pass,
		Host:               m.Host,
		Port:               m.Port,
		Secure:             m.Secure,
		InsecureSkipVerify: m.InsecureSkipVerify,
	}
}

const componentMailing = "mailing"

func (s *mailingService) SendTestEmail(ctx context.Context) (dto.TestEmailResponse, error) {
	// El trabajo SMTP no se cancela si el cliente corta la conexión.
	ctx = context.WithoutCancel(ctx)
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentMailing),
		logger.Op("SendTestEmail"),
		logger.Service(s.mail.Service),
	)

	tr := s.factory(SettingsFromConfig(s.mail))

	// 1) verify: si falla, nunca se intenta el envío
	start := time.Now()
	if err := tr.Verify(ctx); err != nil {
		s.observeFailure(log, metrics.StepVerify, start, err)
		return dto.TestEmailResponse{}, err
	}
	metrics.ObserveProbe(metrics.StepVerify, metrics.ResultOK, "", time.Since(start))
	log.Info("smtp connection verified", logger.Elapsed(time.Since(start)))

	// 2) send
	content := email.TestEmail(s.mail.Service, s.mail.SenderEmail, s.now())
	msg := email.Message{
		From:     s.mail.SenderEmail,
		To:       s.mail.User,
		Subject:  content.Subject,
		BodyHTML: content.HTMLBody,
	}

	start = time.Now()
	res, err := tr.Send(ctx, msg)
	if err != nil {
		s.observeFailure(log, metrics.StepSend, start, err)
		return dto.TestEmailResponse{}, err
	}
	metrics.ObserveProbe(metrics.StepSend, metrics.ResultOK, "", time.Since(start))
	log.Info("test email sent",
		logger.MessageID(res.MessageID),
		logger.String("to", util.MaskEmail(msg.To)),
		logger.Elapsed(time.Since(start)),
	)

	return dto.TestEmailResponse{
		Success: true,
		Message: dto.SuccessMessage,
		Details: dto.TestEmailDetails{
			MessageID: res.MessageID,
			Service:   s.mail.Service,
			From:      s.mail.SenderEmail,
			To:        s.mail.User,
			Timestamp: helpers.ISOTime(s.now()),
		},
	}, nil
}

func (s *mailingService) observeFailure(log *zap.Logger, step string, start time.Time, err error) {
	diag := email.DiagnoseSMTP(err)
	metrics.ObserveProbe(step, metrics.ResultError, diag.Code, time.Since(start))
	log.Warn("smtp "+step+" failed",
		logger.Op(step),
		logger.Diag(diag.Code),
		logger.Err(err),
	)
}

// Failure arma el cuerpo 500 para err. El bloque de troubleshooting es fijo.
func Failure(err error) dto.TestEmailFailure {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return dto.TestEmailFailure{
		Success:         false,
		Error:           msg,
		Troubleshooting: dto.DefaultTroubleshooting,
	}
}
