package email

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/dropDatabas3/mailcheck/internal/observability/logger"
	mail "github.com/go-mail/mail"
	"github.com/google/uuid"
)

// SMTPTransport implementa Transport sobre go-mail.
// Cada operación abre su propia conexión; no hay pool ni reintentos.
type SMTPTransport struct {
	settings Settings
}

// NewSMTPTransport crea un SMTPTransport ligado a s.
func NewSMTPTransport(s Settings) *SMTPTransport {
	return &SMTPTransport{settings: s}
}

// NewSMTPFactory es la Factory de producción.
func NewSMTPFactory() Factory {
	return func(s Settings) Transport { return NewSMTPTransport(s) }
}

// dialer resuelve el endpoint y arma el dialer de go-mail.
// go-mail usa SSL implícito si Secure; si no, STARTTLS oportunista.
func (t *SMTPTransport) dialer() (*mail.Dialer, Endpoint, error) {
	ep, err := Resolve(t.settings)
	if err != nil {
		return nil, Endpoint{}, err
	}
	if t.settings.User == "" || t.settings.Pass == "" {
		return nil, ep, ErrMissingCredentials
	}

	d := mail.NewDialer(ep.Host, ep.Port, t.settings.User, t.settings.Pass)
	d.SSL = ep.Secure
	d.TLSConfig = &tls.Config{
		ServerName:         ep.Host,
		InsecureSkipVerify: t.settings.InsecureSkipVerify, // solo dev
	}
	return d, ep, nil
}

// Verify conecta, negocia TLS, autentica y cierra.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &TransportError{Op: OpVerify, Err: err}
	}
	log := logger.From(ctx).With(logger.Layer("transport"), logger.Op(OpVerify), logger.Service(t.settings.Service))

	d, ep, err := t.dialer()
	if err != nil {
		log.Debug("smtp resolve failed", logger.Err(err))
		return &TransportError{Op: OpVerify, Err: err}
	}
	log = log.With(logger.Host(ep.Host), logger.Port(ep.Port))

	sc, err := d.Dial()
	if err != nil {
		log.Debug("smtp dial/auth failed", logger.Err(err))
		return &TransportError{Op: OpVerify, Err: err}
	}
	// QUIT fallido después de autenticar no invalida la verificación
	if err := sc.Close(); err != nil {
		log.Debug("smtp quit failed", logger.Err(err))
	}

	log.Debug("smtp verified")
	return nil
}

// Send entrega msg como text/html con un Message-ID nuevo.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) (SendResult, error) {
	if err := ctx.Err(); err != nil {
		return SendResult{}, &TransportError{Op: OpSend, Err: err}
	}
	log := logger.From(ctx).With(logger.Layer("transport"), logger.Op(OpSend), logger.Service(t.settings.Service))

	d, ep, err := t.dialer()
	if err != nil {
		return SendResult{}, &TransportError{Op: OpSend, Err: err}
	}
	log = log.With(logger.Host(ep.Host), logger.Port(ep.Port))

	id := NewMessageID(msg.From)

	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", id)
	m.SetBody("text/html", msg.BodyHTML)

	if err := d.DialAndSend(m); err != nil {
		log.Debug("smtp send failed", logger.Err(err))
		return SendResult{}, &TransportError{Op: OpSend, Err: err}
	}

	log.Debug("smtp message accepted", logger.MessageID(id))
	return SendResult{MessageID: id}, nil
}

// NewMessageID arma "<uuid@dominio-del-remitente>".
// Si from no tiene dominio usa "localhost".
func NewMessageID(from string) string {
	return "<" + uuid.NewString() + "@" + senderDomain(from) + ">"
}

func senderDomain(from string) string {
	at := strings.LastIndex(from, "@")
	if at < 0 {
		return "localhost"
	}
	d := strings.TrimSpace(strings.TrimRight(from[at+1:], "> \t"))
	if d == "" {
		return "localhost"
	}
	return strings.ToLower(d)
}
