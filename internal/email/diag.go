package email

import (
	"errors"
	"net"
	"strings"
	"time"
)

// SMTPDiag es la clasificación de un error SMTP para logs y métricas.
type SMTPDiag struct {
	Code       string        // auth|tls|dial|timeout|rate_limited|invalid_recipient|rejected|config|network|unknown
	Temporary  bool          // el error podría desaparecer solo
	RetryAfter time.Duration // 0 si no se pudo inferir
}

// DiagnoseSMTP clasifica err. Nunca afecta la respuesta HTTP.
func DiagnoseSMTP(err error) SMTPDiag {
	if err == nil {
		return SMTPDiag{Code: "unknown"}
	}

	// config local: nunca llegó a la red
	if errors.Is(err, ErrUnknownService) || errors.Is(err, ErrMissingCredentials) {
		return SMTPDiag{Code: "config"}
	}

	var ne net.Error
	isNetErr := errors.As(err, &ne)
	if isNetErr && ne.Timeout() {
		return SMTPDiag{Code: "timeout", Temporary: true}
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "timeout"):
		return SMTPDiag{Code: "timeout", Temporary: true}

	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "connectex:"), // windows
		strings.Contains(s, "no such host"),
		strings.Contains(s, "dial tcp"):
		return SMTPDiag{Code: "dial", Temporary: true}

	case strings.Contains(s, "x509:"),
		strings.Contains(s, "tls") && (strings.Contains(s, "handshake") || strings.Contains(s, "certificate")):
		return SMTPDiag{Code: "tls"}

	case strings.Contains(s, "5.7.8"), strings.Contains(s, "535"),
		strings.Contains(s, "username and password not accepted"),
		strings.Contains(s, "authentication failed"),
		strings.Contains(s, "auth") && strings.Contains(s, "failed"):
		return SMTPDiag{Code: "auth"}

	case strings.Contains(s, "4.7.0"),
		strings.Contains(s, "rate limit"),
		strings.Contains(s, "try again later"),
		strings.Contains(s, "temporarily unavailable"),
		strings.Contains(s, "451"), strings.Contains(s, "421"):
		return SMTPDiag{Code: "rate_limited", Temporary: true}

	case strings.Contains(s, "5.1.1"),
		strings.Contains(s, "user unknown"),
		strings.Contains(s, "mailbox not found"):
		return SMTPDiag{Code: "invalid_recipient"}

	// políticas/DMARC/SPF
	case strings.Contains(s, "5.7.1"),
		strings.Contains(s, "message rejected"),
		strings.Contains(s, "policy"),
		strings.Contains(s, "dmarc"), strings.Contains(s, "spf"):
		return SMTPDiag{Code: "rejected"}
	}

	if isNetErr {
		return SMTPDiag{Code: "network", Temporary: true}
	}
	return SMTPDiag{Code: "unknown"}
}
