package email

import (
	"context"
	"errors"
	"fmt"
)

// Transport es la capacidad mínima que el probe necesita del proveedor.
type Transport interface {
	// Verify conecta y autentica contra el proveedor sin enviar nada.
	Verify(ctx context.Context) error
	// Send entrega msg y retorna el Message-ID asignado.
	Send(ctx context.Context, msg Message) (SendResult, error)
}

// Factory construye un Transport ligado a unos Settings.
// El probe arma un transporte nuevo por request.
type Factory func(Settings) Transport

// Message es el request de envío. Vive sólo durante una invocación.
type Message struct {
	From     string
	To       string
	Subject  string
	BodyHTML string
}

// SendResult contiene el identificador opaco asignado al mensaje.
type SendResult struct {
	MessageID string
}

// Settings son las credenciales y overrides con los que se arma el transporte.
type Settings struct {
	Service string
	User    string
	Pass    string

	Host               string
	Port               int
	Secure             bool
	InsecureSkipVerify bool
}

// Transport operations.
const (
	OpVerify = "verify"
	OpSend   = "send"
)

var (
	ErrUnknownService     = errors.New("unknown mail service")
	ErrMissingCredentials = errors.New(`missing credentials for "PLAIN"`)
)

// TransportError es el único tipo de error del adaptador. Cubre tanto fallos
// de verificación como de envío; Err conserva el mensaje del proveedor.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("smtp %s failed", e.Op)
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// AsTransportError extrae un *TransportError de la cadena de err.
func AsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
