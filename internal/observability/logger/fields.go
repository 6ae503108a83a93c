package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field es un alias de zap.Field para no importar zap en cada paquete.
type Field = zap.Field

// =================================================================================
// HTTP
// =================================================================================

// RequestID crea un campo para el ID del request.
func RequestID(v string) zap.Field { return zap.String("request_id", v) }

// Method crea un campo para el método HTTP.
func Method(v string) zap.Field { return zap.String("method", v) }

// Path crea un campo para el path del request.
func Path(v string) zap.Field { return zap.String("path", v) }

// Status crea un campo para el status code HTTP.
func Status(v int) zap.Field { return zap.Int("status", v) }

// DurationMs crea un campo para la duración en milisegundos.
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }

// Bytes crea un campo para los bytes de respuesta.
func Bytes(v int) zap.Field { return zap.Int("bytes", v) }

// ClientIP crea un campo para la IP del cliente.
func ClientIP(v string) zap.Field { return zap.String("client_ip", v) }

// =================================================================================
// MAIL
// =================================================================================

// Service crea un campo para el identificador del servicio de mail.
func Service(v string) zap.Field { return zap.String("mail_service", v) }

// Host crea un campo para el host SMTP.
func Host(v string) zap.Field { return zap.String("smtp_host", v) }

// Port crea un campo para el puerto SMTP.
func Port(v int) zap.Field { return zap.Int("smtp_port", v) }

// MessageID crea un campo para el Message-ID asignado.
func MessageID(v string) zap.Field { return zap.String("message_id", v) }

// Diag crea un campo para el código de diagnóstico SMTP.
func Diag(v string) zap.Field { return zap.String("smtp_diag", v) }

// Elapsed crea un campo de duración.
func Elapsed(v time.Duration) zap.Field { return zap.Duration("elapsed", v) }

// =================================================================================
// SISTEMA
// =================================================================================

// Component crea un campo para el componente/módulo.
func Component(v string) zap.Field { return zap.String("component", v) }

// Op crea un campo para la operación actual.
func Op(v string) zap.Field { return zap.String("op", v) }

// Layer crea un campo para la capa (controller, service, transport).
func Layer(v string) zap.Field { return zap.String("layer", v) }

// Err crea un campo para un error.
func Err(err error) zap.Field { return zap.Error(err) }

// Any crea un campo genérico para cualquier tipo.
func Any(key string, v any) zap.Field { return zap.Any(key, v) }

// String crea un campo string genérico.
func String(key, v string) zap.Field { return zap.String(key, v) }
