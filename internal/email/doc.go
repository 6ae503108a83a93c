// Package email wraps the SMTP client behind a two-operation Transport.
//
//	┌──────────────────────────────┐
//	│  services/mailing            │  Verify → Send
//	└──────────────┬───────────────┘
//	               │ Transport
//	               ▼
//	┌──────────────────────────────┐
//	│  SMTPTransport (go-mail)     │  Resolve(service) → Dial/Auth → DATA
//	└──────────────┬───────────────┘
//	               ▼
//	        proveedor SMTP real
//
// Ambas operaciones abren conexiones reales: Verify autentica y cierra, Send
// entrega un mensaje con un Message-ID nuevo. Cualquier fallo se reporta como
// *TransportError.
package email
