// Package mailing contiene los DTOs del envío de prueba.
package mailing

// TestEmailDetails resume un envío exitoso.
type TestEmailDetails struct {
	MessageID string `json:"messageId"`
	Service   string `json:"service"`
	From      string `json:"from"`
	To        string `json:"to"`
	Timestamp string `json:"timestamp"`
}

// TestEmailResponse es la respuesta 200 de GET /test-email.
type TestEmailResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Details TestEmailDetails `json:"details"`
}

// Troubleshooting son los hints fijos que acompañan cualquier fallo.
type Troubleshooting struct {
	AuthIssues       string `json:"authIssues"`
	ConnectionIssues string `json:"connectionIssues"`
	InvalidLogin     string `json:"invalidLogin"`
}

// TestEmailFailure es la respuesta 500 de GET /test-email.
type TestEmailFailure struct {
	Success         bool            `json:"success"`
	Error           string          `json:"error"`
	Troubleshooting Troubleshooting `json:"troubleshooting"`
}

// DefaultTroubleshooting no depende del error: es el mismo bloque siempre.
var DefaultTroubleshooting = Troubleshooting{
	AuthIssues:       "Check email credentials and app password",
	ConnectionIssues: "Verify internet connection and email service",
	InvalidLogin:     "Generate new app password from Google Account settings",
}

// SuccessMessage acompaña toda respuesta exitosa.
const SuccessMessage = "Test email sent successfully!"
