package email

import (
	"fmt"
	"html"
	"time"
)

// TestEmailSubject es el asunto fijo del email de prueba.
const TestEmailSubject = "API Test Email - Student Mentoring System"

// TestEndpointLabel identifica la ruta que dispara el envío.
const TestEndpointLabel = "GET /test-email"

// TestEmailTimeLayout imita el formato de hora local "M/D/YYYY, h:mm:ss AM".
const TestEmailTimeLayout = "1/2/2006, 3:04:05 PM"

// TestEmailContent contiene el contenido del email de prueba.
type TestEmailContent struct {
	Subject  string
	HTMLBody string
}

// TestEmail arma el email de prueba con el servicio, el remitente y la hora local.
func TestEmail(service, from string, at time.Time) TestEmailContent {
	return TestEmailContent{
		Subject: TestEmailSubject,
		HTMLBody: fmt.Sprintf(`<h2>🚀 API Email Test Successful!</h2>
<p>This test email was sent from the API endpoint.</p>
<ul>
  <li><strong>Service:</strong> %s</li>
  <li><strong>From:</strong> %s</li>
  <li><strong>Endpoint:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
</ul>
<p>✅ Your email API is working correctly!</p>`,
			html.EscapeString(service),
			html.EscapeString(from),
			TestEndpointLabel,
			at.Local().Format(TestEmailTimeLayout),
		),
	}
}
