package mailer

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mail is one outbound message
type Mail struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Mailer sends transactional email. Delivery is best effort: a failed send is
// reported to the caller as an error and never panics, and callers decide
// whether the failure is fatal to their own operation (for this API it never
// is).
type Mailer interface {
	Send(m Mail) error
}

type sendgridMailer struct {
	apiKey    string
	fromName  string
	fromEmail string
}

// New creates a SendGrid-backed Mailer from the environment
func New() Mailer {
	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "no-reply@bigwigdigital.in"
	}
	return &sendgridMailer{
		apiKey:    os.Getenv("SENDGRID_API_KEY"),
		fromName:  "KPD",
		fromEmail: fromEmail,
	}
}

func (s *sendgridMailer) Send(m Mail) error {
	if s.apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set, cannot send email")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(m.ToName, m.To)
	message := mail.NewSingleEmail(from, m.Subject, to, m.PlainText, m.HTML)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	zap.S().Infow("email sent",
		"to", m.To,
		"subject", m.Subject,
		"statusCode", response.StatusCode,
	)
	return nil
}
