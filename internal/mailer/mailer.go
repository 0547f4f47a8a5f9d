package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/arundev/portfolio-api/internal/config"
	"github.com/arundev/portfolio-api/internal/entity"
)

// Mailer delivers contact notifications to the operator address through an
// SMTP relay. Delivery is best-effort: the caller decides what to do with a
// returned error, and nothing here retries.
type Mailer struct {
	client *mail.Client
	from   string
	to     string
}

// New builds a mailer from relay settings. The client dials lazily, so a
// wrong relay only surfaces when a notification is sent.
func New(cfg config.SMTPConfig, to string) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("build smtp client: %w", err)
	}
	return &Mailer{client: client, from: cfg.Username, to: to}, nil
}

// Notify sends a plain-text notification for a stored submission. The
// connection is bounded by the client timeout and the given context.
func (m *Mailer) Notify(ctx context.Context, msg entity.ContactMessage) error {
	mm := mail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := mm.To(m.to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	mm.Subject("Portfolio Contact: " + msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, Body(msg))

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

// Body renders the notification text for a submission.
func Body(msg entity.ContactMessage) string {
	return fmt.Sprintf(`New contact form submission:

Name: %s
Email: %s
Subject: %s

Message:
%s

---
Sent from Portfolio API
`, msg.Name, msg.Email, msg.Subject, msg.Message)
}
