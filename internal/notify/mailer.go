package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// MailerConfig holds SMTP transport settings
type MailerConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	Secure    bool
	FromEmail string
}

// Mailer implements Sender over SMTP
type Mailer struct {
	client *mail.Client
	from   string
}

// NewMailer creates a new SMTP mailer
func NewMailer(cfg MailerConfig) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Secure {
		opts = append(opts, mail.WithSSL())
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &Mailer{
		client: client,
		from:   cfg.FromEmail,
	}, nil
}

// Verify dials the SMTP server to confirm it is reachable. Called once at
// startup; a failure is reported but does not prevent boot.
func (m *Mailer) Verify(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp connection failed: %w", err)
	}
	if err := m.client.Close(); err != nil {
		return fmt.Errorf("failed to close smtp connection: %w", err)
	}
	return nil
}

// Send delivers a single plain-text email
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address %q: %w", m.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
