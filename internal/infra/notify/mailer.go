package notify

import (
	"context"
	"fmt"
	"log/slog"

	"parkease/internal/pkg/config"
)

type Message struct {
	ToEmail string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer picks the transport configured by MAIL_DRIVER.
func NewMailer(cfg config.MailConfig) (Mailer, error) {
	switch cfg.Driver {
	case "", "log":
		return LogMailer{}, nil
	case "smtp":
		return NewSMTPMailer(cfg), nil
	case "mailersend":
		if cfg.MailerSendAPIKey == "" {
			return nil, fmt.Errorf("MAILERSEND_API_KEY is required for the mailersend driver")
		}
		return NewMailerSendMailer(cfg.MailerSendAPIKey, cfg.FromName, cfg.FromEmail), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "mail (log driver)",
		"to", msg.ToEmail,
		"subject", msg.Subject,
		"text", msg.Text)
	return nil
}
