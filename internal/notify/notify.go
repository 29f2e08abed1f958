// Package notify delivers owner notifications (new contact messages,
// certificate digests) through a configurable e-mail provider.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
)

// Message is a plain-text e-mail.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

// Notifier sends a message once. Implementations never retry.
type Notifier interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

func (m Message) validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("notify: recipient required")
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("notify: subject required")
	}
	return nil
}

// New builds the notifier selected by MAIL_PROVIDER.
func New(ctx context.Context, cfg config.MailConfig, log *logger.Logger) (Notifier, error) {
	switch cfg.Provider {
	case config.MailProviderSendGrid:
		return NewSendGrid(SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			BaseURL:   cfg.SendGridBaseURL,
			FromEmail: cfg.From,
			FromName:  cfg.FromName,
			Timeout:   cfg.Timeout,
		})
	case config.MailProviderSES:
		return NewSES(ctx, SESConfig{
			Region:   cfg.AWSRegion,
			From:     cfg.From,
			FromName: cfg.FromName,
		})
	case config.MailProviderLog, "":
		return NewLog(log), nil
	default:
		return nil, fmt.Errorf("unsupported mail provider %q", cfg.Provider)
	}
}
