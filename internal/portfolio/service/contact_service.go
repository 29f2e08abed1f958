package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/notify"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

type ContactStore interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
}

// ContactService validates and stores contact form submissions and tells the
// site owner about them.
type ContactService struct {
	store     ContactStore
	notifier  notify.Notifier
	recipient string
	log       *logger.Logger
}

// NewContactService creates a new ContactService. A nil notifier or an empty
// recipient disables notifications.
func NewContactService(store ContactStore, notifier notify.Notifier, recipient string, log *logger.Logger) *ContactService {
	if log == nil {
		log = logger.NewNop()
	}
	return &ContactService{
		store:     store,
		notifier:  notifier,
		recipient: strings.TrimSpace(recipient),
		log:       log.With("service", "contact"),
	}
}

// Submit stores a message. Input problems come back as *domain.ValidationError
// and store failures as wrapped errors. A failed notification is logged and
// does not affect the result.
func (s *ContactService) Submit(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	msg := &domain.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.store.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	if err := s.notify(ctx, msg); err != nil {
		s.log.Warn("contact notification failed",
			"message_id", msg.ID,
			"error", err.Error(),
		)
	}
	return msg, nil
}

func (s *ContactService) notify(ctx context.Context, msg *domain.ContactMessage) error {
	if s.notifier == nil || s.recipient == "" {
		s.log.Debug("contact notification skipped", "message_id", msg.ID)
		return nil
	}
	if err := s.notifier.Send(ctx, ContactNotification(msg, s.recipient)); err != nil {
		return &domain.NotificationError{Provider: s.notifier.Name(), Err: err}
	}
	return nil
}

// ContactNotification renders the owner e-mail for a stored message.
func ContactNotification(msg *domain.ContactMessage, recipient string) notify.Message {
	phone := msg.Phone
	if phone == "" {
		phone = "Not provided"
	}

	var b strings.Builder
	b.WriteString("You have received a new message from your portfolio contact form:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	fmt.Fprintf(&b, "Subject: %s\n\n", msg.Subject)
	b.WriteString("Message:\n")
	b.WriteString(msg.Message)
	b.WriteString("\n\n---\nThis is an automated email. Do not reply to this address.\n")

	return notify.Message{
		To:      []string{recipient},
		ReplyTo: msg.Email,
		Subject: "New Contact Form Message: " + msg.Subject,
		Text:    b.String(),
	}
}
