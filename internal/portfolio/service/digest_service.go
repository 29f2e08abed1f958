package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/notify"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/aggregator"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// Digest lists the certificates worth telling the owner about on a given day.
type Digest struct {
	Today        domain.Date                `json:"today"`
	ExpiringSoon []domain.CertificateStatus `json:"expiring_soon"`
	NewlyExpired []domain.CertificateStatus `json:"newly_expired"`
}

func (d Digest) Empty() bool {
	return len(d.ExpiringSoon) == 0 && len(d.NewlyExpired) == 0
}

// DigestService sends the daily certificate expiry digest.
type DigestService struct {
	certs     CertificateReader
	notifier  notify.Notifier
	recipient string
	now       func() time.Time
	log       *logger.Logger
}

// NewDigestService creates a new DigestService
func NewDigestService(certs CertificateReader, notifier notify.Notifier, recipient string, log *logger.Logger) *DigestService {
	if log == nil {
		log = logger.NewNop()
	}
	return &DigestService{
		certs:     certs,
		notifier:  notifier,
		recipient: strings.TrimSpace(recipient),
		now:       time.Now,
		log:       log.With("service", "certificate_digest"),
	}
}

// Build classifies all certificates against today. A certificate is newly
// expired when its expiry date was yesterday.
func (s *DigestService) Build(ctx context.Context) (*Digest, error) {
	all, err := s.certs.List(ctx)
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(s.now().In(time.Local))
	yesterday := domain.DateOf(today.AddDate(0, 0, -1))
	statuses, _ := aggregator.ClassifyCertificates(all, today)

	d := &Digest{
		Today:        today,
		ExpiringSoon: []domain.CertificateStatus{},
		NewlyExpired: []domain.CertificateStatus{},
	}
	for _, st := range statuses {
		switch {
		case st.ExpiringSoon:
			d.ExpiringSoon = append(d.ExpiringSoon, st)
		case st.IsExpired && st.ExpiryDate.Equal(yesterday):
			d.NewlyExpired = append(d.NewlyExpired, st)
		}
	}
	return d, nil
}

// Run builds the digest and sends it once. Notification failures are logged,
// never returned.
func (s *DigestService) Run(ctx context.Context) error {
	d, err := s.Build(ctx)
	if err != nil {
		return fmt.Errorf("failed to build certificate digest: %w", err)
	}
	if d.Empty() {
		s.log.Debug("certificate digest empty", "today", d.Today.String())
		return nil
	}
	if s.notifier == nil || s.recipient == "" {
		s.log.Info("certificate digest not sent, no recipient",
			"expiring_soon", len(d.ExpiringSoon),
			"newly_expired", len(d.NewlyExpired),
		)
		return nil
	}

	if err := s.notifier.Send(ctx, DigestNotification(d, s.recipient)); err != nil {
		nerr := &domain.NotificationError{Provider: s.notifier.Name(), Err: err}
		s.log.Warn("certificate digest notification failed", "error", nerr.Error())
		return nil
	}
	s.log.Info("certificate digest sent",
		"expiring_soon", len(d.ExpiringSoon),
		"newly_expired", len(d.NewlyExpired),
	)
	return nil
}

func DigestNotification(d *Digest, recipient string) notify.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Certificate status for %s\n\n", d.Today.Format("January 2, 2006"))
	if len(d.ExpiringSoon) > 0 {
		b.WriteString("Expiring soon:\n")
		for _, st := range d.ExpiringSoon {
			fmt.Fprintf(&b, "- %s (%s): %d days left, expires %s\n",
				st.CertificateName, st.IssuingOrganization, st.DaysUntilExpiry, st.ExpiryDate.String())
		}
		b.WriteString("\n")
	}
	if len(d.NewlyExpired) > 0 {
		b.WriteString("Expired:\n")
		for _, st := range d.NewlyExpired {
			fmt.Fprintf(&b, "- %s (%s): expired %s\n",
				st.CertificateName, st.IssuingOrganization, st.ExpiryDate.String())
		}
	}

	return notify.Message{
		To:      []string{recipient},
		Subject: fmt.Sprintf("Certificate digest: %d expiring soon, %d expired", len(d.ExpiringSoon), len(d.NewlyExpired)),
		Text:    b.String(),
	}
}
