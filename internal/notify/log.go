package notify

import (
	"context"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
)

// Log writes notifications to the application log instead of sending them.
// Used in development and when no mail provider is configured.
type Log struct {
	log *logger.Logger
}

func NewLog(log *logger.Logger) *Log {
	if log == nil {
		log = logger.NewNop()
	}
	return &Log{log: log.With("notifier", "log")}
}

func (l *Log) Name() string { return "log" }

func (l *Log) Send(_ context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	l.log.Info("notification",
		"to", msg.To,
		"subject", msg.Subject,
		"body_len", len(msg.Text),
	)
	return nil
}
