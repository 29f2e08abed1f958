package cronjob

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
)

// Job is a unit of scheduled work. It receives a context bounded by the
// scheduler's job timeout.
type Job func(ctx context.Context) error

type Scheduler struct {
	c       *cron.Cron
	log     *logger.Logger
	timeout time.Duration
}

// NewScheduler creates a scheduler using six-field (seconds first) specs.
func NewScheduler(log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Scheduler{
		c:       cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DiscardLogger))),
		log:     log.With("component", "scheduler"),
		timeout: 2 * time.Minute,
	}
}

// Add registers job under spec. An empty spec disables the job.
func (s *Scheduler) Add(name, spec string, job Job) error {
	if spec == "" {
		s.log.Info("cron job disabled", "job", name)
		return nil
	}
	_, err := s.c.AddFunc(spec, func() { s.run(name, job) })
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	s.log.Info("cron job scheduled", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	s.log.Info("cron job started", "job", name)
	if err := job(ctx); err != nil {
		s.log.Error("cron job failed", "job", name, "error", err.Error())
		return
	}
	s.log.Info("cron job completed", "job", name, "duration", time.Since(start).String())
}

// Jobs reports how many jobs are registered.
func (s *Scheduler) Jobs() int {
	return len(s.c.Entries())
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.c.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn("cron jobs still running at shutdown")
	}
}
