package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSchedulerConfig = errors.New("invalid scheduler config")
)

// Scheduler runs one named job on a fixed ticker until its context ends.
type Scheduler struct {
	name     string
	interval time.Duration
	ctx      context.Context
	logger   *slog.Logger
	job      func() error
	ticker   *time.Ticker
}

type Option func(*Scheduler)

func WithName(name string) Option {
	return func(s *Scheduler) {
		s.name = name
	}
}

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.interval = d
	}
}

func WithContext(ctx context.Context) Option {
	return func(s *Scheduler) {
		s.ctx = ctx
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = l
	}
}

func WithJob(job func() error) Option {
	return func(s *Scheduler) {
		s.job = job
	}
}

func (s *Scheduler) IsValid() error {
	switch {
	case s.name == "":
		return errors.Wrap(ErrInvalidSchedulerConfig, "name cannot be empty")
	case s.ctx == nil:
		return errors.Wrap(ErrInvalidSchedulerConfig, "ctx cannot be nil")
	case s.logger == nil:
		return errors.Wrap(ErrInvalidSchedulerConfig, "logger cannot be nil")
	case s.interval <= 0:
		return errors.Wrap(ErrInvalidSchedulerConfig, "interval must be positive")
	case s.job == nil:
		return errors.Wrap(ErrInvalidSchedulerConfig, "job cannot be nil")
	default:
		return nil
	}
}

func New(opts ...Option) (*Scheduler, error) {
	s := &Scheduler{}

	for _, opt := range opts {
		opt(s)
	}

	return s, s.IsValid()
}

// Start launches the ticker loop. A failed run is logged and the loop
// keeps going; only context cancellation ends it.
func (s *Scheduler) Start() error {
	if err := s.IsValid(); err != nil {
		return err
	}

	s.ticker = time.NewTicker(s.interval)
	s.logger.Info("scheduler started", "job", s.name, "interval", s.interval)

	go func() {
		defer s.ticker.Stop()
		for {
			select {
			case <-s.ticker.C:
				if err := s.job(); err != nil {
					s.logger.Error("scheduled job failed", "job", s.name, "error", err)
				}
			case <-s.ctx.Done():
				s.logger.Info("scheduler stopped", "job", s.name)
				return
			}
		}
	}()

	return nil
}

func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}
