package controller

import (
	"log/slog"
	"time"

	"finboard/internal/repo"
	"finboard/pkg/types/pubsub"
)

type Controller struct {
	repo     *repo.Repository
	logger   *slog.Logger
	feed     NewsFeeder
	txEvents pubsub.Publisher
	now      func() time.Time
}

// Option is the functional options pattern for Controller
type Option func(*Controller) error

func WithRepository(repository *repo.Repository) Option {
	return func(c *Controller) error {
		if repository == nil {
			return ErrNilRepository
		}
		c.repo = repository
		return nil
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) error {
		c.logger = l
		return nil
	}
}

func WithNewsFeeder(f NewsFeeder) Option {
	return func(c *Controller) error {
		c.feed = f
		return nil
	}
}

func WithTransactionPublisher(p pubsub.Publisher) Option {
	return func(c *Controller) error {
		c.txEvents = p
		return nil
	}
}

// WithClock overrides the time source; aggregation windows are derived
// from it, so tests can pin the current month.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) error {
		c.now = now
		return nil
	}
}

func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.repo == nil {
		return nil, ErrNilRepository
	}
	return c, nil
}
