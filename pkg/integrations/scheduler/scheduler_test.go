package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func TestScheduler_RequiresConfig(t *testing.T) {
	_, err := New()
	require.ErrorIs(t, err, ErrInvalidSchedulerConfig)

	// no job
	_, err = New(
		WithName("test"),
		WithContext(context.Background()),
		WithLogger(testLogger()),
		WithInterval(time.Second),
	)
	require.ErrorIs(t, err, ErrInvalidSchedulerConfig)

	// no name
	_, err = New(
		WithContext(context.Background()),
		WithLogger(testLogger()),
		WithInterval(time.Second),
		WithJob(func() error { return nil }),
	)
	require.ErrorIs(t, err, ErrInvalidSchedulerConfig)
}

func TestScheduler_RunsJob(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	s, err := New(
		WithName("test"),
		WithContext(ctx),
		WithLogger(testLogger()),
		WithInterval(10*time.Millisecond),
		WithJob(func() error {
			calls.Add(1)
			return nil
		}),
	)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer s.Stop()

	require.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}
