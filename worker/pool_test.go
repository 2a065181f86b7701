package worker_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/require"

	"github.com/lumenchain/node/worker"
)

func newPool(t *testing.T, size int) *worker.Pool {
	p := worker.NewPool(log.NewTMLogger(log.NewSyncWriter(os.Stdout)), size)
	require.NoError(t, p.Start())
	t.Cleanup(func() {
		if p.IsRunning() {
			p.Stop()
		}
	})
	return p
}

func TestRunReturnsResult(t *testing.T) {
	p := newPool(t, 2)

	got, err := worker.Run(context.Background(), p, func() (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestRunPropagatesError(t *testing.T) {
	p := newPool(t, 1)

	boom := errors.New("boom")
	_, err := worker.Run(context.Background(), p, func() (int, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestRunRecoversPanic(t *testing.T) {
	p := newPool(t, 1)

	_, err := worker.Run(context.Background(), p, func() (int, error) {
		panic("storage corrupted")
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "panicked")
}

func TestRunAfterStop(t *testing.T) {
	p := newPool(t, 1)
	require.NoError(t, p.Stop())

	_, err := worker.Run(context.Background(), p, func() (int, error) {
		return 0, nil
	})
	require.ErrorIs(t, err, worker.ErrStopped)
}

func TestRunDropsQueuedWorkOnCancel(t *testing.T) {
	p := newPool(t, 1)

	// Occupy the only worker so further submissions stay queued.
	release := make(chan struct{})
	go worker.Run(context.Background(), p, func() (int, error) {
		<-release
		return 0, nil
	})
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := worker.Run(ctx, p, func() (int, error) {
		t.Error("queued work must not start after cancellation")
		return 0, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	close(release)
}

func TestRunConcurrent(t *testing.T) {
	p := newPool(t, 4)

	results := make(chan int, 16)
	for i := 0; i < 16; i++ {
		i := i
		go func() {
			got, err := worker.Run(context.Background(), p, func() (int, error) {
				return i, nil
			})
			require.NoError(t, err)
			results <- got
		}()
	}
	seen := make(map[int]bool)
	for i := 0; i < 16; i++ {
		seen[<-results] = true
	}
	require.Len(t, seen, 16)
}
