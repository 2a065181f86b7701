package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
)

// ErrStopped is returned by Run when the pool is shutting down before the
// work could be accepted.
var ErrStopped = errors.New("worker pool stopped")

// Pool runs blocking storage work on a bounded set of goroutines so the RPC
// serving goroutines never block on I/O themselves. Its size is independent
// of request concurrency; it is tuned to what the storage engine tolerates.
type Pool struct {
	service.BaseService
	size  int
	tasks chan func()
	wg    sync.WaitGroup
}

func NewPool(logger log.Logger, size int) *Pool {
	if size <= 0 {
		size = 1
	}
	p := &Pool{
		size:  size,
		tasks: make(chan func()),
	}
	p.BaseService = *service.NewBaseService(logger.With("module", "worker"), "WorkerPool", p)
	return p
}

func (p *Pool) OnStart() error {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.loop()
	}
	return nil
}

func (p *Pool) OnStop() {
	p.wg.Wait()
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.tasks:
			task()
		case <-p.Quit():
			return
		}
	}
}

type result[T any] struct {
	val T
	err error
}

// Run executes fn on pool and blocks the calling goroutine until the result
// is available. Queued work that has not started yet is dropped when ctx is
// cancelled; once started, fn runs to completion and a late result is
// discarded. Pool shutdown and panics inside fn surface as errors, never
// silently.
func Run[T any](ctx context.Context, pool *Pool, fn func() (T, error)) (T, error) {
	var zero T
	out := make(chan result[T], 1)

	task := func() {
		defer func() {
			if r := recover(); r != nil {
				pool.Logger.Error("task panicked", "err", r)
				out <- result[T]{err: fmt.Errorf("task panicked: %v", r)}
			}
		}()
		if ctx.Err() != nil {
			out <- result[T]{err: ctx.Err()}
			return
		}
		val, err := fn()
		out <- result[T]{val: val, err: err}
	}

	select {
	case pool.tasks <- task:
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-pool.Quit():
		return zero, ErrStopped
	}

	select {
	case r := <-out:
		return r.val, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
