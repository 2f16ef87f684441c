package worker

import (
	"log/slog"
	"sync"

	"github.com/baharkarakas/estate-api/internal/metrics"
)

type task func()

// Pool runs submitted tasks on a fixed set of goroutines.
type Pool struct {
	wg     sync.WaitGroup
	jobs   chan task
	mu     sync.RWMutex
	closed bool
}

func NewPool(n int) *Pool {
	if n <= 0 {
		n = 1
	}
	p := &Pool{jobs: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				metrics.AuditQueueDepth.Dec()
				run(job)
			}
		}()
	}
	return p
}

func run(job task) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("worker task panic", "err", rec)
		}
	}()
	job()
}

// Submit queues f. It reports false once the pool is stopped.
func (p *Pool) Submit(f task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	metrics.AuditQueueDepth.Inc()
	p.jobs <- f
	return true
}

// Stop drains queued tasks and waits for the workers to exit.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
