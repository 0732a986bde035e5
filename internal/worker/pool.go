// Package worker runs batch draft reviews concurrently. Each review is
// an independent pure computation over its own input, so the pool needs
// no shared state beyond the job and result channels.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job
type Result interface {
	Err() error
}

// Pool manages a fixed set of workers draining a job queue
type Pool struct {
	workers   int
	jobs      chan Job
	results   chan Result
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given worker count
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job for execution
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Results exposes the result stream; it is closed by Wait or Drain
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Drain closes the queue, waits for outstanding jobs and closes the
// result stream. Callers consuming Results directly call this after the
// last Submit; a consumer must already be draining, or workers block.
func (p *Pool) Drain() {
	close(p.jobs)
	p.wg.Wait()
	p.closeResults()
}

// Wait closes the queue, waits for all jobs and returns every result
func (p *Pool) Wait() []Result {
	go p.Drain()

	var results []Result
	for r := range p.results {
		results = append(results, r)
	}
	return results
}

// Shutdown aborts outstanding work immediately
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
