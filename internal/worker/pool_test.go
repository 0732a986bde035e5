package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type countingJob struct {
	counter *int64
	fail    bool
}

type countingResult struct {
	err error
}

func (r *countingResult) Err() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	if j.fail {
		return &countingResult{err: errors.New("job failed")}
	}
	return &countingResult{}
}

func TestPool_RunsEveryJob(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var executed int64
	const jobs = 12
	for i := 0; i < jobs; i++ {
		pool.Submit(&countingJob{counter: &executed})
	}

	results := pool.Wait()

	if executed != jobs {
		t.Errorf("executed = %d, want %d", executed, jobs)
	}
	if len(results) != jobs {
		t.Errorf("len(results) = %d, want %d", len(results), jobs)
	}
}

func TestPool_CollectsFailures(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var executed int64
	pool.Submit(&countingJob{counter: &executed})
	pool.Submit(&countingJob{counter: &executed, fail: true})
	pool.Submit(&countingJob{counter: &executed, fail: true})

	failures := 0
	for _, r := range pool.Wait() {
		if r.Err() != nil {
			failures++
		}
	}
	if failures != 2 {
		t.Errorf("failures = %d, want 2", failures)
	}
}

func TestPool_ZeroWorkersFallsBackToOne(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var executed int64
	pool.Submit(&countingJob{counter: &executed})

	if results := pool.Wait(); len(results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(results))
	}
}

func TestPool_WaitWithNoJobs(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	if results := pool.Wait(); len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}
