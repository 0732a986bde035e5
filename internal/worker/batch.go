package worker

import (
	"context"

	"github.com/draftroom/canonlens/internal/engine"
	"github.com/draftroom/canonlens/internal/model"
)

// Reviewer analyzes a single draft file
type Reviewer interface {
	AnalyzeFile(ctx context.Context, path string, format string, opts engine.Options, userID string) (*model.AnalysisResult, error)
}

// ReviewJob analyzes one draft file
type ReviewJob struct {
	Path     string
	Format   string
	Options  engine.Options
	UserID   string
	Reviewer Reviewer
	Limiter  *Limiter // nil when summaries are disabled
	Provider string
}

// Execute runs the review, honoring the LLM rate limit when one applies
func (j *ReviewJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil && j.Provider != "" {
		if err := j.Limiter.Wait(ctx, j.Provider); err != nil {
			return &ReviewResult{Path: j.Path, Error: err}
		}
	}

	result, err := j.Reviewer.AnalyzeFile(ctx, j.Path, j.Format, j.Options, j.UserID)
	if err != nil {
		return &ReviewResult{Path: j.Path, Error: err}
	}
	return &ReviewResult{Path: j.Path, Result: result}
}

// ReviewResult is the outcome of reviewing one draft
type ReviewResult struct {
	Path   string
	Result *model.AnalysisResult
	Error  error
}

// Err implements the pool Result interface
func (r *ReviewResult) Err() error {
	return r.Error
}

// BatchProcessor reviews multiple draft files concurrently
type BatchProcessor struct {
	reviewer    Reviewer
	concurrency int
	limiter     *Limiter
	provider    string
}

// NewBatchProcessor creates a batch processor. provider names the LLM
// provider to rate-limit; empty disables limiting.
func NewBatchProcessor(reviewer Reviewer, concurrency int, limiter *Limiter, provider string) *BatchProcessor {
	return &BatchProcessor{
		reviewer:    reviewer,
		concurrency: concurrency,
		limiter:     limiter,
		provider:    provider,
	}
}

// ProcessFiles reviews the given draft files, returning one result per
// input (order not guaranteed).
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string, format string, opts engine.Options, userID string) []*ReviewResult {
	if len(paths) == 0 {
		return []*ReviewResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Drain results while submitting: a batch larger than the channel
	// capacity would otherwise stall the submit loop.
	collected := make(chan []*ReviewResult, 1)
	go func() {
		reviews := make([]*ReviewResult, 0, len(paths))
		for r := range pool.Results() {
			if rr, ok := r.(*ReviewResult); ok {
				reviews = append(reviews, rr)
			}
		}
		collected <- reviews
	}()

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		pool.Submit(&ReviewJob{
			Path:     path,
			Format:   format,
			Options:  opts,
			UserID:   userID,
			Reviewer: b.reviewer,
			Limiter:  b.limiter,
			Provider: b.provider,
		})
	}
	pool.Drain()

	return <-collected
}
