package llm

import (
	"context"
	"fmt"

	"github.com/draftroom/canonlens/internal/model"
)

// Summarizer wraps an optional provider behind a nil-safe facade
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer; a disabled config ("" provider)
// yields a summarizer that silently produces nothing.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the active provider name, or ""
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// GenerateSummary produces the editorial summary for a result. Returns
// "" without error when disabled; the caller attaches the summary after
// matching, so a failure here never invalidates the analysis.
func (s *Summarizer) GenerateSummary(ctx context.Context, result model.AnalysisResult, memoryContext []string) (string, error) {
	if s.provider == nil {
		return "", nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Result:        result,
		MemoryContext: memoryContext,
		Model:         s.config.Model,
		MaxTokens:     s.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s summary: %w", s.provider.Name(), err)
	}
	return resp.Summary, nil
}
