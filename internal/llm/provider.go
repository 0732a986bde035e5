// Package llm generates optional natural-language framing for analysis
// results. The summary is produced strictly after matching and can
// never affect camp scores, stances or suggestions.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/draftroom/canonlens/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates an editorial summary of an analysis result
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for summary generation
type SummarizeRequest struct {
	// Result is the analysis to frame
	Result model.AnalysisResult

	// MemoryContext carries accumulated user preference statements;
	// purely additive framing, never required for correctness
	MemoryContext []string

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the generated summary
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom or local endpoints
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// BuildPrompt constructs the default summary prompt. The model is told
// to frame camps and gaps, never to invent camps the matcher did not
// produce.
func BuildPrompt(result model.AnalysisResult, memoryContext []string) string {
	var b strings.Builder

	b.WriteString(`You are framing the output of an editorial analysis engine. The engine matched a draft against a curated taxonomy of stance camps.

RULES:
1. Only discuss the camps listed below. Never invent camps, authors or scores.
2. Describe which perspectives the draft aligns with and which are missing.
3. Keep it to 3-4 sentences addressed to the draft's author.

Matched camps:
`)
	if len(result.MatchedCamps) == 0 {
		b.WriteString("(none)\n")
	}
	for _, m := range result.MatchedCamps {
		fmt.Fprintf(&b, "- %s (score %.2f, stance %s)\n", m.Camp.Label, m.Score, m.Stance)
	}

	if len(result.Suggestions.DominantCamps) > 0 {
		fmt.Fprintf(&b, "\nDominant camps: %s\n", strings.Join(result.Suggestions.DominantCamps, ", "))
	}
	if len(result.Suggestions.MissingPerspectives) > 0 {
		b.WriteString("\nMissing perspectives:\n")
		for _, p := range result.Suggestions.MissingPerspectives {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	if len(memoryContext) > 0 {
		b.WriteString("\nThe author has previously expressed these preferences:\n")
		for i, stmt := range memoryContext {
			if i >= 10 { // cap to avoid token bloat
				fmt.Fprintf(&b, "... and %d more\n", len(memoryContext)-10)
				break
			}
			fmt.Fprintf(&b, "- %s\n", stmt)
		}
	}

	return b.String()
}
