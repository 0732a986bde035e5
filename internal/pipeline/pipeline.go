// Package pipeline orchestrates a complete review: fetch the taxonomy
// snapshot and profile through the stores, run the pure engine, attach
// the optional LLM summary and render reports.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/draftroom/canonlens/internal/engine"
	"github.com/draftroom/canonlens/internal/expand"
	"github.com/draftroom/canonlens/internal/extract"
	"github.com/draftroom/canonlens/internal/llm"
	"github.com/draftroom/canonlens/internal/model"
	"github.com/draftroom/canonlens/internal/store"
)

// Pipeline wires stores, engine, summarizer and renderer
type Pipeline struct {
	canon      store.CanonStore
	profiles   store.ProfileStore
	memory     store.MemoryStore
	engine     *engine.Engine
	renderer   *Renderer
	summarizer *llm.Summarizer // nil when disabled
	config     *model.Config
}

// NewPipeline creates a pipeline. The profile and memory stores may be
// nil when the caller never uses the profile-relative path.
func NewPipeline(cfg *model.Config, canon store.CanonStore, profiles store.ProfileStore, memory store.MemoryStore) (*Pipeline, error) {
	lexicon := expand.Default()
	if cfg.Canon.LexiconPath != "" {
		loaded, err := expand.Load(cfg.Canon.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		lexicon = loaded
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		canon:      canon,
		profiles:   profiles,
		memory:     memory,
		engine:     engine.New(cfg.Engine, lexicon),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
	}, nil
}

// Engine exposes the underlying engine for pre-flight validation
func (p *Pipeline) Engine() *engine.Engine {
	return p.engine
}

// AnalyzeText runs the full analysis path over a text. userID selects
// accumulated memory context for the summary; empty skips it. The
// pipeline fetches the complete snapshot and leaves domain weighting to
// the engine's bonus, so missing-perspective suggestions always see the
// whole canon.
func (p *Pipeline) AnalyzeText(ctx context.Context, text string, opts engine.Options, userID string) (*model.AnalysisResult, error) {
	snapshot, err := p.canon.GetTaxonomySnapshot(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetch taxonomy: %w", err)
	}

	result, err := p.engine.Analyze(snapshot, text, opts)
	if err != nil {
		return nil, err
	}

	// Summary comes last and never affects the matching above
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		var memoryContext []string
		if p.memory != nil && userID != "" {
			memoryContext, err = p.memory.GetContextForUser(ctx, userID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: memory context unavailable: %v\n", err)
			}
		}
		summary, err := p.summarizer.GenerateSummary(ctx, *result, memoryContext)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: summary generation failed: %v\n", err)
		} else {
			result.Summary = summary
		}
	}

	return result, nil
}

// AnalyzeFile analyzes a draft file. HTML exports (by extension or an
// explicit format) are stripped to visible text first.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string, format string, opts engine.Options, userID string) (*model.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft %s: %w", path, err)
	}

	text := string(data)
	if isHTML(path, format) {
		text, err = extract.VisibleText(text)
		if err != nil {
			return nil, fmt.Errorf("strip HTML %s: %w", path, err)
		}
	}

	return p.AnalyzeText(ctx, text, opts, userID)
}

// ReviewContent runs the profile-relative path: alignment plus brake
func (p *Pipeline) ReviewContent(ctx context.Context, draft string, profileID string) (*model.ContentReview, error) {
	if p.profiles == nil {
		return nil, fmt.Errorf("no profile store configured")
	}

	profile, err := p.profiles.FetchProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	snapshot, err := p.canon.GetTaxonomySnapshot(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetch taxonomy: %w", err)
	}

	return p.engine.AnalyzeContent(snapshot, draft, profile)
}

// RenderAnalysis renders an analysis result to the requested outputs
// and prints a summary to stdout.
func (p *Pipeline) RenderAnalysis(result *model.AnalysisResult, jsonPath, mdPath string, verbose bool) error {
	if err := p.RenderAnalysisFiles(result, jsonPath, mdPath, verbose); err != nil {
		return err
	}
	p.renderer.RenderSummary(result)
	return nil
}

// RenderAnalysisFiles writes the report artifacts without the stdout
// summary; batch mode uses it to keep output per draft quiet.
func (p *Pipeline) RenderAnalysisFiles(result *model.AnalysisResult, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote JSON: %s\n", jsonPath)
		}
	}
	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote Markdown: %s\n", mdPath)
		}
	}
	return nil
}

// RenderReviewJSON writes a content review as JSON
func (p *Pipeline) RenderReviewJSON(review *model.ContentReview, path string) error {
	return p.renderer.RenderJSON(review, path)
}

// RenderReviewMarkdown writes a content review as Markdown
func (p *Pipeline) RenderReviewMarkdown(review *model.ContentReview, path string) error {
	return p.renderer.RenderReviewMarkdown(review, path)
}

// RenderReviewSummary prints a content review overview to stdout
func (p *Pipeline) RenderReviewSummary(review *model.ContentReview) {
	p.renderer.RenderReviewSummary(review)
}

// isHTML decides whether a draft needs markup stripping
func isHTML(path, format string) bool {
	if strings.EqualFold(format, "html") {
		return true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return format == ""
	}
	return false
}
