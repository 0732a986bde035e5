package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/draftroom/canonlens/internal/model"
)

// Renderer writes analysis results as JSON and Markdown artifacts and
// prints a terse summary to stdout.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes any result value as indented JSON
func (r *Renderer) RenderJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderMarkdown writes an analysis result as a Markdown report
func (r *Renderer) RenderMarkdown(result *model.AnalysisResult, path string) error {
	var b strings.Builder

	b.WriteString("# Editorial Analysis\n\n")

	if result.Summary != "" {
		b.WriteString(result.Summary)
		b.WriteString("\n\n")
	}

	b.WriteString("## Matched Camps\n\n")
	if len(result.MatchedCamps) == 0 {
		b.WriteString("No camps matched this draft.\n\n")
	}
	for _, m := range result.MatchedCamps {
		fmt.Fprintf(&b, "### %s (%.2f, %s)\n\n", m.Camp.Label, m.Score, m.Stance)
		if len(m.TopAuthors) > 0 {
			b.WriteString("Representative authors: ")
			names := make([]string, len(m.TopAuthors))
			for i, a := range m.TopAuthors {
				names[i] = fmt.Sprintf("%s (%s)", a.Name, a.Tier)
			}
			b.WriteString(strings.Join(names, ", "))
			b.WriteString("\n\n")
		}
	}

	if len(result.Suggestions.DominantCamps) > 0 {
		b.WriteString("## Dominant Camps\n\n")
		for _, label := range result.Suggestions.DominantCamps {
			fmt.Fprintf(&b, "- %s\n", label)
		}
		b.WriteString("\n")
	}

	if len(result.Suggestions.MissingPerspectives) > 0 {
		b.WriteString("## Missing Perspectives\n\n")
		for _, p := range result.Suggestions.MissingPerspectives {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "> Warning: %s\n", w)
	}

	if r.includeFooter {
		b.WriteString("\n---\nGenerated by canonlens. Matching is vocabulary-based and deterministic; the summary, when present, is framing only.\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// RenderReviewMarkdown writes a content review as a Markdown report
func (r *Renderer) RenderReviewMarkdown(review *model.ContentReview, path string) error {
	var b strings.Builder

	b.WriteString("# Content Review\n\n")

	b.WriteString("## Alignment\n\n")
	if review.Alignment.Score == nil {
		fmt.Fprintf(&b, "Score: n/a (%s)\n\n", review.Alignment.Level)
	} else {
		fmt.Fprintf(&b, "Score: %d/100 (%s)\n\n", *review.Alignment.Score, review.Alignment.Level)
	}
	b.WriteString(review.Alignment.Description)
	b.WriteString("\n\n")

	if review.Brake != nil {
		fmt.Fprintf(&b, "## Brake: %s\n\n%s\n\n", strings.ToUpper(string(review.Brake.Severity)), review.Brake.Reason)
		for _, theme := range review.Brake.MissingThemes {
			fmt.Fprintf(&b, "- %s\n", theme)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Matches\n\n")
	for _, m := range review.Matches {
		fmt.Fprintf(&b, "- %s (%.2f, %s)\n", m.Camp.Label, m.Score, m.Stance)
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// RenderSummary prints a terse result overview to stdout
func (r *Renderer) RenderSummary(result *model.AnalysisResult) {
	if len(result.MatchedCamps) == 0 {
		fmt.Println("No camps matched.")
	} else {
		fmt.Printf("Matched %d camp(s):\n", len(result.MatchedCamps))
		for _, m := range result.MatchedCamps {
			fmt.Printf("  %-30s %6.2f  %s\n", m.Camp.Label, m.Score, m.Stance)
		}
	}
	if len(result.Suggestions.DominantCamps) > 0 {
		fmt.Printf("Dominant: %s\n", strings.Join(result.Suggestions.DominantCamps, ", "))
	}
	if n := len(result.Suggestions.MissingPerspectives); n > 0 {
		fmt.Printf("Missing perspectives: %d (see report)\n", n)
	}
}

// RenderReviewSummary prints a terse review overview to stdout
func (r *Renderer) RenderReviewSummary(review *model.ContentReview) {
	if review.Alignment.Score == nil {
		fmt.Printf("Alignment: n/a (%s)\n", review.Alignment.Level)
	} else {
		fmt.Printf("Alignment: %d/100 (%s)\n", *review.Alignment.Score, review.Alignment.Level)
	}
	if review.Brake != nil {
		fmt.Printf("Brake: %s - %s\n", review.Brake.Severity, review.Brake.Reason)
	}
	for _, m := range review.Matches {
		fmt.Printf("  %-30s %6.2f  %s\n", m.Camp.Label, m.Score, m.Stance)
	}
}
