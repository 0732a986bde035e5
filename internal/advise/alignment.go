package advise

import (
	"fmt"
	"math"
	"strings"

	"github.com/draftroom/canonlens/internal/model"
)

// AlignmentScorer compares a draft's matched camps against a stored
// personal profile and produces a bounded 0-100 score with a
// qualitative description.
type AlignmentScorer struct{}

// NewAlignmentScorer creates an alignment scorer
func NewAlignmentScorer() *AlignmentScorer {
	return &AlignmentScorer{}
}

// Score computes the overlap ratio between the draft's matched camps
// and the profile's declared positions. A profile with no statements
// yields a nil score with level unknown; callers must render that
// distinctly from a low score.
func (a *AlignmentScorer) Score(matches []model.CampMatch, statements []string) model.AlignmentResult {
	if len(statements) == 0 {
		return model.AlignmentResult{
			Score:       nil,
			Level:       model.AlignmentUnknown,
			Description: "No profile statements to compare against; record positions to enable alignment scoring",
		}
	}

	if len(matches) == 0 {
		zero := 0
		return model.AlignmentResult{
			Score:       &zero,
			Level:       model.AlignmentLow,
			Description: "The draft matched no camps, so no declared position is reflected in it",
		}
	}

	lowered := make([]string, len(statements))
	for i, s := range statements {
		lowered[i] = strings.ToLower(s)
	}

	overlap := 0
	for _, m := range matches {
		if statementsMention(lowered, m.Camp) {
			overlap++
		}
	}

	ratio := float64(overlap) / float64(len(matches))
	score := int(math.Round(ratio * 100))
	if score > 100 {
		score = 100
	}

	level := model.AlignmentLow
	switch {
	case score >= 70:
		level = model.AlignmentHigh
	case score >= 40:
		level = model.AlignmentMedium
	}

	return model.AlignmentResult{
		Score:       &score,
		Level:       level,
		Description: describeAlignment(level, overlap, len(matches)),
	}
}

// statementsMention checks whether any profile statement references the
// camp by label or vocabulary term.
func statementsMention(statements []string, camp model.Camp) bool {
	label := strings.ToLower(camp.Label)
	for _, stmt := range statements {
		if label != "" && strings.Contains(stmt, label) {
			return true
		}
		for _, term := range camp.Vocabulary {
			if strings.Contains(stmt, strings.ToLower(term)) {
				return true
			}
		}
	}
	return false
}

func describeAlignment(level model.AlignmentLevel, overlap, total int) string {
	switch level {
	case model.AlignmentHigh:
		return fmt.Sprintf("Strong alignment: %d of %d matched camps reflect your declared positions", overlap, total)
	case model.AlignmentMedium:
		return fmt.Sprintf("Partial alignment: %d of %d matched camps reflect your declared positions", overlap, total)
	default:
		return fmt.Sprintf("Weak alignment: only %d of %d matched camps reflect your declared positions", overlap, total)
	}
}
