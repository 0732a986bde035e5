package advise

import (
	"fmt"

	"github.com/draftroom/canonlens/internal/model"
)

// BrakeEvaluator applies threshold rules over dominance and
// missing-theme signals to emit caution/hold warnings.
type BrakeEvaluator struct {
	dominantFraction float64
	stopFraction     float64
}

// NewBrakeEvaluator creates a brake evaluator. stopFraction marks
// near-total concentration of score mass in a single camp.
func NewBrakeEvaluator(dominantFraction, stopFraction float64) *BrakeEvaluator {
	if dominantFraction <= 0 || dominantFraction >= 1 {
		dominantFraction = 0.6
	}
	if stopFraction <= dominantFraction || stopFraction > 1 {
		stopFraction = 0.9
	}
	return &BrakeEvaluator{dominantFraction: dominantFraction, stopFraction: stopFraction}
}

// Evaluate returns a brake when one camp dominates the matches, or nil
// when concentration stays under the dominance threshold. The brake
// always carries the dominant camps and missing themes so the caller
// can explain it.
func (b *BrakeEvaluator) Evaluate(matches []model.CampMatch, missingPerspectives []string) *model.Brake {
	total := totalScore(matches)
	if total == 0 {
		return nil
	}

	topShare := 0.0
	topLabel := ""
	var dominant []string
	for _, m := range matches {
		share := m.Score / total
		if share > topShare {
			topShare = share
			topLabel = m.Camp.Label
		}
		if share > b.dominantFraction {
			dominant = append(dominant, m.Camp.Label)
		}
	}

	switch {
	case topShare >= b.stopFraction:
		return &model.Brake{
			Severity:      model.BrakeStop,
			DominantCamps: dominant,
			MissingThemes: missingPerspectives,
			Reason:        fmt.Sprintf("%q holds %.0f%% of the matched score mass; the draft reads as a single-camp piece", topLabel, topShare*100),
		}
	case topShare > b.dominantFraction:
		return &model.Brake{
			Severity:      model.BrakeWarning,
			DominantCamps: dominant,
			MissingThemes: missingPerspectives,
			Reason:        fmt.Sprintf("%q holds %.0f%% of the matched score mass; consider balancing with other perspectives", topLabel, topShare*100),
		}
	default:
		return nil
	}
}
