package score

import (
	"github.com/draftroom/canonlens/internal/model"
)

// StanceClassifier determines whether a camp's vocabulary supports or
// challenges the inferred intent of the input. Heuristic by design: it
// drives editorial framing ("who agrees, who challenges"), not a
// certified sentiment judgment.
type StanceClassifier struct{}

// NewStanceClassifier creates a stance classifier
func NewStanceClassifier() *StanceClassifier {
	return &StanceClassifier{}
}

// Classify compares the axis tags of the terms that matched the camp's
// vocabulary against the camp's tagged leanings. Dominant agreement
// yields supports, dominant opposition challenges; no axis-tagged
// matched terms, or a tie, yields neutral.
func (c *StanceClassifier) Classify(camp model.Camp, terms []model.ExpandedTerm) model.Stance {
	if len(camp.Leanings) == 0 {
		return model.StanceNeutral
	}

	agree, oppose := 0, 0
	for _, term := range terms {
		if term.Axis == "" {
			continue
		}
		if !campMatchesTerm(camp, term.Term) {
			continue
		}
		lean, tagged := camp.Leanings[term.Axis]
		if !tagged {
			continue
		}
		if lean == term.Pole {
			agree++
		} else {
			oppose++
		}
	}

	switch {
	case agree > oppose:
		return model.StanceSupports
	case oppose > agree:
		return model.StanceChallenges
	default:
		return model.StanceNeutral
	}
}
