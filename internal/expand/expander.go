package expand

import (
	"sort"
	"strings"

	"github.com/draftroom/canonlens/internal/model"
)

// Expander turns extracted keywords into a weighted term set spanning
// the recognized stance axes.
type Expander struct {
	lexicon  *Lexicon
	decay    float64
	maxTerms int
}

// NewExpander creates an expander. Axis-derived terms carry the decay
// weight (original keywords always carry 1.0); output is capped at
// maxTerms to bound downstream scoring cost.
func NewExpander(lexicon *Lexicon, decay float64, maxTerms int) *Expander {
	if lexicon == nil {
		lexicon = Default()
	}
	if decay <= 0 || decay >= 1 {
		decay = 0.5
	}
	if maxTerms <= 0 {
		maxTerms = 48
	}
	return &Expander{lexicon: lexicon, decay: decay, maxTerms: maxTerms}
}

// Lexicon returns the lexicon the expander consults
func (e *Expander) Lexicon() *Lexicon {
	return e.lexicon
}

// Expand produces the weighted term set for a list of keywords.
// Duplicate terms from different sources keep the maximum weight, not
// the sum: near-duplicate expansions must not inflate a term past an
// exact hit.
func (e *Expander) Expand(keywords []string) []model.ExpandedTerm {
	merged := make(map[string]model.ExpandedTerm)

	keep := func(t model.ExpandedTerm) {
		prev, exists := merged[t.Term]
		if !exists {
			merged[t.Term] = t
			return
		}
		if t.Weight > prev.Weight || (t.Weight == prev.Weight && t.FromKeyword && !prev.FromKeyword) {
			// Preserve an axis tag picked up by an earlier occurrence
			if t.Axis == "" && prev.Axis != "" {
				t.Axis, t.Pole = prev.Axis, prev.Pole
			}
			merged[t.Term] = t
			return
		}
		// The stored term wins; still adopt an axis tag the losing
		// occurrence carries, so tagging never depends on keyword order.
		if prev.Axis == "" && t.Axis != "" {
			prev.Axis, prev.Pole = t.Axis, t.Pole
			merged[t.Term] = prev
		}
	}

	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		axis, pole, related, tagged := e.lexicon.Lookup(kw)

		term := model.ExpandedTerm{Term: kw, Weight: 1.0, FromKeyword: true}
		if tagged {
			term.Axis, term.Pole = axis, pole
		}
		keep(term)

		for _, rel := range related {
			keep(model.ExpandedTerm{
				Term:   strings.ToLower(rel),
				Axis:   axis,
				Pole:   pole,
				Weight: e.decay,
			})
		}
	}

	terms := make([]model.ExpandedTerm, 0, len(merged))
	for _, t := range merged {
		terms = append(terms, t)
	}

	// Highest weight first; keyword-derived terms win ties, then
	// lexicographic order for determinism.
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		if terms[i].FromKeyword != terms[j].FromKeyword {
			return terms[i].FromKeyword
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > e.maxTerms {
		terms = terms[:e.maxTerms]
	}
	return terms
}

// ExpandQuery expands an explicit query string: whitespace-split,
// lowercased, then treated as keywords.
func (e *Expander) ExpandQuery(query string) []model.ExpandedTerm {
	return e.Expand(strings.Fields(strings.ToLower(query)))
}
