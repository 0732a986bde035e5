// Package advise derives editorial guidance from ranked camp matches:
// missing-perspective suggestions, dominance warnings, profile alignment
// and the brake signal.
package advise

import (
	"fmt"
	"sort"
	"strings"

	"github.com/draftroom/canonlens/internal/expand"
	"github.com/draftroom/canonlens/internal/model"
)

// Synthesizer derives editorial suggestions from ranked matches and the
// full taxonomy.
type Synthesizer struct {
	dominantFraction float64
	lexicon          *expand.Lexicon
}

// NewSynthesizer creates a synthesizer. Camps above dominantFraction of
// the total score mass are flagged as overrepresented.
func NewSynthesizer(dominantFraction float64, lexicon *expand.Lexicon) *Synthesizer {
	if dominantFraction <= 0 || dominantFraction >= 1 {
		dominantFraction = 0.6
	}
	if lexicon == nil {
		lexicon = expand.Default()
	}
	return &Synthesizer{dominantFraction: dominantFraction, lexicon: lexicon}
}

// Synthesize produces deterministic suggestions: identical matches and
// taxonomy always yield identical output, ordered by domain display
// order then camp label.
func (s *Synthesizer) Synthesize(matches []model.CampMatch, snapshot *model.TaxonomySnapshot) model.EditorialSuggestions {
	return model.EditorialSuggestions{
		DominantCamps:       s.dominantCamps(matches),
		MissingPerspectives: s.missingPerspectives(matches, snapshot),
	}
}

// DominantCamps returns labels of camps whose score exceeds the
// configured fraction of the total score mass, in match order.
func (s *Synthesizer) dominantCamps(matches []model.CampMatch) []string {
	total := totalScore(matches)
	if total == 0 {
		return nil
	}

	var dominant []string
	for _, m := range matches {
		if m.Score/total > s.dominantFraction {
			dominant = append(dominant, m.Camp.Label)
		}
	}
	return dominant
}

// missingPerspectives lists domains absent from the matches (in snapshot
// display order), then axis poles present in the taxonomy but absent
// from the matched camps' leanings (sorted).
func (s *Synthesizer) missingPerspectives(matches []model.CampMatch, snapshot *model.TaxonomySnapshot) []string {
	matchedDomains := make(map[string]bool)
	matchedPoles := make(map[string]bool) // "axis/pole"
	for _, m := range matches {
		matchedDomains[m.Camp.DomainID] = true
		for axis, pole := range m.Camp.Leanings {
			matchedPoles[axis+"/"+pole] = true
		}
	}

	var missing []string
	for _, d := range snapshot.Domains {
		if matchedDomains[d.ID] {
			continue
		}
		if hint := domainHint(snapshot, d.ID); hint != "" {
			missing = append(missing, fmt.Sprintf("Consider including a perspective from the %s domain (e.g. %s)", d.Name, hint))
		} else {
			missing = append(missing, fmt.Sprintf("Consider including a perspective from the %s domain", d.Name))
		}
	}

	// Axis poles covered somewhere in the taxonomy but not by any match
	taxonomyPoles := make(map[string]bool)
	for _, c := range snapshot.Camps {
		for axis, pole := range c.Leanings {
			taxonomyPoles[axis+"/"+pole] = true
		}
	}
	var poles []string
	for key := range taxonomyPoles {
		if !matchedPoles[key] {
			poles = append(poles, key)
		}
	}
	sort.Strings(poles)
	for _, key := range poles {
		parts := strings.SplitN(key, "/", 2)
		missing = append(missing, fmt.Sprintf("No %s voice on the %s axis is represented", parts[1], parts[0]))
	}

	return missing
}

// domainHint names up to two camp labels from a domain
func domainHint(snapshot *model.TaxonomySnapshot, domainID string) string {
	var labels []string
	for _, c := range snapshot.Camps {
		if c.DomainID == domainID && c.Label != "" {
			labels = append(labels, c.Label)
			if len(labels) == 2 {
				break
			}
		}
	}
	return strings.Join(labels, ", ")
}

func totalScore(matches []model.CampMatch) float64 {
	var total float64
	for _, m := range matches {
		total += m.Score
	}
	return total
}
