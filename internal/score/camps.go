package score

import (
	"sort"
	"strings"

	"github.com/draftroom/canonlens/internal/model"
)

// CampScorer scores camps in a taxonomy snapshot against an expanded
// term set and produces a ranked, bounded list of matches.
type CampScorer struct {
	floor       float64
	domainBonus float64
	topAuthors  int
}

// NewCampScorer creates a scorer. Camps scoring at or below floor are
// discarded: the taxonomy is small and curated, so noisy low-score
// matches are worse than false negatives.
func NewCampScorer(floor, domainBonus float64, topAuthors int) *CampScorer {
	if domainBonus <= 0 {
		domainBonus = 1.0
	}
	if topAuthors <= 0 {
		topAuthors = 3
	}
	return &CampScorer{floor: floor, domainBonus: domainBonus, topAuthors: topAuthors}
}

// Score computes a single camp's score: the sum of weights of terms
// that appear (case-insensitively, as substring either direction or
// exact match) in any vocabulary entry, each term counted once. The
// domain bonus scales the score when the camp belongs to targetDomain.
func (s *CampScorer) Score(camp model.Camp, terms []model.ExpandedTerm, targetDomain string) float64 {
	var total float64
	for _, term := range terms {
		if campMatchesTerm(camp, term.Term) {
			total += term.Weight
		}
	}
	if targetDomain != "" && camp.DomainID == targetDomain {
		total *= s.domainBonus
	}
	return total
}

// Rank scores every camp, discards those at or below the floor, sorts by
// score descending with lexicographic label tie-break (never insertion
// order, so results are stable regardless of taxonomy ordering) and
// truncates to maxCamps. Malformed camps are skipped with a warning
// rather than allowed to throw off scoring of the rest.
func (s *CampScorer) Rank(camps []model.Camp, terms []model.ExpandedTerm, targetDomain string, maxCamps int) ([]model.CampMatch, map[string]float64, []string) {
	if maxCamps <= 0 {
		maxCamps = 5
	}

	var matches []model.CampMatch
	var warnings []string
	raw := make(map[string]float64, len(camps))

	for _, camp := range camps {
		if camp.Label == "" || len(camp.Vocabulary) == 0 {
			warnings = append(warnings, "skipped malformed camp "+camp.ID+": missing label or vocabulary")
			continue
		}

		score := s.Score(camp, terms, targetDomain)
		raw[camp.ID] = score
		if score <= s.floor {
			continue
		}

		matches = append(matches, model.CampMatch{
			Camp:       camp,
			Score:      score,
			Stance:     model.StanceNeutral, // classified separately
			TopAuthors: topAuthors(camp.Authors, s.topAuthors),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Camp.Label < matches[j].Camp.Label
	})

	if len(matches) > maxCamps {
		matches = matches[:maxCamps]
	}
	return matches, raw, warnings
}

// campMatchesTerm checks a term against the camp vocabulary
func campMatchesTerm(camp model.Camp, term string) bool {
	for _, entry := range camp.Vocabulary {
		entry = strings.ToLower(entry)
		if entry == term || strings.Contains(entry, term) || strings.Contains(term, entry) {
			return true
		}
	}
	return false
}

// topAuthors bounds the author list; snapshot normalization already
// ordered authors highest tier first.
func topAuthors(authors []model.AuthorRef, n int) []model.AuthorRef {
	if len(authors) <= n {
		return authors
	}
	return authors[:n]
}
