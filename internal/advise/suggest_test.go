package advise

import (
	"strings"
	"testing"

	"github.com/draftroom/canonlens/internal/expand"
	"github.com/draftroom/canonlens/internal/model"
)

func testSnapshot() *model.TaxonomySnapshot {
	return &model.TaxonomySnapshot{
		Version: "v1",
		Domains: []model.Domain{
			{ID: "ai-governance", Name: "AI Governance"},
			{ID: "climate", Name: "Climate Policy"},
		},
		Camps: []model.Camp{
			{
				ID: "accelerationists", DomainID: "ai-governance", Label: "Accelerationists",
				Vocabulary: []string{"progress", "innovation"},
				Leanings:   map[string]string{"outlook": "optimistic"},
			},
			{
				ID: "safety-first", DomainID: "ai-governance", Label: "Safety First",
				Vocabulary: []string{"risk", "caution"},
				Leanings:   map[string]string{"outlook": "skeptical"},
			},
			{
				ID: "climate-pragmatists", DomainID: "climate", Label: "Climate Pragmatists",
				Vocabulary: []string{"adaptation", "resilience"},
				Leanings:   map[string]string{"scope": "societal"},
			},
		},
	}
}

func match(snapshot *model.TaxonomySnapshot, campID string, score float64) model.CampMatch {
	for _, c := range snapshot.Camps {
		if c.ID == campID {
			return model.CampMatch{Camp: c, Score: score}
		}
	}
	panic("unknown camp " + campID)
}

func TestSynthesizer_DominantCamps(t *testing.T) {
	s := NewSynthesizer(0.6, expand.Default())
	snap := testSnapshot()

	matches := []model.CampMatch{
		match(snap, "accelerationists", 7.0),
		match(snap, "safety-first", 3.0),
	}

	got := s.Synthesize(matches, snap)

	if len(got.DominantCamps) != 1 || got.DominantCamps[0] != "Accelerationists" {
		t.Errorf("DominantCamps = %v, want [Accelerationists]", got.DominantCamps)
	}
}

func TestSynthesizer_NoDominanceUnderThreshold(t *testing.T) {
	s := NewSynthesizer(0.6, expand.Default())
	snap := testSnapshot()

	matches := []model.CampMatch{
		match(snap, "accelerationists", 5.0),
		match(snap, "safety-first", 5.0),
	}

	got := s.Synthesize(matches, snap)

	if len(got.DominantCamps) != 0 {
		t.Errorf("DominantCamps = %v, want none at an even split", got.DominantCamps)
	}
}

func TestSynthesizer_MissingDomains(t *testing.T) {
	s := NewSynthesizer(0.6, expand.Default())
	snap := testSnapshot()

	matches := []model.CampMatch{match(snap, "accelerationists", 4.0)}

	got := s.Synthesize(matches, snap)

	var climateSuggestion string
	for _, m := range got.MissingPerspectives {
		if strings.Contains(m, "Climate Policy") {
			climateSuggestion = m
		}
		if strings.Contains(m, "AI Governance") {
			t.Errorf("matched domain suggested as missing: %q", m)
		}
	}
	if climateSuggestion == "" {
		t.Fatal("expected a suggestion for the unmatched Climate Policy domain")
	}
	if !strings.Contains(climateSuggestion, "Climate Pragmatists") {
		t.Errorf("suggestion %q should hint at a camp from the domain", climateSuggestion)
	}
}

func TestSynthesizer_MissingAxisPoles(t *testing.T) {
	s := NewSynthesizer(0.6, expand.Default())
	snap := testSnapshot()

	// Only the optimistic camp matched: skeptical and societal poles are
	// represented in the taxonomy but absent from the matches.
	matches := []model.CampMatch{match(snap, "accelerationists", 4.0)}

	got := s.Synthesize(matches, snap)

	var hasSkeptical, hasSocietal, hasOptimistic bool
	for _, m := range got.MissingPerspectives {
		if strings.Contains(m, "skeptical voice on the outlook axis") {
			hasSkeptical = true
		}
		if strings.Contains(m, "societal voice on the scope axis") {
			hasSocietal = true
		}
		if strings.Contains(m, "optimistic") {
			hasOptimistic = true
		}
	}
	if !hasSkeptical || !hasSocietal {
		t.Errorf("missing pole suggestions absent: %v", got.MissingPerspectives)
	}
	if hasOptimistic {
		t.Errorf("represented pole flagged as missing: %v", got.MissingPerspectives)
	}
}

func TestSynthesizer_EverythingMissingWhenNoMatches(t *testing.T) {
	s := NewSynthesizer(0.6, expand.Default())
	snap := testSnapshot()

	got := s.Synthesize(nil, snap)

	if len(got.DominantCamps) != 0 {
		t.Errorf("DominantCamps = %v, want none", got.DominantCamps)
	}
	// Both domains in snapshot order, then every taxonomy pole
	if len(got.MissingPerspectives) != 5 {
		t.Fatalf("len(MissingPerspectives) = %d, want 5: %v", len(got.MissingPerspectives), got.MissingPerspectives)
	}
	if !strings.Contains(got.MissingPerspectives[0], "AI Governance") {
		t.Errorf("first suggestion %q should follow snapshot domain order", got.MissingPerspectives[0])
	}
	if !strings.Contains(got.MissingPerspectives[1], "Climate Policy") {
		t.Errorf("second suggestion %q should follow snapshot domain order", got.MissingPerspectives[1])
	}
}

func TestSynthesizer_Deterministic(t *testing.T) {
	s := NewSynthesizer(0.6, expand.Default())
	snap := testSnapshot()
	matches := []model.CampMatch{match(snap, "safety-first", 2.0)}

	first := s.Synthesize(matches, snap)
	second := s.Synthesize(matches, snap)

	if len(first.MissingPerspectives) != len(second.MissingPerspectives) {
		t.Fatal("suggestion counts differ between identical runs")
	}
	for i := range first.MissingPerspectives {
		if first.MissingPerspectives[i] != second.MissingPerspectives[i] {
			t.Errorf("position %d differs: %q vs %q", i, first.MissingPerspectives[i], second.MissingPerspectives[i])
		}
	}
}
