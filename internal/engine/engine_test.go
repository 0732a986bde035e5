package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/draftroom/canonlens/internal/errs"
	"github.com/draftroom/canonlens/internal/model"
)

func testEngine() *Engine {
	return New(model.DefaultConfig().Engine, nil)
}

func testSnapshot() *model.TaxonomySnapshot {
	return &model.TaxonomySnapshot{
		Version: "2026-08-01",
		Domains: []model.Domain{
			{ID: "ai-governance", Name: "AI Governance"},
			{ID: "climate", Name: "Climate Policy"},
		},
		Camps: []model.Camp{
			{
				ID: "accelerationists", DomainID: "ai-governance", Label: "Accelerationists",
				Vocabulary: []string{"progress", "innovation", "scaling", "compute", "abundance"},
				Leanings:   map[string]string{"outlook": "optimistic", "governance": "market"},
				Authors: []model.AuthorRef{
					{ID: "a1", Name: "R. Moreau", Tier: model.TierStrong},
					{ID: "a2", Name: "J. Fry", Tier: model.TierModerate},
				},
			},
			{
				ID: "safety-first", DomainID: "ai-governance", Label: "Safety First",
				Vocabulary: []string{"risk", "caution", "oversight", "existential"},
				Leanings:   map[string]string{"outlook": "skeptical", "governance": "regulation"},
				Authors: []model.AuthorRef{
					{ID: "a3", Name: "K. Ellis", Tier: model.TierStrong},
				},
			},
			{
				ID: "climate-pragmatists", DomainID: "climate", Label: "Climate Pragmatists",
				Vocabulary: []string{"adaptation", "resilience", "mitigation"},
				Leanings:   map[string]string{"scope": "societal"},
			},
		},
	}
}

const accelDraft = "Rapid progress in compute scaling promises abundance and innovation for every industry that adopts it early."

const gibberishDraft = "qqq www eee rrr ttt yyy uuu iii ooo ppp aaa sss ddd fff ggg"

func TestAnalyze_MatchesDominantCamp(t *testing.T) {
	e := testEngine()

	result, err := e.Analyze(testSnapshot(), accelDraft, Options{})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if len(result.MatchedCamps) != 1 {
		t.Fatalf("len(MatchedCamps) = %d, want 1: %+v", len(result.MatchedCamps), result.MatchedCamps)
	}
	top := result.MatchedCamps[0]
	if top.Camp.ID != "accelerationists" {
		t.Errorf("top camp = %s, want accelerationists", top.Camp.ID)
	}
	if top.Stance != model.StanceSupports {
		t.Errorf("stance = %v, want supports", top.Stance)
	}
	if len(top.TopAuthors) == 0 || top.TopAuthors[0].Tier != model.TierStrong {
		t.Errorf("TopAuthors = %+v, want strongest author first", top.TopAuthors)
	}
	if len(result.Suggestions.DominantCamps) != 1 {
		t.Errorf("DominantCamps = %v, want the single matched camp", result.Suggestions.DominantCamps)
	}
}

func TestAnalyze_NoKeywordsMeansNoMatches(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()

	result, err := e.Analyze(snap, gibberishDraft, Options{})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if len(result.MatchedCamps) != 0 {
		t.Errorf("MatchedCamps = %+v, want none", result.MatchedCamps)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}

	// Every domain should be suggested as missing
	for _, d := range snap.Domains {
		found := false
		for _, m := range result.Suggestions.MissingPerspectives {
			if strings.Contains(m, d.Name) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("domain %s not flagged as missing", d.Name)
		}
	}
}

func TestAnalyze_ValidationErrors(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty text", "", "text is empty"},
		{"whitespace only", "   \n\t  ", "text is empty"},
		{"too short", "short", "at least 20 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Analyze(testSnapshot(), tt.text, Options{})
			if !errs.IsValidation(err) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want mention of %q", err.Error(), tt.want)
			}
		})
	}
}

func TestAnalyze_NilSnapshot(t *testing.T) {
	e := testEngine()

	_, err := e.Analyze(nil, accelDraft, Options{})
	if !errs.IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestAnalyze_UnknownDomain(t *testing.T) {
	e := testEngine()

	_, err := e.Analyze(testSnapshot(), accelDraft, Options{Domain: "sports"})
	if !errs.IsNotFound(err) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestAnalyze_MaxCampsOption(t *testing.T) {
	e := testEngine()
	text := "We must weigh progress and innovation against risk, caution and oversight before scaling further."

	result, err := e.Analyze(testSnapshot(), text, Options{MaxCamps: 1})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(result.MatchedCamps) != 1 {
		t.Errorf("len(MatchedCamps) = %d, want cap of 1", len(result.MatchedCamps))
	}
}

func TestAnalyze_DebugInfo(t *testing.T) {
	e := testEngine()

	plain, err := e.Analyze(testSnapshot(), accelDraft, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if plain.Debug != nil {
		t.Error("Debug populated without the option")
	}

	debugged, err := e.Analyze(testSnapshot(), accelDraft, Options{IncludeDebugInfo: true})
	if err != nil {
		t.Fatal(err)
	}
	if debugged.Debug == nil {
		t.Fatal("Debug missing with the option set")
	}
	if len(debugged.Debug.Keywords) == 0 || len(debugged.Debug.Terms) == 0 {
		t.Error("Debug lacks keywords or expanded terms")
	}
	if _, ok := debugged.Debug.RawScores["safety-first"]; !ok {
		t.Error("RawScores should record every scored camp, matched or not")
	}
}

func TestAnalyze_DeterministicAndSnapshotUntouched(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()
	pristine := testSnapshot()

	first, err := e.Analyze(snap, accelDraft, Options{IncludeDebugInfo: true})
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Analyze(snap, accelDraft, Options{IncludeDebugInfo: true})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
	if !reflect.DeepEqual(snap, pristine) {
		t.Error("Analyze mutated the snapshot")
	}
}

func TestAnalyzeContent_BrakeOnSingleCampDraft(t *testing.T) {
	e := testEngine()
	profile := &model.Profile{ID: "p1", Name: "Columnist", Statements: []string{
		"I champion technological progress and innovation",
	}}

	review, err := e.AnalyzeContent(testSnapshot(), accelDraft, profile)
	if err != nil {
		t.Fatalf("AnalyzeContent() error: %v", err)
	}

	if review.Brake == nil {
		t.Fatal("expected a brake for a single-camp draft")
	}
	if review.Brake.Severity != model.BrakeStop {
		t.Errorf("Severity = %v, want stop at total dominance", review.Brake.Severity)
	}
	if len(review.Brake.MissingThemes) == 0 {
		t.Error("brake carries no missing themes")
	}
	if review.Alignment.Score == nil || *review.Alignment.Score != 100 {
		t.Errorf("Alignment.Score = %v, want 100 for a fully aligned draft", review.Alignment.Score)
	}
}

func TestAnalyzeContent_NoMatchesNoBrake(t *testing.T) {
	e := testEngine()
	profile := &model.Profile{ID: "p1", Statements: []string{"I favor caution"}}

	review, err := e.AnalyzeContent(testSnapshot(), gibberishDraft, profile)
	if err != nil {
		t.Fatalf("AnalyzeContent() error: %v", err)
	}

	if review.Brake != nil {
		t.Errorf("Brake = %+v, want nil without matches", review.Brake)
	}
	if review.Alignment.Score == nil || *review.Alignment.Score != 0 {
		t.Errorf("Alignment.Score = %v, want explicit 0", review.Alignment.Score)
	}
	if review.Alignment.Level != model.AlignmentLow {
		t.Errorf("Alignment.Level = %v, want low", review.Alignment.Level)
	}
}

func TestAnalyzeContent_NilAlignmentWithoutStatements(t *testing.T) {
	e := testEngine()
	profile := &model.Profile{ID: "p1", Name: "New Columnist"}

	review, err := e.AnalyzeContent(testSnapshot(), accelDraft, profile)
	if err != nil {
		t.Fatalf("AnalyzeContent() error: %v", err)
	}

	if review.Alignment.Score != nil {
		t.Errorf("Alignment.Score = %v, want nil for an empty profile", *review.Alignment.Score)
	}
	if review.Alignment.Level != model.AlignmentUnknown {
		t.Errorf("Alignment.Level = %v, want unknown", review.Alignment.Level)
	}
}

func TestAnalyzeContent_ShortDraft(t *testing.T) {
	e := testEngine()
	profile := &model.Profile{ID: "p1", Statements: []string{"x"}}

	_, err := e.AnalyzeContent(testSnapshot(), "too short to review", profile)
	if !errs.IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if !strings.Contains(err.Error(), "50") {
		t.Errorf("error = %q, want the minimum draft length named", err.Error())
	}
}

func TestAnalyzeContent_NilProfile(t *testing.T) {
	e := testEngine()

	_, err := e.AnalyzeContent(testSnapshot(), accelDraft, nil)
	if !errs.IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestValidateText(t *testing.T) {
	e := testEngine()

	if v := e.ValidateText(accelDraft); !v.IsValid {
		t.Errorf("ValidateText rejected a valid draft: %s", v.Error)
	}
	if v := e.ValidateText(""); v.IsValid {
		t.Error("ValidateText accepted empty text")
	}
	if v := e.ValidateText("tiny"); v.IsValid || !strings.Contains(v.Error, "20") {
		t.Errorf("ValidateText short text: %+v, want minimum length named", v)
	}
}
