// Package engine is the editorial analysis core: a pure function from
// (text, taxonomy snapshot, optional profile) to structured editorial
// feedback. It performs no I/O, owns no persistent state, and never
// mutates the snapshot it is given, so concurrent invocations need no
// locking.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/draftroom/canonlens/internal/advise"
	"github.com/draftroom/canonlens/internal/errs"
	"github.com/draftroom/canonlens/internal/expand"
	"github.com/draftroom/canonlens/internal/extract"
	"github.com/draftroom/canonlens/internal/model"
	"github.com/draftroom/canonlens/internal/score"
)

// Options tune a single Analyze invocation
type Options struct {
	MaxCamps         int    // 0 = config default
	Domain           string // target domain for the match bonus
	IncludeDebugInfo bool
}

// Engine wires the analysis components behind a single facade
type Engine struct {
	cfg       model.EngineConfig
	extractor *extract.KeywordExtractor
	expander  *expand.Expander
	scorer    *score.CampScorer
	stance    *score.StanceClassifier
	synth     *advise.Synthesizer
	aligner   *advise.AlignmentScorer
	brakes    *advise.BrakeEvaluator
}

// New creates an engine from the tunable policy constants and a stance
// lexicon (nil selects the built-in one).
func New(cfg model.EngineConfig, lexicon *expand.Lexicon) *Engine {
	if lexicon == nil {
		lexicon = expand.Default()
	}
	return &Engine{
		cfg:       cfg,
		extractor: extract.NewKeywordExtractor(cfg.MinTokenLength, cfg.ExtraStopwords),
		expander:  expand.NewExpander(lexicon, cfg.ExpansionDecay, cfg.MaxTerms),
		scorer:    score.NewCampScorer(cfg.MinScoreFloor, cfg.DomainBonus, cfg.TopAuthors),
		stance:    score.NewStanceClassifier(),
		synth:     advise.NewSynthesizer(cfg.DominantFraction, lexicon),
		aligner:   advise.NewAlignmentScorer(),
		brakes:    advise.NewBrakeEvaluator(cfg.DominantFraction, cfg.StopFraction),
	}
}

// ValidateText is the pre-flight check callers may run before Analyze
func (e *Engine) ValidateText(text string) model.TextValidation {
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		return model.TextValidation{Error: "text is empty"}
	case len(trimmed) < e.cfg.MinTextLength:
		return model.TextValidation{Error: fmt.Sprintf("text must be at least %d characters", e.cfg.MinTextLength)}
	default:
		return model.TextValidation{IsValid: true}
	}
}

// Analyze matches text against the taxonomy snapshot and produces
// editorial feedback. Deterministic: identical (text, snapshot, opts)
// always yields an identical result.
func (e *Engine) Analyze(snapshot *model.TaxonomySnapshot, text string, opts Options) (result *model.AnalysisResult, err error) {
	if snapshot == nil {
		return nil, &errs.ValidationError{Msg: "taxonomy snapshot is required"}
	}
	if v := e.ValidateText(text); !v.IsValid {
		return nil, &errs.ValidationError{Msg: v.Error}
	}
	if opts.Domain != "" {
		if _, ok := snapshot.DomainByID(opts.Domain); !ok {
			return nil, &errs.NotFoundError{Kind: "domain", ID: opts.Domain}
		}
	}

	// The computation is pure; a panic here means a genuine internal
	// fault, surfaced as AnalysisError with enough context to reproduce.
	defer func() {
		if r := recover(); r != nil {
			err = &errs.AnalysisError{
				Op:              "analyze",
				TextHash:        textHash(text),
				SnapshotVersion: snapshot.Version,
				Err:             fmt.Errorf("panic: %v", r),
			}
			result = nil
		}
	}()

	maxCamps := opts.MaxCamps
	if maxCamps <= 0 {
		maxCamps = e.cfg.MaxCamps
	}

	keywords := e.extractor.Extract(text)
	terms := e.expander.Expand(keywords)

	matches, raw, warnings := e.scorer.Rank(snapshot.Camps, terms, opts.Domain, maxCamps)
	for i := range matches {
		matches[i].Stance = e.stance.Classify(matches[i].Camp, terms)
	}

	result = &model.AnalysisResult{
		MatchedCamps: matches,
		Suggestions:  e.synth.Synthesize(matches, snapshot),
		Warnings:     warnings,
	}
	if opts.IncludeDebugInfo {
		result.Debug = &model.DebugInfo{
			Keywords:  keywords,
			Terms:     terms,
			RawScores: raw,
		}
	}
	return result, nil
}

// AnalyzeContent reviews a draft against a personal profile, producing
// the profile-relative alignment score and, when one camp dominates,
// a brake signal.
func (e *Engine) AnalyzeContent(snapshot *model.TaxonomySnapshot, draft string, profile *model.Profile) (*model.ContentReview, error) {
	if profile == nil {
		return nil, &errs.ValidationError{Msg: "profile is required for content review"}
	}
	if len(strings.TrimSpace(draft)) < e.cfg.MinDraftLength {
		return nil, errs.Validationf("draft must be at least %d characters", e.cfg.MinDraftLength)
	}
	if snapshot == nil {
		return nil, &errs.ValidationError{Msg: "taxonomy snapshot is required"}
	}

	keywords := e.extractor.Extract(draft)
	terms := e.expander.Expand(keywords)

	matches, _, _ := e.scorer.Rank(snapshot.Camps, terms, "", e.cfg.MaxCamps)
	for i := range matches {
		matches[i].Stance = e.stance.Classify(matches[i].Camp, terms)
	}

	suggestions := e.synth.Synthesize(matches, snapshot)

	return &model.ContentReview{
		Alignment: e.aligner.Score(matches, profile.Statements),
		Brake:     e.brakes.Evaluate(matches, suggestions.MissingPerspectives),
		Matches:   matches,
	}, nil
}

// textHash identifies an input text in fault reports without logging it
func textHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:8])
}
