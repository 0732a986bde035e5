package model

// Stance classifies whether a camp's vocabulary supports or challenges
// the inferred intent of the input. Heuristic by design: it drives
// editorial framing, not a certified sentiment judgment.
type Stance string

const (
	StanceSupports   Stance = "supports"
	StanceChallenges Stance = "challenges"
	StanceNeutral    Stance = "neutral"
)

// CampMatch is one camp the input text aligned with
type CampMatch struct {
	Camp       Camp        `json:"camp"`
	Score      float64     `json:"score"`
	Stance     Stance      `json:"stance"`
	TopAuthors []AuthorRef `json:"top_authors,omitempty"`
}

// EditorialSuggestions are derived editorial signals
type EditorialSuggestions struct {
	MissingPerspectives []string `json:"missing_perspectives"`
	DominantCamps       []string `json:"dominant_camps"`
}

// DebugInfo surfaces intermediate state for tuning; only populated when
// the caller asks for it.
type DebugInfo struct {
	Keywords  []string           `json:"keywords"`
	Terms     []ExpandedTerm     `json:"terms"`
	RawScores map[string]float64 `json:"raw_scores"` // camp id -> pre-floor score
}

// AnalysisResult is the complete output of a single analysis
type AnalysisResult struct {
	Summary      string               `json:"summary,omitempty"` // optional LLM framing, never affects matching
	MatchedCamps []CampMatch          `json:"matched_camps"`
	Suggestions  EditorialSuggestions `json:"editorial_suggestions"`
	Warnings     []string             `json:"warnings,omitempty"` // skipped malformed camps etc.
	Debug        *DebugInfo           `json:"debug,omitempty"`
}

// AlignmentLevel bands the alignment score
type AlignmentLevel string

const (
	AlignmentHigh    AlignmentLevel = "high"
	AlignmentMedium  AlignmentLevel = "medium"
	AlignmentLow     AlignmentLevel = "low"
	AlignmentUnknown AlignmentLevel = "unknown" // no profile statements to compare against
)

// AlignmentResult compares a draft against a stored personal profile.
// Score is nil exactly when the profile holds no statements; callers must
// render that distinctly from a low score.
type AlignmentResult struct {
	Score       *int           `json:"score"` // 0-100
	Level       AlignmentLevel `json:"level"`
	Description string         `json:"description"`
}

// BrakeSeverity grades a brake signal
type BrakeSeverity string

const (
	BrakeWarning BrakeSeverity = "warning"
	BrakeStop    BrakeSeverity = "stop"
)

// Brake is a caution/hold signal raised when content is overly dominated
// by one camp or omits significant perspectives.
type Brake struct {
	Severity      BrakeSeverity `json:"severity"`
	DominantCamps []string      `json:"dominant_camps"`
	MissingThemes []string      `json:"missing_themes"`
	Reason        string        `json:"reason"`
}

// ContentReview is the profile-relative output of AnalyzeContent
type ContentReview struct {
	Alignment AlignmentResult `json:"alignment"`
	Brake     *Brake          `json:"brake,omitempty"`
	Matches   []CampMatch     `json:"matches"`
}

// TextValidation is the pre-flight check result for ValidateText
type TextValidation struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}
