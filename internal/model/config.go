package model

import "time"

// Config is the complete canonlens configuration.
// Hierarchy (highest to lowest priority): CLI flags, CANONLENS_* env vars,
// ~/.canonlens/config.yaml, the defaults below.
type Config struct {
	Engine      EngineConfig      `yaml:"engine"`
	Canon       CanonConfig       `yaml:"canon"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// EngineConfig holds the tunable policy constants of the analysis engine.
// The taxonomy content itself (domains, camp vocabularies, axis tags,
// expansions) is data supplied through the canon and lexicon files, not
// configuration here.
type EngineConfig struct {
	MinTokenLength int      `yaml:"min_token_length"` // tokens shorter than this are noise
	ExtraStopwords []string `yaml:"extra_stopwords"`  // appended to the built-in list

	ExpansionDecay float64 `yaml:"expansion_decay"` // weight for axis-derived terms
	MaxTerms       int     `yaml:"max_terms"`       // expansion cap, bounds scoring cost

	MinScoreFloor    float64 `yaml:"min_score_floor"`   // camps at or below are discarded
	DomainBonus      float64 `yaml:"domain_bonus"`      // scale when camp matches target domain
	MaxCamps         int     `yaml:"max_camps"`         // default bound on matched camps
	DominantFraction float64 `yaml:"dominant_fraction"` // share of score mass marking dominance
	StopFraction     float64 `yaml:"stop_fraction"`     // near-total concentration, brake=stop

	MinTextLength  int `yaml:"min_text_length"`  // analyze precondition
	MinDraftLength int `yaml:"min_draft_length"` // content review precondition
	TopAuthors     int `yaml:"top_authors"`      // authors surfaced per match
}

// CanonConfig locates the taxonomy and lexicon data files
type CanonConfig struct {
	Path        string        `yaml:"path"`         // canon YAML file
	LexiconPath string        `yaml:"lexicon_path"` // axis lexicon YAML file ("" = built-in)
	CacheTTL    time.Duration `yaml:"cache_ttl"`    // snapshot cache TTL in the store layer
}

// LLMConfig configures the optional summary generation.
// The summary is framing only: it is produced after matching and can
// never affect scores.
type LLMConfig struct {
	Provider  string  `yaml:"provider"` // "openai" or "" (disabled)
	Model     string  `yaml:"model"`
	APIKey    string  `yaml:"-"` // env only, never persisted
	BaseURL   string  `yaml:"base_url"`
	Timeout   int     `yaml:"timeout_seconds"`
	MaxTokens int     `yaml:"max_tokens"`
	RateLimit float64 `yaml:"rate_limit"` // summary calls per second in batch mode

	// Proxy settings for the LLM HTTP client
	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			MinTokenLength:   3,
			ExpansionDecay:   0.5,
			MaxTerms:         48,
			MinScoreFloor:    0.75,
			DomainBonus:      1.25,
			MaxCamps:         5,
			DominantFraction: 0.6,
			StopFraction:     0.9,
			MinTextLength:    20,
			MinDraftLength:   50,
			TopAuthors:       3,
		},
		Canon: CanonConfig{
			Path:     "canon.yaml",
			CacheTTL: 5 * time.Minute,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 600,
			RateLimit: 1,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
	}
}
