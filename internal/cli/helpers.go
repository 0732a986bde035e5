package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/draftroom/canonlens/internal/cache"
	"github.com/draftroom/canonlens/internal/model"
	"github.com/draftroom/canonlens/internal/pipeline"
	"github.com/draftroom/canonlens/internal/store"
)

// buildConfig merges viper-backed settings over the defaults. CLI flags
// override the result inside each command.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("canon.path"); v != "" {
		cfg.Canon.Path = v
	}
	if v := viper.GetString("canon.lexicon_path"); v != "" {
		cfg.Canon.LexiconPath = v
	}
	if viper.IsSet("canon.cache_ttl") {
		cfg.Canon.CacheTTL = viper.GetDuration("canon.cache_ttl")
	}

	if viper.IsSet("engine.min_score_floor") {
		cfg.Engine.MinScoreFloor = viper.GetFloat64("engine.min_score_floor")
	}
	if viper.IsSet("engine.dominant_fraction") {
		cfg.Engine.DominantFraction = viper.GetFloat64("engine.dominant_fraction")
	}
	if viper.IsSet("engine.stop_fraction") {
		cfg.Engine.StopFraction = viper.GetFloat64("engine.stop_fraction")
	}
	if viper.IsSet("engine.expansion_decay") {
		cfg.Engine.ExpansionDecay = viper.GetFloat64("engine.expansion_decay")
	}
	if viper.IsSet("engine.max_camps") {
		cfg.Engine.MaxCamps = viper.GetInt("engine.max_camps")
	}
	if viper.IsSet("engine.extra_stopwords") {
		cfg.Engine.ExtraStopwords = viper.GetStringSlice("engine.extra_stopwords")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}

	cfg.Output.Verbose = verbose
	return cfg
}

// configureLLM enables summary generation on the config
func configureLLM(cfg *model.Config, provider, modelName string) error {
	cfg.LLM.Provider = provider
	cfg.LLM.Model = modelName

	switch provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// newPipeline wires the file-backed stores around the engine
func newPipeline(cfg *model.Config, profilesDir, memoryDir string) (*pipeline.Pipeline, error) {
	snapCache := cache.NewMemoryCache(cfg.Canon.CacheTTL, 2*cfg.Canon.CacheTTL)
	canon := store.NewFileCanonStore(cfg.Canon.Path, snapCache, cfg.Canon.CacheTTL)

	var profiles store.ProfileStore
	if profilesDir != "" {
		profiles = store.NewFileProfileStore(profilesDir)
	}
	var memory store.MemoryStore
	if memoryDir != "" {
		memory = store.NewFileMemoryStore(memoryDir)
	}

	return pipeline.NewPipeline(cfg, canon, profiles, memory)
}
