package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/draftroom/canonlens/internal/engine"
)

var (
	analyzeText     string
	analyzeDomain   string
	analyzeMaxCamps int
	analyzeDebug    bool
	analyzeFormat   string
	analyzeJSON     string
	analyzeMD       string
	analyzeTimeout  time.Duration
	canonPath       string
	lexiconPath     string
	memoryDir       string
	userID          string
	llmEnabled      bool
	llmProvider     string
	llmModel        string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [draft-file]",
	Short: "Analyze a draft against the canon and report camp alignment",
	Long: `Analyze matches a draft against the curated canon:
- Extract keywords and expand them across the stance axes
- Score and rank the camps the draft aligns with
- Classify each match as supporting or challenging the draft
- Suggest missing perspectives and flag dominant camps

Example:
  canonlens analyze draft.txt
  canonlens analyze draft.html --format html --json report.json --md report.md
  canonlens analyze --text "Regulation of frontier models ..." --domain ai-governance
  canonlens analyze draft.txt --llm --llm-provider openai --user alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "analyze this text instead of a file")
	analyzeCmd.Flags().StringVar(&analyzeDomain, "domain", "", "target domain id for the match bonus")
	analyzeCmd.Flags().IntVar(&analyzeMaxCamps, "max-camps", 0, "bound on matched camps (0 = config default)")
	analyzeCmd.Flags().BoolVar(&analyzeDebug, "debug", false, "include keywords, expanded terms and raw scores in output")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "draft format: text or html (default: by extension)")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "output JSON path")
	analyzeCmd.Flags().StringVar(&analyzeMD, "md", "", "output Markdown path")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", time.Minute, "overall analysis timeout")

	analyzeCmd.Flags().StringVar(&canonPath, "canon", "", "canon YAML file (overrides config)")
	analyzeCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "axis lexicon YAML file (default: built-in)")
	analyzeCmd.Flags().StringVar(&memoryDir, "memory-dir", "", "directory of per-user memory files")
	analyzeCmd.Flags().StringVar(&userID, "user", "", "user id for accumulated memory context")

	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeText == "" && len(args) == 0 {
		return fmt.Errorf("provide a draft file or --text")
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg := buildConfig()
	if canonPath != "" {
		cfg.Canon.Path = canonPath
	}
	if lexiconPath != "" {
		cfg.Canon.LexiconPath = lexiconPath
	}
	if llmEnabled {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return err
		}
	}

	p, err := newPipeline(cfg, "", memoryDir)
	if err != nil {
		return err
	}

	opts := engine.Options{
		MaxCamps:         analyzeMaxCamps,
		Domain:           analyzeDomain,
		IncludeDebugInfo: analyzeDebug,
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Canon: %s\n", cfg.Canon.Path)
		if analyzeDomain != "" {
			fmt.Fprintf(os.Stderr, "Target domain: %s\n", analyzeDomain)
		}
	}

	if analyzeText != "" {
		res, err := p.AnalyzeText(ctx, analyzeText, opts, userID)
		if err != nil {
			return err
		}
		return p.RenderAnalysis(res, analyzeJSON, analyzeMD, verbose)
	}

	res, err := p.AnalyzeFile(ctx, args[0], analyzeFormat, opts, userID)
	if err != nil {
		return err
	}
	return p.RenderAnalysis(res, analyzeJSON, analyzeMD, verbose)
}
