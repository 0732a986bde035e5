package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/draftroom/canonlens/internal/engine"
	"github.com/draftroom/canonlens/internal/pipeline"
	"github.com/draftroom/canonlens/internal/worker"
)

var (
	batchConcurrency int
	batchOutputDir   string
	batchTimeout     time.Duration
	batchFormat      string
	batchCanon       string
	batchLLM         bool
	batchLLMProvider string
	batchLLMModel    string
	batchUser        string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list-file>",
	Short: "Analyze multiple drafts in parallel",
	Long: `Batch reviews many drafts concurrently:
- Read drafts from a directory (*.txt, *.md, *.html) or a list file
  (one path per line)
- Analyze drafts in parallel with a configurable worker count
- Rate-limit LLM summary calls per provider
- Write one JSON and one Markdown report per draft

Example:
  canonlens batch ./drafts
  canonlens batch drafts.txt --concurrency 8 --output-dir ./reports
  canonlens batch ./drafts --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./canonlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&batchFormat, "format", "", "draft format: text or html (default: by extension)")
	batchCmd.Flags().StringVar(&batchCanon, "canon", "", "canon YAML file (overrides config)")
	batchCmd.Flags().StringVar(&batchUser, "user", "", "user id for accumulated memory context")

	batchCmd.Flags().BoolVar(&batchLLM, "llm", false, "enable LLM summary generation")
	batchCmd.Flags().StringVar(&batchLLMProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&batchLLMModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	if batchCanon != "" {
		cfg.Canon.Path = batchCanon
	}
	cfg.Concurrency.Workers = batchConcurrency
	if batchLLM {
		if err := configureLLM(cfg, batchLLMProvider, batchLLMModel); err != nil {
			return err
		}
	}

	paths, err := collectDrafts(args[0])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no drafts found in %s", args[0])
	}

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p, err := newPipeline(cfg, "", "")
	if err != nil {
		return err
	}

	var limiter *worker.Limiter
	provider := ""
	if batchLLM {
		limiter = worker.NewLimiter(cfg.LLM.RateLimit, 2)
		provider = cfg.LLM.Provider
	}

	fmt.Fprintf(os.Stderr, "Reviewing %d draft(s) with %d worker(s)\n", len(paths), cfg.Concurrency.Workers)

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, limiter, provider)
	results := processor.ProcessFiles(ctx, paths, batchFormat, engine.Options{}, batchUser)

	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.Path, r.Error)
			continue
		}
		if err := writeBatchReports(p, r, batchOutputDir); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.Path, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Done: %d ok, %d failed\n", len(results)-failures, failures)
	if failures > 0 {
		return fmt.Errorf("%d draft(s) failed", failures)
	}
	return nil
}

// collectDrafts expands a directory or list file into draft paths
func collectDrafts(source string) ([]string, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		var paths []string
		entries, err := os.ReadDir(source)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".txt", ".md", ".html", ".htm":
				paths = append(paths, filepath.Join(source, e.Name()))
			}
		}
		return paths, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// writeBatchReports renders one JSON and one Markdown report per draft
func writeBatchReports(p *pipeline.Pipeline, r *worker.ReviewResult, outputDir string) error {
	base := strings.TrimSuffix(filepath.Base(r.Path), filepath.Ext(r.Path))
	jsonPath := filepath.Join(outputDir, base+".json")
	mdPath := filepath.Join(outputDir, base+".md")
	return p.RenderAnalysisFiles(r.Result, jsonPath, mdPath, false)
}
