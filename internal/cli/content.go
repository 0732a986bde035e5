package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	contentProfile     string
	contentProfilesDir string
	contentCanon       string
	contentJSON        string
	contentMD          string
	contentTimeout     time.Duration
)

// contentCmd represents the content command
var contentCmd = &cobra.Command{
	Use:   "content <draft-file>",
	Short: "Review a draft against a personal profile (alignment + brake)",
	Long: `Content runs the profile-relative review path:
- Match the draft against the canon
- Score alignment with the profile's declared positions (0-100)
- Raise a brake when a single camp dominates the draft

Example:
  canonlens content draft.txt --profile alice
  canonlens content draft.txt --profile alice --profiles-dir ./profiles --md review.md`,
	Args: cobra.ExactArgs(1),
	RunE: runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)

	contentCmd.Flags().StringVar(&contentProfile, "profile", "", "profile id (required)")
	contentCmd.Flags().StringVar(&contentProfilesDir, "profiles-dir", "./profiles", "directory of profile YAML files")
	contentCmd.Flags().StringVar(&contentCanon, "canon", "", "canon YAML file (overrides config)")
	contentCmd.Flags().StringVar(&contentJSON, "json", "", "output JSON path")
	contentCmd.Flags().StringVar(&contentMD, "md", "", "output Markdown path")
	contentCmd.Flags().DurationVar(&contentTimeout, "timeout", time.Minute, "overall review timeout")
	_ = contentCmd.MarkFlagRequired("profile")
}

func runContent(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), contentTimeout)
	defer cancel()

	cfg := buildConfig()
	if contentCanon != "" {
		cfg.Canon.Path = contentCanon
	}

	p, err := newPipeline(cfg, contentProfilesDir, "")
	if err != nil {
		return err
	}

	draft, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read draft %s: %w", args[0], err)
	}

	review, err := p.ReviewContent(ctx, string(draft), contentProfile)
	if err != nil {
		return err
	}

	if contentJSON != "" {
		if err := p.RenderReviewJSON(review, contentJSON); err != nil {
			return err
		}
	}
	if contentMD != "" {
		if err := p.RenderReviewMarkdown(review, contentMD); err != nil {
			return err
		}
	}
	p.RenderReviewSummary(review)
	return nil
}
