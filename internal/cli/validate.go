package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draftroom/canonlens/internal/engine"
	"github.com/draftroom/canonlens/internal/expand"
)

var validateText string

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [draft-file]",
	Short: "Pre-flight check a draft before analysis",
	Long: `Validate runs the same input checks analyze would, without
touching the canon. Useful for callers that want to reject a draft
before paying for a full analysis.

Example:
  canonlens validate draft.txt
  canonlens validate --text "too short"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateText, "text", "", "validate this text instead of a file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateText == "" && len(args) == 0 {
		return fmt.Errorf("provide a draft file or --text")
	}

	text := validateText
	if text == "" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read draft %s: %w", args[0], err)
		}
		text = string(data)
	}

	cfg := buildConfig()
	eng := engine.New(cfg.Engine, expand.Default())

	v := eng.ValidateText(text)
	if !v.IsValid {
		return fmt.Errorf("invalid draft: %s", v.Error)
	}
	fmt.Println("valid")
	return nil
}
