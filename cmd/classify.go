package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	classifyQuestion string
	classifyAnswer   string
)

// classifyCmd runs one answer through the classification pipeline from the
// terminal, useful for prompt and taxonomy tuning.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a quiz answer against the tag taxonomy",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		result, usage, err := appInstance.ClassificationService.Classify(cmd.Context(), classifyQuestion, classifyAnswer)
		if err != nil {
			return fmt.Errorf("classification failed: %w", err)
		}

		header := color.New(color.Bold, color.FgCyan)
		header.Println("Tags")
		fmt.Printf("  Style:    %s\n", strings.Join(result.StyleTags, ", "))
		fmt.Printf("  Fitting:  %s\n", strings.Join(result.FittingTags, ", "))
		fmt.Printf("  Activity: %s\n", strings.Join(result.ActivityTags, ", "))
		if result.Gender != "" {
			fmt.Printf("  Gender:   %s\n", result.Gender)
		}
		fmt.Printf("Tokens: prompt=%d completion=%d total=%d\n",
			usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&classifyQuestion, "question", "", "The quiz question the answer responds to (optional)")
	classifyCmd.Flags().StringVar(&classifyAnswer, "answer", "", "The user's free-text answer (required)")
	classifyCmd.MarkFlagRequired("answer")
}
