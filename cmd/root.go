package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"personatag/internal/app"
	"personatag/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "personatag",
	Short: "Style-quiz tagging and profile sync service",
	Long: `Personatag classifies free-text style quiz answers against a fixed tag
taxonomy using an LLM completion provider, and syncs accumulated tag data to
customer profiles as typed metafields.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch collaborators skip app initialization.
		switch cmd.Name() {
		case "help", "version", "completion", "taxonomy":
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}
