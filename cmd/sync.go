package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	syncCustomerID string
	syncFile       string
)

// syncCmd pushes a metafields JSON file to a customer profile.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync a tag mapping to a customer profile as metafields",
	Long: `Reads a JSON object of tag data (category key to value or list of
values) from a file and upserts it on the given customer as typed
metafields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		mapping, err := os.ReadFile(syncFile)
		if err != nil {
			return fmt.Errorf("failed to read metafields file: %w", err)
		}

		result, err := appInstance.ProfileSyncService.Sync(cmd.Context(), syncCustomerID, mapping)
		if err != nil {
			return fmt.Errorf("profile sync failed: %w", err)
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, result, "", "  "); err != nil {
			fmt.Println(string(result))
			return nil
		}
		fmt.Println(pretty.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVar(&syncCustomerID, "customer", "", "Customer ID in the profile store (required)")
	syncCmd.Flags().StringVar(&syncFile, "file", "", "Path to the metafields JSON file (required)")
	syncCmd.MarkFlagRequired("customer")
	syncCmd.MarkFlagRequired("file")
}
