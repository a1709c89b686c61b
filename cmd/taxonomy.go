package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"personatag/internal/taxonomy"
)

// taxonomyCmd prints the tag registry. Static data, no app required.
var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print the tag taxonomy (categories, allowed values, bounds)",
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Category", "Field", "Min", "Max", "Allowed Values"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, cat := range taxonomy.Registry() {
			table.Append([]string{
				cat.Name,
				cat.Field,
				strconv.Itoa(cat.MinSelect),
				strconv.Itoa(cat.MaxSelect),
				strings.Join(cat.Values, ", "),
			})
		}

		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
}
