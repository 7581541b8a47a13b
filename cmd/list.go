package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/tuitour/internal/presentation"
)

var (
	listJSON         bool
	listWithExamples bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the demos in the catalog",
	Long: `List every demo in tour order.

Prints a table by default. Use --json for machine-readable output.

Examples:
  # Show the catalog as a table
  tuitour list

  # Only demos with a live example
  tuitour list --examples

  # Titles as JSON
  tuitour list --json | jq '.[].title'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := setup("list")
		if err != nil {
			return err
		}
		defer rt.Close()

		demos := presentation.FromCatalog(rt.catalog)
		if listWithExamples {
			demos = withExamples(demos)
		}
		return writeDemos(cmd.OutOrStdout(), demos, listJSON)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of a table")
	listCmd.Flags().BoolVarP(&listWithExamples, "examples", "e", false, "Only list demos with a live example")
	rootCmd.AddCommand(listCmd)
}

func writeDemos(w io.Writer, demos []presentation.DemoDTO, asJSON bool) error {
	formatter := presentation.NewFormatter(w)
	if asJSON {
		return formatter.FormatDemos(demos)
	}
	return formatter.FormatDemoTable(demos)
}

// withExamples keeps the demos that have a live example.
func withExamples(demos []presentation.DemoDTO) []presentation.DemoDTO {
	result := make([]presentation.DemoDTO, 0, len(demos))
	for _, d := range demos {
		if d.HasExample {
			result = append(result, d)
		}
	}
	return result
}
