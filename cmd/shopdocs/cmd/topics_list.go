package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/shopdocs/cmd/shopdocs/internal/topics"
)

var listOutputFormat string

// topicsListCmd represents the topics list command
var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered topics",
	Long: `List every topic in the catalog, in the order the navigation shows them.

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format`,
	Args: cobra.NoArgs,
	Run:  topicsListHandler,
}

func topicsListHandler(cmd *cobra.Command, args []string) {
	reg, err := topics.Initialize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to build catalog: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	switch listOutputFormat {
	case "json":
		if err := topics.DisplayTopicsJSON(out, reg.Entries()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
			os.Exit(1)
		}
	case "table":
		topics.DisplayTopicsTable(out, reg.Entries())
	default:
		fmt.Fprintf(os.Stderr, "Error: Unsupported output format '%s'. Use 'table' or 'json'\n", listOutputFormat)
		os.Exit(1)
	}
}

func init() {
	topicsCmd.AddCommand(topicsListCmd)
	topicsListCmd.Flags().StringVarP(&listOutputFormat, "format", "f", "table", "Output format (table, json)")
}
