package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/shopdocs/cmd/shopdocs/internal/topics"
	"github.com/nfrund/shopdocs/internal/catalog"
)

var getOutputFormat string

// topicsGetCmd represents the topics get command
var topicsGetCmd = &cobra.Command{
	Use:   "get <topic-key>",
	Short: "Show a single topic",
	Long: `Resolve a topic by key and print it.

Keys are matched exactly; "SQL-avanzado" does not find "sql-avanzado".

Output formats:
  table - Key, title, source and payload size (default)
  json  - The full unit, payload included
  raw   - Only the HTML fragment`,
	Args: cobra.ExactArgs(1),
	Run:  topicsGetHandler,
}

func topicsGetHandler(cmd *cobra.Command, args []string) {
	key := args[0]

	reg, err := topics.Initialize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to build catalog: %v\n", err)
		os.Exit(1)
	}

	u, err := reg.Lookup(key)
	if err != nil {
		if catalog.IsNotFound(err) {
			fmt.Fprintf(os.Stderr, "Error: Topic '%s' not found\n", key)
			fmt.Fprintf(os.Stderr, "\nUse 'shopdocs topics list' to see all available topics.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if err := topics.DisplayTopicDetails(cmd.OutOrStdout(), u, getOutputFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to display topic: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	topicsCmd.AddCommand(topicsGetCmd)
	topicsGetCmd.Flags().StringVarP(&getOutputFormat, "format", "f", "table", "Output format (table, json, raw)")
}
