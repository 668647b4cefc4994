package cmd

import (
	"github.com/spf13/cobra"
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Explore and check the topic catalog",
	Long: `The topics command lists, shows and validates the documentation topics
registered in the catalog.

Examples:
  # List all topics in navigation order
  shopdocs topics list

  # Show one topic
  shopdocs topics get sql-avanzado

  # Print only the HTML fragment of a topic
  shopdocs topics get sql-avanzado --format raw

  # Check the catalog for duplicate keys and naming problems
  shopdocs topics validate`,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
