package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shopdocs",
	Short: "ShopDocs catalog tool",
	Long: `shopdocs inspects the documentation catalog served by the ShopDocs server.

The catalog is built exactly as the server builds it: the embedded topics first,
then the directory named by CONTENT_DIR (if set).

Use "shopdocs [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
