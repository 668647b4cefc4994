package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/shopdocs/cmd/shopdocs/internal/topics"
	"github.com/nfrund/shopdocs/internal/catalog"
)

// topicsValidateCmd represents the topics validate command
var topicsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the topic catalog",
	Long: `Build the catalog the way the server does and check it.

The validation process includes:
- Catalog construction (duplicate or empty keys abort it)
- Key format (lowercase slug, at most 100 characters)
- Non-empty titles and payloads

The command exits with status 1 when construction fails or any issue is found.`,
	Args: cobra.NoArgs,
	Run:  topicsValidateHandler,
}

func topicsValidateHandler(cmd *cobra.Command, args []string) {
	reg, err := topics.Initialize()
	if err != nil {
		topics.ReportBuildFailure(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}

	issues := catalog.Lint(reg)
	topics.DisplayValidationResult(cmd.OutOrStdout(), reg, issues)
	if len(issues) > 0 {
		os.Exit(1)
	}
}

func init() {
	topicsCmd.AddCommand(topicsValidateCmd)
}
