package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("%s\n", domain.About())
		cmd.Printf("tally version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
