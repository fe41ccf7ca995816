package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var tomorrowCmd = &cobra.Command{
	Use:   "tomorrow",
	Short: "Print the current time plus the configured day offset",
	Long: `Prints the current time advanced by the configured day offset
(one day unless changed via settings).`,
	RunE: runTomorrow,
}

func init() {
	rootCmd.AddCommand(tomorrowCmd)
}

func runTomorrow(cmd *cobra.Command, _ []string) error {
	if timeService == nil {
		return errors.New("time service not configured")
	}

	cmd.Println(timeService.Tomorrow().Format(time.RFC3339))
	return nil
}
