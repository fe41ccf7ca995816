package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [path]",
	Short: "Fetch a JSON document",
	Long: `Fetches a JSON document from the configured base URL.

The path is joined onto the base URL set via "tally settings fetch".
The decoded response body is printed as indented JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if fetchService == nil {
		return errors.New("fetch service not configured")
	}

	result, err := fetchService.Fetch(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	return outputJSON(cmd, result.Body)
}
