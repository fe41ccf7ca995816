package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

var doubleCmd = &cobra.Command{
	Use:   "double [x]",
	Short: "Double a number",
	Long:  `Doubles a number. Unlike add and multiply, the call is not recorded.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDouble,
}

func init() {
	rootCmd.AddCommand(doubleCmd)
}

func runDouble(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[0])
	}

	cmd.Printf("%g\n", domain.Double(x))
	return nil
}
