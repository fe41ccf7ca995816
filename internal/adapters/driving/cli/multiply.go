package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var multiplyJSON bool

var multiplyCmd = &cobra.Command{
	Use:   "multiply [a] [b]",
	Short: "Multiply two numbers",
	Long: `Multiplies two numbers and records the call in the session history.

The result is printed as "a * b = result", or as JSON with --json.`,
	Args: cobra.ExactArgs(2),
	RunE: runMultiply,
}

func init() {
	multiplyCmd.Flags().BoolVar(&multiplyJSON, "json", false, "output the recorded operation as JSON")
	rootCmd.AddCommand(multiplyCmd)
}

func runMultiply(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	a, b, err := parseOperands(args)
	if err != nil {
		return err
	}

	op, err := calculatorService.Multiply(context.Background(), a, b)
	if err != nil {
		return fmt.Errorf("multiply failed: %w", err)
	}

	if multiplyJSON {
		return outputOperationJSON(cmd, op)
	}

	cmd.Println(op.String())
	return nil
}
