package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var addJSON bool

var addCmd = &cobra.Command{
	Use:   "add [a] [b]",
	Short: "Add two numbers",
	Long: `Adds two numbers and records the call in the session history.

The result is printed as "a + b = result", or as JSON with --json.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&addJSON, "json", false, "output the recorded operation as JSON")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	a, b, err := parseOperands(args)
	if err != nil {
		return err
	}

	op, err := calculatorService.Add(context.Background(), a, b)
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	if addJSON {
		return outputOperationJSON(cmd, op)
	}

	cmd.Println(op.String())
	return nil
}
