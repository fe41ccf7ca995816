package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// operationJSON is the JSON form of a recorded operation.
type operationJSON struct {
	ID         string    `json:"id"`
	Calculator string    `json:"calculator"`
	Kind       string    `json:"kind"`
	A          float64   `json:"a"`
	B          float64   `json:"b"`
	Result     float64   `json:"result"`
	At         time.Time `json:"at"`
}

// parseOperands parses exactly two float arguments.
func parseOperands(args []string) (float64, float64, error) {
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[0])
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[1])
	}
	return a, b, nil
}

// outputOperationJSON prints one recorded operation as indented JSON.
func outputOperationJSON(cmd *cobra.Command, op domain.Operation) error {
	return outputJSON(cmd, toOperationJSON(op))
}

// outputOperationsJSON prints a list of recorded operations as indented JSON.
func outputOperationsJSON(cmd *cobra.Command, ops []domain.Operation) error {
	out := make([]operationJSON, len(ops))
	for i, op := range ops {
		out[i] = toOperationJSON(op)
	}
	return outputJSON(cmd, out)
}

func toOperationJSON(op domain.Operation) operationJSON {
	return operationJSON{
		ID:         op.ID,
		Calculator: op.Calculator,
		Kind:       op.Kind.String(),
		A:          op.A,
		B:          op.B,
		Result:     op.Result,
		At:         op.At,
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
