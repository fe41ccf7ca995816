package driving

import (
	"context"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// CalculatorService performs arithmetic and records each call.
type CalculatorService interface {
	// Add returns a + b and records the call.
	Add(ctx context.Context, a, b float64) (domain.Operation, error)

	// Multiply returns a * b and records the call.
	Multiply(ctx context.Context, a, b float64) (domain.Operation, error)

	// Compute performs the named operation and records the call.
	// Returns domain.ErrUnknownOperation for an unrecognised kind.
	Compute(ctx context.Context, kind domain.OpKind, a, b float64) (domain.Operation, error)

	// History returns all recorded operations in call order.
	History(ctx context.Context) ([]domain.Operation, error)

	// ClearHistory removes all recorded operations.
	ClearHistory(ctx context.Context) error

	// Name returns the calculator display name.
	Name() string
}
