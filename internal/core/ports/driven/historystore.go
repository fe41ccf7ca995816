package driven

import (
	"context"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// HistoryStore persists recorded calculator operations in call order.
type HistoryStore interface {
	// Append records an operation at the end of the history.
	Append(ctx context.Context, op domain.Operation) error

	// List returns all recorded operations in append order.
	List(ctx context.Context) ([]domain.Operation, error)

	// Count returns the number of recorded operations.
	Count(ctx context.Context) (int, error)

	// Clear removes all recorded operations.
	Clear(ctx context.Context) error
}
