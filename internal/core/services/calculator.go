package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tally-cli/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService performs arithmetic through a named calculator and
// records every call in the history store, in call order.
type CalculatorService struct {
	mu      sync.Mutex
	calc    *domain.AdvancedCalculator
	history driven.HistoryStore
	clock   driven.Clock
	logOps  bool
}

// NewCalculatorService creates a calculator service.
func NewCalculatorService(
	settings domain.CalculatorSettings,
	history driven.HistoryStore,
	clock driven.Clock,
) *CalculatorService {
	name := settings.Name
	if name == "" {
		name = domain.DefaultCalculatorName
	}

	logger.Debug("Calculator created: %s", name)

	return &CalculatorService{
		calc:    domain.NewAdvancedCalculator(name),
		history: history,
		clock:   clock,
		logOps:  settings.LogOperations,
	}
}

// Name returns the calculator display name.
func (s *CalculatorService) Name() string {
	return s.calc.Name
}

// Add returns a + b and records the call.
func (s *CalculatorService) Add(ctx context.Context, a, b float64) (domain.Operation, error) {
	return s.Compute(ctx, domain.OpAdd, a, b)
}

// Multiply returns a * b and records the call.
func (s *CalculatorService) Multiply(ctx context.Context, a, b float64) (domain.Operation, error) {
	return s.Compute(ctx, domain.OpMultiply, a, b)
}

// Compute performs the named operation and records the call.
func (s *CalculatorService) Compute(
	ctx context.Context, kind domain.OpKind, a, b float64,
) (domain.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result float64
	switch kind {
	case domain.OpAdd:
		result = s.calc.Add(a, b)
	case domain.OpMultiply:
		result = s.calc.Multiply(a, b)
	default:
		return domain.Operation{}, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, kind)
	}

	op := domain.Operation{
		ID:         uuid.NewString(),
		Calculator: s.calc.Name,
		Kind:       kind,
		A:          a,
		B:          b,
		Result:     result,
		At:         s.clock.Now(),
	}

	if s.logOps {
		logger.Op(s.calc.Name, kind.String(), a, b, result)
	}

	if err := s.history.Append(ctx, op); err != nil {
		return domain.Operation{}, fmt.Errorf("recording %s: %w", kind, err)
	}

	return op, nil
}

// History returns all recorded operations in call order.
func (s *CalculatorService) History(ctx context.Context) ([]domain.Operation, error) {
	ops, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return ops, nil
}

// ClearHistory removes all recorded operations.
func (s *CalculatorService) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.history.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	s.calc.History = nil
	return nil
}
