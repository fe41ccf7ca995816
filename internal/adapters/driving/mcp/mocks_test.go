package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// mockCalculatorService is a mock implementation of driving.CalculatorService.
type mockCalculatorService struct {
	ops  []domain.Operation
	name string
	err  error
}

func (m *mockCalculatorService) record(kind domain.OpKind, a, b, result float64) (domain.Operation, error) {
	if m.err != nil {
		return domain.Operation{}, m.err
	}
	op := domain.Operation{
		ID:         "op-1",
		Calculator: m.Name(),
		Kind:       kind,
		A:          a,
		B:          b,
		Result:     result,
		At:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	m.ops = append(m.ops, op)
	return op, nil
}

func (m *mockCalculatorService) Add(_ context.Context, a, b float64) (domain.Operation, error) {
	return m.record(domain.OpAdd, a, b, a+b)
}

func (m *mockCalculatorService) Multiply(_ context.Context, a, b float64) (domain.Operation, error) {
	return m.record(domain.OpMultiply, a, b, a*b)
}

func (m *mockCalculatorService) Compute(
	ctx context.Context, kind domain.OpKind, a, b float64,
) (domain.Operation, error) {
	switch kind {
	case domain.OpAdd:
		return m.Add(ctx, a, b)
	case domain.OpMultiply:
		return m.Multiply(ctx, a, b)
	}
	return domain.Operation{}, domain.ErrUnknownOperation
}

func (m *mockCalculatorService) History(_ context.Context) ([]domain.Operation, error) {
	return m.ops, m.err
}

func (m *mockCalculatorService) ClearHistory(_ context.Context) error {
	m.ops = nil
	return m.err
}

func (m *mockCalculatorService) Name() string {
	if m.name != "" {
		return m.name
	}
	return "test"
}

// mockTimeService is a mock implementation of driving.TimeService.
type mockTimeService struct {
	now    time.Time
	offset time.Duration
}

func (m *mockTimeService) Tomorrow() time.Time {
	return m.now.Add(m.offset)
}

func (m *mockTimeService) Offset() time.Duration {
	return m.offset
}

// mockFetchService is a mock implementation of driving.FetchService.
type mockFetchService struct {
	result *domain.FetchResult
	err    error
}

func (m *mockFetchService) Fetch(_ context.Context, _ string) (*domain.FetchResult, error) {
	return m.result, m.err
}
