package services

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tally-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/tally-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tally-cli/internal/core/domain"
	"github.com/custodia-labs/tally-cli/internal/logger"
)

func newTestCalculator(t *testing.T, settings domain.CalculatorSettings) (*CalculatorService, *memory.HistoryStore) {
	t.Helper()
	store := memory.NewHistoryStore()
	fixed := &clock.Fixed{Time: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	return NewCalculatorService(settings, store, fixed), store
}

func TestNewCalculatorService_DefaultName(t *testing.T) {
	service, _ := newTestCalculator(t, domain.CalculatorSettings{})

	assert.Equal(t, domain.DefaultCalculatorName, service.Name())
}

func TestNewCalculatorService_CustomName(t *testing.T) {
	service, _ := newTestCalculator(t, domain.CalculatorSettings{Name: "scientific"})

	assert.Equal(t, "scientific", service.Name())
}

func TestCalculatorService_Add(t *testing.T) {
	service, _ := newTestCalculator(t, domain.CalculatorSettings{Name: "main"})

	op, err := service.Add(context.Background(), 5, 3)

	require.NoError(t, err)
	assert.Equal(t, float64(8), op.Result)
	assert.Equal(t, domain.OpAdd, op.Kind)
	assert.Equal(t, "main", op.Calculator)
	assert.NotEmpty(t, op.ID)
	assert.False(t, op.At.IsZero())
}

func TestCalculatorService_Multiply(t *testing.T) {
	service, _ := newTestCalculator(t, domain.CalculatorSettings{Name: "main"})

	op, err := service.Multiply(context.Background(), 3, 4)

	require.NoError(t, err)
	assert.Equal(t, float64(12), op.Result)
	assert.Equal(t, domain.OpMultiply, op.Kind)
}

func TestCalculatorService_Compute_UnknownOperation(t *testing.T) {
	service, _ := newTestCalculator(t, domain.CalculatorSettings{})

	_, err := service.Compute(context.Background(), domain.OpKind("divide"), 1, 2)

	assert.ErrorIs(t, err, domain.ErrUnknownOperation)
}

func TestCalculatorService_History_CallOrder(t *testing.T) {
	service, _ := newTestCalculator(t, domain.CalculatorSettings{})
	ctx := context.Background()

	_, err := service.Add(ctx, 1, 2)
	require.NoError(t, err)
	_, err = service.Multiply(ctx, 3, 4)
	require.NoError(t, err)
	_, err = service.Add(ctx, 5, 6)
	require.NoError(t, err)

	ops, err := service.History(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, domain.OpAdd, ops[0].Kind)
	assert.Equal(t, domain.OpMultiply, ops[1].Kind)
	assert.Equal(t, domain.OpAdd, ops[2].Kind)
	assert.Equal(t, "1 + 2 = 3", ops[0].String())
	assert.Equal(t, "3 * 4 = 12", ops[1].String())
	assert.Equal(t, "5 + 6 = 11", ops[2].String())
}

func TestCalculatorService_History_UniqueIDs(t *testing.T) {
	service, _ := newTestCalculator(t, domain.CalculatorSettings{})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := service.Add(ctx, float64(i), 1)
		require.NoError(t, err)
	}

	ops, err := service.History(ctx)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, op := range ops {
		assert.False(t, seen[op.ID], "duplicate operation ID %s", op.ID)
		seen[op.ID] = true
	}
}

func TestCalculatorService_ClearHistory(t *testing.T) {
	service, _ := newTestCalculator(t, domain.CalculatorSettings{})
	ctx := context.Background()

	_, err := service.Add(ctx, 1, 2)
	require.NoError(t, err)

	require.NoError(t, service.ClearHistory(ctx))

	ops, err := service.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestCalculatorService_LogsOperations(t *testing.T) {
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)

	service, _ := newTestCalculator(t, domain.CalculatorSettings{Name: "main", LogOperations: true})

	_, err := service.Add(context.Background(), 5, 3)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "main: add(5, 3) = 8")
}

func TestCalculatorService_LoggingDisabled(t *testing.T) {
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)

	service, _ := newTestCalculator(t, domain.CalculatorSettings{Name: "quiet", LogOperations: false})

	_, err := service.Multiply(context.Background(), 3, 4)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "quiet: multiply")
}

func TestCalculatorService_Concurrency(t *testing.T) {
	service, store := newTestCalculator(t, domain.CalculatorSettings{})
	ctx := context.Background()

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(n int) {
			defer wg.Done()
			_, _ = service.Compute(ctx, domain.OpMultiply, float64(n), 2)
		}(i)
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, numGoroutines, count)
}
