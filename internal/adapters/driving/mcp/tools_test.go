package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

func TestServer_handleAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sum and history entry", func(t *testing.T) {
		calc := &mockCalculatorService{}
		server, err := NewServer(&Ports{Calculator: calc})
		require.NoError(t, err)

		_, output, err := server.handleAdd(ctx, nil, CalcInput{A: 5, B: 3})

		require.NoError(t, err)
		assert.Equal(t, 8.0, output.Result)
		assert.Equal(t, "5 + 3 = 8", output.Entry)
		assert.Equal(t, "op-1", output.ID)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		calc := &mockCalculatorService{err: errors.New("store unavailable")}
		server, err := NewServer(&Ports{Calculator: calc})
		require.NoError(t, err)

		_, _, err = server.handleAdd(ctx, nil, CalcInput{A: 1, B: 2})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store unavailable")
	})
}

func TestServer_handleMultiply(t *testing.T) {
	ctx := context.Background()

	calc := &mockCalculatorService{}
	server, err := NewServer(&Ports{Calculator: calc})
	require.NoError(t, err)

	_, output, err := server.handleMultiply(ctx, nil, CalcInput{A: 4, B: 6})

	require.NoError(t, err)
	assert.Equal(t, 24.0, output.Result)
	assert.Equal(t, "4 * 6 = 24", output.Entry)
}

func TestServer_handleHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns entries in call order", func(t *testing.T) {
		calc := &mockCalculatorService{}
		server, err := NewServer(&Ports{Calculator: calc})
		require.NoError(t, err)

		_, _, err = server.handleAdd(ctx, nil, CalcInput{A: 5, B: 3})
		require.NoError(t, err)
		_, _, err = server.handleMultiply(ctx, nil, CalcInput{A: 2, B: 4})
		require.NoError(t, err)

		_, output, err := server.handleHistory(ctx, nil, HistoryInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		require.Len(t, output.Entries, 2)
		assert.Equal(t, "add", output.Entries[0].Kind)
		assert.Equal(t, "5 + 3 = 8", output.Entries[0].Entry)
		assert.Equal(t, "multiply", output.Entries[1].Kind)
	})

	t.Run("limit keeps newest entries", func(t *testing.T) {
		calc := &mockCalculatorService{}
		server, err := NewServer(&Ports{Calculator: calc})
		require.NoError(t, err)

		for i := 1; i <= 3; i++ {
			_, _, err = server.handleAdd(ctx, nil, CalcInput{A: float64(i), B: 1})
			require.NoError(t, err)
		}

		_, output, err := server.handleHistory(ctx, nil, HistoryInput{Limit: 2})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, 2.0, output.Entries[0].A)
		assert.Equal(t, 3.0, output.Entries[1].A)
	})

	t.Run("empty history", func(t *testing.T) {
		calc := &mockCalculatorService{}
		server, err := NewServer(&Ports{Calculator: calc})
		require.NoError(t, err)

		_, output, err := server.handleHistory(ctx, nil, HistoryInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, output.Entries)
	})
}

func TestServer_handleTomorrow(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	timeSvc := &mockTimeService{now: now, offset: 24 * time.Hour}
	server, err := NewServer(&Ports{
		Calculator: &mockCalculatorService{},
		Time:       timeSvc,
	})
	require.NoError(t, err)

	_, output, err := server.handleTomorrow(context.Background(), nil, struct{}{})

	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), output.Tomorrow)
	assert.Equal(t, "24h0m0s", output.Offset)
}

func TestServer_handleFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns decoded body", func(t *testing.T) {
		fetch := &mockFetchService{
			result: &domain.FetchResult{
				URL:    "https://api.example.com/users/1",
				Status: 200,
				Body:   map[string]any{"id": float64(1)},
			},
		}
		server, err := NewServer(&Ports{
			Calculator: &mockCalculatorService{},
			Fetch:      fetch,
		})
		require.NoError(t, err)

		_, output, err := server.handleFetch(ctx, nil, FetchInput{Path: "users/1"})

		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/users/1", output.URL)
		assert.Equal(t, 200, output.Status)
		assert.Equal(t, float64(1), output.Body["id"])
	})

	t.Run("returns error on failure", func(t *testing.T) {
		fetch := &mockFetchService{err: domain.ErrFetchFailed}
		server, err := NewServer(&Ports{
			Calculator: &mockCalculatorService{},
			Fetch:      fetch,
		})
		require.NoError(t, err)

		_, _, err = server.handleFetch(ctx, nil, FetchInput{Path: "users/1"})

		assert.ErrorIs(t, err, domain.ErrFetchFailed)
	})
}
