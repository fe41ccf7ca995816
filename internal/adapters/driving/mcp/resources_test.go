package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns history as JSON", func(t *testing.T) {
		calc := &mockCalculatorService{}
		server, err := NewServer(&Ports{Calculator: calc})
		require.NoError(t, err)

		_, _, err = server.handleAdd(ctx, nil, CalcInput{A: 5, B: 3})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uriScheme + "history"},
		}
		result, err := server.handleHistoryResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, uriScheme+"history", result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "5 + 3 = 8")
	})

	t.Run("empty history yields empty array", func(t *testing.T) {
		calc := &mockCalculatorService{}
		server, err := NewServer(&Ports{Calculator: calc})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uriScheme + "history"},
		}
		result, err := server.handleHistoryResource(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		calc := &mockCalculatorService{err: errors.New("store unavailable")}
		server, err := NewServer(&Ports{Calculator: calc})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uriScheme + "history"},
		}
		_, err = server.handleHistoryResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store unavailable")
	})
}
