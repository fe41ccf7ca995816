package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for tally resources.
	uriScheme = "tally://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource exposing the session history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recorded operations of this session, in call order",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleHistoryResource returns the recorded operations as a JSON document.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ops, err := s.ports.Calculator.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	entries := make([]HistoryEntryOutput, len(ops))
	for i, op := range ops {
		entries[i] = HistoryEntryOutput{
			ID:     op.ID,
			Kind:   op.Kind.String(),
			A:      op.A,
			B:      op.B,
			Result: op.Result,
			Entry:  op.String(),
			At:     op.At,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
