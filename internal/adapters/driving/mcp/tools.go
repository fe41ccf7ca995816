package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// CalcInput is the input schema for the add and multiply tools.
type CalcInput struct {
	A float64 `json:"a" jsonschema:"the first operand"`
	B float64 `json:"b" jsonschema:"the second operand"`
}

// CalcOutput is the output schema for the add and multiply tools.
type CalcOutput struct {
	Result float64 `json:"result"`
	Entry  string  `json:"entry"`
	ID     string  `json:"id"`
}

// HistoryInput is the input schema for the history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return, newest last (default all)"`
}

// HistoryOutput is the output schema for the history tool.
type HistoryOutput struct {
	Entries []HistoryEntryOutput `json:"entries"`
	Count   int                  `json:"count"`
}

// HistoryEntryOutput represents a single recorded operation.
type HistoryEntryOutput struct {
	ID     string    `json:"id"`
	Kind   string    `json:"kind"`
	A      float64   `json:"a"`
	B      float64   `json:"b"`
	Result float64   `json:"result"`
	Entry  string    `json:"entry"`
	At     time.Time `json:"at"`
}

// TomorrowOutput is the output schema for the tomorrow tool.
type TomorrowOutput struct {
	Tomorrow time.Time `json:"tomorrow"`
	Offset   string    `json:"offset"`
}

// FetchInput is the input schema for the fetch tool.
type FetchInput struct {
	Path string `json:"path" jsonschema:"path joined onto the configured base URL"`
}

// FetchOutput is the output schema for the fetch tool.
type FetchOutput struct {
	URL    string         `json:"url"`
	Status int            `json:"status"`
	Body   map[string]any `json:"body"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add",
		Description: "Add two numbers and record the call in the history",
	}, s.handleAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "multiply",
		Description: "Multiply two numbers and record the call in the history",
	}, s.handleMultiply)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "history",
		Description: "List the recorded operations of this session in call order",
	}, s.handleHistory)

	if s.ports.Time != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "tomorrow",
			Description: "Return the current time plus the configured day offset",
		}, s.handleTomorrow)
	}

	if s.ports.Fetch != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "fetch",
			Description: "Fetch a JSON document relative to the configured base URL",
		}, s.handleFetch)
	}
}

// handleAdd handles the add tool invocation.
func (s *Server) handleAdd(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CalcInput,
) (*mcp.CallToolResult, CalcOutput, error) {
	op, err := s.ports.Calculator.Add(ctx, input.A, input.B)
	if err != nil {
		return nil, CalcOutput{}, err
	}
	return nil, calcOutput(op), nil
}

// handleMultiply handles the multiply tool invocation.
func (s *Server) handleMultiply(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CalcInput,
) (*mcp.CallToolResult, CalcOutput, error) {
	op, err := s.ports.Calculator.Multiply(ctx, input.A, input.B)
	if err != nil {
		return nil, CalcOutput{}, err
	}
	return nil, calcOutput(op), nil
}

// handleHistory handles the history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	ops, err := s.ports.Calculator.History(ctx)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	if input.Limit > 0 && len(ops) > input.Limit {
		ops = ops[len(ops)-input.Limit:]
	}

	output := HistoryOutput{
		Entries: make([]HistoryEntryOutput, len(ops)),
		Count:   len(ops),
	}
	for i, op := range ops {
		output.Entries[i] = HistoryEntryOutput{
			ID:     op.ID,
			Kind:   op.Kind.String(),
			A:      op.A,
			B:      op.B,
			Result: op.Result,
			Entry:  op.String(),
			At:     op.At,
		}
	}

	return nil, output, nil
}

// handleTomorrow handles the tomorrow tool invocation.
func (s *Server) handleTomorrow(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, TomorrowOutput, error) {
	return nil, TomorrowOutput{
		Tomorrow: s.ports.Time.Tomorrow(),
		Offset:   s.ports.Time.Offset().String(),
	}, nil
}

// handleFetch handles the fetch tool invocation.
func (s *Server) handleFetch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchInput,
) (*mcp.CallToolResult, FetchOutput, error) {
	result, err := s.ports.Fetch.Fetch(ctx, input.Path)
	if err != nil {
		return nil, FetchOutput{}, err
	}
	return nil, FetchOutput{
		URL:    result.URL,
		Status: result.Status,
		Body:   result.Body,
	}, nil
}

func calcOutput(op domain.Operation) CalcOutput {
	return CalcOutput{
		Result: op.Result,
		Entry:  op.String(),
		ID:     op.ID,
	}
}
