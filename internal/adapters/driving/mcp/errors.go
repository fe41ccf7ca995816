// Package mcp provides an MCP (Model Context Protocol) server adapter for tally.
// It lets AI assistants perform recorded arithmetic and inspect the history.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")
