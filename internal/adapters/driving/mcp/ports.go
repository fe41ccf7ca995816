package mcp

import (
	"github.com/custodia-labs/tally-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator performs recorded arithmetic.
	Calculator driving.CalculatorService

	// Time provides offset date arithmetic.
	Time driving.TimeService

	// Fetch retrieves remote JSON documents.
	Fetch driving.FetchService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	// Time and Fetch are optional; their tools degrade gracefully.
	return nil
}
