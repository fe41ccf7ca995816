// Package driving defines the driving (inbound) ports of the hexagonal
// architecture. Adapters under internal/adapters/driving (CLI, TUI, MCP)
// call core services through these interfaces.
package driving
