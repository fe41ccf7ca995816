// Package driven defines the driven (outbound) ports of the hexagonal
// architecture. Core services depend on these interfaces; adapters under
// internal/adapters/driven implement them.
package driven
