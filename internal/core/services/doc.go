// Package services implements the driving ports with the core business
// logic: recording calculator operations, offset date arithmetic, remote
// JSON fetching, and settings management.
package services
