// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// OperationRecorded carries a computed operation back to the model.
type OperationRecorded struct {
	Op  domain.Operation
	Err error
}

// HistoryLoaded carries the recorded history back to the model.
type HistoryLoaded struct {
	Ops []domain.Operation
	Err error
}

// HistoryCleared signals that the history was discarded.
type HistoryCleared struct {
	Err error
}

// SettingsReloaded signals that the config file changed on disk.
type SettingsReloaded struct {
	Settings *domain.AppSettings
}

// ErrorOccurred carries an error to be displayed.
type ErrorOccurred struct {
	Err error
}
