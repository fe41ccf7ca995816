// Package tui provides the interactive calculator REPL built on Bubbletea.
// Expressions like "5 + 3" or "2.5 * 4" are evaluated through the
// calculator service and shown alongside the session history.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tally-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tally-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tally-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// App is the calculator REPL following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// input is the expression entry field.
	input textinput.Model

	// history holds the recorded operations, oldest first.
	history []domain.Operation

	// title is the calculator display name shown in the header.
	title string

	// watcher reloads settings when the config file changes. May be nil.
	watcher *configWatcher

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "5 + 3  or  2.5 * 4"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.DefaultStyles(),
		keymap: keymap.DefaultKeyMap(),
		input:  ti,
		title:  ports.Calculator.Name(),
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithConfigWatcher watches the config file at path and reloads settings
// when it changes on disk.
func (a *App) WithConfigWatcher(path string) error {
	w, err := newConfigWatcher(path)
	if err != nil {
		return fmt.Errorf("watching config: %w", err)
	}
	a.watcher = w
	return nil
}

// Init initialises the app.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadHistoryCmd(), a.waitForConfigChange())
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.OperationRecorded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.history = append(a.history, msg.Op)
		a.input.Reset()
		return a, nil

	case messages.HistoryLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.history = msg.Ops
		return a, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.history = nil
		return a, nil

	case messages.SettingsReloaded:
		if msg.Settings != nil {
			a.title = msg.Settings.Calculator.Name
		}
		return a, a.waitForConfigChange()

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.waitForConfigChange()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		if a.watcher != nil {
			a.watcher.Close() //nolint:errcheck
		}
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Submit):
		expr := strings.TrimSpace(a.input.Value())
		if expr == "" {
			return a, nil
		}
		kind, x, y, err := parseExpression(expr)
		if err != nil {
			a.err = err
			return a, nil
		}
		return a, a.computeCmd(kind, x, y)

	case key.Matches(msg, a.keymap.Clear):
		return a, a.clearHistoryCmd()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View renders the app.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Calculator: " + a.title))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	if len(a.history) == 0 {
		b.WriteString(a.styles.Muted.Render("No operations recorded."))
		b.WriteString("\n")
	} else {
		for _, op := range a.visibleHistory() {
			b.WriteString("  ")
			b.WriteString(a.styles.Normal.Render(op.String()))
			b.WriteString("\n")
		}
	}

	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(a.helpLine()))
	b.WriteString("\n")

	return b.String()
}

// visibleHistory returns the newest entries that fit the terminal height.
func (a *App) visibleHistory() []domain.Operation {
	// Header, input, error, and help take roughly ten rows.
	max := a.height - 10
	if max < 1 {
		max = 1
	}
	if len(a.history) <= max {
		return a.history
	}
	return a.history[len(a.history)-max:]
}

// helpLine renders the keybinding hints.
func (a *App) helpLine() string {
	var parts []string
	for _, binding := range a.keymap.ShortHelp() {
		parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
	}
	return strings.Join(parts, "  ·  ")
}

// Err returns the last error, for testing.
func (a *App) Err() error {
	return a.err
}

// History returns the displayed history, for testing.
func (a *App) History() []domain.Operation {
	return a.history
}

// Title returns the header title, for testing.
func (a *App) Title() string {
	return a.title
}

// computeCmd evaluates the expression through the calculator service.
func (a *App) computeCmd(kind domain.OpKind, x, y float64) tea.Cmd {
	return func() tea.Msg {
		op, err := a.ports.Calculator.Compute(a.ctx, kind, x, y)
		return messages.OperationRecorded{Op: op, Err: err}
	}
}

// loadHistoryCmd loads previously recorded operations.
func (a *App) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		ops, err := a.ports.Calculator.History(a.ctx)
		return messages.HistoryLoaded{Ops: ops, Err: err}
	}
}

// clearHistoryCmd discards the recorded history.
func (a *App) clearHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		err := a.ports.Calculator.ClearHistory(a.ctx)
		return messages.HistoryCleared{Err: err}
	}
}

// waitForConfigChange blocks on the next config file change.
func (a *App) waitForConfigChange() tea.Cmd {
	if a.watcher == nil || a.ports.Settings == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-a.watcher.Changes(); !ok {
			return nil
		}
		settings, err := a.ports.Settings.Get()
		if err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return messages.SettingsReloaded{Settings: settings}
	}
}

// parseExpression parses "a + b" or "a * b" into an operation.
func parseExpression(expr string) (domain.OpKind, float64, float64, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return "", 0, 0, fmt.Errorf("%w: expected \"a + b\" or \"a * b\"", domain.ErrInvalidInput)
	}

	var kind domain.OpKind
	switch fields[1] {
	case "+":
		kind = domain.OpAdd
	case "*", "x":
		kind = domain.OpMultiply
	default:
		return "", 0, 0, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, fields[1])
	}

	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, fields[0])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, fields[2])
	}

	return kind, x, y, nil
}
