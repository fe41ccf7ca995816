package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tally-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/tally-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Long: `Launch the interactive terminal interface for tally.

Type an expression like "5 + 3" or "2.5 * 4" and press Enter to
evaluate it. Every result is recorded to the session history shown
below the input field.

Controls:
  Enter    - Evaluate the expression
  Ctrl+L   - Clear the history
  Esc      - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Panic recovery so a rendering bug leaves a usable terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Calculator: calculatorService,
		Settings:   settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	if configPath != "" && settingsService != nil {
		// Live reload is best effort; run without it if the watch fails.
		if err := app.WithConfigWatcher(configPath); err != nil {
			logger.Warn("config watch disabled: %v", err)
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
