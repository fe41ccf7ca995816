// Package cli implements the cobra command tree for tally.
// Commands talk to the core exclusively through driving ports, which are
// injected once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tally-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tally-cli/internal/logger"
)

// version is the build version, set via SetVersion at startup.
var version = "dev"

// Injected driving ports. Commands check for nil and fail gracefully
// when a service is not configured.
var (
	calculatorService driving.CalculatorService
	timeService       driving.TimeService
	fetchService      driving.FetchService
	settingsService   driving.SettingsService
)

// configPath is the config file on disk, used by the TUI to watch for
// live settings changes. Empty when settings are not file-backed.
var configPath string

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "An operation-logging calculator workbench",
	Long: `tally is a small workbench around a named calculator.

Every add and multiply is recorded to an in-session history in call
order. Besides arithmetic, tally bundles the companion helpers: offset
date arithmetic (tomorrow), and rate-limited JSON fetching against a
configured base URL.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print debug output, including each recorded operation")
}

// Services aggregates the driving ports the CLI depends on.
type Services struct {
	Calculator driving.CalculatorService
	Time       driving.TimeService
	Fetch      driving.FetchService
	Settings   driving.SettingsService
}

// SetServices injects core services into the CLI commands.
func SetServices(s Services) {
	calculatorService = s.Calculator
	timeService = s.Time
	fetchService = s.Fetch
	settingsService = s.Settings
}

// SetConfigPath records where settings live on disk.
func SetConfigPath(path string) {
	configPath = path
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
