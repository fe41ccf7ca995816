package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the calculator name, fetch endpoint, and time offset.

Run without a subcommand to show the current settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsNameCmd = &cobra.Command{
	Use:   "name [name]",
	Short: "Set the calculator display name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsName,
}

var settingsFetchCmd = &cobra.Command{
	Use:   "fetch [base-url]",
	Short: "Set the fetch base URL",
	Long: `Sets the base URL that fetch paths are joined onto.
Pass an empty string to disable fetching.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsFetch,
}

var settingsOffsetCmd = &cobra.Command{
	Use:   "offset [duration]",
	Short: "Set the tomorrow helper offset",
	Long:  `Sets the day offset used by the tomorrow command, e.g. "24h" or "48h".`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsOffset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsNameCmd)
	settingsCmd.AddCommand(settingsFetchCmd)
	settingsCmd.AddCommand(settingsOffsetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cmd.Println("Current settings:")
	cmd.Println()
	cmd.Printf("  Calculator name:  %s\n", settings.Calculator.Name)
	cmd.Printf("  Log operations:   %t\n", settings.Calculator.LogOperations)
	if settings.Fetch.IsConfigured() {
		cmd.Printf("  Fetch base URL:   %s\n", settings.Fetch.BaseURL)
		cmd.Printf("  Fetch timeout:    %s\n", settings.Fetch.Timeout)
		cmd.Printf("  Fetch rate:       %.1f req/s\n", settings.Fetch.RatePerSec)
	} else {
		cmd.Println("  Fetch:            not configured")
	}
	cmd.Printf("  Day offset:       %s\n", settings.Clock.DayOffset)

	return nil
}

func runSettingsName(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetCalculatorName(args[0]); err != nil {
		return fmt.Errorf("setting calculator name: %w", err)
	}

	cmd.Printf("Calculator name set to %q.\n", args[0])
	cmd.Println("The new name applies from the next session.")
	return nil
}

func runSettingsFetch(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetFetchBaseURL(args[0]); err != nil {
		return fmt.Errorf("setting fetch base URL: %w", err)
	}

	if args[0] == "" {
		cmd.Println("Fetching disabled.")
	} else {
		cmd.Printf("Fetch base URL set to %s.\n", args[0])
	}
	return nil
}

func runSettingsOffset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	offset, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", args[0], err)
	}

	if err := settingsService.SetDayOffset(offset); err != nil {
		return fmt.Errorf("setting day offset: %w", err)
	}

	cmd.Printf("Day offset set to %s.\n", offset)
	return nil
}
