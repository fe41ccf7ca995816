package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

var (
	historyJSON   bool
	historyClear  bool
	historyByKind bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded operations",
	Long: `Lists every recorded operation of this session in call order.

Use --by-kind to group the entries per operation, or --clear to discard
the history instead.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output history as JSON")
	historyCmd.Flags().BoolVar(&historyByKind, "by-kind", false, "group entries by operation kind")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "discard all recorded operations")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	ctx := context.Background()

	if historyClear {
		if err := calculatorService.ClearHistory(ctx); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		cmd.Println("History cleared.")
		return nil
	}

	ops, err := calculatorService.History(ctx)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if historyJSON {
		return outputOperationsJSON(cmd, ops)
	}

	if historyByKind {
		return outputHistoryByKind(cmd, ops)
	}

	return outputHistoryTable(cmd, ops)
}

// outputHistoryByKind groups entries per operation kind, preserving the
// call order inside each group.
func outputHistoryByKind(cmd *cobra.Command, ops []domain.Operation) error {
	if len(ops) == 0 {
		cmd.Println("No operations recorded.")
		return nil
	}

	groups := domain.NewBucket()
	for _, op := range ops {
		groups.Append(op.Kind.String(), op.String())
	}

	cmd.Printf("History for %s:\n", calculatorService.Name())
	for _, kind := range []domain.OpKind{domain.OpAdd, domain.OpMultiply} {
		entries := groups.Get(kind.String())
		if len(entries) == 0 {
			continue
		}
		cmd.Printf("\n  %s:\n", kind)
		for _, entry := range entries {
			cmd.Printf("    %s\n", entry)
		}
	}

	return nil
}

func outputHistoryTable(cmd *cobra.Command, ops []domain.Operation) error {
	if len(ops) == 0 {
		cmd.Println("No operations recorded.")
		return nil
	}

	// Style entries only when writing to a terminal.
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	entryStyle := lipgloss.NewStyle().Bold(true)
	timeStyle := lipgloss.NewStyle().Faint(true)

	cmd.Printf("History for %s:\n\n", calculatorService.Name())
	for i, op := range ops {
		entry := op.String()
		stamp := op.At.Format("15:04:05")
		if styled {
			entry = entryStyle.Render(entry)
			stamp = timeStyle.Render(stamp)
		}
		cmd.Printf("  [%d] %s  %s\n", i+1, entry, stamp)
	}

	return nil
}
