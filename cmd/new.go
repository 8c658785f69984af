package cmd

import (
	"fmt"

	"monthwise/internal/tui"
	"monthwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagLock bool

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a budget for a month",
	Long:  "Walk through month, income, expenses, and savings, then save the budget in one go.",
	RunE:  runNew,
}

func init() {
	newCmd.Flags().BoolVar(&flagLock, "lock", false, "Lock the budget after saving when it balances to zero")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so lipgloss styling survives non-tty detection.
	lipgloss.SetColorProfile(termenv.TrueColor)

	lock := cfg.Wizard.LockAfterSave
	if cmd.Flags().Changed("lock") {
		lock = flagLock
	}

	cache := openCache()
	if cache != nil {
		defer cache.Close()
	}

	app := tui.NewApp(client, cache, lock)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}
