package cmd

import (
	"context"
	"fmt"

	"monthwise/internal/api"
	"monthwise/internal/budget"
	"monthwise/internal/cli"

	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List your budgets",
	RunE:  runBudgets,
}

func init() {
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(_ *cobra.Command, _ []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	cache := openCache()
	if cache != nil {
		defer cache.Close()
	}

	budgets, fromCache, err := fetchBudgets(context.Background(), client, cache)
	if err != nil {
		return fmt.Errorf("listing budgets: %w", err)
	}

	if len(budgets) == 0 {
		fmt.Println()
		fmt.Println("  No budgets yet. Run `monthwise new` to create one.")
		fmt.Println()
		return nil
	}

	table := cli.Table{
		Title:   "Budgets",
		Headers: []string{"Month", "Status"},
	}
	for _, b := range budgets {
		status := cli.OK("locked")
		if b.Status == api.StatusUnlocked {
			status = cli.Warn("unlocked")
		}
		table.Rows = append(table.Rows, []string{cli.FormatMonth(b.Month, b.Year), status})
	}

	fmt.Println()
	fmt.Println(table.Render())

	months := api.Months(budgets)
	if next := budget.MostRecent(months); next != nil {
		fmt.Printf("  Most recent: %s\n", next.String())
	}
	if fromCache {
		if age := cacheAge(cache); age != "" {
			fmt.Println("  " + cli.Muted(age))
		}
	}
	fmt.Println()
	return nil
}
