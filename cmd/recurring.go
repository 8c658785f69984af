package cmd

import (
	"context"
	"fmt"

	"monthwise/internal/cli"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var recurringCmd = &cobra.Command{
	Use:   "recurring",
	Short: "List your recurring expense templates",
	RunE:  runRecurring,
}

func init() {
	rootCmd.AddCommand(recurringCmd)
}

func runRecurring(_ *cobra.Command, _ []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	cache := openCache()
	if cache != nil {
		defer cache.Close()
	}

	ctx := context.Background()
	recurring, err := client.ListRecurringExpenses(ctx)
	if err != nil {
		if cache == nil {
			return fmt.Errorf("listing recurring expenses: %w", err)
		}
		cached, cacheErr := cache.Recurring()
		if cacheErr != nil || len(cached) == 0 {
			return fmt.Errorf("listing recurring expenses: %w", err)
		}
		log.Warn("budget service unreachable, showing cached data", "err", err)
		recurring = cached
	} else if cache != nil {
		if err := cache.ReplaceRecurring(recurring); err != nil {
			log.Debug("cache refresh failed", "err", err)
		}
	}

	if len(recurring) == 0 {
		fmt.Println()
		fmt.Println("  No recurring expense templates found.")
		fmt.Println()
		return nil
	}

	// Resolve account names when the service is reachable.
	accountNames := map[string]string{}
	if accounts, err := client.ListAccounts(ctx); err == nil {
		for _, acc := range accounts {
			accountNames[acc.ID] = acc.Name
		}
	}

	table := cli.Table{
		Title:   "Recurring expenses",
		Headers: []string{"Name", "Amount", "Account", "Deducted"},
	}
	var total float64
	for _, r := range recurring {
		total += r.Amount
		deducted := "-"
		if r.DeductDay > 0 {
			deducted = fmt.Sprintf("day %d", r.DeductDay)
		}
		table.Rows = append(table.Rows, []string{
			r.Name,
			cli.FormatMoney(r.Amount),
			accountNames[r.BankAccountID],
			deducted,
		})
	}

	fmt.Println()
	fmt.Println(table.Render())
	fmt.Printf("  %s per month across %s\n",
		cli.FormatMoney(total), cli.Pluralize(len(recurring), "template"))
	fmt.Println()
	return nil
}
