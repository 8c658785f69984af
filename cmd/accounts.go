package cmd

import (
	"context"
	"fmt"

	"monthwise/internal/cli"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List your bank accounts",
	RunE:  runAccounts,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}

func runAccounts(_ *cobra.Command, _ []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	cache := openCache()
	if cache != nil {
		defer cache.Close()
	}

	accounts, err := client.ListAccounts(context.Background())
	if err != nil {
		if cache == nil {
			return fmt.Errorf("listing accounts: %w", err)
		}
		cached, cacheErr := cache.Accounts()
		if cacheErr != nil || len(cached) == 0 {
			return fmt.Errorf("listing accounts: %w", err)
		}
		log.Warn("budget service unreachable, showing cached data", "err", err)
		accounts = cached
	} else if cache != nil {
		if err := cache.ReplaceAccounts(accounts); err != nil {
			log.Debug("cache refresh failed", "err", err)
		}
	}

	if len(accounts) == 0 {
		fmt.Println()
		fmt.Println("  No bank accounts found. Add one on the web app first.")
		fmt.Println()
		return nil
	}

	table := cli.Table{
		Title:   "Bank accounts",
		Headers: []string{"Name"},
	}
	for _, acc := range accounts {
		table.Rows = append(table.Rows, []string{acc.Name})
	}

	fmt.Println()
	fmt.Println(table.Render())
	fmt.Println()
	return nil
}
