package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"monthwise/internal/api"
	"monthwise/internal/config"
	"monthwise/internal/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagNoCache bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "monthwise",
	Short: "Monthly budgeting from the terminal",
	Long:  "Plan a budget for each month: income, expenses, savings, done.",
	RunE:  runBudgets,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetReportTimestamp(false)

	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the local cache, always fetch")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	cobra.OnInitialize(func() {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	})
}

// newClient builds an API client from the resolved config. Fails with a
// setup hint when no token is available.
func newClient() (*api.Client, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	token := config.Token(cfg)
	if token == "" {
		return nil, cfg, errors.New("no API token configured, run `monthwise setup` or set MONTHWISE_TOKEN")
	}

	return api.NewClient(cfg.API.BaseURL, token), cfg, nil
}

// openCache opens the local SQLite cache, or returns nil when caching is
// disabled or unavailable. A broken cache never blocks a command.
func openCache() *store.Cache {
	if flagNoCache {
		return nil
	}
	cache, err := store.Open(store.DefaultPath())
	if err != nil {
		log.Debug("cache unavailable", "err", err)
		return nil
	}
	return cache
}

// fetchBudgets lists budgets from the service, falling back to cached
// rows when the service is unreachable. The bool reports cache use.
func fetchBudgets(ctx context.Context, client *api.Client, cache *store.Cache) ([]api.Budget, bool, error) {
	budgets, err := client.ListBudgets(ctx)
	if err != nil {
		if cache != nil {
			cached, cacheErr := cache.Budgets()
			if cacheErr == nil && len(cached) > 0 {
				log.Warn("budget service unreachable, showing cached data", "err", err)
				return cached, true, nil
			}
		}
		return nil, false, err
	}
	if cache != nil {
		if err := cache.ReplaceBudgets(budgets); err != nil {
			log.Debug("cache refresh failed", "err", err)
		}
	}
	return budgets, false, nil
}

func cacheAge(cache *store.Cache) string {
	if cache == nil {
		return ""
	}
	at, err := cache.FetchedAt()
	if err != nil || at.IsZero() {
		return ""
	}
	age := time.Since(at).Round(time.Minute)
	return fmt.Sprintf("cached %s ago", age)
}
