package cmd

import (
	"fmt"
	"os"

	"monthwise/internal/config"
	"monthwise/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Config file:     %s", config.Path())
	if !config.Exists() {
		fmt.Print("  (not created yet, showing defaults)")
	}
	fmt.Println()
	fmt.Printf("  Cache file:      %s\n", store.DefaultPath())
	fmt.Println()

	fmt.Printf("  Service URL:     %s\n", cfg.API.BaseURL)

	token := config.Token(cfg)
	switch {
	case token == "":
		fmt.Println("  API token:       (not set)")
	case os.Getenv("MONTHWISE_TOKEN") != "":
		fmt.Printf("  API token:       %s  (from MONTHWISE_TOKEN)\n", maskToken(token))
	default:
		fmt.Printf("  API token:       %s\n", maskToken(token))
	}

	fmt.Printf("  Lock after save: %t\n", cfg.Wizard.LockAfterSave)
	fmt.Printf("  Theme:           %s\n", cfg.Appearance.Theme)
	fmt.Println()

	return nil
}
