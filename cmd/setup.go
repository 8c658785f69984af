package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"monthwise/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to monthwise!")
	fmt.Println()

	// 1. Service URL
	fmt.Println("  1. Budget service URL")
	fmt.Printf("     Current: %s\n", cfg.API.BaseURL)
	fmt.Print("     > ")
	baseURL, _ := reader.ReadString('\n')
	baseURL = strings.TrimSpace(baseURL)
	if baseURL != "" {
		cfg.API.BaseURL = strings.TrimRight(baseURL, "/")
	}
	fmt.Println()

	// 2. API token
	fmt.Println("  2. API token")
	fmt.Println("     From the web app: Settings > API access.")
	if cfg.API.Token != "" {
		fmt.Printf("     Current: %s\n", maskToken(cfg.API.Token))
	}
	fmt.Print("     > ")
	token, _ := reader.ReadString('\n')
	token = strings.TrimSpace(token)
	if token != "" {
		cfg.API.Token = token
	}
	fmt.Println()

	// 3. Lock after save
	fmt.Println("  3. Lock balanced budgets after saving? (y/N)")
	fmt.Print("     > ")
	lock, _ := reader.ReadString('\n')
	cfg.Wizard.LockAfterSave = strings.EqualFold(strings.TrimSpace(lock), "y")
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `monthwise setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func maskToken(token string) string {
	if len(token) > 16 {
		return token[:8] + "..." + token[len(token)-4:]
	}
	if len(token) > 4 {
		return token[:4] + "..."
	}
	return "****"
}
