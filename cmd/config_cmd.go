package cmd

import (
	"fmt"

	"fitfuel/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
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

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Ledger database: %s\n", config.DataDir(cfg))
	fmt.Println()

	fmt.Println("  [Nutrition]")
	if apiKey := config.GetAPIKey(cfg); apiKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key: not configured")
	}
	if cfg.Nutrition.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.Nutrition.BaseURL)
	}
	fmt.Println()

	fmt.Println("  [Goal]")
	fmt.Printf("    Daily target: %.0f kcal\n", cfg.Goal.DailyKcal)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `fitfuel setup` to reconfigure.")
	return nil
}
