package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fitfuel/internal/config"

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
	fmt.Println("  Welcome to fitfuel!")
	fmt.Println()

	// 1. API key
	fmt.Println("  1. Nutrition API key")
	fmt.Println("     For free-text food lookup (calorieninjas.com).")
	if existing := config.GetAPIKey(cfg); existing != "" {
		fmt.Printf("     Current: %s\n", maskAPIKey(existing))
	}
	fmt.Print("     > ")
	apiKey, _ := reader.ReadString('\n')
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" {
		cfg.Nutrition.APIKey = apiKey
	}
	fmt.Println()

	// 2. Daily calorie target
	fmt.Printf("  2. Daily calorie target [%.0f]\n", cfg.Goal.DailyKcal)
	fmt.Print("     > ")
	goalIn, _ := reader.ReadString('\n')
	goalIn = strings.TrimSpace(goalIn)
	if goalIn != "" {
		if v, err := strconv.ParseFloat(goalIn, 64); err == nil && v > 0 {
			cfg.Goal.DailyKcal = v
		} else {
			fmt.Println("     Not a positive number, keeping previous target.")
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) FitFuel Dark [default]")
	fmt.Println("     (2) FitFuel Light")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "fitfuel-light"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "fitfuel-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `fitfuel setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 12 {
		return key[:4] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
