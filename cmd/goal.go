package cmd

import (
	"fmt"
	"strconv"

	"fitfuel/internal/cli"
	"fitfuel/internal/config"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [kcal]",
	Short: "Show or set the daily calorie target",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func runGoal(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	if len(args) == 0 {
		fmt.Printf("  Daily target: %s kcal\n", cli.FormatKcal(cfg.Goal.DailyKcal))
		return nil
	}

	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("invalid target %q (expected a positive number of kcal)", args[0])
	}

	cfg.Goal.DailyKcal = v
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Daily target set to %s kcal.\n", cli.FormatKcal(v))
	return nil
}
