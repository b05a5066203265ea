package cmd

import (
	"fmt"

	"fitfuel/internal/cli"
	"fitfuel/internal/model"
	"fitfuel/internal/stats"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "All-time summary across every logged day",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	day, err := selectedDay()
	if err != nil {
		return err
	}
	l, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer l.Close()

	hs, err := stats.Compute(l, day, cfg.Goal.DailyKcal)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ALL-TIME STATS"))
	fmt.Println()

	if hs.DaysLogged == 0 {
		fmt.Println("  Nothing logged yet. Add your first entry with `fitfuel log`.")
		fmt.Println()
		return nil
	}

	rows := [][2]string{
		{"Days logged", cli.FormatNumber(int64(hs.DaysLogged))},
		{"Entries", cli.FormatNumber(int64(hs.TotalEntries))},
		{"Total calories", cli.FormatKcal(hs.TotalCalories) + " kcal"},
		{"Daily average", cli.FormatKcal(hs.AvgCaloriesPerDay) + " kcal"},
		{"Peak day", fmt.Sprintf("%s (%s kcal)", hs.PeakDay, cli.FormatKcal(hs.PeakCalories))},
		{"Days on target", fmt.Sprintf("%d of %d", hs.DaysOnTarget, hs.DaysLogged)},
		{"Current streak", fmt.Sprintf("%d days", hs.Streak)},
		{"Protein", cli.FormatGrams(hs.TotalProteinG)},
		{"Carbs", cli.FormatGrams(hs.TotalCarbsG)},
		{"Fat", cli.FormatGrams(hs.TotalFatG)},
	}
	for _, r := range rows {
		fmt.Printf("  %-16s %s\n", r[0], r[1])
	}

	fmt.Println()
	fmt.Println("  Entries by meal:")
	maxCount := 0
	for _, m := range model.Meals {
		if c := hs.EntriesPerMeal[m]; c > maxCount {
			maxCount = c
		}
	}
	for _, m := range model.Meals {
		count := hs.EntriesPerMeal[m]
		fmt.Println(cli.RenderBarRow(string(m), cli.FormatNumber(int64(count)),
			float64(count), float64(maxCount), 24, cli.ColorGreen))
	}
	fmt.Println()

	return nil
}
