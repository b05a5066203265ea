package cmd

import (
	"fmt"

	"fitfuel/internal/cli"
	"fitfuel/internal/goal"

	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the ledger for one day",
	RunE:  runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
}

func runDay(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	sess, l, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer l.Close()

	entries := sess.Entries()
	snap := sess.Snapshot()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FITFUEL  %s (%s)", sess.Day(), sess.Day().Weekday())))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  No records found. Log something with `fitfuel log`.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			cli.Truncate(e.Name, 28),
			string(e.Meal),
			cli.FormatGrams(e.ServingG),
			cli.FormatKcal(e.Calories),
			cli.FormatGrams(e.ProteinG),
			cli.FormatGrams(e.CarbsG),
			cli.FormatGrams(e.FatG),
			cli.ShortID(e.ID),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Food", "Meal", "Serving", "Kcal", "Protein", "Carbs", "Fat", "ID"},
		Rows:    rows,
	}))
	fmt.Println()

	target := sess.Goal()
	fmt.Printf("  Total: %s kcal  (P %s  C %s  F %s)\n",
		cli.FormatKcal(snap.TotalCalories),
		cli.FormatGrams(snap.TotalProteinG),
		cli.FormatGrams(snap.TotalCarbsG),
		cli.FormatGrams(snap.TotalFatG),
	)
	fmt.Printf("  Goal:  %s of %s kcal  %s  (%s kcal remaining)\n",
		cli.FormatGoalPercent(snap.TotalCalories, target),
		cli.FormatKcal(target),
		cli.RenderGoalBar(goalFraction(snap.TotalCalories, target), 20),
		cli.FormatKcal(goal.Remaining(snap.TotalCalories, target)),
	)

	if trend := sess.Trend(); len(trend) > 2 {
		fmt.Printf("  Trend: %s\n", cli.RenderSparkline(trend))
	}
	fmt.Println()

	return nil
}

// goalFraction returns consumed/target for the progress bar, 0 when the
// target is unusable.
func goalFraction(total, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return total / target
}
