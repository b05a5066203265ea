package cmd

import (
	"fmt"

	"fitfuel/internal/cli"

	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "7-day calorie rollup ending at the selected day",
	RunE:  runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	sess, l, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer l.Close()

	points, err := sess.Weekly(sess.Day())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("LAST 7 DAYS"))
	fmt.Println()

	maxTotal := 0.0
	for _, p := range points {
		if p.Total > maxTotal {
			maxTotal = p.Total
		}
	}

	target := sess.Goal()
	for _, p := range points {
		label := fmt.Sprintf("%s %s", p.Label, p.Day)
		value := fmt.Sprintf("%s kcal (%s)",
			cli.FormatKcal(p.Total),
			cli.FormatGoalPercent(p.Total, target))

		color := cli.ColorBlue
		if p.Day == sess.Day() {
			color = cli.ColorAccent
		}
		fmt.Println(cli.RenderBarRow(label, value, p.Total, maxTotal, 24, color))
	}
	fmt.Println()

	return nil
}
