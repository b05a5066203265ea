package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fitfuel/internal/cli"
	"fitfuel/internal/config"
	"fitfuel/internal/model"
	"fitfuel/internal/nutrition"

	"github.com/spf13/cobra"
)

var flagMeal string

var logCmd = &cobra.Command{
	Use:   "log <description>",
	Short: "Look up a food description and add it to the ledger",
	Long:  `Resolve a free-text description (e.g. "1 bowl rice and 2 eggs") through the nutrition API and append the items to the selected day.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVarP(&flagMeal, "meal", "m", string(model.Snack), "Meal slot (breakfast, lunch, dinner, snack)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	meal, err := model.ParseMeal(flagMeal)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	client := nutrition.NewClient(config.GetAPIKey(cfg), cfg.Nutrition.BaseURL)
	if client == nil {
		return errors.New("no nutrition API key configured — run `fitfuel setup` or set FITFUEL_API_KEY")
	}

	sess, l, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer l.Close()

	query := strings.Join(args, " ")
	issuedFor, ok := sess.BeginLookup()
	if !ok {
		return errors.New("a lookup is already in flight")
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Looking up %q...\n", query)
	}

	items, err := client.Query(cmd.Context(), query)
	if err != nil {
		sess.AbortLookup()
		if errors.Is(err, nutrition.ErrNoItems) {
			return fmt.Errorf("nothing recognized in %q — try simpler wording", query)
		}
		return err
	}

	added, err := sess.FinishLookup(issuedFor, items, meal)
	if err != nil {
		return err
	}

	snap := sess.Snapshot()
	fmt.Println()
	for _, e := range added {
		fmt.Printf("  + %s  %s kcal  [%s]  (%s)\n",
			e.Name, cli.FormatKcal(e.Calories), e.Meal, cli.ShortID(e.ID))
	}
	fmt.Printf("\n  %s now at %s kcal (%s of goal)\n\n",
		sess.Day(),
		cli.FormatKcal(snap.TotalCalories),
		cli.FormatGoalPercent(snap.TotalCalories, sess.Goal()),
	)

	return nil
}
