package cmd

import (
	"fmt"
	"strings"

	"fitfuel/internal/cli"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an entry from the ledger by id (prefix match)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	sess, l, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer l.Close()

	prefix := args[0]
	var matched []string
	for _, e := range sess.Entries() {
		if strings.HasPrefix(e.ID, prefix) {
			matched = append(matched, e.ID)
		}
	}

	switch len(matched) {
	case 0:
		fmt.Printf("  No entry with id %q on %s.\n", prefix, sess.Day())
		return nil
	case 1:
	default:
		return fmt.Errorf("id %q matches %d entries — use a longer prefix", prefix, len(matched))
	}

	removed, err := sess.RemoveEntry(matched[0])
	if err != nil {
		return err
	}
	if removed {
		snap := sess.Snapshot()
		fmt.Printf("  Removed %s. %s now at %s kcal.\n",
			cli.ShortID(matched[0]), sess.Day(), cli.FormatKcal(snap.TotalCalories))
	}
	return nil
}
