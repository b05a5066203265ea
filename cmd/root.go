// Package cmd implements the fitfuel CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fitfuel/internal/config"
	"fitfuel/internal/ledger"
	"fitfuel/internal/model"
	"fitfuel/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDate    string
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "fitfuel",
	Short: "Daily nutrition ledger CLI",
	Long:  "Log consumed food against calendar days and track calories, macros, and your daily target.",
	RunE:  runDay,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDate, "date", "d", "", "Ledger date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Ledger database directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig applies the --data-dir override on top of the config file.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// openLedger opens the ledger database for the given config.
func openLedger(cfg config.Config) (*store.Ledger, error) {
	return store.Open(filepath.Join(config.DataDir(cfg), "ledger.db"))
}

// selectedDay resolves the --date flag, defaulting to today.
func selectedDay() (model.Day, error) {
	if flagDate == "" {
		return model.DayOf(time.Now()), nil
	}
	return model.ParseDay(flagDate)
}

// openSession is the shared setup path: open the store and load the
// selected day into a ready session.
func openSession(cfg config.Config) (*ledger.Session, *store.Ledger, error) {
	day, err := selectedDay()
	if err != nil {
		return nil, nil, err
	}

	l, err := openLedger(cfg)
	if err != nil {
		return nil, nil, err
	}

	sess := ledger.NewSession(l, cfg.Goal.DailyKcal)
	if err := sess.SelectDate(day); err != nil {
		_ = l.Close()
		return nil, nil, err
	}
	return sess, l, nil
}
