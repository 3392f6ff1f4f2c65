package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knight-run/internal/upgrade"
)

var flagResetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset upgrades to level 1",
	Long: `Reset every upgrade of the current profile to level 1.
Coins and statistics are kept unless --all is given, which deletes
the whole profile including its run history.

Examples:
  knight reset
  knight reset --profile alice --all`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetAll, "all", false, "Delete the whole profile")
}

func runReset(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagResetAll {
		if err := store.ClearProfile(flagProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing profile: %v\n", err)
			return
		}
		fmt.Printf("Profile %q cleared.\n", flagProfile)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	prefs, err := store.Prefs(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return
	}
	if err := upgrade.NewEngine(cfg.Upgrades).ResetToLevelOne(prefs); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting upgrades: %v\n", err)
		return
	}
	fmt.Printf("Upgrades of %q reset to level 1.\n", prefs.Profile())
}
