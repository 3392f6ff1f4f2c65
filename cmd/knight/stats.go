package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knight-run/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print wallet and lifetime statistics",
	Long: `Print the wallet, the lifetime statistics and the run summary
of the current profile.

Examples:
  knight stats
  knight stats --profile alice`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	prefs, err := store.Prefs(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return
	}
	runs, err := store.GetRunStats(prefs.Profile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	wallet := session.LoadWallet(prefs)
	stats := session.LoadStats(prefs)

	fmt.Printf("Stats - %s\n", prefs.Profile())
	fmt.Println()
	fmt.Printf("  Coins          %d\n", wallet.Coins)
	fmt.Printf("  XP             %d\n", wallet.XP)
	fmt.Println()
	fmt.Printf("  Deaths         %d\n", stats.Deaths)
	fmt.Printf("  Coins earned   %d\n", stats.Coins)
	fmt.Printf("  Kills          %d\n", stats.Kills)
	fmt.Printf("  Playtime       %s\n", (time.Duration(stats.PlaytimeMs) * time.Millisecond).Round(time.Second))
	fmt.Println()

	if runs.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	fmt.Printf("  Runs           %d\n", runs.Runs)
	fmt.Printf("  Best distance  %d\n", runs.Best)
	fmt.Printf("  Avg distance   %.0f\n", runs.AvgDistance)
	fmt.Printf("  Last played    %s\n", runs.LastPlayed.Format("2006-01-02 15:04"))
}
