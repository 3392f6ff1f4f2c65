package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/knight-run/internal/platform/tui"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run history",
	Long: `Show the longest runs of the current profile.

In a terminal the history opens as an interactive table where tab
switches profile and o toggles between longest and most recent runs.
Otherwise the top runs are printed.

Examples:
  knight runs
  knight runs --profile alice
  knight runs --limit 5 | cat`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to print")
}

func runRuns(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		if err := tui.RunRuns(store, flagProfile, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history: %v\n", err)
		}
		return
	}

	runs, err := store.TopRuns(flagProfile, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Longest Runs - %s\n", flagProfile)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'knight play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %s\n", "Rank", "Distance", "Coins", "XP", "Kills", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %s\n", "----", "--------", "-----", "--", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-5d  %s\n",
			i+1, r.Distance, r.Coins, r.XP, r.Kills, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
