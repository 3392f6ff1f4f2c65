package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knight-run/internal/platform/tui"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Spend coins on upgrades",
	Long: `Open the upgrade shop for the current profile.

Controls:
  Up/Down/j/k  - Select upgrade
  Enter/Space  - Buy next level
  R/P          - Start a run
  Esc/B        - Leave
  Q            - Quit

Examples:
  knight shop
  knight shop --profile alice`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

func runShop(_ *cobra.Command, _ []string) {
	in := newInteractive()
	defer in.Close()

	sess, err := in.env.NewSession(flagProfile, in.runtime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile: %v\n", err)
		return
	}

	play, err := tui.RunShop(sess, in.runtime.ScreenW, in.runtime.ScreenH)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running shop: %v\n", err)
		return
	}
	if !play {
		return
	}

	sess.Reset()
	if err := tui.Run(sess, in.runtime, flagSeed != 0); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
	}
}
