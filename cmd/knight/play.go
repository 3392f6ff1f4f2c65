package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knight-run/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run on the current profile.

Controls:
  A/D, Left/Right  - Move
  W/Up/Space       - Jump (again in the air for multi-jump)
  S/Down           - Fast fall / drop through platforms
  E/J/F            - Fire slash
  P/Esc            - Pause
  R                - Restart (after game over)
  S                - Upgrade shop (paused or after game over)
  Q                - Quit (paused or after game over)
  Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  knight play
  knight play --difficulty hard
  knight play --profile alice --seed 42
  knight play --config ./my-knight.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	in := newInteractive()

	sess, err := in.env.NewSession(flagProfile, in.runtime)
	if err != nil {
		in.Close()
		fmt.Fprintf(os.Stderr, "Error starting run: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(sess, in.runtime, flagSeed != 0)
	in.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
