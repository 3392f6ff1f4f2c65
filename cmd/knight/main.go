// knight is an endless runner: a knight races the scrolling edge of the
// world, fights skeletons and bats, and spends coins on upgrades.
//
// Usage:
//
//	knight                   - Start a run (same as knight play)
//	knight play              - Start a run
//	knight shop              - Open the upgrade shop
//	knight upgrades          - Print upgrade levels
//	knight stats             - Print wallet and lifetime statistics
//	knight runs              - Show the run history
//	knight reset             - Reset upgrades to level 1
//	knight serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.knight/knight.db)
//	--profile <name>      - Set the save profile (default: default)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagProfile    string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "knight",
	Short: "Knight Run - an endless runner in your terminal",
	Long: `Knight Run is an endless runner played in the terminal.

The world scrolls on its own: keep the knight ahead of the left edge,
jump between platforms, slash skeletons and bats, and collect coins
to buy upgrades between runs.

Available commands:
  play      - Start a run (default)
  shop      - Spend coins on upgrades
  upgrades  - Print upgrade levels
  stats     - Print wallet and lifetime statistics
  runs      - Show the run history
  reset     - Reset upgrades to level 1
  serve     - Start SSH server for remote play

Examples:
  knight
  knight play --difficulty hard
  knight shop --profile alice
  knight serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.knight/knight.db", "Path to save database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "default", "Save profile")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(upgradesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}
