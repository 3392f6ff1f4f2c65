package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knight-run/internal/session"
	"github.com/vovakirdan/knight-run/internal/upgrade"
)

var upgradesCmd = &cobra.Command{
	Use:   "upgrades",
	Short: "Print upgrade levels",
	Long: `Print the level, current value and next cost of every upgrade
of the current profile.

Examples:
  knight upgrades
  knight upgrades --profile alice`,
	Args: cobra.NoArgs,
	Run:  runUpgrades,
}

func runUpgrades(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	prefs, err := store.Prefs(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return
	}

	engine := upgrade.NewEngine(cfg.Upgrades)
	engine.Load(prefs)
	wallet := session.LoadWallet(prefs)

	fmt.Printf("Upgrades - %s (%d coins)\n", prefs.Profile(), wallet.Coins)
	fmt.Println()

	maxName := len("Upgrade")
	for _, u := range engine.All() {
		maxName = max(maxName, len(u.Name))
	}

	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxName, "Upgrade", "Level", "Value", "Next")
	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxName, "-------", "-----", "-----", "----")
	for _, u := range engine.All() {
		next := "max"
		if u.CanUpgrade() {
			next = fmt.Sprintf("%d", u.Cost())
		}
		fmt.Printf("  %-*s  %-7s  %-9.2f  %s\n", maxName, u.Name,
			fmt.Sprintf("%d/%d", u.Level(), u.MaxLevel), u.Value(), next)
	}

	fmt.Println()
	fmt.Println("Run 'knight shop' to buy upgrades.")
}
