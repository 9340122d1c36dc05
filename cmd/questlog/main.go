package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/questlog/internal/cli"
	"github.com/example/questlog/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "questlog",
		Short:   "questlog - game checklist tracker with prerequisite resolution",
		Version: version.String(),
		Long: `questlog tracks game completion checklists. Items can be gated on
other items or on reward thresholds, and toggling an item cascades derived
lock/unlock changes through its dependents.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.GameCmd())
	rootCmd.AddCommand(cli.ChecklistCmd())
	rootCmd.AddCommand(cli.ItemCmd())
	rootCmd.AddCommand(cli.RewardCmd())
	rootCmd.AddCommand(cli.PrereqCmd())

	// Progress commands on tracked copies
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ToggleCmd())
	rootCmd.AddCommand(cli.RewardsCmd())
	rootCmd.AddCommand(cli.TallyCmd())
	rootCmd.AddCommand(cli.ProblematicCmd())

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
