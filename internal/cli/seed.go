package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/questlog/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with development fixtures",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.GetDB()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.SeedFixtures(database); err != nil {
			return fmt.Errorf("failed to seed fixtures: %w", err)
		}
		fmt.Println("✓ Seeded demo game, checklist, and tracked copy (TRK-001)")
		fmt.Println()
		fmt.Println("Try:")
		fmt.Println("  questlog status TRK-001")
		fmt.Println("  questlog toggle TRK-001 ITEM-003")
		return nil
	},
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return seedCmd
}
