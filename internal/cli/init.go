package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/questlog/internal/config"
	"github.com/example/questlog/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the questlog database",
		Long:  `Initialize the questlog database at ~/.questlog/questlog.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing questlog database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Println("✓ Database initialized successfully")

			owner, _ := cmd.Flags().GetString("owner")
			if owner != "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				cfg.Owner = owner
				if err := config.Save(cfg); err != nil {
					return err
				}
				fmt.Printf("✓ Default owner set to %s\n", owner)
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  questlog game create \"My Game\"")
			fmt.Println("  questlog checklist create \"100% Run\" --game GAME-001")
			return nil
		},
	}
	cmd.Flags().String("owner", "", "Default owner stored in ~/.questlog/config.json")
	return cmd
}
