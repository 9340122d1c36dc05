package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/questlog/internal/wire"
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Manage the game catalog",
	Long:  "Register games and list the catalog; checklists are scoped to a game",
}

var gameCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Register a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		game, err := wire.ChecklistService().CreateGame(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}
		fmt.Printf("✓ Game %s: %s\n", game.ID, game.Name)
		return nil
	},
}

var gameListCmd = &cobra.Command{
	Use:   "list",
	Short: "List games",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.ChecklistAdapter().ListGames(context.Background())
		return err
	},
}

func init() {
	gameCmd.AddCommand(gameCreateCmd)
	gameCmd.AddCommand(gameListCmd)
}

// GameCmd returns the game command
func GameCmd() *cobra.Command {
	return gameCmd
}
