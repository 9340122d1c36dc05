package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/questlog/internal/config"
	"github.com/example/questlog/internal/ctxutil"
	"github.com/example/questlog/internal/ports/primary"
	"github.com/example/questlog/internal/wire"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Manage checklists (authored templates)",
	Long:  "Create, inspect, and track checklists; tracking copies a checklist for an owner",
}

var checklistCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a checklist under a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID, _ := cmd.Flags().GetString("game")
		description, _ := cmd.Flags().GetString("description")
		if gameID == "" {
			return fmt.Errorf("--game is required")
		}

		created, err := wire.ChecklistService().CreateChecklist(context.Background(), primary.CreateChecklistRequest{
			GameID:      gameID,
			Title:       args[0],
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("failed to create checklist: %w", err)
		}
		fmt.Printf("✓ Created checklist %s: %s\n", created.ID, created.Title)
		return nil
	},
}

var checklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List checklists",
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID, _ := cmd.Flags().GetString("game")
		_, err := wire.ChecklistAdapter().List(context.Background(), gameID)
		return err
	},
}

var checklistShowCmd = &cobra.Command{
	Use:   "show [checklist-id]",
	Short: "Show a checklist with its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.ChecklistAdapter().Show(context.Background(), args[0])
		return err
	},
}

var checklistTrackCmd = &cobra.Command{
	Use:   "track [checklist-id]",
	Short: "Start tracking a checklist (create your copy)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerFlag, _ := cmd.Flags().GetString("owner")
		owner := config.Owner(ownerFlag)
		ctx := ctxutil.WithActorID(context.Background(), owner)

		tracked, err := wire.ChecklistService().Copy(ctx, args[0], owner)
		if err != nil {
			return fmt.Errorf("failed to track checklist: %w", err)
		}
		fmt.Printf("✓ Tracking %s as %s (owner: %s)\n", tracked.ChecklistID, tracked.ID, tracked.Owner)
		return nil
	},
}

var checklistTrackedCmd = &cobra.Command{
	Use:   "tracked",
	Short: "List tracked copies",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")
		_, err := wire.ChecklistAdapter().ListTracked(context.Background(), owner)
		return err
	},
}

var checklistSyncCmd = &cobra.Command{
	Use:   "sync [tracked-id]",
	Short: "Back-fill progress rows for items added after tracking started",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		added, err := wire.ChecklistService().SyncTracked(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to sync tracked checklist: %w", err)
		}
		fmt.Printf("✓ Added %d progress row(s)\n", added)
		return nil
	},
}

func init() {
	checklistCreateCmd.Flags().String("game", "", "Game ID the checklist belongs to (required)")
	checklistCreateCmd.Flags().String("description", "", "Checklist description")
	checklistListCmd.Flags().String("game", "", "Filter by game ID")
	checklistTrackCmd.Flags().String("owner", "", "Owner of the tracked copy (defaults to configured owner)")
	checklistTrackedCmd.Flags().String("owner", "", "Filter by owner")

	checklistCmd.AddCommand(checklistCreateCmd)
	checklistCmd.AddCommand(checklistListCmd)
	checklistCmd.AddCommand(checklistShowCmd)
	checklistCmd.AddCommand(checklistTrackCmd)
	checklistCmd.AddCommand(checklistTrackedCmd)
	checklistCmd.AddCommand(checklistSyncCmd)
}

// ChecklistCmd returns the checklist command
func ChecklistCmd() *cobra.Command {
	return checklistCmd
}
