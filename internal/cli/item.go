package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/questlog/internal/ports/primary"
	"github.com/example/questlog/internal/wire"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage checklist items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Append an item to a checklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checklistID, _ := cmd.Flags().GetString("checklist")
		description, _ := cmd.Flags().GetString("description")
		location, _ := cmd.Flags().GetString("location")
		category, _ := cmd.Flags().GetString("category")
		if checklistID == "" {
			return fmt.Errorf("--checklist is required")
		}

		item, err := wire.ChecklistService().AddItem(context.Background(), primary.AddItemRequest{
			ChecklistID: checklistID,
			Title:       args[0],
			Description: description,
			Location:    location,
			Category:    category,
		})
		if err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}
		fmt.Printf("✓ Added %s at position %d: %s\n", item.ID, item.Position, item.Title)
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the items of a checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		checklistID, _ := cmd.Flags().GetString("checklist")
		if checklistID == "" {
			return fmt.Errorf("--checklist is required")
		}
		_, err := wire.ChecklistAdapter().Show(context.Background(), checklistID)
		return err
	},
}

var itemUpdateCmd = &cobra.Command{
	Use:   "update [item-id]",
	Short: "Update an item (empty flags keep stored values)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		location, _ := cmd.Flags().GetString("location")
		category, _ := cmd.Flags().GetString("category")

		item, err := wire.ChecklistService().UpdateItem(context.Background(), primary.UpdateItemRequest{
			ItemID:      args[0],
			Title:       title,
			Description: description,
			Location:    location,
			Category:    category,
		})
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}
		fmt.Printf("✓ Updated %s: %s\n", item.ID, item.Title)
		return nil
	},
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove [item-id]",
	Short: "Delete an item and its progress rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.ChecklistService().RemoveItem(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to remove item: %w", err)
		}
		fmt.Printf("✓ Removed %s\n", args[0])
		return nil
	},
}

func init() {
	itemAddCmd.Flags().String("checklist", "", "Checklist ID the item belongs to (required)")
	itemAddCmd.Flags().String("description", "", "Item description")
	itemAddCmd.Flags().String("location", "", "In-game location")
	itemAddCmd.Flags().String("category", "", "Item category")
	itemListCmd.Flags().String("checklist", "", "Checklist ID to list (required)")
	itemUpdateCmd.Flags().String("title", "", "New title")
	itemUpdateCmd.Flags().String("description", "", "New description")
	itemUpdateCmd.Flags().String("location", "", "New location")
	itemUpdateCmd.Flags().String("category", "", "New category")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemRemoveCmd)
}

// ItemCmd returns the item command
func ItemCmd() *cobra.Command {
	return itemCmd
}
