package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/questlog/internal/ports/primary"
	"github.com/example/questlog/internal/wire"
)

var prereqCmd = &cobra.Command{
	Use:   "prereq",
	Short: "Manage item prerequisites",
	Long:  "Gate items on other items or reward thresholds, or attach freeform notes",
}

var prereqAddItemCmd = &cobra.Command{
	Use:   "add-item [item-id] [required-item-id]",
	Short: "Gate an item on another item's completion",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := wire.RewardService().AddItemPrerequisite(context.Background(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to add prerequisite: %w", err)
		}
		fmt.Printf("✓ %s now requires %s (%s)\n", info.ItemID, info.RequiredItemID, info.ID)
		return nil
	},
}

var prereqAddRewardCmd = &cobra.Command{
	Use:   "add-reward [item-id] [reward-id]",
	Short: "Gate an item on a reward threshold",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetInt("amount")
		consumes, _ := cmd.Flags().GetBool("consumes")
		location, _ := cmd.Flags().GetString("location")
		category, _ := cmd.Flags().GetString("category")

		info, err := wire.RewardService().AddRewardPrerequisite(context.Background(), primary.RewardPrereqRequest{
			ItemID:   args[0],
			RewardID: args[1],
			Amount:   amount,
			Consumes: consumes,
			Location: location,
			Category: category,
		})
		if err != nil {
			return fmt.Errorf("failed to add prerequisite: %w", err)
		}
		verb := "requires"
		if info.ConsumesReward {
			verb = "consumes"
		}
		fmt.Printf("✓ %s %s %d x %s (%s)\n", info.ItemID, verb, info.RewardAmount, info.RewardID, info.ID)
		return nil
	},
}

var prereqAddNoteCmd = &cobra.Command{
	Use:   "add-note [item-id] [text]",
	Short: "Attach a freeform note that never blocks completion",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := wire.RewardService().AddFreeformPrerequisite(context.Background(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to add note: %w", err)
		}
		fmt.Printf("✓ Noted on %s (%s)\n", info.ItemID, info.ID)
		return nil
	},
}

var prereqListCmd = &cobra.Command{
	Use:   "list [item-id]",
	Short: "List the prerequisites gating an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prereqs, err := wire.RewardService().ListPrerequisites(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to list prerequisites: %w", err)
		}
		if len(prereqs) == 0 {
			fmt.Println("No prerequisites.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tKIND\tDETAIL")
		fmt.Fprintln(w, "--\t----\t------")
		for _, p := range prereqs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Kind, prereqDetail(p))
		}
		return w.Flush()
	},
}

var prereqRemoveCmd = &cobra.Command{
	Use:   "remove [prereq-id]",
	Short: "Delete a prerequisite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.RewardService().RemovePrerequisite(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to remove prerequisite: %w", err)
		}
		fmt.Printf("✓ Removed %s\n", args[0])
		return nil
	},
}

func prereqDetail(p *primary.PrerequisiteInfo) string {
	switch p.Kind {
	case "item":
		return fmt.Sprintf("requires item %s", p.RequiredItemID)
	case "reward":
		detail := fmt.Sprintf("requires %d x %s", p.RewardAmount, p.RewardID)
		if p.ConsumesReward {
			detail = fmt.Sprintf("consumes %d x %s", p.RewardAmount, p.RewardID)
		}
		if p.RewardLocation != "" {
			detail += fmt.Sprintf(" from %s", p.RewardLocation)
		}
		if p.RewardCategory != "" {
			detail += fmt.Sprintf(" (%s)", p.RewardCategory)
		}
		return detail
	case "freeform":
		return p.FreeformText
	default:
		return "-"
	}
}

func init() {
	prereqAddRewardCmd.Flags().Int("amount", 1, "Required reward amount")
	prereqAddRewardCmd.Flags().Bool("consumes", false, "Spend the reward on completion")
	prereqAddRewardCmd.Flags().String("location", "", "Only count grants from items at this location")
	prereqAddRewardCmd.Flags().String("category", "", "Only count grants from items in this category")

	prereqCmd.AddCommand(prereqAddItemCmd)
	prereqCmd.AddCommand(prereqAddRewardCmd)
	prereqCmd.AddCommand(prereqAddNoteCmd)
	prereqCmd.AddCommand(prereqListCmd)
	prereqCmd.AddCommand(prereqRemoveCmd)
}

// PrereqCmd returns the prereq command
func PrereqCmd() *cobra.Command {
	return prereqCmd
}
