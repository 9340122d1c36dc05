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

var rewardCmd = &cobra.Command{
	Use:   "reward",
	Short: "Manage the reward catalog and item grants",
}

var rewardCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Register a reward (idempotent by name)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reward, err := wire.RewardService().CreateReward(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to create reward: %w", err)
		}
		fmt.Printf("✓ Reward %s: %s\n", reward.ID, reward.Name)
		return nil
	},
}

var rewardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the reward catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		rewards, err := wire.RewardService().ListRewards(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list rewards: %w", err)
		}
		if len(rewards) == 0 {
			fmt.Println("No rewards registered.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		fmt.Fprintln(w, "--\t----")
		for _, r := range rewards {
			fmt.Fprintf(w, "%s\t%s\n", r.ID, r.Name)
		}
		return w.Flush()
	},
}

var rewardGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Credit a reward amount when an item completes",
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, _ := cmd.Flags().GetString("item")
		rewardID, _ := cmd.Flags().GetString("reward")
		amount, _ := cmd.Flags().GetInt("amount")
		if itemID == "" || rewardID == "" {
			return fmt.Errorf("--item and --reward are required")
		}

		grant, err := wire.RewardService().AttachGrant(context.Background(), primary.GrantRequest{
			ItemID:   itemID,
			RewardID: rewardID,
			Amount:   amount,
		})
		if err != nil {
			return fmt.Errorf("failed to attach grant: %w", err)
		}
		fmt.Printf("✓ %s grants %d x %s (%s)\n", grant.ItemID, grant.Amount, grant.RewardID, grant.ID)
		return nil
	},
}

var rewardGrantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "List every grant within a checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		checklistID, _ := cmd.Flags().GetString("checklist")
		if checklistID == "" {
			return fmt.Errorf("--checklist is required")
		}

		grants, err := wire.RewardService().ListGrants(context.Background(), checklistID)
		if err != nil {
			return fmt.Errorf("failed to list grants: %w", err)
		}
		if len(grants) == 0 {
			fmt.Println("No grants in this checklist.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tITEM\tREWARD\tAMOUNT")
		fmt.Fprintln(w, "--\t----\t------\t------")
		for _, g := range grants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", g.ID, g.ItemID, g.RewardID, g.Amount)
		}
		return w.Flush()
	},
}

func init() {
	rewardGrantCmd.Flags().String("item", "", "Item ID that grants the reward (required)")
	rewardGrantCmd.Flags().String("reward", "", "Reward ID to credit (required)")
	rewardGrantCmd.Flags().Int("amount", 1, "Amount granted on completion")
	rewardGrantsCmd.Flags().String("checklist", "", "Checklist ID to list grants for (required)")

	rewardCmd.AddCommand(rewardCreateCmd)
	rewardCmd.AddCommand(rewardListCmd)
	rewardCmd.AddCommand(rewardGrantCmd)
	rewardCmd.AddCommand(rewardGrantsCmd)
}

// RewardCmd returns the reward command
func RewardCmd() *cobra.Command {
	return rewardCmd
}
