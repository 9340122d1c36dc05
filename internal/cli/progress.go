package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/questlog/internal/config"
	"github.com/example/questlog/internal/ctxutil"
	"github.com/example/questlog/internal/ports/primary"
	"github.com/example/questlog/internal/wire"
)

var statusCmd = &cobra.Command{
	Use:   "status [tracked-id]",
	Short: "Show a tracked checklist with completion and lock state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.ProgressAdapter().Status(context.Background(), args[0])
		return err
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [tracked-id] [item-id]",
	Short: "Flip an item's completion and show the cascade",
	Long:  "Completing an item is blocked while its prerequisites are unmet; unchecking never is",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerFlag, _ := cmd.Flags().GetString("owner")
		ctx := ctxutil.WithActorID(context.Background(), config.Owner(ownerFlag))

		_, err := wire.ProgressAdapter().Toggle(ctx, args[0], args[1])
		var notMet *primary.PrerequisitesNotMetError
		if errors.As(err, &notMet) {
			fmt.Printf("Cannot complete %s:\n", notMet.ItemID)
			for _, unmet := range notMet.Unmet {
				fmt.Printf("  needs: %s\n", unmet.Description)
			}
			return fmt.Errorf("prerequisites not met")
		}
		return err
	},
}

var rewardsCmd = &cobra.Command{
	Use:   "rewards [tracked-id]",
	Short: "Show available amounts of every reward in a tracked checklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.ProgressAdapter().Rewards(context.Background(), args[0])
		return err
	},
}

var tallyCmd = &cobra.Command{
	Use:   "tally [tracked-id] [reward-id]",
	Short: "Tally collected, consumed, and available amounts for one reward",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		location, _ := cmd.Flags().GetString("location")
		category, _ := cmd.Flags().GetString("category")
		chained, _ := cmd.Flags().GetBool("chained")

		_, err := wire.ProgressAdapter().Tally(context.Background(), primary.TallyRequest{
			TrackedID: args[0],
			RewardID:  args[1],
			Location:  location,
			Category:  category,
			Chained:   chained,
		})
		return err
	},
}

var problematicCmd = &cobra.Command{
	Use:   "problematic [tracked-id]",
	Short: "List completed consuming items whose reward pool is overdrawn",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := wire.ProgressService().ProblematicItems(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to check problematic items: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No problematic items.")
			return nil
		}
		for _, id := range items {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	toggleCmd.Flags().String("owner", "", "Actor recorded in the activity log (defaults to configured owner)")
	tallyCmd.Flags().String("location", "", "Only count grants from items at this location")
	tallyCmd.Flags().String("category", "", "Only count grants from items in this category")
	tallyCmd.Flags().Bool("chained", false, "Re-validate upstream prerequisites when counting")
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return statusCmd
}

// ToggleCmd returns the toggle command
func ToggleCmd() *cobra.Command {
	return toggleCmd
}

// RewardsCmd returns the rewards command
func RewardsCmd() *cobra.Command {
	return rewardsCmd
}

// TallyCmd returns the tally command
func TallyCmd() *cobra.Command {
	return tallyCmd
}

// ProblematicCmd returns the problematic command
func ProblematicCmd() *cobra.Command {
	return problematicCmd
}
