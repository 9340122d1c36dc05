// Package cli contains thin adapters that translate CLI operations to
// service calls and render the results for the terminal.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/questlog/internal/ports/primary"
)

// ProgressAdapter translates CLI operations to ProgressService calls.
// It depends only on the ProgressService interface, enabling easy testing
// with mocks.
type ProgressAdapter struct {
	service primary.ProgressService
	out     io.Writer
}

// NewProgressAdapter creates a new ProgressAdapter with the given service.
func NewProgressAdapter(service primary.ProgressService, out io.Writer) *ProgressAdapter {
	return &ProgressAdapter{
		service: service,
		out:     out,
	}
}

// Status renders the full display state of a tracked copy. Completed items
// get a check mark, locked items a lock marker with their blocking
// prerequisites, and overdrawn consumers are highlighted.
func (a *ProgressAdapter) Status(ctx context.Context, trackedID string) (*primary.TrackedStatus, error) {
	status, err := a.service.Status(ctx, trackedID)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	problematic, err := a.service.ProblematicItems(ctx, trackedID)
	if err != nil {
		return nil, fmt.Errorf("failed to check problematic items: %w", err)
	}
	overdrawn := make(map[string]bool, len(problematic))
	for _, id := range problematic {
		overdrawn[id] = true
	}

	fmt.Fprintf(a.out, "\n%s (%s) - %s, %d%% complete\n\n", status.Title, status.TrackedID, status.Owner, status.Percent)

	for _, item := range status.Items {
		marker := "[ ]"
		if item.Completed {
			marker = color.New(color.FgGreen).Sprint("[x]")
		}

		line := fmt.Sprintf("%s %s  %s", marker, item.ItemID, item.Title)
		if item.Location != "" {
			line += fmt.Sprintf("  (%s)", item.Location)
		}
		if overdrawn[item.ItemID] {
			line += color.New(color.FgRed).Sprint("  [insufficient rewards]")
		}
		if !item.Unlocked && !item.Completed {
			line += color.New(color.FgYellow).Sprint("  [locked]")
		}
		fmt.Fprintln(a.out, line)

		for _, unmet := range item.Unmet {
			fmt.Fprintf(a.out, "      needs: %s\n", unmet.Description)
		}
	}
	fmt.Fprintln(a.out)

	return status, nil
}

// Toggle flips an item's completion and renders the cascade.
func (a *ProgressAdapter) Toggle(ctx context.Context, trackedID, itemID string) (*primary.ToggleResult, error) {
	result, err := a.service.ToggleProgress(ctx, trackedID, itemID)
	if err != nil {
		return nil, err
	}

	if result.Completed {
		fmt.Fprintf(a.out, "Completed %s\n", result.ItemID)
	} else {
		fmt.Fprintf(a.out, "Unchecked %s\n", result.ItemID)
	}
	for _, id := range result.UnlockedItems {
		fmt.Fprintf(a.out, "  %s %s\n", color.New(color.FgGreen).Sprint("unlocked:"), id)
	}
	for _, id := range result.LockedItems {
		fmt.Fprintf(a.out, "  %s %s\n", color.New(color.FgYellow).Sprint("locked:"), id)
	}

	return result, nil
}

// Rewards renders the available amount of every reward in the tracked copy.
func (a *ProgressAdapter) Rewards(ctx context.Context, trackedID string) ([]*primary.RewardAvailability, error) {
	rewards, err := a.service.AllAvailableRewards(ctx, trackedID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	if len(rewards) == 0 {
		fmt.Fprintln(a.out, "No rewards referenced by this checklist.")
		return rewards, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tREWARD\tAVAILABLE")
	fmt.Fprintln(w, "--\t------\t---------")
	for _, r := range rewards {
		fmt.Fprintf(w, "%s\t%s\t%d\n", r.RewardID, r.RewardName, r.Available)
	}
	w.Flush()

	return rewards, nil
}

// Tally renders collected/consumed/available for one reward.
func (a *ProgressAdapter) Tally(ctx context.Context, req primary.TallyRequest) (*primary.TallyResult, error) {
	result, err := a.service.Tally(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to tally reward: %w", err)
	}

	fmt.Fprintf(a.out, "\n%s (%s)\n", result.RewardName, result.RewardID)
	if req.Location != "" {
		fmt.Fprintf(a.out, "Location:  %s\n", req.Location)
	}
	if req.Category != "" {
		fmt.Fprintf(a.out, "Category:  %s\n", req.Category)
	}
	fmt.Fprintf(a.out, "Collected: %d\n", result.Collected)
	fmt.Fprintf(a.out, "Consumed:  %d\n", result.Consumed)
	fmt.Fprintf(a.out, "Available: %d\n", result.Available)
	fmt.Fprintln(a.out)

	return result, nil
}
