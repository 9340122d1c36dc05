package app

import (
	"context"
	"fmt"

	"github.com/example/questlog/internal/core/progress"
	"github.com/example/questlog/internal/ports/secondary"
)

// loadSnapshot assembles one consistent resolver view of a tracked copy:
// the source checklist's items, prerequisites, and grants plus this copy's
// completion flags.
func loadSnapshot(
	ctx context.Context,
	tracked *secondary.TrackedRecord,
	itemRepo secondary.ItemRepository,
	prereqRepo secondary.PrerequisiteRepository,
	rewardRepo secondary.RewardRepository,
	progressRepo secondary.ProgressRepository,
) (*progress.Snapshot, error) {
	itemRecords, err := itemRepo.ListByChecklist(ctx, tracked.ChecklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	prereqRecords, err := prereqRepo.ListByChecklist(ctx, tracked.ChecklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prerequisites: %w", err)
	}
	grantRecords, err := rewardRepo.ListGrantsByChecklist(ctx, tracked.ChecklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load grants: %w", err)
	}
	completed, err := progressRepo.MapByTracked(ctx, tracked.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	items := make([]progress.Item, 0, len(itemRecords))
	for _, r := range itemRecords {
		items = append(items, progress.Item{
			ID:       r.ID,
			Title:    r.Title,
			Location: r.Location,
			Category: r.Category,
			Position: r.Position,
		})
	}

	prereqs := make([]progress.Prerequisite, 0, len(prereqRecords))
	for _, r := range prereqRecords {
		prereqs = append(prereqs, progress.Prerequisite{
			ID:             r.ID,
			ItemID:         r.ItemID,
			RequiredItemID: r.RequiredItemID,
			RewardID:       r.RewardID,
			RewardAmount:   r.RewardAmount,
			Consumes:       r.ConsumesReward,
			LocationFilter: r.RewardLocation,
			CategoryFilter: r.RewardCategory,
			FreeformText:   r.FreeformText,
		})
	}

	grants := make([]progress.Grant, 0, len(grantRecords))
	for _, r := range grantRecords {
		grants = append(grants, progress.Grant{
			ID:       r.ID,
			ItemID:   r.ItemID,
			RewardID: r.RewardID,
			Amount:   r.Amount,
		})
	}

	return progress.NewSnapshot(items, prereqs, grants, completed), nil
}
