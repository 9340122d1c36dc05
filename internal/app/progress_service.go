package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/questlog/internal/core/checklist"
	"github.com/example/questlog/internal/core/progress"
	"github.com/example/questlog/internal/ports/primary"
	"github.com/example/questlog/internal/ports/secondary"
)

// ProgressServiceImpl implements the ProgressService interface.
type ProgressServiceImpl struct {
	trackedRepo   secondary.TrackedChecklistRepository
	checklistRepo secondary.ChecklistRepository
	itemRepo      secondary.ItemRepository
	prereqRepo    secondary.PrerequisiteRepository
	rewardRepo    secondary.RewardRepository
	progressRepo  secondary.ProgressRepository
	logWriter     secondary.LogWriter
}

// NewProgressService creates a new ProgressService with injected dependencies.
func NewProgressService(
	trackedRepo secondary.TrackedChecklistRepository,
	checklistRepo secondary.ChecklistRepository,
	itemRepo secondary.ItemRepository,
	prereqRepo secondary.PrerequisiteRepository,
	rewardRepo secondary.RewardRepository,
	progressRepo secondary.ProgressRepository,
	logWriter secondary.LogWriter,
) *ProgressServiceImpl {
	return &ProgressServiceImpl{
		trackedRepo:   trackedRepo,
		checklistRepo: checklistRepo,
		itemRepo:      itemRepo,
		prereqRepo:    prereqRepo,
		rewardRepo:    rewardRepo,
		progressRepo:  progressRepo,
		logWriter:     logWriter,
	}
}

func (s *ProgressServiceImpl) snapshot(ctx context.Context, trackedID string) (*secondary.TrackedRecord, *progress.Snapshot, error) {
	tracked, err := s.trackedRepo.GetByID(ctx, trackedID)
	if err != nil {
		return nil, nil, err
	}
	snap, err := loadSnapshot(ctx, tracked, s.itemRepo, s.prereqRepo, s.rewardRepo, s.progressRepo)
	if err != nil {
		return nil, nil, err
	}
	return tracked, snap, nil
}

// rewardNames maps reward id to display name for unmet descriptions.
func (s *ProgressServiceImpl) rewardNames(ctx context.Context) (map[string]string, error) {
	rewards, err := s.rewardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rewards: %w", err)
	}
	names := make(map[string]string, len(rewards))
	for _, r := range rewards {
		names[r.ID] = r.Name
	}
	return names, nil
}

// describeUnmet converts core prerequisites to caller-facing descriptions.
func describeUnmet(snap *progress.Snapshot, names map[string]string, unmet []progress.Prerequisite) []primary.UnmetPrerequisite {
	if len(unmet) == 0 {
		return nil
	}
	out := make([]primary.UnmetPrerequisite, 0, len(unmet))
	for _, p := range unmet {
		dto := primary.UnmetPrerequisite{ID: p.ID, Kind: string(p.Kind())}
		switch p.Kind() {
		case progress.KindItem:
			title := p.RequiredItemID
			if it, ok := snap.Item(p.RequiredItemID); ok {
				title = it.Title
			}
			dto.Description = fmt.Sprintf("requires %q", title)
		case progress.KindReward:
			name := names[p.RewardID]
			if name == "" {
				name = p.RewardID
			}
			desc := fmt.Sprintf("requires %d %s", p.RewardAmount, name)
			if p.LocationFilter != "" {
				desc += " from " + p.LocationFilter
			}
			if p.CategoryFilter != "" {
				desc += " (" + p.CategoryFilter + ")"
			}
			dto.Description = desc
		}
		out = append(out, dto)
	}
	return out
}

// Satisfied reports whether an item's prerequisites are met for a tracked copy.
func (s *ProgressServiceImpl) Satisfied(ctx context.Context, trackedID, itemID string, chained bool) (*primary.SatisfiedResult, error) {
	_, snap, err := s.snapshot(ctx, trackedID)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.Item(itemID); !ok {
		return nil, fmt.Errorf("item %s not found", itemID)
	}
	names, err := s.rewardNames(ctx)
	if err != nil {
		return nil, err
	}

	mode := progress.Shallow
	if chained {
		mode = progress.Chained
	}
	res := snap.Satisfied(itemID, mode)
	return &primary.SatisfiedResult{
		Satisfied: res.Satisfied,
		Unmet:     describeUnmet(snap, names, res.Unmet),
		Warnings:  res.Warnings,
	}, nil
}

// Status returns the full display state of a tracked copy.
func (s *ProgressServiceImpl) Status(ctx context.Context, trackedID string) (*primary.TrackedStatus, error) {
	tracked, snap, err := s.snapshot(ctx, trackedID)
	if err != nil {
		return nil, err
	}
	source, err := s.checklistRepo.GetByID(ctx, tracked.ChecklistID)
	if err != nil {
		return nil, err
	}
	names, err := s.rewardNames(ctx)
	if err != nil {
		return nil, err
	}

	status := &primary.TrackedStatus{
		TrackedID:   tracked.ID,
		ChecklistID: tracked.ChecklistID,
		Title:       source.Title,
		Owner:       tracked.Owner,
	}
	done := 0
	for _, id := range snap.ItemIDs() {
		it, _ := snap.Item(id)
		res := snap.Satisfied(id, progress.Chained)
		completed := snap.Completed(id)
		if completed {
			done++
		}
		status.Items = append(status.Items, primary.ItemStatus{
			ItemID:    id,
			Title:     it.Title,
			Location:  it.Location,
			Category:  it.Category,
			Completed: completed,
			Unlocked:  res.Satisfied,
			Unmet:     describeUnmet(snap, names, res.Unmet),
		})
	}
	if total := len(status.Items); total > 0 {
		status.Percent = done * 100 / total
	}
	return status, nil
}

// Tally computes collected, consumed, and available amounts for one reward.
func (s *ProgressServiceImpl) Tally(ctx context.Context, req primary.TallyRequest) (*primary.TallyResult, error) {
	_, snap, err := s.snapshot(ctx, req.TrackedID)
	if err != nil {
		return nil, err
	}
	reward, err := s.rewardRepo.GetByID(ctx, req.RewardID)
	if err != nil {
		return nil, err
	}

	mode := progress.Shallow
	if req.Chained {
		mode = progress.Chained
	}
	f := progress.Filter{Location: req.Location, Category: req.Category}
	return &primary.TallyResult{
		RewardID:   reward.ID,
		RewardName: reward.Name,
		Collected:  snap.Collected(req.RewardID, f, mode),
		Consumed:   snap.Consumed(req.RewardID, f),
		Available:  snap.Available(req.RewardID, f, mode),
	}, nil
}

// AllAvailableRewards returns the available amount of every reward referenced
// by the tracked checklist.
func (s *ProgressServiceImpl) AllAvailableRewards(ctx context.Context, trackedID string) ([]*primary.RewardAvailability, error) {
	_, snap, err := s.snapshot(ctx, trackedID)
	if err != nil {
		return nil, err
	}
	names, err := s.rewardNames(ctx)
	if err != nil {
		return nil, err
	}

	available := snap.AllAvailable(progress.Shallow)
	out := make([]*primary.RewardAvailability, 0, len(available))
	for _, id := range snap.RewardIDs() {
		out = append(out, &primary.RewardAvailability{
			RewardID:   id,
			RewardName: names[id],
			Available:  available[id],
		})
	}
	return out, nil
}

// ToggleProgress flips an item's completion flag and returns the cascade.
func (s *ProgressServiceImpl) ToggleProgress(ctx context.Context, trackedID, itemID string) (*primary.ToggleResult, error) {
	tracked, snap, err := s.snapshot(ctx, trackedID)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.Item(itemID); !ok {
		return nil, fmt.Errorf("item %s not found", itemID)
	}

	newCompleted := !snap.Completed(itemID)

	if newCompleted {
		res := snap.Satisfied(itemID, progress.Chained)
		names, err := s.rewardNames(ctx)
		if err != nil {
			return nil, err
		}
		unmet := describeUnmet(snap, names, res.Unmet)
		summaries := make([]string, len(unmet))
		for i, u := range unmet {
			summaries[i] = u.Description
		}
		guard := checklist.CanCompleteItem(checklist.CompleteItemContext{
			ItemID:           itemID,
			PrerequisitesMet: res.Satisfied,
			UnmetSummaries:   summaries,
		})
		if !guard.Allowed {
			return nil, &primary.PrerequisitesNotMetError{ItemID: itemID, Unmet: unmet}
		}
	}

	fx := snap.ToggleEffects(itemID, newCompleted)

	completedAt := ""
	if newCompleted {
		completedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := s.progressRepo.SetCompleted(ctx, trackedID, itemID, newCompleted, completedAt); err != nil {
		return nil, err
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogUpdate(ctx, "progress", tracked.ID, itemID,
			fmt.Sprintf("%t", !newCompleted), fmt.Sprintf("%t", newCompleted))
	}

	return &primary.ToggleResult{
		ItemID:        itemID,
		Completed:     newCompleted,
		UnlockedItems: fx.Unlocked,
		LockedItems:   fx.Locked,
	}, nil
}

// ProblematicItems lists completed consuming items whose reward pool is
// overdrawn.
func (s *ProgressServiceImpl) ProblematicItems(ctx context.Context, trackedID string) ([]string, error) {
	_, snap, err := s.snapshot(ctx, trackedID)
	if err != nil {
		return nil, err
	}
	return snap.ProblematicItems(), nil
}
