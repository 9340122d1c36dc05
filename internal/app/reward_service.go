package app

import (
	"context"
	"fmt"

	"github.com/example/questlog/internal/core/checklist"
	"github.com/example/questlog/internal/core/progress"
	"github.com/example/questlog/internal/ports/primary"
	"github.com/example/questlog/internal/ports/secondary"
)

// RewardServiceImpl implements the RewardService interface.
type RewardServiceImpl struct {
	rewardRepo secondary.RewardRepository
	itemRepo   secondary.ItemRepository
	prereqRepo secondary.PrerequisiteRepository
	logWriter  secondary.LogWriter
}

// NewRewardService creates a new RewardService with injected dependencies.
func NewRewardService(
	rewardRepo secondary.RewardRepository,
	itemRepo secondary.ItemRepository,
	prereqRepo secondary.PrerequisiteRepository,
	logWriter secondary.LogWriter,
) *RewardServiceImpl {
	return &RewardServiceImpl{
		rewardRepo: rewardRepo,
		itemRepo:   itemRepo,
		prereqRepo: prereqRepo,
		logWriter:  logWriter,
	}
}

// CreateReward registers a reward, or returns the existing one by name.
func (s *RewardServiceImpl) CreateReward(ctx context.Context, name string) (*primary.Reward, error) {
	if name == "" {
		return nil, fmt.Errorf("reward name is required")
	}

	existing, err := s.rewardRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &primary.Reward{ID: existing.ID, Name: existing.Name}, nil
	}

	id, err := s.rewardRepo.GetNextID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.rewardRepo.Create(ctx, &secondary.RewardRecord{ID: id, Name: name}); err != nil {
		return nil, err
	}
	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "reward", id)
	}
	return &primary.Reward{ID: id, Name: name}, nil
}

// ListRewards lists the global reward catalog.
func (s *RewardServiceImpl) ListRewards(ctx context.Context) ([]*primary.Reward, error) {
	records, err := s.rewardRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rewards := make([]*primary.Reward, 0, len(records))
	for _, r := range records {
		rewards = append(rewards, &primary.Reward{ID: r.ID, Name: r.Name})
	}
	return rewards, nil
}

// itemExists reports whether an item exists without treating lookup
// failure as absence.
func (s *RewardServiceImpl) itemExists(ctx context.Context, itemID string) bool {
	if itemID == "" {
		return false
	}
	_, err := s.itemRepo.GetByID(ctx, itemID)
	return err == nil
}

func (s *RewardServiceImpl) rewardExists(ctx context.Context, rewardID string) bool {
	if rewardID == "" {
		return false
	}
	_, err := s.rewardRepo.GetByID(ctx, rewardID)
	return err == nil
}

// AttachGrant credits amount of a reward when the item completes.
func (s *RewardServiceImpl) AttachGrant(ctx context.Context, req primary.GrantRequest) (*primary.RewardGrant, error) {
	guard := checklist.CanAttachGrant(checklist.GrantContext{
		ItemID:       req.ItemID,
		ItemExists:   s.itemExists(ctx, req.ItemID),
		RewardID:     req.RewardID,
		RewardExists: s.rewardExists(ctx, req.RewardID),
		Amount:       req.Amount,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	id, err := s.rewardRepo.GetNextGrantID(ctx)
	if err != nil {
		return nil, err
	}
	record := &secondary.GrantRecord{
		ID:       id,
		ItemID:   req.ItemID,
		RewardID: req.RewardID,
		Amount:   req.Amount,
	}
	if err := s.rewardRepo.CreateGrant(ctx, record); err != nil {
		return nil, err
	}
	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "grant", id)
	}
	return &primary.RewardGrant{ID: id, ItemID: req.ItemID, RewardID: req.RewardID, Amount: req.Amount}, nil
}

// ListGrants lists every grant within a checklist.
func (s *RewardServiceImpl) ListGrants(ctx context.Context, checklistID string) ([]*primary.RewardGrant, error) {
	records, err := s.rewardRepo.ListGrantsByChecklist(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	grants := make([]*primary.RewardGrant, 0, len(records))
	for _, r := range records {
		grants = append(grants, &primary.RewardGrant{
			ID:       r.ID,
			ItemID:   r.ItemID,
			RewardID: r.RewardID,
			Amount:   r.Amount,
		})
	}
	return grants, nil
}

// AddItemPrerequisite gates an item on another item's completion.
func (s *RewardServiceImpl) AddItemPrerequisite(ctx context.Context, itemID, requiredItemID string) (*primary.PrerequisiteInfo, error) {
	guard := checklist.CanAddPrerequisite(checklist.PrerequisiteContext{
		ItemID:             itemID,
		ItemExists:         s.itemExists(ctx, itemID),
		RequiredItemID:     requiredItemID,
		RequiredItemExists: s.itemExists(ctx, requiredItemID),
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	return s.createPrereq(ctx, &secondary.PrerequisiteRecord{
		ItemID:         itemID,
		RequiredItemID: requiredItemID,
	})
}

// AddRewardPrerequisite gates an item on a reward threshold.
func (s *RewardServiceImpl) AddRewardPrerequisite(ctx context.Context, req primary.RewardPrereqRequest) (*primary.PrerequisiteInfo, error) {
	guard := checklist.CanAddPrerequisite(checklist.PrerequisiteContext{
		ItemID:       req.ItemID,
		ItemExists:   s.itemExists(ctx, req.ItemID),
		RewardID:     req.RewardID,
		RewardExists: s.rewardExists(ctx, req.RewardID),
		RewardAmount: req.Amount,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	return s.createPrereq(ctx, &secondary.PrerequisiteRecord{
		ItemID:         req.ItemID,
		RewardID:       req.RewardID,
		RewardAmount:   req.Amount,
		ConsumesReward: req.Consumes,
		RewardLocation: req.Location,
		RewardCategory: req.Category,
	})
}

// AddFreeformPrerequisite attaches an informational note that never blocks
// completion.
func (s *RewardServiceImpl) AddFreeformPrerequisite(ctx context.Context, itemID, text string) (*primary.PrerequisiteInfo, error) {
	guard := checklist.CanAddPrerequisite(checklist.PrerequisiteContext{
		ItemID:       itemID,
		ItemExists:   s.itemExists(ctx, itemID),
		FreeformText: text,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	return s.createPrereq(ctx, &secondary.PrerequisiteRecord{
		ItemID:       itemID,
		FreeformText: text,
	})
}

func (s *RewardServiceImpl) createPrereq(ctx context.Context, record *secondary.PrerequisiteRecord) (*primary.PrerequisiteInfo, error) {
	id, err := s.prereqRepo.GetNextID(ctx)
	if err != nil {
		return nil, err
	}
	record.ID = id
	if err := s.prereqRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "prerequisite", id)
	}
	return prereqToDTO(record), nil
}

// ListPrerequisites lists the prerequisites gating one item.
func (s *RewardServiceImpl) ListPrerequisites(ctx context.Context, itemID string) ([]*primary.PrerequisiteInfo, error) {
	records, err := s.prereqRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	prereqs := make([]*primary.PrerequisiteInfo, 0, len(records))
	for _, r := range records {
		prereqs = append(prereqs, prereqToDTO(r))
	}
	return prereqs, nil
}

// RemovePrerequisite deletes a prerequisite.
func (s *RewardServiceImpl) RemovePrerequisite(ctx context.Context, prereqID string) error {
	if err := s.prereqRepo.Delete(ctx, prereqID); err != nil {
		return err
	}
	if s.logWriter != nil {
		_ = s.logWriter.LogDelete(ctx, "prerequisite", prereqID)
	}
	return nil
}

func prereqToDTO(r *secondary.PrerequisiteRecord) *primary.PrerequisiteInfo {
	kind := progress.Prerequisite{
		RequiredItemID: r.RequiredItemID,
		RewardID:       r.RewardID,
		FreeformText:   r.FreeformText,
	}.Kind()
	return &primary.PrerequisiteInfo{
		ID:             r.ID,
		ItemID:         r.ItemID,
		Kind:           string(kind),
		RequiredItemID: r.RequiredItemID,
		RewardID:       r.RewardID,
		RewardAmount:   r.RewardAmount,
		ConsumesReward: r.ConsumesReward,
		RewardLocation: r.RewardLocation,
		RewardCategory: r.RewardCategory,
		FreeformText:   r.FreeformText,
	}
}
