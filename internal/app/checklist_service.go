package app

import (
	"context"
	"fmt"

	"github.com/example/questlog/internal/core/checklist"
	"github.com/example/questlog/internal/ports/primary"
	"github.com/example/questlog/internal/ports/secondary"
)

// ChecklistServiceImpl implements the ChecklistService interface.
type ChecklistServiceImpl struct {
	gameRepo      secondary.GameRepository
	checklistRepo secondary.ChecklistRepository
	itemRepo      secondary.ItemRepository
	trackedRepo   secondary.TrackedChecklistRepository
	progressRepo  secondary.ProgressRepository
	logWriter     secondary.LogWriter
}

// NewChecklistService creates a new ChecklistService with injected dependencies.
func NewChecklistService(
	gameRepo secondary.GameRepository,
	checklistRepo secondary.ChecklistRepository,
	itemRepo secondary.ItemRepository,
	trackedRepo secondary.TrackedChecklistRepository,
	progressRepo secondary.ProgressRepository,
	logWriter secondary.LogWriter,
) *ChecklistServiceImpl {
	return &ChecklistServiceImpl{
		gameRepo:      gameRepo,
		checklistRepo: checklistRepo,
		itemRepo:      itemRepo,
		trackedRepo:   trackedRepo,
		progressRepo:  progressRepo,
		logWriter:     logWriter,
	}
}

// CreateGame registers a game, or returns the existing one by name.
func (s *ChecklistServiceImpl) CreateGame(ctx context.Context, name string) (*primary.Game, error) {
	if name == "" {
		return nil, fmt.Errorf("game name is required")
	}

	existing, err := s.gameRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &primary.Game{ID: existing.ID, Name: existing.Name}, nil
	}

	id, err := s.gameRepo.GetNextID(ctx)
	if err != nil {
		return nil, err
	}
	record := &secondary.GameRecord{ID: id, Name: name}
	if err := s.gameRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "game", id)
	}
	return &primary.Game{ID: id, Name: name}, nil
}

// ListGames lists all games.
func (s *ChecklistServiceImpl) ListGames(ctx context.Context) ([]*primary.Game, error) {
	records, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	games := make([]*primary.Game, 0, len(records))
	for _, r := range records {
		games = append(games, &primary.Game{ID: r.ID, Name: r.Name})
	}
	return games, nil
}

// CreateChecklist creates a checklist under a game.
func (s *ChecklistServiceImpl) CreateChecklist(ctx context.Context, req primary.CreateChecklistRequest) (*primary.Checklist, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("checklist title is required")
	}
	if _, err := s.gameRepo.GetByID(ctx, req.GameID); err != nil {
		return nil, err
	}

	id, err := s.checklistRepo.GetNextID(ctx)
	if err != nil {
		return nil, err
	}
	record := &secondary.ChecklistRecord{
		ID:          id,
		GameID:      req.GameID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.checklistRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "checklist", id)
	}

	created, err := s.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return checklistToDTO(created), nil
}

// GetChecklist retrieves a checklist with its items.
func (s *ChecklistServiceImpl) GetChecklist(ctx context.Context, checklistID string) (*primary.ChecklistDetail, error) {
	record, err := s.checklistRepo.GetByID(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByChecklist(ctx, checklistID)
	if err != nil {
		return nil, err
	}

	detail := &primary.ChecklistDetail{Checklist: *checklistToDTO(record)}
	for _, it := range items {
		detail.Items = append(detail.Items, itemToDTO(it))
	}
	return detail, nil
}

// ListChecklists lists checklists, optionally for one game.
func (s *ChecklistServiceImpl) ListChecklists(ctx context.Context, filters primary.ChecklistFilters) ([]*primary.Checklist, error) {
	records, err := s.checklistRepo.List(ctx, secondary.ChecklistFilters{GameID: filters.GameID, Limit: filters.Limit})
	if err != nil {
		return nil, err
	}
	checklists := make([]*primary.Checklist, 0, len(records))
	for _, r := range records {
		checklists = append(checklists, checklistToDTO(r))
	}
	return checklists, nil
}

// AddItem appends an item to a checklist. Position is assigned after the
// current last item, and every tracked copy gains a not-completed progress
// row so the new item shows up immediately.
func (s *ChecklistServiceImpl) AddItem(ctx context.Context, req primary.AddItemRequest) (*primary.ChecklistItem, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("item title is required")
	}
	if _, err := s.checklistRepo.GetByID(ctx, req.ChecklistID); err != nil {
		return nil, err
	}

	maxPos, err := s.itemRepo.MaxPosition(ctx, req.ChecklistID)
	if err != nil {
		return nil, err
	}
	id, err := s.itemRepo.GetNextID(ctx)
	if err != nil {
		return nil, err
	}
	record := &secondary.ItemRecord{
		ID:          id,
		ChecklistID: req.ChecklistID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Position:    maxPos + 1,
	}
	if err := s.itemRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "item", id)
	}

	// Back-fill progress rows for existing tracked copies.
	copies, err := s.trackedRepo.List(ctx, secondary.TrackedFilters{ChecklistID: req.ChecklistID})
	if err != nil {
		return nil, err
	}
	for _, tracked := range copies {
		progID, err := s.progressRepo.GetNextID(ctx)
		if err != nil {
			return nil, err
		}
		err = s.progressRepo.Create(ctx, &secondary.ProgressRecord{
			ID:        progID,
			TrackedID: tracked.ID,
			ItemID:    id,
		})
		if err != nil {
			return nil, err
		}
	}

	created, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return itemToDTO(created), nil
}

// UpdateItem updates an item's title, description, location, category.
// Empty request fields leave the stored value unchanged.
func (s *ChecklistServiceImpl) UpdateItem(ctx context.Context, req primary.UpdateItemRequest) (*primary.ChecklistItem, error) {
	record, err := s.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		record.Title = req.Title
	}
	if req.Description != "" {
		record.Description = req.Description
	}
	if req.Location != "" {
		record.Location = req.Location
	}
	if req.Category != "" {
		record.Category = req.Category
	}
	if err := s.itemRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	if s.logWriter != nil {
		_ = s.logWriter.LogUpdate(ctx, "item", record.ID, "fields", "", "")
	}

	updated, err := s.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	return itemToDTO(updated), nil
}

// RemoveItem deletes an item and its progress rows.
func (s *ChecklistServiceImpl) RemoveItem(ctx context.Context, itemID string) error {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return err
	}
	if err := s.progressRepo.DeleteByItem(ctx, itemID); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}
	if s.logWriter != nil {
		_ = s.logWriter.LogDelete(ctx, "item", itemID)
	}
	return nil
}

// Copy creates a tracked copy of a checklist for an owner.
func (s *ChecklistServiceImpl) Copy(ctx context.Context, checklistID, owner string) (*primary.Tracked, error) {
	if owner == "" {
		return nil, fmt.Errorf("owner is required")
	}

	exists, err := s.checklistRepo.Exists(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	existing, err := s.trackedRepo.List(ctx, secondary.TrackedFilters{Owner: owner, ChecklistID: checklistID})
	if err != nil {
		return nil, err
	}

	guard := checklist.CanCopyChecklist(checklist.CopyContext{
		ChecklistID:     checklistID,
		ChecklistExists: exists,
		Owner:           owner,
		AlreadyTracked:  len(existing) > 0,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	id, err := s.trackedRepo.GetNextID(ctx)
	if err != nil {
		return nil, err
	}
	record := &secondary.TrackedRecord{ID: id, ChecklistID: checklistID, Owner: owner}
	if err := s.trackedRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	// One not-completed progress row per item.
	items, err := s.itemRepo.ListByChecklist(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		progID, err := s.progressRepo.GetNextID(ctx)
		if err != nil {
			return nil, err
		}
		err = s.progressRepo.Create(ctx, &secondary.ProgressRecord{
			ID:        progID,
			TrackedID: id,
			ItemID:    item.ID,
		})
		if err != nil {
			return nil, err
		}
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "tracked", id)
	}

	created, err := s.trackedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return trackedToDTO(created), nil
}

// SyncTracked back-fills progress rows for items added to the source
// checklist after the copy was made.
func (s *ChecklistServiceImpl) SyncTracked(ctx context.Context, trackedID string) (int, error) {
	tracked, err := s.trackedRepo.GetByID(ctx, trackedID)
	if err != nil {
		return 0, err
	}
	items, err := s.itemRepo.ListByChecklist(ctx, tracked.ChecklistID)
	if err != nil {
		return 0, err
	}
	existing, err := s.progressRepo.MapByTracked(ctx, trackedID)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, item := range items {
		if _, ok := existing[item.ID]; ok {
			continue
		}
		progID, err := s.progressRepo.GetNextID(ctx)
		if err != nil {
			return added, err
		}
		err = s.progressRepo.Create(ctx, &secondary.ProgressRecord{
			ID:        progID,
			TrackedID: trackedID,
			ItemID:    item.ID,
		})
		if err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// ListTracked lists tracked copies, optionally for one owner.
func (s *ChecklistServiceImpl) ListTracked(ctx context.Context, owner string) ([]*primary.Tracked, error) {
	records, err := s.trackedRepo.List(ctx, secondary.TrackedFilters{Owner: owner})
	if err != nil {
		return nil, err
	}
	copies := make([]*primary.Tracked, 0, len(records))
	for _, r := range records {
		copies = append(copies, trackedToDTO(r))
	}
	return copies, nil
}

func checklistToDTO(r *secondary.ChecklistRecord) *primary.Checklist {
	return &primary.Checklist{
		ID:          r.ID,
		GameID:      r.GameID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

func itemToDTO(r *secondary.ItemRecord) *primary.ChecklistItem {
	return &primary.ChecklistItem{
		ID:          r.ID,
		ChecklistID: r.ChecklistID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Category:    r.Category,
		Position:    r.Position,
	}
}

func trackedToDTO(r *secondary.TrackedRecord) *primary.Tracked {
	return &primary.Tracked{
		ID:          r.ID,
		ChecklistID: r.ChecklistID,
		Owner:       r.Owner,
		CreatedAt:   r.CreatedAt,
	}
}
