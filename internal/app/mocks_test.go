package app

// ============================================================================
// Mock Implementations
// ============================================================================
//
// In-memory repository fakes shared by the service tests. Each mock keeps
// records in a map and supports targeted error injection via the *Err fields.

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/questlog/internal/ports/secondary"
)

// mockGameRepository implements secondary.GameRepository for testing.
type mockGameRepository struct {
	games     map[string]*secondary.GameRecord
	createErr error
}

func newMockGameRepository() *mockGameRepository {
	return &mockGameRepository{games: make(map[string]*secondary.GameRecord)}
}

func (m *mockGameRepository) Create(ctx context.Context, game *secondary.GameRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.games[game.ID] = game
	return nil
}

func (m *mockGameRepository) GetByID(ctx context.Context, id string) (*secondary.GameRecord, error) {
	if game, ok := m.games[id]; ok {
		return game, nil
	}
	return nil, fmt.Errorf("game %s not found", id)
}

func (m *mockGameRepository) GetByName(ctx context.Context, name string) (*secondary.GameRecord, error) {
	for _, game := range m.games {
		if game.Name == name {
			return game, nil
		}
	}
	return nil, nil
}

func (m *mockGameRepository) List(ctx context.Context) ([]*secondary.GameRecord, error) {
	return sortedValues(m.games), nil
}

func (m *mockGameRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("GAME-%03d", len(m.games)+1), nil
}

// mockChecklistRepository implements secondary.ChecklistRepository for testing.
type mockChecklistRepository struct {
	checklists map[string]*secondary.ChecklistRecord
}

func newMockChecklistRepository() *mockChecklistRepository {
	return &mockChecklistRepository{checklists: make(map[string]*secondary.ChecklistRecord)}
}

func (m *mockChecklistRepository) Create(ctx context.Context, checklist *secondary.ChecklistRecord) error {
	m.checklists[checklist.ID] = checklist
	return nil
}

func (m *mockChecklistRepository) GetByID(ctx context.Context, id string) (*secondary.ChecklistRecord, error) {
	if checklist, ok := m.checklists[id]; ok {
		return checklist, nil
	}
	return nil, fmt.Errorf("checklist %s not found", id)
}

func (m *mockChecklistRepository) List(ctx context.Context, filters secondary.ChecklistFilters) ([]*secondary.ChecklistRecord, error) {
	var result []*secondary.ChecklistRecord
	for _, c := range sortedValues(m.checklists) {
		if filters.GameID != "" && c.GameID != filters.GameID {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (m *mockChecklistRepository) Update(ctx context.Context, checklist *secondary.ChecklistRecord) error {
	if _, ok := m.checklists[checklist.ID]; !ok {
		return fmt.Errorf("checklist %s not found", checklist.ID)
	}
	m.checklists[checklist.ID] = checklist
	return nil
}

func (m *mockChecklistRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.checklists[id]; !ok {
		return fmt.Errorf("checklist %s not found", id)
	}
	delete(m.checklists, id)
	return nil
}

func (m *mockChecklistRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.checklists[id]
	return ok, nil
}

func (m *mockChecklistRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("CHK-%03d", len(m.checklists)+1), nil
}

// mockItemRepository implements secondary.ItemRepository for testing.
type mockItemRepository struct {
	items map[string]*secondary.ItemRecord
}

func newMockItemRepository() *mockItemRepository {
	return &mockItemRepository{items: make(map[string]*secondary.ItemRecord)}
}

func (m *mockItemRepository) Create(ctx context.Context, item *secondary.ItemRecord) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, id string) (*secondary.ItemRecord, error) {
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, fmt.Errorf("item %s not found", id)
}

func (m *mockItemRepository) ListByChecklist(ctx context.Context, checklistID string) ([]*secondary.ItemRecord, error) {
	var result []*secondary.ItemRecord
	for _, item := range m.items {
		if item.ChecklistID == checklistID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

func (m *mockItemRepository) Update(ctx context.Context, item *secondary.ItemRecord) error {
	if _, ok := m.items[item.ID]; !ok {
		return fmt.Errorf("item %s not found", item.ID)
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockItemRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("item %s not found", id)
	}
	delete(m.items, id)
	return nil
}

func (m *mockItemRepository) MaxPosition(ctx context.Context, checklistID string) (int, error) {
	max := 0
	for _, item := range m.items {
		if item.ChecklistID == checklistID && item.Position > max {
			max = item.Position
		}
	}
	return max, nil
}

func (m *mockItemRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("ITEM-%03d", len(m.items)+1), nil
}

// mockRewardRepository implements secondary.RewardRepository for testing.
type mockRewardRepository struct {
	rewards map[string]*secondary.RewardRecord
	grants  map[string]*secondary.GrantRecord
	// checklistOf resolves an item's checklist for ListGrantsByChecklist.
	checklistOf map[string]string
}

func newMockRewardRepository() *mockRewardRepository {
	return &mockRewardRepository{
		rewards:     make(map[string]*secondary.RewardRecord),
		grants:      make(map[string]*secondary.GrantRecord),
		checklistOf: make(map[string]string),
	}
}

func (m *mockRewardRepository) Create(ctx context.Context, reward *secondary.RewardRecord) error {
	m.rewards[reward.ID] = reward
	return nil
}

func (m *mockRewardRepository) GetByID(ctx context.Context, id string) (*secondary.RewardRecord, error) {
	if reward, ok := m.rewards[id]; ok {
		return reward, nil
	}
	return nil, fmt.Errorf("reward %s not found", id)
}

func (m *mockRewardRepository) GetByName(ctx context.Context, name string) (*secondary.RewardRecord, error) {
	for _, reward := range m.rewards {
		if reward.Name == name {
			return reward, nil
		}
	}
	return nil, nil
}

func (m *mockRewardRepository) List(ctx context.Context) ([]*secondary.RewardRecord, error) {
	return sortedValues(m.rewards), nil
}

func (m *mockRewardRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("RWD-%03d", len(m.rewards)+1), nil
}

func (m *mockRewardRepository) CreateGrant(ctx context.Context, grant *secondary.GrantRecord) error {
	m.grants[grant.ID] = grant
	return nil
}

func (m *mockRewardRepository) ListGrantsByItem(ctx context.Context, itemID string) ([]*secondary.GrantRecord, error) {
	var result []*secondary.GrantRecord
	for _, grant := range sortedValues(m.grants) {
		if grant.ItemID == itemID {
			result = append(result, grant)
		}
	}
	return result, nil
}

func (m *mockRewardRepository) ListGrantsByChecklist(ctx context.Context, checklistID string) ([]*secondary.GrantRecord, error) {
	var result []*secondary.GrantRecord
	for _, grant := range sortedValues(m.grants) {
		if m.checklistOf[grant.ItemID] == checklistID {
			result = append(result, grant)
		}
	}
	return result, nil
}

func (m *mockRewardRepository) DeleteGrant(ctx context.Context, id string) error {
	if _, ok := m.grants[id]; !ok {
		return fmt.Errorf("grant %s not found", id)
	}
	delete(m.grants, id)
	return nil
}

func (m *mockRewardRepository) GetNextGrantID(ctx context.Context) (string, error) {
	return fmt.Sprintf("GRANT-%03d", len(m.grants)+1), nil
}

// mockPrereqRepository implements secondary.PrerequisiteRepository for testing.
type mockPrereqRepository struct {
	prereqs     map[string]*secondary.PrerequisiteRecord
	checklistOf map[string]string
}

func newMockPrereqRepository() *mockPrereqRepository {
	return &mockPrereqRepository{
		prereqs:     make(map[string]*secondary.PrerequisiteRecord),
		checklistOf: make(map[string]string),
	}
}

func (m *mockPrereqRepository) Create(ctx context.Context, prereq *secondary.PrerequisiteRecord) error {
	m.prereqs[prereq.ID] = prereq
	return nil
}

func (m *mockPrereqRepository) GetByID(ctx context.Context, id string) (*secondary.PrerequisiteRecord, error) {
	if prereq, ok := m.prereqs[id]; ok {
		return prereq, nil
	}
	return nil, fmt.Errorf("prerequisite %s not found", id)
}

func (m *mockPrereqRepository) ListByItem(ctx context.Context, itemID string) ([]*secondary.PrerequisiteRecord, error) {
	var result []*secondary.PrerequisiteRecord
	for _, prereq := range sortedValues(m.prereqs) {
		if prereq.ItemID == itemID {
			result = append(result, prereq)
		}
	}
	return result, nil
}

func (m *mockPrereqRepository) ListByChecklist(ctx context.Context, checklistID string) ([]*secondary.PrerequisiteRecord, error) {
	var result []*secondary.PrerequisiteRecord
	for _, prereq := range sortedValues(m.prereqs) {
		if m.checklistOf[prereq.ItemID] == checklistID {
			result = append(result, prereq)
		}
	}
	return result, nil
}

func (m *mockPrereqRepository) ListDependentsOnItem(ctx context.Context, requiredItemID string) ([]string, error) {
	var ids []string
	for _, prereq := range sortedValues(m.prereqs) {
		if prereq.RequiredItemID == requiredItemID {
			ids = append(ids, prereq.ItemID)
		}
	}
	return ids, nil
}

func (m *mockPrereqRepository) ListDependentsOnReward(ctx context.Context, rewardID string) ([]string, error) {
	var ids []string
	for _, prereq := range sortedValues(m.prereqs) {
		if prereq.RewardID == rewardID {
			ids = append(ids, prereq.ItemID)
		}
	}
	return ids, nil
}

func (m *mockPrereqRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.prereqs[id]; !ok {
		return fmt.Errorf("prerequisite %s not found", id)
	}
	delete(m.prereqs, id)
	return nil
}

func (m *mockPrereqRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("PRQ-%03d", len(m.prereqs)+1), nil
}

// mockTrackedRepository implements secondary.TrackedChecklistRepository for testing.
type mockTrackedRepository struct {
	tracked map[string]*secondary.TrackedRecord
}

func newMockTrackedRepository() *mockTrackedRepository {
	return &mockTrackedRepository{tracked: make(map[string]*secondary.TrackedRecord)}
}

func (m *mockTrackedRepository) Create(ctx context.Context, tracked *secondary.TrackedRecord) error {
	m.tracked[tracked.ID] = tracked
	return nil
}

func (m *mockTrackedRepository) GetByID(ctx context.Context, id string) (*secondary.TrackedRecord, error) {
	if tracked, ok := m.tracked[id]; ok {
		return tracked, nil
	}
	return nil, fmt.Errorf("tracked checklist %s not found", id)
}

func (m *mockTrackedRepository) List(ctx context.Context, filters secondary.TrackedFilters) ([]*secondary.TrackedRecord, error) {
	var result []*secondary.TrackedRecord
	for _, tracked := range sortedValues(m.tracked) {
		if filters.Owner != "" && tracked.Owner != filters.Owner {
			continue
		}
		if filters.ChecklistID != "" && tracked.ChecklistID != filters.ChecklistID {
			continue
		}
		result = append(result, tracked)
	}
	return result, nil
}

func (m *mockTrackedRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.tracked[id]; !ok {
		return fmt.Errorf("tracked checklist %s not found", id)
	}
	delete(m.tracked, id)
	return nil
}

func (m *mockTrackedRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("TRK-%03d", len(m.tracked)+1), nil
}

// mockProgressRepository implements secondary.ProgressRepository for testing.
type mockProgressRepository struct {
	rows   map[string]*secondary.ProgressRecord // trackedID/itemID -> row
	setErr error
}

func newMockProgressRepository() *mockProgressRepository {
	return &mockProgressRepository{rows: make(map[string]*secondary.ProgressRecord)}
}

func progressKey(trackedID, itemID string) string {
	return trackedID + "/" + itemID
}

func (m *mockProgressRepository) Create(ctx context.Context, progress *secondary.ProgressRecord) error {
	m.rows[progressKey(progress.TrackedID, progress.ItemID)] = progress
	return nil
}

func (m *mockProgressRepository) Get(ctx context.Context, trackedID, itemID string) (*secondary.ProgressRecord, error) {
	if row, ok := m.rows[progressKey(trackedID, itemID)]; ok {
		return row, nil
	}
	return nil, nil
}

func (m *mockProgressRepository) MapByTracked(ctx context.Context, trackedID string) (map[string]bool, error) {
	progress := make(map[string]bool)
	for _, row := range m.rows {
		if row.TrackedID == trackedID {
			progress[row.ItemID] = row.Completed
		}
	}
	return progress, nil
}

func (m *mockProgressRepository) SetCompleted(ctx context.Context, trackedID, itemID string, completed bool, completedAt string) error {
	if m.setErr != nil {
		return m.setErr
	}
	key := progressKey(trackedID, itemID)
	row, ok := m.rows[key]
	if !ok {
		row = &secondary.ProgressRecord{
			ID:        fmt.Sprintf("PROG-%03d", len(m.rows)+1),
			TrackedID: trackedID,
			ItemID:    itemID,
		}
		m.rows[key] = row
	}
	row.Completed = completed
	row.CompletedAt = completedAt
	return nil
}

func (m *mockProgressRepository) DeleteByItem(ctx context.Context, itemID string) error {
	for key, row := range m.rows {
		if row.ItemID == itemID {
			delete(m.rows, key)
		}
	}
	return nil
}

func (m *mockProgressRepository) DeleteByTracked(ctx context.Context, trackedID string) error {
	for key, row := range m.rows {
		if row.TrackedID == trackedID {
			delete(m.rows, key)
		}
	}
	return nil
}

func (m *mockProgressRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("PROG-%03d", len(m.rows)+1), nil
}

// loggedChange captures one mockLogWriter call.
type loggedChange struct {
	action     string
	entityType string
	entityID   string
	fieldName  string
	oldValue   string
	newValue   string
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	entries []loggedChange
	err     error
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, loggedChange{action: "create", entityType: entityType, entityID: entityID})
	return nil
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, loggedChange{
		action: "update", entityType: entityType, entityID: entityID,
		fieldName: fieldName, oldValue: oldValue, newValue: newValue,
	})
	return nil
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType, entityID string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, loggedChange{action: "delete", entityType: entityType, entityID: entityID})
	return nil
}

// sortedValues returns map values ordered by key for deterministic lists.
func sortedValues[V any](m map[string]V) []V {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

var errInjected = errors.New("injected failure")
