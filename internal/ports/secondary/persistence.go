// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems, primarily persistence.
package secondary

import "context"

// GameRepository defines the secondary port for game catalog persistence.
type GameRepository interface {
	// Create persists a new game.
	Create(ctx context.Context, game *GameRecord) error

	// GetByID retrieves a game by its ID.
	GetByID(ctx context.Context, id string) (*GameRecord, error)

	// GetByName retrieves a game by its unique name, or nil if absent.
	GetByName(ctx context.Context, name string) (*GameRecord, error)

	// List retrieves all games.
	List(ctx context.Context) ([]*GameRecord, error)

	// GetNextID returns the next available game ID.
	GetNextID(ctx context.Context) (string, error)
}

// GameRecord represents a game as stored in persistence.
type GameRecord struct {
	ID        string
	Name      string
	CreatedAt string
}

// ChecklistRepository defines the secondary port for checklist persistence.
type ChecklistRepository interface {
	// Create persists a new checklist.
	Create(ctx context.Context, checklist *ChecklistRecord) error

	// GetByID retrieves a checklist by its ID.
	GetByID(ctx context.Context, id string) (*ChecklistRecord, error)

	// List retrieves checklists matching the given filters.
	List(ctx context.Context, filters ChecklistFilters) ([]*ChecklistRecord, error)

	// Update updates title and description of a checklist.
	Update(ctx context.Context, checklist *ChecklistRecord) error

	// Delete removes a checklist and its dependents.
	Delete(ctx context.Context, id string) error

	// Exists checks whether a checklist exists.
	Exists(ctx context.Context, id string) (bool, error)

	// GetNextID returns the next available checklist ID.
	GetNextID(ctx context.Context) (string, error)
}

// ChecklistRecord represents a checklist as stored in persistence.
type ChecklistRecord struct {
	ID          string
	GameID      string
	Title       string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// ChecklistFilters contains filter options for querying checklists.
type ChecklistFilters struct {
	GameID string
	Limit  int
}

// ItemRepository defines the secondary port for checklist item persistence.
type ItemRepository interface {
	// Create persists a new item.
	Create(ctx context.Context, item *ItemRecord) error

	// GetByID retrieves an item by its ID.
	GetByID(ctx context.Context, id string) (*ItemRecord, error)

	// ListByChecklist retrieves a checklist's items in position order.
	ListByChecklist(ctx context.Context, checklistID string) ([]*ItemRecord, error)

	// Update updates an item's title, description, location, and category.
	Update(ctx context.Context, item *ItemRecord) error

	// Delete removes an item; progress rows referencing it are removed too.
	Delete(ctx context.Context, id string) error

	// MaxPosition returns the highest position within a checklist, 0 if empty.
	MaxPosition(ctx context.Context, checklistID string) (int, error)

	// GetNextID returns the next available item ID.
	GetNextID(ctx context.Context) (string, error)
}

// ItemRecord represents a checklist item as stored in persistence.
type ItemRecord struct {
	ID          string
	ChecklistID string
	Title       string
	Description string
	Location    string
	Category    string
	Position    int
	CreatedAt   string
}

// RewardRepository defines the secondary port for the reward catalog and
// reward grants.
type RewardRepository interface {
	// Create persists a new reward.
	Create(ctx context.Context, reward *RewardRecord) error

	// GetByID retrieves a reward by its ID.
	GetByID(ctx context.Context, id string) (*RewardRecord, error)

	// GetByName retrieves a reward by its unique name, or nil if absent.
	GetByName(ctx context.Context, name string) (*RewardRecord, error)

	// List retrieves all rewards.
	List(ctx context.Context) ([]*RewardRecord, error)

	// GetNextID returns the next available reward ID.
	GetNextID(ctx context.Context) (string, error)

	// CreateGrant persists an (item, reward, amount) grant.
	CreateGrant(ctx context.Context, grant *GrantRecord) error

	// ListGrantsByItem retrieves the grants credited by one item.
	ListGrantsByItem(ctx context.Context, itemID string) ([]*GrantRecord, error)

	// ListGrantsByChecklist retrieves every grant within a checklist.
	ListGrantsByChecklist(ctx context.Context, checklistID string) ([]*GrantRecord, error)

	// DeleteGrant removes a grant.
	DeleteGrant(ctx context.Context, id string) error

	// GetNextGrantID returns the next available grant ID.
	GetNextGrantID(ctx context.Context) (string, error)
}

// RewardRecord represents a reward as stored in persistence. The catalog is
// global, not scoped per checklist.
type RewardRecord struct {
	ID   string
	Name string
}

// GrantRecord represents a reward grant as stored in persistence.
type GrantRecord struct {
	ID       string
	ItemID   string
	RewardID string
	Amount   int
}

// PrerequisiteRepository defines the secondary port for item prerequisites.
type PrerequisiteRepository interface {
	// Create persists a new prerequisite.
	Create(ctx context.Context, prereq *PrerequisiteRecord) error

	// GetByID retrieves a prerequisite by its ID.
	GetByID(ctx context.Context, id string) (*PrerequisiteRecord, error)

	// ListByItem retrieves the prerequisites gating one item.
	ListByItem(ctx context.Context, itemID string) ([]*PrerequisiteRecord, error)

	// ListByChecklist retrieves every prerequisite within a checklist.
	ListByChecklist(ctx context.Context, checklistID string) ([]*PrerequisiteRecord, error)

	// ListDependentsOnItem returns ids of items declaring an item
	// prerequisite on the given item.
	ListDependentsOnItem(ctx context.Context, requiredItemID string) ([]string, error)

	// ListDependentsOnReward returns ids of items declaring a reward
	// prerequisite on the given reward.
	ListDependentsOnReward(ctx context.Context, rewardID string) ([]string, error)

	// Delete removes a prerequisite.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available prerequisite ID.
	GetNextID(ctx context.Context) (string, error)
}

// PrerequisiteRecord represents a prerequisite as stored in persistence.
// Exactly one variant should be populated; rows violating that are tolerated
// at read time and resolved as always satisfied.
type PrerequisiteRecord struct {
	ID     string
	ItemID string

	RequiredItemID string

	RewardID       string
	RewardAmount   int
	ConsumesReward bool
	RewardLocation string
	RewardCategory string

	FreeformText string
}

// TrackedChecklistRepository defines the secondary port for tracked copies.
type TrackedChecklistRepository interface {
	// Create persists a new tracked copy.
	Create(ctx context.Context, tracked *TrackedRecord) error

	// GetByID retrieves a tracked copy by its ID.
	GetByID(ctx context.Context, id string) (*TrackedRecord, error)

	// List retrieves tracked copies matching the given filters.
	List(ctx context.Context, filters TrackedFilters) ([]*TrackedRecord, error)

	// Delete removes a tracked copy and its progress rows.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available tracked-copy ID.
	GetNextID(ctx context.Context) (string, error)
}

// TrackedRecord represents one owner's copy of a checklist.
type TrackedRecord struct {
	ID          string
	ChecklistID string
	Owner       string
	CreatedAt   string
}

// TrackedFilters contains filter options for querying tracked copies.
type TrackedFilters struct {
	Owner       string
	ChecklistID string
}

// ProgressRepository defines the secondary port for per-item completion
// state of a tracked copy.
type ProgressRepository interface {
	// Create persists a new progress row (back-fill, not completed).
	Create(ctx context.Context, progress *ProgressRecord) error

	// Get retrieves the progress row for (tracked, item), or nil if absent.
	// A missing row means the item is not completed; it is never an error.
	Get(ctx context.Context, trackedID, itemID string) (*ProgressRecord, error)

	// MapByTracked returns item id -> completed for one tracked copy.
	MapByTracked(ctx context.Context, trackedID string) (map[string]bool, error)

	// SetCompleted upserts the completion flag and timestamp for
	// (tracked, item). completedAt is empty when completed is false.
	SetCompleted(ctx context.Context, trackedID, itemID string, completed bool, completedAt string) error

	// DeleteByItem removes all progress rows for an item.
	DeleteByItem(ctx context.Context, itemID string) error

	// DeleteByTracked removes all progress rows for a tracked copy.
	DeleteByTracked(ctx context.Context, trackedID string) error

	// GetNextID returns the next available progress ID.
	GetNextID(ctx context.Context) (string, error)
}

// ProgressRecord represents one (tracked copy, item) completion row.
type ProgressRecord struct {
	ID          string
	TrackedID   string
	ItemID      string
	Completed   bool
	CompletedAt string
}

// ActivityLogRepository defines the secondary port for audit log entries.
type ActivityLogRepository interface {
	// Create persists a new log entry.
	Create(ctx context.Context, entry *ActivityLogRecord) error

	// ListByEntity retrieves log entries for one entity, newest first.
	ListByEntity(ctx context.Context, entityType, entityID string) ([]*ActivityLogRecord, error)

	// GetNextID returns the next available log ID.
	GetNextID(ctx context.Context) (string, error)
}

// ActivityLogRecord represents an audit log entry.
type ActivityLogRecord struct {
	ID         string
	Actor      string
	EntityType string
	EntityID   string
	Action     string
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}
