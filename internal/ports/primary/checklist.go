package primary

import "context"

// ChecklistService defines the primary port for checklist and item CRUD and
// for tracked-copy management.
type ChecklistService interface {
	// CreateGame registers a game, or returns the existing one by name.
	CreateGame(ctx context.Context, name string) (*Game, error)

	// ListGames lists all games.
	ListGames(ctx context.Context) ([]*Game, error)

	// CreateChecklist creates a checklist under a game.
	CreateChecklist(ctx context.Context, req CreateChecklistRequest) (*Checklist, error)

	// GetChecklist retrieves a checklist with its items.
	GetChecklist(ctx context.Context, checklistID string) (*ChecklistDetail, error)

	// ListChecklists lists checklists, optionally for one game.
	ListChecklists(ctx context.Context, filters ChecklistFilters) ([]*Checklist, error)

	// AddItem appends an item to a checklist; position is assigned
	// automatically. Progress rows of existing tracked copies are
	// back-filled as not completed.
	AddItem(ctx context.Context, req AddItemRequest) (*ChecklistItem, error)

	// UpdateItem updates an item's title, description, location, category.
	UpdateItem(ctx context.Context, req UpdateItemRequest) (*ChecklistItem, error)

	// RemoveItem deletes an item and its progress rows.
	RemoveItem(ctx context.Context, itemID string) error

	// Copy creates a tracked copy of a checklist for an owner, back-filling
	// one not-completed progress row per item. An owner can hold at most
	// one copy of a given checklist.
	Copy(ctx context.Context, checklistID, owner string) (*Tracked, error)

	// SyncTracked back-fills progress rows for items added to the source
	// checklist after the copy was made. Returns the number added.
	SyncTracked(ctx context.Context, trackedID string) (int, error)

	// ListTracked lists tracked copies, optionally for one owner.
	ListTracked(ctx context.Context, owner string) ([]*Tracked, error)
}

// Game is a game catalog entry.
type Game struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Checklist is a checklist summary.
type Checklist struct {
	ID          string `json:"id"`
	GameID      string `json:"game_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ChecklistItem is one entry of a checklist.
type ChecklistItem struct {
	ID          string `json:"id"`
	ChecklistID string `json:"checklist_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category,omitempty"`
	Position    int    `json:"position"`
}

// ChecklistDetail is a checklist with its items.
type ChecklistDetail struct {
	Checklist
	Items []*ChecklistItem `json:"items"`
}

// Tracked is one owner's copy of a checklist.
type Tracked struct {
	ID          string `json:"id"`
	ChecklistID string `json:"checklist_id"`
	Owner       string `json:"owner"`
	CreatedAt   string `json:"created_at"`
}

// ChecklistFilters contains filter options for listing checklists.
type ChecklistFilters struct {
	GameID string
	Limit  int
}

// CreateChecklistRequest carries checklist creation parameters.
type CreateChecklistRequest struct {
	GameID      string
	Title       string
	Description string
}

// AddItemRequest carries item creation parameters.
type AddItemRequest struct {
	ChecklistID string
	Title       string
	Description string
	Location    string
	Category    string
}

// UpdateItemRequest carries item update parameters. Empty fields are left
// unchanged.
type UpdateItemRequest struct {
	ItemID      string
	Title       string
	Description string
	Location    string
	Category    string
}
