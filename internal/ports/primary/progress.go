// Package primary defines the primary ports (driving interfaces) for the
// application: the service contracts the CLI and HTTP adapters call.
package primary

import "context"

// ProgressService defines the primary port for progress resolution on a
// tracked checklist: satisfaction checks, reward tallies, toggle cascades,
// and insufficient-reward detection.
type ProgressService interface {
	// Satisfied reports whether an item's prerequisites are met for a
	// tracked copy. Chained re-validates upstream prerequisites.
	Satisfied(ctx context.Context, trackedID, itemID string, chained bool) (*SatisfiedResult, error)

	// Status returns the full display state of a tracked copy: per-item
	// completion, derived unlock state, and unmet prerequisites.
	Status(ctx context.Context, trackedID string) (*TrackedStatus, error)

	// Tally computes collected, consumed, and available amounts for one
	// reward, optionally filtered by granting-item location/category.
	Tally(ctx context.Context, req TallyRequest) (*TallyResult, error)

	// AllAvailableRewards returns the available amount of every reward
	// referenced by the tracked checklist.
	AllAvailableRewards(ctx context.Context, trackedID string) ([]*RewardAvailability, error)

	// ToggleProgress flips an item's completion flag for a tracked copy and
	// returns the resulting cascade. Marking an item complete while its
	// prerequisites are unmet fails with a PrerequisitesNotMetError;
	// unchecking is never gated.
	ToggleProgress(ctx context.Context, trackedID, itemID string) (*ToggleResult, error)

	// ProblematicItems lists completed consuming items whose reward pool is
	// overdrawn.
	ProblematicItems(ctx context.Context, trackedID string) ([]string, error)
}

// UnmetPrerequisite describes one blocking prerequisite in caller terms.
type UnmetPrerequisite struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"` // "item" or "reward"
	Description string `json:"description"`
}

// SatisfiedResult is the outcome of a satisfaction check.
type SatisfiedResult struct {
	Satisfied bool                `json:"satisfied"`
	Unmet     []UnmetPrerequisite `json:"unmet,omitempty"`
	Warnings  []string            `json:"warnings,omitempty"`
}

// ItemStatus is the display state of one item within a tracked copy.
type ItemStatus struct {
	ItemID    string              `json:"item_id"`
	Title     string              `json:"title"`
	Location  string              `json:"location,omitempty"`
	Category  string              `json:"category,omitempty"`
	Completed bool                `json:"completed"`
	Unlocked  bool                `json:"unlocked"`
	Unmet     []UnmetPrerequisite `json:"unmet,omitempty"`
}

// TrackedStatus is the full display state of a tracked copy.
type TrackedStatus struct {
	TrackedID   string       `json:"tracked_id"`
	ChecklistID string       `json:"checklist_id"`
	Title       string       `json:"title"`
	Owner       string       `json:"owner"`
	Items       []ItemStatus `json:"items"`
	Percent     int          `json:"percent"`
}

// TallyRequest identifies a reward tally query.
type TallyRequest struct {
	TrackedID string
	RewardID  string
	Location  string
	Category  string
	Chained   bool
}

// TallyResult carries collected/consumed/available amounts for one reward.
type TallyResult struct {
	RewardID   string `json:"reward_id"`
	RewardName string `json:"reward_name"`
	Collected  int    `json:"collected"`
	Consumed   int    `json:"consumed"`
	Available  int    `json:"available"`
}

// RewardAvailability is one entry of the batch availability query.
type RewardAvailability struct {
	RewardID   string `json:"reward_id"`
	RewardName string `json:"reward_name"`
	Available  int    `json:"available"`
}

// ToggleResult is the outcome of a progress toggle, including the cascade of
// derived lock/unlock changes. Stored completion flags of other items are
// never rewritten; UnlockedItems and LockedItems are display transitions.
type ToggleResult struct {
	ItemID        string   `json:"item_id"`
	Completed     bool     `json:"completed"`
	UnlockedItems []string `json:"unlocked_items"`
	LockedItems   []string `json:"locked_items"`
}
