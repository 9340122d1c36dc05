package primary

import "context"

// RewardService defines the primary port for the reward catalog, grants,
// and prerequisite management.
type RewardService interface {
	// CreateReward registers a reward, or returns the existing one by name.
	CreateReward(ctx context.Context, name string) (*Reward, error)

	// ListRewards lists the global reward catalog.
	ListRewards(ctx context.Context) ([]*Reward, error)

	// AttachGrant credits amount of a reward when the item completes.
	AttachGrant(ctx context.Context, req GrantRequest) (*RewardGrant, error)

	// ListGrants lists every grant within a checklist.
	ListGrants(ctx context.Context, checklistID string) ([]*RewardGrant, error)

	// AddItemPrerequisite gates an item on another item's completion.
	AddItemPrerequisite(ctx context.Context, itemID, requiredItemID string) (*PrerequisiteInfo, error)

	// AddRewardPrerequisite gates an item on a reward threshold.
	AddRewardPrerequisite(ctx context.Context, req RewardPrereqRequest) (*PrerequisiteInfo, error)

	// AddFreeformPrerequisite attaches an informational note that never
	// blocks completion.
	AddFreeformPrerequisite(ctx context.Context, itemID, text string) (*PrerequisiteInfo, error)

	// ListPrerequisites lists the prerequisites gating one item.
	ListPrerequisites(ctx context.Context, itemID string) ([]*PrerequisiteInfo, error)

	// RemovePrerequisite deletes a prerequisite.
	RemovePrerequisite(ctx context.Context, prereqID string) error
}

// Reward is a reward catalog entry.
type Reward struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RewardGrant is an (item, reward, amount) credit.
type RewardGrant struct {
	ID       string `json:"id"`
	ItemID   string `json:"item_id"`
	RewardID string `json:"reward_id"`
	Amount   int    `json:"amount"`
}

// PrerequisiteInfo describes one prerequisite in caller terms.
type PrerequisiteInfo struct {
	ID     string `json:"id"`
	ItemID string `json:"item_id"`
	Kind   string `json:"kind"` // "item", "reward", "freeform", or "none"

	RequiredItemID string `json:"required_item_id,omitempty"`

	RewardID       string `json:"reward_id,omitempty"`
	RewardAmount   int    `json:"reward_amount,omitempty"`
	ConsumesReward bool   `json:"consumes_reward,omitempty"`
	RewardLocation string `json:"reward_location,omitempty"`
	RewardCategory string `json:"reward_category,omitempty"`

	FreeformText string `json:"freeform_text,omitempty"`
}

// GrantRequest carries grant creation parameters.
type GrantRequest struct {
	ItemID   string
	RewardID string
	Amount   int
}

// RewardPrereqRequest carries reward prerequisite creation parameters.
type RewardPrereqRequest struct {
	ItemID   string
	RewardID string
	Amount   int
	Consumes bool
	Location string
	Category string
}
