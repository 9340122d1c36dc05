// Package progress contains the pure computation core for tracked-checklist
// progress: prerequisite satisfaction, reward tallying, and the cascade of
// lock/unlock changes that follows a single toggle.
//
// All functions operate on a Snapshot taken from one consistent read of a
// tracked checklist. The package performs no I/O and holds no state between
// calls; each resolution carries its own cycle-guard set, so independent
// snapshots can be resolved concurrently.
package progress

import "sort"

// Item is a checklist entry as the resolver sees it. Location and Category
// are optional tags used by filtered reward prerequisites.
type Item struct {
	ID       string
	Title    string
	Location string
	Category string
	Position int
}

// Kind discriminates the prerequisite variants.
type Kind string

const (
	// KindItem gates on another item's completion.
	KindItem Kind = "item"
	// KindReward gates on a minimum available amount of a reward.
	KindReward Kind = "reward"
	// KindFreeform is informational and never blocks.
	KindFreeform Kind = "freeform"
	// KindNone marks a malformed record with no variant populated.
	// Treated as always satisfied; surfaced as a warning, never an error.
	KindNone Kind = "none"
)

// Prerequisite gates an item. Exactly one variant should be populated:
// RequiredItemID (item), RewardID+RewardAmount (reward), or FreeformText.
type Prerequisite struct {
	ID     string
	ItemID string // the gated item

	RequiredItemID string

	RewardID       string
	RewardAmount   int
	Consumes       bool
	LocationFilter string
	CategoryFilter string

	FreeformText string
}

// Kind reports which variant is populated. Item wins over reward wins over
// freeform if a malformed record has several set.
func (p Prerequisite) Kind() Kind {
	switch {
	case p.RequiredItemID != "":
		return KindItem
	case p.RewardID != "":
		return KindReward
	case p.FreeformText != "":
		return KindFreeform
	}
	return KindNone
}

// Grant credits an amount of a reward when its item is completed.
type Grant struct {
	ID       string
	ItemID   string
	RewardID string
	Amount   int
}

// Mode selects how satisfaction checks treat upstream items.
type Mode int

const (
	// Shallow consults stored completed flags only. Used for display.
	Shallow Mode = iota
	// Chained re-validates upstream prerequisite satisfaction recursively,
	// so a completed-but-locked item does not count as met.
	Chained
)

func (m Mode) String() string {
	if m == Chained {
		return "chained"
	}
	return "shallow"
}

// Filter scopes a tally to grants from items with matching tags. Empty
// fields match everything.
type Filter struct {
	Location string
	Category string
}

// Snapshot is one consistent view of a tracked checklist: its items, their
// prerequisites and grants, and the instance's completion flags.
type Snapshot struct {
	items     map[string]Item
	order     []string // item ids in position order
	completed map[string]bool

	prereqs      map[string][]Prerequisite // gated item id -> prerequisites
	grants       map[string][]Grant        // granting item id -> grants
	rewardGrants map[string][]Grant        // reward id -> grants
	itemDeps     map[string][]string       // required item id -> gated item ids
	rewardDeps   map[string][]string       // reward id -> gated item ids
	rewardIDs    []string                  // every reward referenced by a grant or prerequisite
}

// NewSnapshot indexes the given state for resolution. The completed map is
// copied; items missing from it are treated as not completed.
func NewSnapshot(items []Item, prereqs []Prerequisite, grants []Grant, completed map[string]bool) *Snapshot {
	s := &Snapshot{
		items:        make(map[string]Item, len(items)),
		completed:    make(map[string]bool, len(completed)),
		prereqs:      make(map[string][]Prerequisite),
		grants:       make(map[string][]Grant),
		rewardGrants: make(map[string][]Grant),
		itemDeps:     make(map[string][]string),
		rewardDeps:   make(map[string][]string),
	}

	sorted := append([]Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })
	for _, it := range sorted {
		s.items[it.ID] = it
		s.order = append(s.order, it.ID)
	}

	for id, done := range completed {
		s.completed[id] = done
	}

	rewards := make(map[string]bool)
	for _, p := range prereqs {
		s.prereqs[p.ItemID] = append(s.prereqs[p.ItemID], p)
		switch p.Kind() {
		case KindItem:
			s.itemDeps[p.RequiredItemID] = append(s.itemDeps[p.RequiredItemID], p.ItemID)
		case KindReward:
			s.rewardDeps[p.RewardID] = append(s.rewardDeps[p.RewardID], p.ItemID)
			rewards[p.RewardID] = true
		}
	}

	for _, g := range grants {
		s.grants[g.ItemID] = append(s.grants[g.ItemID], g)
		s.rewardGrants[g.RewardID] = append(s.rewardGrants[g.RewardID], g)
		rewards[g.RewardID] = true
	}

	for id := range rewards {
		s.rewardIDs = append(s.rewardIDs, id)
	}
	sort.Strings(s.rewardIDs)

	return s
}

// Item returns the item with the given id.
func (s *Snapshot) Item(id string) (Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

// ItemIDs returns all item ids in position order.
func (s *Snapshot) ItemIDs() []string {
	return append([]string(nil), s.order...)
}

// Completed reports the stored completion flag for an item. Missing progress
// counts as not completed.
func (s *Snapshot) Completed(itemID string) bool {
	return s.completed[itemID]
}

// Prerequisites returns the prerequisites gating an item.
func (s *Snapshot) Prerequisites(itemID string) []Prerequisite {
	return s.prereqs[itemID]
}

// Grants returns the grants credited by an item.
func (s *Snapshot) Grants(itemID string) []Grant {
	return s.grants[itemID]
}

// RewardIDs returns every reward id referenced by a grant or prerequisite
// in the snapshot, sorted.
func (s *Snapshot) RewardIDs() []string {
	return append([]string(nil), s.rewardIDs...)
}

// withCompleted returns a copy of the snapshot sharing all indexes but with
// one item's completion flag overridden.
func (s *Snapshot) withCompleted(itemID string, done bool) *Snapshot {
	clone := *s
	clone.completed = make(map[string]bool, len(s.completed)+1)
	for k, v := range s.completed {
		clone.completed[k] = v
	}
	clone.completed[itemID] = done
	return &clone
}
