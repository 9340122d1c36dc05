package progress

// Effects lists the items whose derived unlocked state changes when one
// item is toggled. Item ids appear in discovery order.
type Effects struct {
	Unlocked []string
	Locked   []string
}

// ToggleEffects computes the full set of lock/unlock transitions caused by
// setting itemID's completion flag to newCompleted.
//
// Only the toggled item's stored flag differs between the two states being
// compared; dependents keep their stored completion and merely gain or lose
// the derived "unlocked" property. Propagation follows both dependency edge
// kinds (item prerequisites on the toggled item, reward prerequisites on any
// reward it grants) and terminates because the processed set grows
// monotonically over a finite item count, cycles included.
func (s *Snapshot) ToggleEffects(itemID string, newCompleted bool) Effects {
	before := s.withCompleted(itemID, !newCompleted)
	after := s.withCompleted(itemID, newCompleted)

	var fx Effects
	processed := map[string]bool{itemID: true}
	queue := s.dependents(itemID)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if processed[id] {
			continue
		}
		processed[id] = true

		was := before.Satisfied(id, Chained).Satisfied
		now := after.Satisfied(id, Chained).Satisfied
		switch {
		case now && !was:
			fx.Unlocked = append(fx.Unlocked, id)
			queue = append(queue, s.dependents(id)...)
		case was && !now:
			fx.Locked = append(fx.Locked, id)
			queue = append(queue, s.dependents(id)...)
		}
	}

	return fx
}

// dependents returns the items that may be affected by a change to itemID:
// items declaring an item prerequisite on it, plus items declaring a reward
// prerequisite on any reward it grants.
func (s *Snapshot) dependents(itemID string) []string {
	deps := append([]string(nil), s.itemDeps[itemID]...)
	for _, g := range s.grants[itemID] {
		deps = append(deps, s.rewardDeps[g.RewardID]...)
	}
	return deps
}
