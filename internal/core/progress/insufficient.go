package progress

type consumeKey struct {
	rewardID string
	location string
	category string
}

// ProblematicItems flags every completed item holding a consuming reward
// prerequisite whose (reward, location, category) combination is overdrawn:
// total consumed exceeds total collected for that exact combination.
//
// All co-consumers of an overdrawn combination are flagged together, so the
// signal does not depend on iteration order. The comparison is unclamped on
// purpose; Available's zero clamp would hide the deficit.
func (s *Snapshot) ProblematicItems() []string {
	combos := make(map[consumeKey]bool)
	for _, itemID := range s.order {
		for _, p := range s.prereqs[itemID] {
			if p.Kind() == KindReward && p.Consumes {
				combos[consumeKey{p.RewardID, p.LocationFilter, p.CategoryFilter}] = true
			}
		}
	}

	overdrawn := make(map[consumeKey]bool)
	for key := range combos {
		f := Filter{Location: key.location, Category: key.category}
		if s.Consumed(key.rewardID, f) > s.Collected(key.rewardID, f, Shallow) {
			overdrawn[key] = true
		}
	}

	var out []string
	for _, itemID := range s.order {
		if !s.completed[itemID] {
			continue
		}
		for _, p := range s.prereqs[itemID] {
			if p.Kind() == KindReward && p.Consumes &&
				overdrawn[consumeKey{p.RewardID, p.LocationFilter, p.CategoryFilter}] {
				out = append(out, itemID)
				break
			}
		}
	}
	return out
}
