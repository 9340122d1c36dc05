package progress

// Collected sums grant amounts over completed items matching the filter on
// the granting item's tags. In Chained mode, grants from items that are not
// themselves satisfied are excluded even when their completed flag is
// stale-true.
func (s *Snapshot) Collected(rewardID string, f Filter, mode Mode) int {
	return s.collected(rewardID, f, mode, make(map[string]bool))
}

func (s *Snapshot) collected(rewardID string, f Filter, mode Mode, visiting map[string]bool) int {
	total := 0
	for _, g := range s.rewardGrants[rewardID] {
		if !s.completed[g.ItemID] {
			continue
		}
		it := s.items[g.ItemID]
		if f.Location != "" && it.Location != f.Location {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if mode == Chained {
			// An item mid-resolution cannot fund its own prerequisite;
			// skipping its grants here is what makes a supplier's uncheck
			// starve a consumer that grants the same reward it needs.
			if visiting[g.ItemID] {
				continue
			}
			if sub := s.satisfied(g.ItemID, Chained, visiting); !sub.Satisfied {
				continue
			}
		}
		total += g.Amount
	}
	return total
}

// Consumed sums the amounts of consuming reward prerequisites attached to
// completed items. The filter matches the prerequisite's own location and
// category filters, not the consuming item's tags.
func (s *Snapshot) Consumed(rewardID string, f Filter) int {
	total := 0
	for _, itemID := range s.order {
		if !s.completed[itemID] {
			continue
		}
		for _, p := range s.prereqs[itemID] {
			if p.Kind() != KindReward || !p.Consumes || p.RewardID != rewardID {
				continue
			}
			if f.Location != "" && p.LocationFilter != f.Location {
				continue
			}
			if f.Category != "" && p.CategoryFilter != f.Category {
				continue
			}
			total += p.RewardAmount
		}
	}
	return total
}

// Available is collected minus consumed, clamped at zero. The clamp drops
// the magnitude of a deficit; ProblematicItems recovers that signal.
func (s *Snapshot) Available(rewardID string, f Filter, mode Mode) int {
	return s.available(rewardID, f, mode, make(map[string]bool))
}

func (s *Snapshot) available(rewardID string, f Filter, mode Mode, visiting map[string]bool) int {
	avail := s.collected(rewardID, f, mode, visiting) - s.Consumed(rewardID, f)
	if avail < 0 {
		return 0
	}
	return avail
}

// AllAvailable returns the unfiltered available amount for every reward
// referenced by any grant or prerequisite in the snapshot.
func (s *Snapshot) AllAvailable(mode Mode) map[string]int {
	out := make(map[string]int, len(s.rewardIDs))
	for _, id := range s.rewardIDs {
		out[id] = s.Available(id, Filter{}, mode)
	}
	return out
}
