package progress

import "fmt"

// Result is the outcome of a satisfaction check.
type Result struct {
	Satisfied bool
	Unmet     []Prerequisite
	Warnings  []string
}

// Satisfied reports whether an item's prerequisites are met.
//
// In Shallow mode only stored completed flags are consulted. In Chained mode
// every item prerequisite is additionally re-validated upstream, so an item
// whose own flag is stale-true but whose prerequisites no longer hold does
// not satisfy its dependents.
//
// Items with no prerequisites are always satisfied. Freeform prerequisites
// never block. A prerequisite with no variant populated is treated as
// satisfied and reported in Warnings.
func (s *Snapshot) Satisfied(itemID string, mode Mode) Result {
	return s.satisfied(itemID, mode, make(map[string]bool))
}

// satisfied carries the per-call cycle guard. An item already in the
// visiting set is treated as satisfied, which breaks dependency cycles
// without looping. This is an approximation, not a fixpoint solution for
// arbitrary cyclic graphs; it guarantees termination only.
func (s *Snapshot) satisfied(itemID string, mode Mode, visiting map[string]bool) Result {
	visiting[itemID] = true
	defer delete(visiting, itemID)

	res := Result{}
	for _, p := range s.prereqs[itemID] {
		switch p.Kind() {
		case KindItem:
			if !s.completed[p.RequiredItemID] {
				res.Unmet = append(res.Unmet, p)
				continue
			}
			if mode == Chained && !visiting[p.RequiredItemID] {
				if sub := s.satisfied(p.RequiredItemID, mode, visiting); !sub.Satisfied {
					res.Unmet = append(res.Unmet, p)
				}
			}
		case KindReward:
			f := Filter{Location: p.LocationFilter, Category: p.CategoryFilter}
			if s.available(p.RewardID, f, mode, visiting) < p.RewardAmount {
				res.Unmet = append(res.Unmet, p)
			}
		case KindFreeform:
			// informational only
		case KindNone:
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("prerequisite %s of item %s has no variant populated, treating as satisfied", p.ID, itemID))
		}
	}

	res.Satisfied = len(res.Unmet) == 0
	return res
}
