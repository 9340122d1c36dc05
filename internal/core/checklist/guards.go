// Package checklist contains the pure business rules for checklist, item,
// and progress operations. Guards evaluate preconditions without side
// effects; callers gather the context and act on the result.
package checklist

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CopyContext provides context for tracked-copy creation guards.
type CopyContext struct {
	ChecklistID     string
	ChecklistExists bool
	Owner           string
	AlreadyTracked  bool
}

// CanCopyChecklist evaluates whether a checklist can be copied for an owner.
// Rules:
// - Checklist must exist
// - Owner must not already track a copy of it
func CanCopyChecklist(ctx CopyContext) GuardResult {
	if !ctx.ChecklistExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("checklist %s not found", ctx.ChecklistID),
		}
	}
	if ctx.AlreadyTracked {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s already tracks checklist %s", ctx.Owner, ctx.ChecklistID),
		}
	}
	return GuardResult{Allowed: true}
}

// CompleteItemContext provides context for the completion gate.
type CompleteItemContext struct {
	ItemID           string
	PrerequisitesMet bool
	UnmetSummaries   []string
}

// CanCompleteItem evaluates whether an item may be marked complete.
// Rules:
// - All blocking prerequisites must be satisfied (chain-aware)
// Unchecking is never gated; callers only consult this when setting
// completed to true.
func CanCompleteItem(ctx CompleteItemContext) GuardResult {
	if !ctx.PrerequisitesMet {
		reason := "Prerequisites not met"
		if len(ctx.UnmetSummaries) > 0 {
			reason += ": " + strings.Join(ctx.UnmetSummaries, "; ")
		}
		return GuardResult{Allowed: false, Reason: reason}
	}
	return GuardResult{Allowed: true}
}

// GrantContext provides context for reward grant guards.
type GrantContext struct {
	ItemID       string
	ItemExists   bool
	RewardID     string
	RewardExists bool
	Amount       int
}

// CanAttachGrant evaluates whether a reward grant can be attached to an item.
// Rules:
// - Item and reward must exist
// - Amount must be at least 1
func CanAttachGrant(ctx GrantContext) GuardResult {
	if !ctx.ItemExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("item %s not found", ctx.ItemID),
		}
	}
	if !ctx.RewardExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("reward %s not found", ctx.RewardID),
		}
	}
	if ctx.Amount < 1 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("grant amount must be at least 1, got %d", ctx.Amount),
		}
	}
	return GuardResult{Allowed: true}
}

// PrerequisiteContext provides context for prerequisite creation guards.
// Exactly one of RequiredItemID, RewardID, or FreeformText should be set.
type PrerequisiteContext struct {
	ItemID     string
	ItemExists bool

	RequiredItemID     string
	RequiredItemExists bool

	RewardID     string
	RewardExists bool
	RewardAmount int

	FreeformText string
}

// CanAddPrerequisite evaluates whether a prerequisite can be created.
// Rules:
// - Gated item must exist
// - Exactly one variant must be populated
// - Item variant: required item must exist and differ from the gated item
// - Reward variant: reward must exist and amount must be at least 1
func CanAddPrerequisite(ctx PrerequisiteContext) GuardResult {
	if !ctx.ItemExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("item %s not found", ctx.ItemID),
		}
	}

	variants := 0
	if ctx.RequiredItemID != "" {
		variants++
	}
	if ctx.RewardID != "" {
		variants++
	}
	if ctx.FreeformText != "" {
		variants++
	}
	if variants != 1 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("exactly one prerequisite variant must be set, got %d", variants),
		}
	}

	switch {
	case ctx.RequiredItemID != "":
		if ctx.RequiredItemID == ctx.ItemID {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("item %s cannot require itself", ctx.ItemID),
			}
		}
		if !ctx.RequiredItemExists {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("required item %s not found", ctx.RequiredItemID),
			}
		}
	case ctx.RewardID != "":
		if !ctx.RewardExists {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("reward %s not found", ctx.RewardID),
			}
		}
		if ctx.RewardAmount < 1 {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("reward amount must be at least 1, got %d", ctx.RewardAmount),
			}
		}
	}

	return GuardResult{Allowed: true}
}
