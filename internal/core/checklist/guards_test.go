package checklist

import "testing"

func TestCanCopyChecklist(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CopyContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can copy existing untracked checklist",
			ctx: CopyContext{
				ChecklistID:     "CHK-001",
				ChecklistExists: true,
				Owner:           "alex",
			},
			wantAllowed: true,
		},
		{
			name: "cannot copy missing checklist",
			ctx: CopyContext{
				ChecklistID: "CHK-999",
				Owner:       "alex",
			},
			wantAllowed: false,
			wantReason:  "checklist CHK-999 not found",
		},
		{
			name: "cannot copy checklist twice",
			ctx: CopyContext{
				ChecklistID:     "CHK-001",
				ChecklistExists: true,
				Owner:           "alex",
				AlreadyTracked:  true,
			},
			wantAllowed: false,
			wantReason:  "alex already tracks checklist CHK-001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCopyChecklist(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanCompleteItem(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CompleteItemContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "allowed when prerequisites met",
			ctx:         CompleteItemContext{ItemID: "ITEM-001", PrerequisitesMet: true},
			wantAllowed: true,
		},
		{
			name:        "rejected when prerequisites unmet",
			ctx:         CompleteItemContext{ItemID: "ITEM-001"},
			wantAllowed: false,
			wantReason:  "Prerequisites not met",
		},
		{
			name: "rejection carries unmet summaries",
			ctx: CompleteItemContext{
				ItemID:         "ITEM-002",
				UnmetSummaries: []string{"requires item ITEM-001", "requires 3 of RWD-001"},
			},
			wantAllowed: false,
			wantReason:  "Prerequisites not met: requires item ITEM-001; requires 3 of RWD-001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCompleteItem(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanAttachGrant(t *testing.T) {
	tests := []struct {
		name        string
		ctx         GrantContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "valid grant",
			ctx:         GrantContext{ItemID: "ITEM-001", ItemExists: true, RewardID: "RWD-001", RewardExists: true, Amount: 2},
			wantAllowed: true,
		},
		{
			name:        "missing item",
			ctx:         GrantContext{ItemID: "ITEM-999", RewardID: "RWD-001", RewardExists: true, Amount: 1},
			wantAllowed: false,
			wantReason:  "item ITEM-999 not found",
		},
		{
			name:        "missing reward",
			ctx:         GrantContext{ItemID: "ITEM-001", ItemExists: true, RewardID: "RWD-999", Amount: 1},
			wantAllowed: false,
			wantReason:  "reward RWD-999 not found",
		},
		{
			name:        "zero amount",
			ctx:         GrantContext{ItemID: "ITEM-001", ItemExists: true, RewardID: "RWD-001", RewardExists: true},
			wantAllowed: false,
			wantReason:  "grant amount must be at least 1, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanAttachGrant(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanAddPrerequisite(t *testing.T) {
	tests := []struct {
		name        string
		ctx         PrerequisiteContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "item variant",
			ctx: PrerequisiteContext{
				ItemID: "ITEM-002", ItemExists: true,
				RequiredItemID: "ITEM-001", RequiredItemExists: true,
			},
			wantAllowed: true,
		},
		{
			name: "reward variant",
			ctx: PrerequisiteContext{
				ItemID: "ITEM-002", ItemExists: true,
				RewardID: "RWD-001", RewardExists: true, RewardAmount: 3,
			},
			wantAllowed: true,
		},
		{
			name:        "freeform variant",
			ctx:         PrerequisiteContext{ItemID: "ITEM-002", ItemExists: true, FreeformText: "Finish the tutorial"},
			wantAllowed: true,
		},
		{
			name:        "no variant",
			ctx:         PrerequisiteContext{ItemID: "ITEM-002", ItemExists: true},
			wantAllowed: false,
			wantReason:  "exactly one prerequisite variant must be set, got 0",
		},
		{
			name: "two variants",
			ctx: PrerequisiteContext{
				ItemID: "ITEM-002", ItemExists: true,
				RequiredItemID: "ITEM-001", RequiredItemExists: true,
				FreeformText: "also this",
			},
			wantAllowed: false,
			wantReason:  "exactly one prerequisite variant must be set, got 2",
		},
		{
			name: "self requirement",
			ctx: PrerequisiteContext{
				ItemID: "ITEM-002", ItemExists: true,
				RequiredItemID: "ITEM-002", RequiredItemExists: true,
			},
			wantAllowed: false,
			wantReason:  "item ITEM-002 cannot require itself",
		},
		{
			name: "reward amount below one",
			ctx: PrerequisiteContext{
				ItemID: "ITEM-002", ItemExists: true,
				RewardID: "RWD-001", RewardExists: true,
			},
			wantAllowed: false,
			wantReason:  "reward amount must be at least 1, got 0",
		},
		{
			name:        "gated item missing",
			ctx:         PrerequisiteContext{ItemID: "ITEM-999", FreeformText: "whatever"},
			wantAllowed: false,
			wantReason:  "item ITEM-999 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanAddPrerequisite(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}
