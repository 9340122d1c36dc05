package app

import (
	"context"
	"strings"
	"testing"

	"github.com/example/questlog/internal/ports/primary"
	"github.com/example/questlog/internal/ports/secondary"
)

type rewardFixture struct {
	service *RewardServiceImpl
	rewards *mockRewardRepository
	items   *mockItemRepository
	prereqs *mockPrereqRepository
	log     *mockLogWriter
}

func newRewardFixture(t *testing.T) *rewardFixture {
	t.Helper()
	f := &rewardFixture{
		rewards: newMockRewardRepository(),
		items:   newMockItemRepository(),
		prereqs: newMockPrereqRepository(),
		log:     &mockLogWriter{},
	}
	f.service = NewRewardService(f.rewards, f.items, f.prereqs, f.log)
	return f
}

func (f *rewardFixture) seedItem(id string) {
	f.items.Create(context.Background(), &secondary.ItemRecord{
		ID: id, ChecklistID: "CHK-001", Title: "Item " + id, Position: 1,
	})
}

func TestCreateReward_IdempotentByName(t *testing.T) {
	f := newRewardFixture(t)
	ctx := context.Background()

	first, err := f.service.CreateReward(ctx, "Geo")
	if err != nil {
		t.Fatalf("CreateReward failed: %v", err)
	}
	second, err := f.service.CreateReward(ctx, "Geo")
	if err != nil {
		t.Fatalf("CreateReward failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected same reward on repeat create, got %q and %q", first.ID, second.ID)
	}
}

func TestAttachGrant_GuardRejections(t *testing.T) {
	f := newRewardFixture(t)
	ctx := context.Background()
	f.seedItem("ITEM-001")
	f.rewards.Create(ctx, &secondary.RewardRecord{ID: "RWD-001", Name: "Geo"})

	tests := []struct {
		name    string
		req     primary.GrantRequest
		wantErr string
	}{
		{
			name:    "missing item",
			req:     primary.GrantRequest{ItemID: "ITEM-404", RewardID: "RWD-001", Amount: 1},
			wantErr: "item ITEM-404 not found",
		},
		{
			name:    "missing reward",
			req:     primary.GrantRequest{ItemID: "ITEM-001", RewardID: "RWD-404", Amount: 1},
			wantErr: "reward RWD-404 not found",
		},
		{
			name:    "zero amount",
			req:     primary.GrantRequest{ItemID: "ITEM-001", RewardID: "RWD-001", Amount: 0},
			wantErr: "at least 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.AttachGrant(ctx, tt.req)
			if err == nil {
				t.Fatal("expected guard rejection, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected %q in error, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestAttachGrant_Succeeds(t *testing.T) {
	f := newRewardFixture(t)
	ctx := context.Background()
	f.seedItem("ITEM-001")
	f.rewards.Create(ctx, &secondary.RewardRecord{ID: "RWD-001", Name: "Geo"})

	grant, err := f.service.AttachGrant(ctx, primary.GrantRequest{
		ItemID: "ITEM-001", RewardID: "RWD-001", Amount: 3,
	})
	if err != nil {
		t.Fatalf("AttachGrant failed: %v", err)
	}
	if grant.Amount != 3 || grant.RewardID != "RWD-001" {
		t.Errorf("unexpected grant: %+v", grant)
	}
	if len(f.rewards.grants) != 1 {
		t.Errorf("expected 1 stored grant, got %d", len(f.rewards.grants))
	}
}

func TestAddItemPrerequisite_RejectsSelfRequire(t *testing.T) {
	f := newRewardFixture(t)
	f.seedItem("ITEM-001")

	_, err := f.service.AddItemPrerequisite(context.Background(), "ITEM-001", "ITEM-001")
	if err == nil {
		t.Fatal("expected self-require rejection, got nil")
	}
	if !strings.Contains(err.Error(), "cannot require itself") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAddRewardPrerequisite_StoresFiltersAndConsumeFlag(t *testing.T) {
	f := newRewardFixture(t)
	ctx := context.Background()
	f.seedItem("ITEM-001")
	f.rewards.Create(ctx, &secondary.RewardRecord{ID: "RWD-001", Name: "Puzzle Piece"})

	info, err := f.service.AddRewardPrerequisite(ctx, primary.RewardPrereqRequest{
		ItemID:   "ITEM-001",
		RewardID: "RWD-001",
		Amount:   3,
		Consumes: true,
		Location: "London",
	})
	if err != nil {
		t.Fatalf("AddRewardPrerequisite failed: %v", err)
	}
	if info.Kind != "reward" {
		t.Errorf("expected reward kind, got %q", info.Kind)
	}
	if !info.ConsumesReward || info.RewardLocation != "London" || info.RewardAmount != 3 {
		t.Errorf("unexpected prerequisite: %+v", info)
	}
}

func TestAddRewardPrerequisite_RejectsZeroAmount(t *testing.T) {
	f := newRewardFixture(t)
	ctx := context.Background()
	f.seedItem("ITEM-001")
	f.rewards.Create(ctx, &secondary.RewardRecord{ID: "RWD-001", Name: "Geo"})

	_, err := f.service.AddRewardPrerequisite(ctx, primary.RewardPrereqRequest{
		ItemID: "ITEM-001", RewardID: "RWD-001", Amount: 0,
	})
	if err == nil {
		t.Fatal("expected rejection for amount 0, got nil")
	}
}

func TestAddFreeformPrerequisite_KindIsFreeform(t *testing.T) {
	f := newRewardFixture(t)
	f.seedItem("ITEM-001")

	info, err := f.service.AddFreeformPrerequisite(context.Background(), "ITEM-001", "Talk to the blacksmith first")
	if err != nil {
		t.Fatalf("AddFreeformPrerequisite failed: %v", err)
	}
	if info.Kind != "freeform" {
		t.Errorf("expected freeform kind, got %q", info.Kind)
	}
	if info.FreeformText != "Talk to the blacksmith first" {
		t.Errorf("unexpected text: %q", info.FreeformText)
	}
}

func TestRemovePrerequisite(t *testing.T) {
	f := newRewardFixture(t)
	f.seedItem("ITEM-001")

	info, err := f.service.AddFreeformPrerequisite(context.Background(), "ITEM-001", "note")
	if err != nil {
		t.Fatalf("AddFreeformPrerequisite failed: %v", err)
	}
	if err := f.service.RemovePrerequisite(context.Background(), info.ID); err != nil {
		t.Fatalf("RemovePrerequisite failed: %v", err)
	}
	if len(f.prereqs.prereqs) != 0 {
		t.Error("expected prerequisite removed")
	}

	if err := f.service.RemovePrerequisite(context.Background(), "PRQ-404"); err == nil {
		t.Fatal("expected error removing missing prerequisite, got nil")
	}
}

func TestListPrerequisites_ReturnsGatingPrereqsOnly(t *testing.T) {
	f := newRewardFixture(t)
	f.seedItem("ITEM-001")
	f.seedItem("ITEM-002")
	f.seedItem("ITEM-003")

	if _, err := f.service.AddItemPrerequisite(context.Background(), "ITEM-002", "ITEM-001"); err != nil {
		t.Fatalf("AddItemPrerequisite failed: %v", err)
	}
	if _, err := f.service.AddFreeformPrerequisite(context.Background(), "ITEM-002", "note"); err != nil {
		t.Fatalf("AddFreeformPrerequisite failed: %v", err)
	}
	if _, err := f.service.AddItemPrerequisite(context.Background(), "ITEM-003", "ITEM-001"); err != nil {
		t.Fatalf("AddItemPrerequisite failed: %v", err)
	}

	prereqs, err := f.service.ListPrerequisites(context.Background(), "ITEM-002")
	if err != nil {
		t.Fatalf("ListPrerequisites failed: %v", err)
	}
	if len(prereqs) != 2 {
		t.Fatalf("expected 2 prerequisites on ITEM-002, got %d", len(prereqs))
	}
}
