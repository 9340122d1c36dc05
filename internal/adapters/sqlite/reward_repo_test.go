package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/questlog/internal/adapters/sqlite"
	"github.com/example/questlog/internal/ports/secondary"
)

func TestRewardRepository_CreateAndGetByName(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRewardRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &secondary.RewardRecord{ID: "RWD-001", Name: "Geo"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByName(ctx, "Geo")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got == nil || got.ID != "RWD-001" {
		t.Fatalf("expected RWD-001, got %+v", got)
	}

	missing, err := repo.GetByName(ctx, "Essence")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown name, got %+v", missing)
	}
}

func TestRewardRepository_Create_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRewardRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &secondary.RewardRecord{ID: "RWD-001", Name: "Geo"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, &secondary.RewardRecord{ID: "RWD-002", Name: "Geo"}); err == nil {
		t.Fatal("expected unique constraint error for duplicate name, got nil")
	}
}

func TestRewardRepository_Grants(t *testing.T) {
	db := setupTestDB(t)
	seedGame(t, db, "", "")
	seedChecklist(t, db, "", "", "")
	seedItem(t, db, "ITEM-001", "", "", 1)
	seedItem(t, db, "ITEM-002", "", "", 2)
	seedReward(t, db, "", "")

	repo := sqlite.NewRewardRepository(db)
	ctx := context.Background()

	mustGrant := func(id, itemID string, amount int) {
		t.Helper()
		err := repo.CreateGrant(ctx, &secondary.GrantRecord{
			ID: id, ItemID: itemID, RewardID: "RWD-001", Amount: amount,
		})
		if err != nil {
			t.Fatalf("CreateGrant failed: %v", err)
		}
	}
	mustGrant("GRANT-001", "ITEM-001", 2)
	mustGrant("GRANT-002", "ITEM-002", 1)

	byItem, err := repo.ListGrantsByItem(ctx, "ITEM-001")
	if err != nil {
		t.Fatalf("ListGrantsByItem failed: %v", err)
	}
	if len(byItem) != 1 || byItem[0].Amount != 2 {
		t.Fatalf("expected one grant of 2 on ITEM-001, got %+v", byItem)
	}

	byChecklist, err := repo.ListGrantsByChecklist(ctx, "CHK-001")
	if err != nil {
		t.Fatalf("ListGrantsByChecklist failed: %v", err)
	}
	if len(byChecklist) != 2 {
		t.Fatalf("expected 2 grants in checklist, got %d", len(byChecklist))
	}

	if err := repo.DeleteGrant(ctx, "GRANT-001"); err != nil {
		t.Fatalf("DeleteGrant failed: %v", err)
	}
	byItem, err = repo.ListGrantsByItem(ctx, "ITEM-001")
	if err != nil {
		t.Fatalf("ListGrantsByItem failed: %v", err)
	}
	if len(byItem) != 0 {
		t.Errorf("expected grant removed, got %+v", byItem)
	}
}

func TestRewardRepository_CreateGrant_RejectsZeroAmount(t *testing.T) {
	db := setupTestDB(t)
	seedGame(t, db, "", "")
	seedChecklist(t, db, "", "", "")
	seedItem(t, db, "", "", "", 1)
	seedReward(t, db, "", "")

	repo := sqlite.NewRewardRepository(db)
	err := repo.CreateGrant(context.Background(), &secondary.GrantRecord{
		ID: "GRANT-001", ItemID: "ITEM-001", RewardID: "RWD-001", Amount: 0,
	})
	if err == nil {
		t.Fatal("expected check constraint error for amount 0, got nil")
	}
}

func TestRewardRepository_GetNextGrantID(t *testing.T) {
	db := setupTestDB(t)
	seedGame(t, db, "", "")
	seedChecklist(t, db, "", "", "")
	seedItem(t, db, "", "", "", 1)
	seedReward(t, db, "", "")

	repo := sqlite.NewRewardRepository(db)
	ctx := context.Background()

	id, err := repo.GetNextGrantID(ctx)
	if err != nil {
		t.Fatalf("GetNextGrantID failed: %v", err)
	}
	if id != "GRANT-001" {
		t.Errorf("expected GRANT-001, got %q", id)
	}
}
