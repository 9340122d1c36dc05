package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/questlog/internal/adapters/sqlite"
	"github.com/example/questlog/internal/ports/secondary"
)

func setupProgressFixture(t *testing.T) (*sqlite.ProgressRepository, context.Context) {
	t.Helper()
	db := setupTestDB(t)
	seedGame(t, db, "", "")
	seedChecklist(t, db, "", "", "")
	seedItem(t, db, "ITEM-001", "", "", 1)
	seedItem(t, db, "ITEM-002", "", "", 2)
	seedTracked(t, db, "", "", "")
	return sqlite.NewProgressRepository(db), context.Background()
}

func TestProgressRepository_Get_MissingRowIsNil(t *testing.T) {
	repo, ctx := setupProgressFixture(t)

	got, err := repo.Get(ctx, "TRK-001", "ITEM-001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing row, got %+v", got)
	}
}

func TestProgressRepository_SetCompleted_UpdatesExistingRow(t *testing.T) {
	repo, ctx := setupProgressFixture(t)

	err := repo.Create(ctx, &secondary.ProgressRecord{
		ID: "PROG-001", TrackedID: "TRK-001", ItemID: "ITEM-001",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = repo.SetCompleted(ctx, "TRK-001", "ITEM-001", true, "2026-08-30T12:00:00Z")
	if err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}

	got, err := repo.Get(ctx, "TRK-001", "ITEM-001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || !got.Completed {
		t.Fatalf("expected completed row, got %+v", got)
	}
	if got.CompletedAt != "2026-08-30T12:00:00Z" {
		t.Errorf("expected completion timestamp, got %q", got.CompletedAt)
	}
	if got.ID != "PROG-001" {
		t.Errorf("expected existing row updated in place, got id %q", got.ID)
	}
}

func TestProgressRepository_SetCompleted_InsertsMissingRow(t *testing.T) {
	repo, ctx := setupProgressFixture(t)

	err := repo.SetCompleted(ctx, "TRK-001", "ITEM-002", true, "2026-08-30T12:00:00Z")
	if err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}

	got, err := repo.Get(ctx, "TRK-001", "ITEM-002")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || !got.Completed {
		t.Fatalf("expected inserted completed row, got %+v", got)
	}
}

func TestProgressRepository_SetCompleted_UncheckClearsTimestamp(t *testing.T) {
	repo, ctx := setupProgressFixture(t)

	if err := repo.SetCompleted(ctx, "TRK-001", "ITEM-001", true, "2026-08-30T12:00:00Z"); err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}
	if err := repo.SetCompleted(ctx, "TRK-001", "ITEM-001", false, ""); err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}

	got, err := repo.Get(ctx, "TRK-001", "ITEM-001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Completed {
		t.Fatalf("expected unchecked row, got %+v", got)
	}
	if got.CompletedAt != "" {
		t.Errorf("expected cleared timestamp, got %q", got.CompletedAt)
	}
}

func TestProgressRepository_MapByTracked(t *testing.T) {
	repo, ctx := setupProgressFixture(t)

	if err := repo.SetCompleted(ctx, "TRK-001", "ITEM-001", true, "2026-08-30T12:00:00Z"); err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}
	if err := repo.SetCompleted(ctx, "TRK-001", "ITEM-002", false, ""); err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}

	progress, err := repo.MapByTracked(ctx, "TRK-001")
	if err != nil {
		t.Fatalf("MapByTracked failed: %v", err)
	}
	if !progress["ITEM-001"] {
		t.Error("expected ITEM-001 completed")
	}
	if progress["ITEM-002"] {
		t.Error("expected ITEM-002 not completed")
	}
}
