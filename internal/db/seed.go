package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: one game,
// one checklist whose items exercise every prerequisite variant (item chain,
// consuming reward threshold with filters, freeform note), and a tracked
// copy with partial progress.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	if _, err := database.Exec(
		"INSERT INTO games (id, name, created_at) VALUES (?, ?, ?)",
		"GAME-001", "Hollow Depths", now,
	); err != nil {
		return fmt.Errorf("seed games: %w", err)
	}

	if _, err := database.Exec(
		"INSERT INTO checklists (id, game_id, title, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"CHK-001", "GAME-001", "100% Completion", "Everything the game has to offer", now, now,
	); err != nil {
		return fmt.Errorf("seed checklists: %w", err)
	}

	items := []struct {
		id, title, location, category string
		position                      int
	}{
		{"ITEM-001", "Clear the tutorial cave", "Greenpath", "Quest", 1},
		{"ITEM-002", "Defeat the gatekeeper", "Greenpath", "Boss", 2},
		{"ITEM-003", "Collect the moss charm", "Greenpath", "Collectible", 3},
		{"ITEM-004", "Open the old gate", "Crossroads", "Quest", 4},
		{"ITEM-005", "Buy the lantern", "Crossroads", "Shop", 5},
	}
	for _, it := range items {
		if _, err := database.Exec(
			"INSERT INTO checklist_items (id, checklist_id, title, location, category, position, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			it.id, "CHK-001", it.title, it.location, it.category, it.position, now,
		); err != nil {
			return fmt.Errorf("seed items: %w", err)
		}
	}

	rewards := []struct{ id, name string }{
		{"RWD-001", "Geo"},
		{"RWD-002", "Pale Ore"},
	}
	for _, r := range rewards {
		if _, err := database.Exec(
			"INSERT INTO rewards (id, name) VALUES (?, ?)", r.id, r.name,
		); err != nil {
			return fmt.Errorf("seed rewards: %w", err)
		}
	}

	grants := []struct {
		id, itemID, rewardID string
		amount               int
	}{
		{"GRANT-001", "ITEM-001", "RWD-001", 50},
		{"GRANT-002", "ITEM-002", "RWD-001", 200},
		{"GRANT-003", "ITEM-003", "RWD-002", 1},
	}
	for _, g := range grants {
		if _, err := database.Exec(
			"INSERT INTO item_rewards (id, item_id, reward_id, amount) VALUES (?, ?, ?, ?)",
			g.id, g.itemID, g.rewardID, g.amount,
		); err != nil {
			return fmt.Errorf("seed grants: %w", err)
		}
	}

	// ITEM-002 requires ITEM-001; ITEM-004 requires the gatekeeper plus a
	// consuming Geo threshold scoped to Greenpath; ITEM-005 consumes Geo
	// with no filter and carries a freeform note.
	prereqs := []struct {
		id, itemID, requiredItemID, rewardID string
		amount                               int
		consumes                             bool
		rewardLocation, rewardCategory       string
		freeform                             string
	}{
		{"PRQ-001", "ITEM-002", "ITEM-001", "", 0, false, "", "", ""},
		{"PRQ-002", "ITEM-004", "ITEM-002", "", 0, false, "", "", ""},
		{"PRQ-003", "ITEM-004", "", "RWD-001", 150, true, "Greenpath", "", ""},
		{"PRQ-004", "ITEM-005", "", "RWD-001", 100, true, "", "", ""},
		{"PRQ-005", "ITEM-005", "", "", 0, false, "", "", "Talk to the merchant first"},
	}
	for _, p := range prereqs {
		if _, err := database.Exec(
			`INSERT INTO item_prerequisites
				(id, item_id, required_item_id, reward_id, reward_amount, consumes_reward, reward_location, reward_category, freeform_text)
			 VALUES (?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''))`,
			p.id, p.itemID, p.requiredItemID, p.rewardID, p.amount, p.consumes, p.rewardLocation, p.rewardCategory, p.freeform,
		); err != nil {
			return fmt.Errorf("seed prerequisites: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO tracked_checklists (id, checklist_id, owner, created_at) VALUES (?, ?, ?, ?)",
		"TRK-001", "CHK-001", "demo", now,
	); err != nil {
		return fmt.Errorf("seed tracked copies: %w", err)
	}

	progress := []struct {
		id, itemID string
		completed  bool
	}{
		{"PROG-001", "ITEM-001", true},
		{"PROG-002", "ITEM-002", true},
		{"PROG-003", "ITEM-003", false},
		{"PROG-004", "ITEM-004", false},
		{"PROG-005", "ITEM-005", false},
	}
	for _, p := range progress {
		completedAt := sql.NullString{}
		if p.completed {
			completedAt = sql.NullString{String: now, Valid: true}
		}
		if _, err := database.Exec(
			"INSERT INTO user_progress (id, tracked_id, item_id, completed, completed_at) VALUES (?, ?, ?, ?, ?)",
			p.id, "TRK-001", p.itemID, p.completed, completedAt,
		); err != nil {
			return fmt.Errorf("seed progress: %w", err)
		}
	}

	return nil
}
