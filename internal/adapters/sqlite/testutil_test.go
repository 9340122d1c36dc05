// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Instead, use
// setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/questlog/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedGame inserts a test game and returns its ID.
func seedGame(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "GAME-001"
	}
	if name == "" {
		name = "Test Game"
	}
	_, err := db.Exec("INSERT INTO games (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		t.Fatalf("failed to seed game: %v", err)
	}
	return id
}

// seedChecklist inserts a test checklist and returns its ID.
func seedChecklist(t *testing.T, db *sql.DB, id, gameID, title string) string {
	t.Helper()
	if id == "" {
		id = "CHK-001"
	}
	if gameID == "" {
		gameID = "GAME-001"
	}
	if title == "" {
		title = "Test Checklist"
	}
	_, err := db.Exec("INSERT INTO checklists (id, game_id, title) VALUES (?, ?, ?)", id, gameID, title)
	if err != nil {
		t.Fatalf("failed to seed checklist: %v", err)
	}
	return id
}

// seedItem inserts a test item and returns its ID.
func seedItem(t *testing.T, db *sql.DB, id, checklistID, title string, position int) string {
	t.Helper()
	if id == "" {
		id = "ITEM-001"
	}
	if checklistID == "" {
		checklistID = "CHK-001"
	}
	if title == "" {
		title = "Test Item"
	}
	_, err := db.Exec("INSERT INTO checklist_items (id, checklist_id, title, position) VALUES (?, ?, ?, ?)",
		id, checklistID, title, position)
	if err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return id
}

// seedReward inserts a test reward and returns its ID.
func seedReward(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "RWD-001"
	}
	if name == "" {
		name = "Test Reward"
	}
	_, err := db.Exec("INSERT INTO rewards (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		t.Fatalf("failed to seed reward: %v", err)
	}
	return id
}

// seedTracked inserts a test tracked checklist and returns its ID.
func seedTracked(t *testing.T, db *sql.DB, id, checklistID, owner string) string {
	t.Helper()
	if id == "" {
		id = "TRK-001"
	}
	if checklistID == "" {
		checklistID = "CHK-001"
	}
	if owner == "" {
		owner = "tester"
	}
	_, err := db.Exec("INSERT INTO tracked_checklists (id, checklist_id, owner) VALUES (?, ?, ?)",
		id, checklistID, owner)
	if err != nil {
		t.Fatalf("failed to seed tracked checklist: %v", err)
	}
	return id
}
