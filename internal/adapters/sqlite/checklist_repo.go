// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/questlog/internal/ports/secondary"
)

// ChecklistRepository implements secondary.ChecklistRepository with SQLite.
type ChecklistRepository struct {
	db *sql.DB
}

// NewChecklistRepository creates a new SQLite checklist repository.
func NewChecklistRepository(db *sql.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

const checklistSelectCols = "id, game_id, title, description, created_at, updated_at"

func scanChecklist(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ChecklistRecord, error) {
	var desc sql.NullString
	record := &secondary.ChecklistRecord{}
	err := scanner.Scan(&record.ID, &record.GameID, &record.Title, &desc, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, err
	}
	record.Description = desc.String
	return record, nil
}

// Create persists a new checklist.
func (r *ChecklistRepository) Create(ctx context.Context, checklist *secondary.ChecklistRecord) error {
	var desc sql.NullString
	if checklist.Description != "" {
		desc = sql.NullString{String: checklist.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO checklists (id, game_id, title, description) VALUES (?, ?, ?, ?)",
		checklist.ID, checklist.GameID, checklist.Title, desc,
	)
	if err != nil {
		return fmt.Errorf("failed to create checklist: %w", err)
	}
	return nil
}

// GetByID retrieves a checklist by its ID.
func (r *ChecklistRepository) GetByID(ctx context.Context, id string) (*secondary.ChecklistRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+checklistSelectCols+" FROM checklists WHERE id = ?", id)

	record, err := scanChecklist(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("checklist %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return record, nil
}

// List retrieves checklists matching the given filters.
func (r *ChecklistRepository) List(ctx context.Context, filters secondary.ChecklistFilters) ([]*secondary.ChecklistRecord, error) {
	query := "SELECT " + checklistSelectCols + " FROM checklists WHERE 1=1"
	args := []any{}

	if filters.GameID != "" {
		query += " AND game_id = ?"
		args = append(args, filters.GameID)
	}

	query += " ORDER BY created_at DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ChecklistRecord
	for rows.Next() {
		record, err := scanChecklist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Update updates title and description of a checklist.
func (r *ChecklistRepository) Update(ctx context.Context, checklist *secondary.ChecklistRecord) error {
	var desc sql.NullString
	if checklist.Description != "" {
		desc = sql.NullString{String: checklist.Description, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE checklists SET title = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		checklist.Title, desc, checklist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update checklist: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("checklist %s not found", checklist.ID)
	}
	return nil
}

// Delete removes a checklist; items, prerequisites, grants, tracked copies,
// and progress rows cascade via foreign keys.
func (r *ChecklistRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM checklists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete checklist: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("checklist %s not found", id)
	}
	return nil
}

// Exists checks whether a checklist exists.
func (r *ChecklistRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM checklists WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check checklist existence: %w", err)
	}
	return count > 0, nil
}

// GetNextID returns the next available checklist ID.
func (r *ChecklistRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM checklists").Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to generate checklist ID: %w", err)
	}
	return fmt.Sprintf("CHK-%03d", maxID+1), nil
}
