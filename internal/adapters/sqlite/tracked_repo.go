package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/questlog/internal/ports/secondary"
)

// TrackedRepository implements secondary.TrackedChecklistRepository with SQLite.
type TrackedRepository struct {
	db *sql.DB
}

// NewTrackedRepository creates a new SQLite tracked-checklist repository.
func NewTrackedRepository(db *sql.DB) *TrackedRepository {
	return &TrackedRepository{db: db}
}

const trackedSelectCols = "id, checklist_id, owner, created_at"

// Create persists a new tracked copy.
func (r *TrackedRepository) Create(ctx context.Context, tracked *secondary.TrackedRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tracked_checklists (id, checklist_id, owner) VALUES (?, ?, ?)",
		tracked.ID, tracked.ChecklistID, tracked.Owner,
	)
	if err != nil {
		return fmt.Errorf("failed to create tracked checklist: %w", err)
	}
	return nil
}

// GetByID retrieves a tracked copy by its ID.
func (r *TrackedRepository) GetByID(ctx context.Context, id string) (*secondary.TrackedRecord, error) {
	record := &secondary.TrackedRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT "+trackedSelectCols+" FROM tracked_checklists WHERE id = ?", id,
	).Scan(&record.ID, &record.ChecklistID, &record.Owner, &record.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tracked checklist %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracked checklist: %w", err)
	}
	return record, nil
}

// List retrieves tracked copies matching the given filters.
func (r *TrackedRepository) List(ctx context.Context, filters secondary.TrackedFilters) ([]*secondary.TrackedRecord, error) {
	query := "SELECT " + trackedSelectCols + " FROM tracked_checklists WHERE 1=1"
	args := []any{}

	if filters.Owner != "" {
		query += " AND owner = ?"
		args = append(args, filters.Owner)
	}
	if filters.ChecklistID != "" {
		query += " AND checklist_id = ?"
		args = append(args, filters.ChecklistID)
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked checklists: %w", err)
	}
	defer rows.Close()

	var records []*secondary.TrackedRecord
	for rows.Next() {
		record := &secondary.TrackedRecord{}
		if err := rows.Scan(&record.ID, &record.ChecklistID, &record.Owner, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tracked checklist: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Delete removes a tracked copy; its progress rows cascade.
func (r *TrackedRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tracked_checklists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete tracked checklist: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("tracked checklist %s not found", id)
	}
	return nil
}

// GetNextID returns the next available tracked-copy ID.
func (r *TrackedRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM tracked_checklists").Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to generate tracked ID: %w", err)
	}
	return fmt.Sprintf("TRK-%03d", maxID+1), nil
}
