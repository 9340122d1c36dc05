package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/questlog/internal/ports/secondary"
)

// ProgressRepository implements secondary.ProgressRepository with SQLite.
type ProgressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new SQLite progress repository.
func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create persists a new progress row.
func (r *ProgressRepository) Create(ctx context.Context, progress *secondary.ProgressRecord) error {
	completed := 0
	if progress.Completed {
		completed = 1
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO user_progress (id, tracked_id, item_id, completed, completed_at) VALUES (?, ?, ?, ?, ?)",
		progress.ID, progress.TrackedID, progress.ItemID, completed, nullable(progress.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create progress: %w", err)
	}
	return nil
}

// Get retrieves the progress row for (tracked, item), or nil if absent.
func (r *ProgressRepository) Get(ctx context.Context, trackedID, itemID string) (*secondary.ProgressRecord, error) {
	var completed int
	var completedAt sql.NullString
	record := &secondary.ProgressRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, tracked_id, item_id, completed, completed_at FROM user_progress WHERE tracked_id = ? AND item_id = ?",
		trackedID, itemID,
	).Scan(&record.ID, &record.TrackedID, &record.ItemID, &completed, &completedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	record.Completed = completed != 0
	record.CompletedAt = completedAt.String
	return record, nil
}

// MapByTracked returns item id -> completed for one tracked copy.
func (r *ProgressRepository) MapByTracked(ctx context.Context, trackedID string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT item_id, completed FROM user_progress WHERE tracked_id = ?", trackedID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[string]bool)
	for rows.Next() {
		var itemID string
		var completed int
		if err := rows.Scan(&itemID, &completed); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		progress[itemID] = completed != 0
	}
	return progress, rows.Err()
}

// SetCompleted upserts the completion flag and timestamp for (tracked, item).
func (r *ProgressRepository) SetCompleted(ctx context.Context, trackedID, itemID string, completed bool, completedAt string) error {
	flag := 0
	if completed {
		flag = 1
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE user_progress SET completed = ?, completed_at = ? WHERE tracked_id = ? AND item_id = ?",
		flag, nullable(completedAt), trackedID, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to set progress: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check progress update: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// No row yet for this (tracked, item); insert one. Items added to a
	// checklist after the copy was made land here.
	id, err := r.GetNextID(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO user_progress (id, tracked_id, item_id, completed, completed_at) VALUES (?, ?, ?, ?, ?)",
		id, trackedID, itemID, flag, nullable(completedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert progress: %w", err)
	}
	return nil
}

// DeleteByItem removes all progress rows for an item.
func (r *ProgressRepository) DeleteByItem(ctx context.Context, itemID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM user_progress WHERE item_id = ?", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete progress by item: %w", err)
	}
	return nil
}

// DeleteByTracked removes all progress rows for a tracked copy.
func (r *ProgressRepository) DeleteByTracked(ctx context.Context, trackedID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM user_progress WHERE tracked_id = ?", trackedID)
	if err != nil {
		return fmt.Errorf("failed to delete progress by tracked: %w", err)
	}
	return nil
}

// GetNextID returns the next available progress ID.
func (r *ProgressRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM user_progress").Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to generate progress ID: %w", err)
	}
	return fmt.Sprintf("PROG-%03d", maxID+1), nil
}
