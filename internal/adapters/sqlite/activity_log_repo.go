package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/questlog/internal/ports/secondary"
)

// ActivityLogRepository implements secondary.ActivityLogRepository with SQLite.
type ActivityLogRepository struct {
	db *sql.DB
}

// NewActivityLogRepository creates a new SQLite activity log repository.
func NewActivityLogRepository(db *sql.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create persists a new log entry.
func (r *ActivityLogRepository) Create(ctx context.Context, entry *secondary.ActivityLogRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_logs (id, actor, entity_type, entity_id, action, field_name, old_value, new_value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, nullable(entry.Actor), entry.EntityType, entry.EntityID, entry.Action,
		nullable(entry.FieldName), nullable(entry.OldValue), nullable(entry.NewValue),
	)
	if err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}
	return nil
}

// ListByEntity retrieves log entries for one entity, newest first.
func (r *ActivityLogRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*secondary.ActivityLogRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, actor, entity_type, entity_id, action, field_name, old_value, new_value, created_at
		FROM activity_logs
		WHERE entity_type = ? AND entity_id = ?
		ORDER BY created_at DESC, id DESC`,
		entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ActivityLogRecord
	for rows.Next() {
		var actor, fieldName, oldValue, newValue sql.NullString
		record := &secondary.ActivityLogRecord{}
		err := rows.Scan(&record.ID, &actor, &record.EntityType, &record.EntityID,
			&record.Action, &fieldName, &oldValue, &newValue, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		record.Actor = actor.String
		record.FieldName = fieldName.String
		record.OldValue = oldValue.String
		record.NewValue = newValue.String
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetNextID returns the next available log ID.
func (r *ActivityLogRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM activity_logs").Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to generate log ID: %w", err)
	}
	return fmt.Sprintf("LOG-%03d", maxID+1), nil
}
