package sqlite

import (
	"context"

	"github.com/example/questlog/internal/ctxutil"
	"github.com/example/questlog/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter on top of the activity log
// repository. The acting user is read from context.
type LogWriterAdapter struct {
	logs secondary.ActivityLogRepository
}

// NewLogWriterAdapter creates a new log writer adapter.
func NewLogWriterAdapter(logs secondary.ActivityLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{logs: logs}
}

// LogCreate logs a create operation for an entity.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, entityType, entityID string) error {
	return w.write(ctx, entityType, entityID, "create", "", "", "")
}

// LogUpdate logs an update operation for an entity field.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	return w.write(ctx, entityType, entityID, "update", fieldName, oldValue, newValue)
}

// LogDelete logs a delete operation for an entity.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, entityType, entityID string) error {
	return w.write(ctx, entityType, entityID, "delete", "", "", "")
}

func (w *LogWriterAdapter) write(ctx context.Context, entityType, entityID, action, fieldName, oldValue, newValue string) error {
	id, err := w.logs.GetNextID(ctx)
	if err != nil {
		return err
	}
	return w.logs.Create(ctx, &secondary.ActivityLogRecord{
		ID:         id,
		Actor:      ctxutil.ActorFromContext(ctx),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		FieldName:  fieldName,
		OldValue:   oldValue,
		NewValue:   newValue,
	})
}
