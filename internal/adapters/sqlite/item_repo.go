package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/questlog/internal/ports/secondary"
)

// ItemRepository implements secondary.ItemRepository with SQLite.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new SQLite item repository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemSelectCols = "id, checklist_id, title, description, location, category, position, created_at"

func scanItem(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ItemRecord, error) {
	var desc, location, category sql.NullString
	record := &secondary.ItemRecord{}
	err := scanner.Scan(&record.ID, &record.ChecklistID, &record.Title, &desc,
		&location, &category, &record.Position, &record.CreatedAt)
	if err != nil {
		return nil, err
	}
	record.Description = desc.String
	record.Location = location.String
	record.Category = category.String
	return record, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Create persists a new item.
func (r *ItemRepository) Create(ctx context.Context, item *secondary.ItemRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO checklist_items (id, checklist_id, title, description, location, category, position) VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.ChecklistID, item.Title, nullable(item.Description),
		nullable(item.Location), nullable(item.Category), item.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetByID retrieves an item by its ID.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*secondary.ItemRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+itemSelectCols+" FROM checklist_items WHERE id = ?", id)

	record, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return record, nil
}

// ListByChecklist retrieves a checklist's items in position order.
func (r *ItemRepository) ListByChecklist(ctx context.Context, checklistID string) ([]*secondary.ItemRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemSelectCols+" FROM checklist_items WHERE checklist_id = ? ORDER BY position, id",
		checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ItemRecord
	for rows.Next() {
		record, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Update updates an item's title, description, location, and category.
func (r *ItemRepository) Update(ctx context.Context, item *secondary.ItemRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE checklist_items SET title = ?, description = ?, location = ?, category = ? WHERE id = ?",
		item.Title, nullable(item.Description), nullable(item.Location), nullable(item.Category), item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %s not found", item.ID)
	}
	return nil
}

// Delete removes an item; grants, prerequisites, and progress rows cascade.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM checklist_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %s not found", id)
	}
	return nil
}

// MaxPosition returns the highest position within a checklist, 0 if empty.
func (r *ItemRepository) MaxPosition(ctx context.Context, checklistID string) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), 0) FROM checklist_items WHERE checklist_id = ?",
		checklistID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max position: %w", err)
	}
	return max, nil
}

// GetNextID returns the next available item ID.
func (r *ItemRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM checklist_items").Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to generate item ID: %w", err)
	}
	return fmt.Sprintf("ITEM-%03d", maxID+1), nil
}
