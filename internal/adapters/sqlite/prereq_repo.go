package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/questlog/internal/ports/secondary"
)

// PrerequisiteRepository implements secondary.PrerequisiteRepository with SQLite.
type PrerequisiteRepository struct {
	db *sql.DB
}

// NewPrerequisiteRepository creates a new SQLite prerequisite repository.
func NewPrerequisiteRepository(db *sql.DB) *PrerequisiteRepository {
	return &PrerequisiteRepository{db: db}
}

const prereqSelectCols = "id, item_id, required_item_id, reward_id, reward_amount, consumes_reward, reward_location, reward_category, freeform_text"

func scanPrereq(scanner interface {
	Scan(dest ...any) error
}) (*secondary.PrerequisiteRecord, error) {
	var requiredItem, rewardID, location, category, freeform sql.NullString
	var consumes int
	record := &secondary.PrerequisiteRecord{}
	err := scanner.Scan(&record.ID, &record.ItemID, &requiredItem, &rewardID,
		&record.RewardAmount, &consumes, &location, &category, &freeform)
	if err != nil {
		return nil, err
	}
	record.RequiredItemID = requiredItem.String
	record.RewardID = rewardID.String
	record.ConsumesReward = consumes != 0
	record.RewardLocation = location.String
	record.RewardCategory = category.String
	record.FreeformText = freeform.String
	return record, nil
}

// Create persists a new prerequisite.
func (r *PrerequisiteRepository) Create(ctx context.Context, prereq *secondary.PrerequisiteRecord) error {
	consumes := 0
	if prereq.ConsumesReward {
		consumes = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO item_prerequisites
			(id, item_id, required_item_id, reward_id, reward_amount, consumes_reward, reward_location, reward_category, freeform_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		prereq.ID, prereq.ItemID, nullable(prereq.RequiredItemID), nullable(prereq.RewardID),
		prereq.RewardAmount, consumes, nullable(prereq.RewardLocation),
		nullable(prereq.RewardCategory), nullable(prereq.FreeformText),
	)
	if err != nil {
		return fmt.Errorf("failed to create prerequisite: %w", err)
	}
	return nil
}

// GetByID retrieves a prerequisite by its ID.
func (r *PrerequisiteRepository) GetByID(ctx context.Context, id string) (*secondary.PrerequisiteRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+prereqSelectCols+" FROM item_prerequisites WHERE id = ?", id)

	record, err := scanPrereq(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("prerequisite %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prerequisite: %w", err)
	}
	return record, nil
}

// ListByItem retrieves the prerequisites gating one item.
func (r *PrerequisiteRepository) ListByItem(ctx context.Context, itemID string) ([]*secondary.PrerequisiteRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+prereqSelectCols+" FROM item_prerequisites WHERE item_id = ? ORDER BY id",
		itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prerequisites: %w", err)
	}
	defer rows.Close()
	return collectPrereqs(rows)
}

// ListByChecklist retrieves every prerequisite within a checklist.
func (r *PrerequisiteRepository) ListByChecklist(ctx context.Context, checklistID string) ([]*secondary.PrerequisiteRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.item_id, p.required_item_id, p.reward_id, p.reward_amount, p.consumes_reward, p.reward_location, p.reward_category, p.freeform_text
		FROM item_prerequisites p
		JOIN checklist_items i ON i.id = p.item_id
		WHERE i.checklist_id = ?
		ORDER BY p.id`,
		checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist prerequisites: %w", err)
	}
	defer rows.Close()
	return collectPrereqs(rows)
}

func collectPrereqs(rows *sql.Rows) ([]*secondary.PrerequisiteRecord, error) {
	var records []*secondary.PrerequisiteRecord
	for rows.Next() {
		record, err := scanPrereq(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prerequisite: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ListDependentsOnItem returns ids of items declaring an item prerequisite
// on the given item.
func (r *PrerequisiteRepository) ListDependentsOnItem(ctx context.Context, requiredItemID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT item_id FROM item_prerequisites WHERE required_item_id = ? ORDER BY item_id",
		requiredItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list item dependents: %w", err)
	}
	defer rows.Close()
	return collectIDs(rows)
}

// ListDependentsOnReward returns ids of items declaring a reward prerequisite
// on the given reward.
func (r *PrerequisiteRepository) ListDependentsOnReward(ctx context.Context, rewardID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT item_id FROM item_prerequisites WHERE reward_id = ? ORDER BY item_id",
		rewardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward dependents: %w", err)
	}
	defer rows.Close()
	return collectIDs(rows)
}

func collectIDs(rows *sql.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes a prerequisite.
func (r *PrerequisiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM item_prerequisites WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete prerequisite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("prerequisite %s not found", id)
	}
	return nil
}

// GetNextID returns the next available prerequisite ID.
func (r *PrerequisiteRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM item_prerequisites").Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to generate prerequisite ID: %w", err)
	}
	return fmt.Sprintf("PRQ-%03d", maxID+1), nil
}
