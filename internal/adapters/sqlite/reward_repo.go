package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/questlog/internal/ports/secondary"
)

// RewardRepository implements secondary.RewardRepository with SQLite.
type RewardRepository struct {
	db *sql.DB
}

// NewRewardRepository creates a new SQLite reward repository.
func NewRewardRepository(db *sql.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// Create persists a new reward.
func (r *RewardRepository) Create(ctx context.Context, reward *secondary.RewardRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO rewards (id, name) VALUES (?, ?)",
		reward.ID, reward.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create reward: %w", err)
	}
	return nil
}

// GetByID retrieves a reward by its ID.
func (r *RewardRepository) GetByID(ctx context.Context, id string) (*secondary.RewardRecord, error) {
	record := &secondary.RewardRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name FROM rewards WHERE id = ?", id,
	).Scan(&record.ID, &record.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reward %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}
	return record, nil
}

// GetByName retrieves a reward by its unique name, or nil if absent.
func (r *RewardRepository) GetByName(ctx context.Context, name string) (*secondary.RewardRecord, error) {
	record := &secondary.RewardRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name FROM rewards WHERE name = ?", name,
	).Scan(&record.ID, &record.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reward by name: %w", err)
	}
	return record, nil
}

// List retrieves all rewards.
func (r *RewardRepository) List(ctx context.Context) ([]*secondary.RewardRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM rewards ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	defer rows.Close()

	var records []*secondary.RewardRecord
	for rows.Next() {
		record := &secondary.RewardRecord{}
		if err := rows.Scan(&record.ID, &record.Name); err != nil {
			return nil, fmt.Errorf("failed to scan reward: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetNextID returns the next available reward ID.
func (r *RewardRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM rewards").Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to generate reward ID: %w", err)
	}
	return fmt.Sprintf("RWD-%03d", maxID+1), nil
}

// CreateGrant persists an (item, reward, amount) grant.
func (r *RewardRepository) CreateGrant(ctx context.Context, grant *secondary.GrantRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO item_rewards (id, item_id, reward_id, amount) VALUES (?, ?, ?, ?)",
		grant.ID, grant.ItemID, grant.RewardID, grant.Amount,
	)
	if err != nil {
		return fmt.Errorf("failed to create grant: %w", err)
	}
	return nil
}

// ListGrantsByItem retrieves the grants credited by one item.
func (r *RewardRepository) ListGrantsByItem(ctx context.Context, itemID string) ([]*secondary.GrantRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, item_id, reward_id, amount FROM item_rewards WHERE item_id = ? ORDER BY id",
		itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	defer rows.Close()
	return collectGrants(rows)
}

// ListGrantsByChecklist retrieves every grant within a checklist.
func (r *RewardRepository) ListGrantsByChecklist(ctx context.Context, checklistID string) ([]*secondary.GrantRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.item_id, g.reward_id, g.amount
		FROM item_rewards g
		JOIN checklist_items i ON i.id = g.item_id
		WHERE i.checklist_id = ?
		ORDER BY g.id`,
		checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist grants: %w", err)
	}
	defer rows.Close()
	return collectGrants(rows)
}

func collectGrants(rows *sql.Rows) ([]*secondary.GrantRecord, error) {
	var records []*secondary.GrantRecord
	for rows.Next() {
		record := &secondary.GrantRecord{}
		if err := rows.Scan(&record.ID, &record.ItemID, &record.RewardID, &record.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// DeleteGrant removes a grant.
func (r *RewardRepository) DeleteGrant(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM item_rewards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete grant: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("grant %s not found", id)
	}
	return nil
}

// GetNextGrantID returns the next available grant ID.
func (r *RewardRepository) GetNextGrantID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 7) AS INTEGER)), 0) FROM item_rewards").Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to generate grant ID: %w", err)
	}
	return fmt.Sprintf("GRANT-%03d", maxID+1), nil
}
