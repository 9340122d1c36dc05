package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/questlog/internal/ports/secondary"
)

// GameRepository implements secondary.GameRepository with SQLite.
type GameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new SQLite game repository.
func NewGameRepository(db *sql.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create persists a new game.
func (r *GameRepository) Create(ctx context.Context, game *secondary.GameRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO games (id, name) VALUES (?, ?)",
		game.ID, game.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// GetByID retrieves a game by its ID.
func (r *GameRepository) GetByID(ctx context.Context, id string) (*secondary.GameRecord, error) {
	record := &secondary.GameRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM games WHERE id = ?", id,
	).Scan(&record.ID, &record.Name, &record.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return record, nil
}

// GetByName retrieves a game by its unique name, or nil if absent.
func (r *GameRepository) GetByName(ctx context.Context, name string) (*secondary.GameRecord, error) {
	record := &secondary.GameRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM games WHERE name = ?", name,
	).Scan(&record.ID, &record.Name, &record.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by name: %w", err)
	}
	return record, nil
}

// List retrieves all games.
func (r *GameRepository) List(ctx context.Context) ([]*secondary.GameRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, created_at FROM games ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var records []*secondary.GameRecord
	for rows.Next() {
		record := &secondary.GameRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetNextID returns the next available game ID.
func (r *GameRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM games").Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to generate game ID: %w", err)
	}
	return fmt.Sprintf("GAME-%03d", maxID+1), nil
}
