package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order. Fresh installs get the
// full schema from schema.go and skip these; they exist for databases
// created before the corresponding feature landed.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_item_prerequisites_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_reward_and_grant_tables",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_amount_to_item_rewards",
		Up:      migrationV3,
	},
	{
		Version: 4,
		Name:    "add_location_to_checklist_items",
		Up:      migrationV4,
	},
	{
		Version: 5,
		Name:    "add_category_to_checklist_items",
		Up:      migrationV5,
	},
	{
		Version: 6,
		Name:    "add_consume_flag_and_filters_to_prerequisites",
		Up:      migrationV6,
	},
	{
		Version: 7,
		Name:    "add_activity_logs_table",
		Up:      migrationV7,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 adds the item_prerequisites table (item variant only at this
// point; reward columns arrive in V2/V6)
func migrationV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS item_prerequisites (
			id TEXT PRIMARY KEY,
			item_id TEXT NOT NULL,
			required_item_id TEXT,
			freeform_text TEXT,
			FOREIGN KEY (item_id) REFERENCES checklist_items(id) ON DELETE CASCADE,
			FOREIGN KEY (required_item_id) REFERENCES checklist_items(id) ON DELETE CASCADE
		)
	`)
	return err
}

// migrationV2 adds the rewards catalog, the item_rewards association table,
// and the reward variant columns on prerequisites
func migrationV2(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rewards (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS item_rewards (
			id TEXT PRIMARY KEY,
			item_id TEXT NOT NULL,
			reward_id TEXT NOT NULL,
			FOREIGN KEY (item_id) REFERENCES checklist_items(id) ON DELETE CASCADE,
			FOREIGN KEY (reward_id) REFERENCES rewards(id) ON DELETE CASCADE
		)`,
		`ALTER TABLE item_prerequisites ADD COLUMN reward_id TEXT`,
		`ALTER TABLE item_prerequisites ADD COLUMN reward_amount INTEGER NOT NULL DEFAULT 0`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// migrationV3 adds the grant amount column
func migrationV3(db *sql.DB) error {
	_, err := db.Exec(`ALTER TABLE item_rewards ADD COLUMN amount INTEGER NOT NULL DEFAULT 1`)
	return err
}

// migrationV4 adds the location tag to items
func migrationV4(db *sql.DB) error {
	_, err := db.Exec(`ALTER TABLE checklist_items ADD COLUMN location TEXT`)
	return err
}

// migrationV5 adds the category tag to items
func migrationV5(db *sql.DB) error {
	_, err := db.Exec(`ALTER TABLE checklist_items ADD COLUMN category TEXT`)
	return err
}

// migrationV6 adds the consume flag and the location/category filters on
// reward prerequisites
func migrationV6(db *sql.DB) error {
	stmts := []string{
		`ALTER TABLE item_prerequisites ADD COLUMN consumes_reward INTEGER NOT NULL DEFAULT 0`,
		`ALTER TABLE item_prerequisites ADD COLUMN reward_location TEXT`,
		`ALTER TABLE item_prerequisites ADD COLUMN reward_category TEXT`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// migrationV7 adds the activity log table
func migrationV7(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS activity_logs (
			id TEXT PRIMARY KEY,
			actor TEXT,
			entity_type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			action TEXT NOT NULL CHECK(action IN ('create', 'update', 'delete')),
			field_name TEXT,
			old_value TEXT,
			new_value TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
