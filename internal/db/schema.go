package db

// SchemaSQL is the complete modern schema for fresh questlog installs.
// This schema reflects the current state after all migrations.
//
// This is the single source of truth for the database schema. All repository
// tests load it via GetSchemaSQL() so a column referenced by repository code
// but missing here fails tests immediately with "no such column" instead of
// drifting. Keep it in sync with the migrations in migrations.go.
const SchemaSQL = `
-- Games (catalog; checklists are scoped to a game)
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Checklists (authored templates users copy)
CREATE TABLE IF NOT EXISTS checklists (
	id TEXT PRIMARY KEY,
	game_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(id)
);

-- Checklist items (location/category tags feed filtered reward tallies)
CREATE TABLE IF NOT EXISTS checklist_items (
	id TEXT PRIMARY KEY,
	checklist_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	location TEXT,
	category TEXT,
	position INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (checklist_id) REFERENCES checklists(id) ON DELETE CASCADE
);

-- Rewards (global catalog, not scoped per checklist)
CREATE TABLE IF NOT EXISTS rewards (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

-- Reward grants: completing the item credits amount of the reward
CREATE TABLE IF NOT EXISTS item_rewards (
	id TEXT PRIMARY KEY,
	item_id TEXT NOT NULL,
	reward_id TEXT NOT NULL,
	amount INTEGER NOT NULL DEFAULT 1 CHECK(amount >= 1),
	FOREIGN KEY (item_id) REFERENCES checklist_items(id) ON DELETE CASCADE,
	FOREIGN KEY (reward_id) REFERENCES rewards(id) ON DELETE CASCADE
);

-- Prerequisites: exactly one variant populated per row
--   item:     required_item_id
--   reward:   reward_id + reward_amount (+ consumes_reward, filters)
--   freeform: freeform_text
-- Malformed rows (no variant) are tolerated at read time.
CREATE TABLE IF NOT EXISTS item_prerequisites (
	id TEXT PRIMARY KEY,
	item_id TEXT NOT NULL,
	required_item_id TEXT,
	reward_id TEXT,
	reward_amount INTEGER NOT NULL DEFAULT 0,
	consumes_reward INTEGER NOT NULL DEFAULT 0,
	reward_location TEXT,
	reward_category TEXT,
	freeform_text TEXT,
	FOREIGN KEY (item_id) REFERENCES checklist_items(id) ON DELETE CASCADE,
	FOREIGN KEY (required_item_id) REFERENCES checklist_items(id) ON DELETE CASCADE,
	FOREIGN KEY (reward_id) REFERENCES rewards(id) ON DELETE CASCADE
);

-- Tracked copies (one owner's personal copy of a checklist)
CREATE TABLE IF NOT EXISTS tracked_checklists (
	id TEXT PRIMARY KEY,
	checklist_id TEXT NOT NULL,
	owner TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (checklist_id) REFERENCES checklists(id) ON DELETE CASCADE,
	UNIQUE(checklist_id, owner)
);

-- Per-item completion state within a tracked copy
CREATE TABLE IF NOT EXISTS user_progress (
	id TEXT PRIMARY KEY,
	tracked_id TEXT NOT NULL,
	item_id TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	completed_at DATETIME,
	FOREIGN KEY (tracked_id) REFERENCES tracked_checklists(id) ON DELETE CASCADE,
	FOREIGN KEY (item_id) REFERENCES checklist_items(id) ON DELETE CASCADE,
	UNIQUE(tracked_id, item_id)
);

-- Activity log (audit trail of mutations)
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
);

CREATE INDEX IF NOT EXISTS idx_items_checklist ON checklist_items(checklist_id);
CREATE INDEX IF NOT EXISTS idx_prereqs_item ON item_prerequisites(item_id);
CREATE INDEX IF NOT EXISTS idx_prereqs_required ON item_prerequisites(required_item_id);
CREATE INDEX IF NOT EXISTS idx_prereqs_reward ON item_prerequisites(reward_id);
CREATE INDEX IF NOT EXISTS idx_grants_item ON item_rewards(item_id);
CREATE INDEX IF NOT EXISTS idx_grants_reward ON item_rewards(reward_id);
CREATE INDEX IF NOT EXISTS idx_progress_tracked ON user_progress(tracked_id);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create the modern schema directly and mark all
		// migrations as applied so they never run.
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
