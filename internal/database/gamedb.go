package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// gameSchema creates every gameplay table on first start.  The gameplay
// store is the same SQLite file the game server plugin reads, so column
// names follow the plugin's schema.  Natural string keys throughout;
// sub-resources (interaction children, GUI slots, conditions) use a
// composite key scoped to their parent.
const gameSchema = `
CREATE TABLE IF NOT EXISTS currencies
 (id TEXT NOT NULL PRIMARY KEY, name TEXT NOT NULL, short_name TEXT NOT NULL, color TEXT NOT NULL, icon TEXT NOT NULL DEFAULT '', hidden INTEGER NOT NULL DEFAULT 0);
CREATE TABLE IF NOT EXISTS unlockables
 (id TEXT NOT NULL PRIMARY KEY, temp INTEGER NOT NULL DEFAULT 0);
CREATE TABLE IF NOT EXISTS citems
 (id TEXT NOT NULL PRIMARY KEY, material TEXT NOT NULL, display_name TEXT NOT NULL, lore TEXT NOT NULL DEFAULT '', custom_model_data INTEGER NOT NULL DEFAULT 0,
  undroppable INTEGER NOT NULL DEFAULT 0, unusable INTEGER NOT NULL DEFAULT 0, placeable INTEGER NOT NULL DEFAULT 0);
CREATE TABLE IF NOT EXISTS cosmetics
 (id TEXT NOT NULL PRIMARY KEY, type TEXT NOT NULL, display TEXT NOT NULL, description TEXT NOT NULL DEFAULT '');
CREATE TABLE IF NOT EXISTS badges
 (id TEXT NOT NULL PRIMARY KEY, display TEXT NOT NULL, lore TEXT NOT NULL DEFAULT '');
CREATE TABLE IF NOT EXISTS titles
 (id TEXT NOT NULL PRIMARY KEY, display TEXT NOT NULL, lore TEXT NOT NULL DEFAULT '');
CREATE TABLE IF NOT EXISTS channels
 (name TEXT NOT NULL PRIMARY KEY, prefix TEXT NOT NULL, color TEXT NOT NULL, radius INTEGER NOT NULL DEFAULT 0, permission TEXT NOT NULL DEFAULT '');
CREATE TABLE IF NOT EXISTS interactions
 (id TEXT NOT NULL PRIMARY KEY);
CREATE TABLE IF NOT EXISTS interaction_actions
 (interaction_id TEXT NOT NULL, action_id INTEGER NOT NULL, match_type TEXT NOT NULL, actions TEXT NOT NULL,
  PRIMARY KEY (interaction_id, action_id));
CREATE TABLE IF NOT EXISTS interaction_particles
 (interaction_id TEXT NOT NULL, particle_id INTEGER NOT NULL, particle TEXT NOT NULL, count INTEGER NOT NULL DEFAULT 1,
  offset_x REAL NOT NULL DEFAULT 0, offset_y REAL NOT NULL DEFAULT 0, offset_z REAL NOT NULL DEFAULT 0,
  PRIMARY KEY (interaction_id, particle_id));
CREATE TABLE IF NOT EXISTS interaction_holograms
 (interaction_id TEXT NOT NULL, hologram_id INTEGER NOT NULL, lines TEXT NOT NULL,
  PRIMARY KEY (interaction_id, hologram_id));
CREATE TABLE IF NOT EXISTS guis
 (id TEXT NOT NULL PRIMARY KEY, title TEXT NOT NULL, size INTEGER NOT NULL DEFAULT 27);
CREATE TABLE IF NOT EXISTS gui_slots
 (gui_id TEXT NOT NULL, slot INTEGER NOT NULL, material TEXT NOT NULL, display_name TEXT NOT NULL DEFAULT '',
  lore TEXT NOT NULL DEFAULT '', actions TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (gui_id, slot));
CREATE TABLE IF NOT EXISTS conditions
 (parent_type TEXT NOT NULL, parent_id TEXT NOT NULL, condition_id INTEGER NOT NULL, type TEXT NOT NULL, key TEXT NOT NULL, value TEXT NOT NULL,
  PRIMARY KEY (parent_type, parent_id, condition_id));
CREATE TABLE IF NOT EXISTS cooldowns
 (id TEXT NOT NULL PRIMARY KEY, duration INTEGER NOT NULL, start_interaction TEXT NOT NULL DEFAULT '', end_interaction TEXT NOT NULL DEFAULT '');
CREATE TABLE IF NOT EXISTS stats
 (id TEXT NOT NULL PRIMARY KEY, type TEXT NOT NULL, max INTEGER NOT NULL DEFAULT 0);
CREATE TABLE IF NOT EXISTS fishing
 (id TEXT NOT NULL PRIMARY KEY, rarity TEXT NOT NULL, regions TEXT NOT NULL DEFAULT '');
CREATE TABLE IF NOT EXISTS warps
 (id TEXT NOT NULL PRIMARY KEY, world TEXT NOT NULL, x REAL NOT NULL, y REAL NOT NULL, z REAL NOT NULL,
  yaw REAL NOT NULL DEFAULT 0, pitch REAL NOT NULL DEFAULT 0, permission TEXT NOT NULL DEFAULT '');
CREATE TABLE IF NOT EXISTS playerdata
 (uuid TEXT NOT NULL PRIMARY KEY, nickname TEXT NOT NULL DEFAULT '', last_online TEXT NOT NULL DEFAULT '');
CREATE TABLE IF NOT EXISTS playerdata_unlockables
 (uuid TEXT NOT NULL, unlockable_id TEXT NOT NULL,
  PRIMARY KEY (uuid, unlockable_id));
CREATE TABLE IF NOT EXISTS playerdata_currencies
 (uuid TEXT NOT NULL, currency_id TEXT NOT NULL, amount REAL NOT NULL DEFAULT 0,
  PRIMARY KEY (uuid, currency_id));
`

// OpenGame opens the embedded gameplay SQLite database, creating the file
// and schema when missing.
func OpenGame(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers; keep the pool small.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	// WAL keeps readers unblocked while the plugin writes.
	_, _ = db.Exec("PRAGMA journal_mode = WAL;")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL;")
	_, _ = db.Exec("PRAGMA foreign_keys = ON;")

	if _, err := db.Exec(gameSchema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
