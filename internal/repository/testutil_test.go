package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/HektorTM/wos-dashboard-sub001/internal/database"
)

// testGameDB opens a throwaway gameplay database with the full schema
// applied.
func testGameDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenGame(filepath.Join(t.TempDir(), "game.db"))
	if err != nil {
		t.Fatalf("open game db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// testMetaDB opens a throwaway SQLite stand-in for the metadata store.  The
// repository SQL under test is engine-neutral, so the tables are declared
// here in SQLite dialect.
func testMetaDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenGame(filepath.Join(t.TempDir(), "meta.db"))
	if err != nil {
		t.Fatalf("open meta db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	stmts := []string{
		`CREATE TABLE users (
			uuid TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			permissions TEXT NOT NULL DEFAULT '',
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_login TIMESTAMP
		)`,
		`CREATE TABLE activity (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			target_id TEXT NOT NULL,
			user TEXT,
			action TEXT NOT NULL,
			timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			target_id TEXT NOT NULL,
			requester TEXT NOT NULL,
			approver TEXT,
			status TEXT NOT NULL DEFAULT 'open',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}
