package activity

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/HektorTM/wos-dashboard-sub001/internal/database"
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
)

func newTestLogger(t *testing.T) (*Logger, *repository.ActivityRepo) {
	t.Helper()
	db, err := database.OpenGame(filepath.Join(t.TempDir(), "meta.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE activity (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL,
		target_id TEXT NOT NULL,
		user TEXT,
		action TEXT NOT NULL,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	repo := repository.NewActivityRepo(db)
	return NewLogger(repo, false), repo
}

func TestRecordAppendsRow(t *testing.T) {
	logger, repo := newTestLogger(t)

	logger.Record(context.Background(), Entry{Type: "Warp", TargetID: "spawn", User: "u1", Action: "Created"})

	rows, err := repo.ListByTarget(context.Background(), "Warp", "spawn")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].User == nil || *rows[0].User != "u1" {
		t.Fatalf("actor = %v", rows[0].User)
	}
}

func TestRecordSurvivesCancelledRequest(t *testing.T) {
	logger, repo := newTestLogger(t)

	// The caller's context is already cancelled; the append must still land
	// because the logger detaches from it.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger.Record(ctx, Entry{Type: "Warp", TargetID: "hub", User: "u1", Action: "Deleted"})

	rows, err := repo.ListByTarget(context.Background(), "Warp", "hub")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	// A database without the activity table makes every append fail.
	db, err := database.OpenGame(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	broken := NewLogger(repository.NewActivityRepo(db), false)

	// Must not panic or propagate anything.
	broken.Record(context.Background(), Entry{Type: "Warp", TargetID: "x", Action: "Created"})
}
