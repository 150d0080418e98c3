package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// ActivityRepo mirrors the append-only 'activity' table.  The application
// only ever appends and lists; there is no update or delete path.
type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Append inserts one audit row.  An empty user is stored as NULL (system
// action).
func (r *ActivityRepo) Append(ctx context.Context, typ, targetID, user, action string) error {
	var actor any
	if user != "" {
		actor = user
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO activity (type, target_id, user, action) VALUES (?,?,?,?)",
		typ, targetID, actor, action)
	return err
}

// Recent returns the newest entries, capped at limit.
func (r *ActivityRepo) Recent(ctx context.Context, limit int) ([]*model.ActivityLogEntry, error) {
	const q = `SELECT id, type, target_id, user, action, timestamp
	           FROM activity ORDER BY id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ListByTarget returns the history of one resource, oldest first.
func (r *ActivityRepo) ListByTarget(ctx context.Context, typ, targetID string) ([]*model.ActivityLogEntry, error) {
	const q = `SELECT id, type, target_id, user, action, timestamp
	           FROM activity WHERE type = ? AND target_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, typ, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func collectEntries(rows *sql.Rows) ([]*model.ActivityLogEntry, error) {
	var out []*model.ActivityLogEntry
	for rows.Next() {
		e := new(model.ActivityLogEntry)
		if err := rows.Scan(&e.ID, &e.Type, &e.TargetID, &e.User, &e.Action, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
