package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// PageDataRepo mirrors the 'pagedata' table holding per-page edit metadata.
// Lock acquisition is a single conditional UPDATE so two editors racing for
// the same page cannot both win.
type PageDataRepo struct {
	db *sql.DB
}

func NewPageDataRepo(db *sql.DB) *PageDataRepo {
	return &PageDataRepo{db: db}
}

const pageCols = `page, locked, locked_by, updated_by, updated_at`

func (r *PageDataRepo) Get(ctx context.Context, page string) (*model.PageData, error) {
	var p model.PageData
	err := r.db.QueryRowContext(ctx,
		`SELECT `+pageCols+` FROM pagedata WHERE page = ?`, page).
		Scan(&p.Page, &p.Locked, &p.LockedBy, &p.UpdatedBy, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageDataRepo) List(ctx context.Context) ([]*model.PageData, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+pageCols+` FROM pagedata ORDER BY page`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PageData
	for rows.Next() {
		p := new(model.PageData)
		if err := rows.Scan(&p.Page, &p.Locked, &p.LockedBy, &p.UpdatedBy, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Touch upserts the page row and records who edited it last.
func (r *PageDataRepo) Touch(ctx context.Context, page, updatedBy string) error {
	const q = `INSERT INTO pagedata (page, updated_by) VALUES (?,?)
	           ON DUPLICATE KEY UPDATE updated_by = VALUES(updated_by)`
	_, err := r.db.ExecContext(ctx, q, page, updatedBy)
	return err
}

// Lock acquires the edit lock for uuid.  The row is created on first use.
// Re-locking a page already held by the same uuid succeeds; a lock held by
// someone else returns ErrConflict.
func (r *PageDataRepo) Lock(ctx context.Context, page, uuid string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pagedata SET locked = 1, locked_by = ? WHERE page = ? AND (locked = 0 OR locked_by = ?)`,
		uuid, page, uuid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM pagedata WHERE page = ?`, page).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO pagedata (page, locked, locked_by) VALUES (?,1,?)`, page, uuid)
		if isDuplicate(err) {
			// Someone created and locked the row between our two statements.
			return ErrConflict
		}
		return err
	}
	if err != nil {
		return err
	}
	// MySQL reports zero affected rows when the UPDATE matched but changed
	// nothing, which happens when uuid already holds the lock.
	var lockedBy sql.NullString
	var locked bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT locked, locked_by FROM pagedata WHERE page = ?`, page).Scan(&locked, &lockedBy); err != nil {
		return err
	}
	if locked && lockedBy.Valid && lockedBy.String == uuid {
		return nil
	}
	return ErrConflict
}

// Unlock releases the edit lock.  sql.ErrNoRows is returned for unknown
// pages; unlocking an unlocked page is a no-op success.
func (r *PageDataRepo) Unlock(ctx context.Context, page string) error {
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM pagedata WHERE page = ?`, page).Scan(&one); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE pagedata SET locked = 0, locked_by = NULL WHERE page = ?`, page)
	return err
}
