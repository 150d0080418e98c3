package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// WarpRepo provides persistence for warps.  Deleting a warp also drops any
// condition list attached to it.
type WarpRepo struct {
	db *sql.DB
}

func NewWarpRepo(db *sql.DB) *WarpRepo {
	return &WarpRepo{db: db}
}

const warpCols = `id, world, x, y, z, yaw, pitch, permission`

func (r *WarpRepo) List(ctx context.Context) ([]*model.Warp, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+warpCols+` FROM warps ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Warp
	for rows.Next() {
		w := new(model.Warp)
		if err := rows.Scan(&w.ID, &w.World, &w.X, &w.Y, &w.Z, &w.Yaw, &w.Pitch, &w.Permission); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *WarpRepo) Get(ctx context.Context, id string) (*model.Warp, error) {
	var w model.Warp
	err := r.db.QueryRowContext(ctx, `SELECT `+warpCols+` FROM warps WHERE id = ?`, id).
		Scan(&w.ID, &w.World, &w.X, &w.Y, &w.Z, &w.Yaw, &w.Pitch, &w.Permission)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WarpRepo) Create(ctx context.Context, w *model.Warp) error {
	const q = `INSERT INTO warps (` + warpCols + `) VALUES (?,?,?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, q, w.ID, w.World, w.X, w.Y, w.Z, w.Yaw, w.Pitch, w.Permission)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *WarpRepo) Update(ctx context.Context, w *model.Warp) error {
	const q = `UPDATE warps SET world = ?, x = ?, y = ?, z = ?, yaw = ?, pitch = ?, permission = ? WHERE id = ?`
	return affected(r.db.ExecContext(ctx, q, w.World, w.X, w.Y, w.Z, w.Yaw, w.Pitch, w.Permission, w.ID))
}

func (r *WarpRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM warps WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM conditions WHERE parent_type = 'Warp' AND parent_id = ?`, id); err != nil {
		return err
	}
	return nil
}
