package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// UnlockableRepo provides persistence for unlockables.
type UnlockableRepo struct {
	db *sql.DB
}

func NewUnlockableRepo(db *sql.DB) *UnlockableRepo {
	return &UnlockableRepo{db: db}
}

func (r *UnlockableRepo) List(ctx context.Context) ([]*model.Unlockable, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, temp FROM unlockables ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Unlockable
	for rows.Next() {
		u := new(model.Unlockable)
		if err := rows.Scan(&u.ID, &u.Temp); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UnlockableRepo) Get(ctx context.Context, id string) (*model.Unlockable, error) {
	var u model.Unlockable
	err := r.db.QueryRowContext(ctx, `SELECT id, temp FROM unlockables WHERE id = ?`, id).Scan(&u.ID, &u.Temp)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UnlockableRepo) Create(ctx context.Context, u *model.Unlockable) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO unlockables (id, temp) VALUES (?,?)`, u.ID, u.Temp)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *UnlockableRepo) Update(ctx context.Context, u *model.Unlockable) error {
	return affected(r.db.ExecContext(ctx, `UPDATE unlockables SET temp = ? WHERE id = ?`, u.Temp, u.ID))
}

// Delete removes an unlockable together with every matching
// playerdata_unlockables row, inside one transaction.
func (r *UnlockableRepo) Delete(ctx context.Context, id string) error {
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
	if res, err = tx.ExecContext(ctx, `DELETE FROM unlockables WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM playerdata_unlockables WHERE unlockable_id = ?`, id); err != nil {
		return err
	}
	return nil
}
