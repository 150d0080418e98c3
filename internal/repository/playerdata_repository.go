// This file defines the PlayerDataRepo, covering the playerdata row and the
// per-player unlockable and currency sub-collections.  Rows are written by
// the game server plugin as players play; the dashboard mostly reads and
// occasionally corrects them.
package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

type PlayerDataRepo struct {
	db *sql.DB
}

func NewPlayerDataRepo(db *sql.DB) *PlayerDataRepo {
	return &PlayerDataRepo{db: db}
}

func (r *PlayerDataRepo) List(ctx context.Context) ([]*model.PlayerData, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT uuid, nickname, last_online FROM playerdata ORDER BY uuid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PlayerData
	for rows.Next() {
		p := new(model.PlayerData)
		if err := rows.Scan(&p.UUID, &p.Nickname, &p.LastOnline); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PlayerDataRepo) Get(ctx context.Context, uuid string) (*model.PlayerData, error) {
	var p model.PlayerData
	err := r.db.QueryRowContext(ctx,
		`SELECT uuid, nickname, last_online FROM playerdata WHERE uuid = ?`, uuid).
		Scan(&p.UUID, &p.Nickname, &p.LastOnline)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlayerDataRepo) Create(ctx context.Context, p *model.PlayerData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO playerdata (uuid, nickname, last_online) VALUES (?,?,?)`,
		p.UUID, p.Nickname, p.LastOnline)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PlayerDataRepo) Update(ctx context.Context, p *model.PlayerData) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE playerdata SET nickname = ? WHERE uuid = ?`, p.Nickname, p.UUID))
}

// Delete removes a player row and both sub-collections in one transaction.
func (r *PlayerDataRepo) Delete(ctx context.Context, uuid string) error {
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
	if res, err = tx.ExecContext(ctx, `DELETE FROM playerdata WHERE uuid = ?`, uuid); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM playerdata_unlockables WHERE uuid = ?`, uuid); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM playerdata_currencies WHERE uuid = ?`, uuid); err != nil {
		return err
	}
	return nil
}

// ----- unlockables -----

func (r *PlayerDataRepo) ListUnlockables(ctx context.Context, uuid string) ([]*model.PlayerUnlockable, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT uuid, unlockable_id FROM playerdata_unlockables WHERE uuid = ? ORDER BY unlockable_id`, uuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PlayerUnlockable
	for rows.Next() {
		u := new(model.PlayerUnlockable)
		if err := rows.Scan(&u.UUID, &u.UnlockableID); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PlayerDataRepo) GrantUnlockable(ctx context.Context, uuid, unlockableID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO playerdata_unlockables (uuid, unlockable_id) VALUES (?,?)`, uuid, unlockableID)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PlayerDataRepo) RevokeUnlockable(ctx context.Context, uuid, unlockableID string) error {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM playerdata_unlockables WHERE uuid = ? AND unlockable_id = ?`, uuid, unlockableID))
}

// ----- currencies -----

func (r *PlayerDataRepo) ListCurrencies(ctx context.Context, uuid string) ([]*model.PlayerCurrency, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT uuid, currency_id, amount FROM playerdata_currencies WHERE uuid = ? ORDER BY currency_id`, uuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PlayerCurrency
	for rows.Next() {
		c := new(model.PlayerCurrency)
		if err := rows.Scan(&c.UUID, &c.CurrencyID, &c.Amount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SetCurrency upserts a player's balance in one currency.
func (r *PlayerDataRepo) SetCurrency(ctx context.Context, c *model.PlayerCurrency) error {
	const q = `INSERT INTO playerdata_currencies (uuid, currency_id, amount) VALUES (?,?,?)
	           ON CONFLICT(uuid, currency_id) DO UPDATE SET amount = excluded.amount`
	_, err := r.db.ExecContext(ctx, q, c.UUID, c.CurrencyID, c.Amount)
	return err
}
