// This file defines repository methods for the currencies table in the
// gameplay store.  A Currency is a flat row identified by a natural string
// key; there is no referential integrity toward player balances beyond the
// cascade performed on delete.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// CurrencyRepo encapsulates all database queries related to currencies.
type CurrencyRepo struct {
	db *sql.DB
}

// NewCurrencyRepo constructs a CurrencyRepo with the provided DB handle.
func NewCurrencyRepo(db *sql.DB) *CurrencyRepo {
	return &CurrencyRepo{db: db}
}

// List returns all currencies ordered by id.
func (r *CurrencyRepo) List(ctx context.Context) ([]*model.Currency, error) {
	const q = `SELECT id, name, short_name, color, icon, hidden FROM currencies ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Currency
	for rows.Next() {
		c := new(model.Currency)
		if err := rows.Scan(&c.ID, &c.Name, &c.ShortName, &c.Color, &c.Icon, &c.Hidden); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a currency by id, returning sql.ErrNoRows when absent.
func (r *CurrencyRepo) Get(ctx context.Context, id string) (*model.Currency, error) {
	const q = `SELECT id, name, short_name, color, icon, hidden FROM currencies WHERE id = ?`
	var c model.Currency
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.ShortName, &c.Color, &c.Icon, &c.Hidden); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new currency.  ErrDuplicate is returned when the id is
// already taken.
func (r *CurrencyRepo) Create(ctx context.Context, c *model.Currency) error {
	const q = `INSERT INTO currencies (id, name, short_name, color, icon, hidden) VALUES (?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Name, c.ShortName, c.Color, c.Icon, c.Hidden)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// Update rewrites every editable column of the currency.
func (r *CurrencyRepo) Update(ctx context.Context, c *model.Currency) error {
	const q = `UPDATE currencies SET name = ?, short_name = ?, color = ?, icon = ?, hidden = ? WHERE id = ?`
	return affected(r.db.ExecContext(ctx, q, c.Name, c.ShortName, c.Color, c.Icon, c.Hidden, c.ID))
}

// Delete removes a currency and all player balances held in it.  Both
// statements run in one transaction so a crash cannot orphan balance rows.
func (r *CurrencyRepo) Delete(ctx context.Context, id string) error {
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
	if res, err = tx.ExecContext(ctx, `DELETE FROM currencies WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM playerdata_currencies WHERE currency_id = ?`, id); err != nil {
		return err
	}
	return nil
}

// Exists reports whether a currency id is present.
func (r *CurrencyRepo) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM currencies WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
