package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// CitemRepo provides persistence for custom item definitions.
type CitemRepo struct {
	db *sql.DB
}

func NewCitemRepo(db *sql.DB) *CitemRepo {
	return &CitemRepo{db: db}
}

const citemCols = `id, material, display_name, lore, custom_model_data, undroppable, unusable, placeable`

func (r *CitemRepo) List(ctx context.Context) ([]*model.Citem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+citemCols+` FROM citems ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Citem
	for rows.Next() {
		c := new(model.Citem)
		if err := rows.Scan(&c.ID, &c.Material, &c.DisplayName, &c.Lore, &c.CustomModelData, &c.Undroppable, &c.Unusable, &c.Placeable); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CitemRepo) Get(ctx context.Context, id string) (*model.Citem, error) {
	var c model.Citem
	err := r.db.QueryRowContext(ctx, `SELECT `+citemCols+` FROM citems WHERE id = ?`, id).
		Scan(&c.ID, &c.Material, &c.DisplayName, &c.Lore, &c.CustomModelData, &c.Undroppable, &c.Unusable, &c.Placeable)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CitemRepo) Create(ctx context.Context, c *model.Citem) error {
	const q = `INSERT INTO citems (` + citemCols + `) VALUES (?,?,?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Material, c.DisplayName, c.Lore, c.CustomModelData, c.Undroppable, c.Unusable, c.Placeable)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *CitemRepo) Update(ctx context.Context, c *model.Citem) error {
	const q = `UPDATE citems SET material = ?, display_name = ?, lore = ?, custom_model_data = ?,
	           undroppable = ?, unusable = ?, placeable = ? WHERE id = ?`
	return affected(r.db.ExecContext(ctx, q, c.Material, c.DisplayName, c.Lore, c.CustomModelData, c.Undroppable, c.Unusable, c.Placeable, c.ID))
}

func (r *CitemRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM citems WHERE id = ?`, id))
}
