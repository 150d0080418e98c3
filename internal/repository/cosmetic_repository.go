package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// CosmeticRepo provides persistence for cosmetics.
type CosmeticRepo struct {
	db *sql.DB
}

func NewCosmeticRepo(db *sql.DB) *CosmeticRepo {
	return &CosmeticRepo{db: db}
}

func (r *CosmeticRepo) List(ctx context.Context) ([]*model.Cosmetic, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type, display, description FROM cosmetics ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Cosmetic
	for rows.Next() {
		c := new(model.Cosmetic)
		if err := rows.Scan(&c.ID, &c.Type, &c.Display, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CosmeticRepo) Get(ctx context.Context, id string) (*model.Cosmetic, error) {
	var c model.Cosmetic
	err := r.db.QueryRowContext(ctx, `SELECT id, type, display, description FROM cosmetics WHERE id = ?`, id).
		Scan(&c.ID, &c.Type, &c.Display, &c.Description)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CosmeticRepo) Create(ctx context.Context, c *model.Cosmetic) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cosmetics (id, type, display, description) VALUES (?,?,?,?)`,
		c.ID, c.Type, c.Display, c.Description)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *CosmeticRepo) Update(ctx context.Context, c *model.Cosmetic) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE cosmetics SET type = ?, display = ?, description = ? WHERE id = ?`,
		c.Type, c.Display, c.Description, c.ID))
}

func (r *CosmeticRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM cosmetics WHERE id = ?`, id))
}
