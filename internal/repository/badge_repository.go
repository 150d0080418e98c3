package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// BadgeRepo provides persistence for badges.
type BadgeRepo struct {
	db *sql.DB
}

func NewBadgeRepo(db *sql.DB) *BadgeRepo {
	return &BadgeRepo{db: db}
}

func (r *BadgeRepo) List(ctx context.Context) ([]*model.Badge, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, display, lore FROM badges ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Badge
	for rows.Next() {
		b := new(model.Badge)
		if err := rows.Scan(&b.ID, &b.Display, &b.Lore); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BadgeRepo) Get(ctx context.Context, id string) (*model.Badge, error) {
	var b model.Badge
	err := r.db.QueryRowContext(ctx, `SELECT id, display, lore FROM badges WHERE id = ?`, id).
		Scan(&b.ID, &b.Display, &b.Lore)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BadgeRepo) Create(ctx context.Context, b *model.Badge) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO badges (id, display, lore) VALUES (?,?,?)`, b.ID, b.Display, b.Lore)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *BadgeRepo) Update(ctx context.Context, b *model.Badge) error {
	return affected(r.db.ExecContext(ctx, `UPDATE badges SET display = ?, lore = ? WHERE id = ?`, b.Display, b.Lore, b.ID))
}

func (r *BadgeRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM badges WHERE id = ?`, id))
}
