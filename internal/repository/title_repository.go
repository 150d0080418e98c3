package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// TitleRepo provides persistence for chat titles.
type TitleRepo struct {
	db *sql.DB
}

func NewTitleRepo(db *sql.DB) *TitleRepo {
	return &TitleRepo{db: db}
}

func (r *TitleRepo) List(ctx context.Context) ([]*model.Title, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, display, lore FROM titles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Title
	for rows.Next() {
		t := new(model.Title)
		if err := rows.Scan(&t.ID, &t.Display, &t.Lore); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TitleRepo) Get(ctx context.Context, id string) (*model.Title, error) {
	var t model.Title
	err := r.db.QueryRowContext(ctx, `SELECT id, display, lore FROM titles WHERE id = ?`, id).
		Scan(&t.ID, &t.Display, &t.Lore)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TitleRepo) Create(ctx context.Context, t *model.Title) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO titles (id, display, lore) VALUES (?,?,?)`, t.ID, t.Display, t.Lore)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *TitleRepo) Update(ctx context.Context, t *model.Title) error {
	return affected(r.db.ExecContext(ctx, `UPDATE titles SET display = ?, lore = ? WHERE id = ?`, t.Display, t.Lore, t.ID))
}

func (r *TitleRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM titles WHERE id = ?`, id))
}
