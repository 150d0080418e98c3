package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// StatRepo provides persistence for tracked statistics.
type StatRepo struct {
	db *sql.DB
}

func NewStatRepo(db *sql.DB) *StatRepo {
	return &StatRepo{db: db}
}

func (r *StatRepo) List(ctx context.Context) ([]*model.Stat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type, max FROM stats ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Stat
	for rows.Next() {
		s := new(model.Stat)
		if err := rows.Scan(&s.ID, &s.Type, &s.Max); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StatRepo) Get(ctx context.Context, id string) (*model.Stat, error) {
	var s model.Stat
	if err := r.db.QueryRowContext(ctx, `SELECT id, type, max FROM stats WHERE id = ?`, id).Scan(&s.ID, &s.Type, &s.Max); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatRepo) Create(ctx context.Context, s *model.Stat) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO stats (id, type, max) VALUES (?,?,?)`, s.ID, s.Type, s.Max)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *StatRepo) Update(ctx context.Context, s *model.Stat) error {
	return affected(r.db.ExecContext(ctx, `UPDATE stats SET type = ?, max = ? WHERE id = ?`, s.Type, s.Max, s.ID))
}

func (r *StatRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM stats WHERE id = ?`, id))
}
