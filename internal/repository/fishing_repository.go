package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// FishingRepo provides persistence for catchable fish definitions.
type FishingRepo struct {
	db *sql.DB
}

func NewFishingRepo(db *sql.DB) *FishingRepo {
	return &FishingRepo{db: db}
}

func (r *FishingRepo) List(ctx context.Context) ([]*model.Fishing, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, rarity, regions FROM fishing ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Fishing
	for rows.Next() {
		f := new(model.Fishing)
		if err := rows.Scan(&f.ID, &f.Rarity, &f.Regions); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FishingRepo) Get(ctx context.Context, id string) (*model.Fishing, error) {
	var f model.Fishing
	if err := r.db.QueryRowContext(ctx, `SELECT id, rarity, regions FROM fishing WHERE id = ?`, id).Scan(&f.ID, &f.Rarity, &f.Regions); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FishingRepo) Create(ctx context.Context, f *model.Fishing) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO fishing (id, rarity, regions) VALUES (?,?,?)`, f.ID, f.Rarity, f.Regions)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *FishingRepo) Update(ctx context.Context, f *model.Fishing) error {
	return affected(r.db.ExecContext(ctx, `UPDATE fishing SET rarity = ?, regions = ? WHERE id = ?`, f.Rarity, f.Regions, f.ID))
}

func (r *FishingRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM fishing WHERE id = ?`, id))
}
