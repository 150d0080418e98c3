package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// CooldownRepo provides persistence for cooldown definitions.
type CooldownRepo struct {
	db *sql.DB
}

func NewCooldownRepo(db *sql.DB) *CooldownRepo {
	return &CooldownRepo{db: db}
}

func (r *CooldownRepo) List(ctx context.Context) ([]*model.Cooldown, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, duration, start_interaction, end_interaction FROM cooldowns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Cooldown
	for rows.Next() {
		cd := new(model.Cooldown)
		if err := rows.Scan(&cd.ID, &cd.Duration, &cd.StartInteraction, &cd.EndInteraction); err != nil {
			return nil, err
		}
		out = append(out, cd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CooldownRepo) Get(ctx context.Context, id string) (*model.Cooldown, error) {
	var cd model.Cooldown
	err := r.db.QueryRowContext(ctx,
		`SELECT id, duration, start_interaction, end_interaction FROM cooldowns WHERE id = ?`, id).
		Scan(&cd.ID, &cd.Duration, &cd.StartInteraction, &cd.EndInteraction)
	if err != nil {
		return nil, err
	}
	return &cd, nil
}

func (r *CooldownRepo) Create(ctx context.Context, cd *model.Cooldown) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cooldowns (id, duration, start_interaction, end_interaction) VALUES (?,?,?,?)`,
		cd.ID, cd.Duration, cd.StartInteraction, cd.EndInteraction)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *CooldownRepo) Update(ctx context.Context, cd *model.Cooldown) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE cooldowns SET duration = ?, start_interaction = ?, end_interaction = ? WHERE id = ?`,
		cd.Duration, cd.StartInteraction, cd.EndInteraction, cd.ID))
}

func (r *CooldownRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM cooldowns WHERE id = ?`, id))
}
