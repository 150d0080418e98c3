package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// ChannelRepo provides persistence for chat channels.  Channels are keyed
// by name rather than a synthetic id.
type ChannelRepo struct {
	db *sql.DB
}

func NewChannelRepo(db *sql.DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

func (r *ChannelRepo) List(ctx context.Context) ([]*model.Channel, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, prefix, color, radius, permission FROM channels ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Channel
	for rows.Next() {
		ch := new(model.Channel)
		if err := rows.Scan(&ch.Name, &ch.Prefix, &ch.Color, &ch.Radius, &ch.Permission); err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ChannelRepo) Get(ctx context.Context, name string) (*model.Channel, error) {
	var ch model.Channel
	err := r.db.QueryRowContext(ctx,
		`SELECT name, prefix, color, radius, permission FROM channels WHERE name = ?`, name).
		Scan(&ch.Name, &ch.Prefix, &ch.Color, &ch.Radius, &ch.Permission)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *ChannelRepo) Create(ctx context.Context, ch *model.Channel) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO channels (name, prefix, color, radius, permission) VALUES (?,?,?,?,?)`,
		ch.Name, ch.Prefix, ch.Color, ch.Radius, ch.Permission)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *ChannelRepo) Update(ctx context.Context, ch *model.Channel) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE channels SET prefix = ?, color = ?, radius = ?, permission = ? WHERE name = ?`,
		ch.Prefix, ch.Color, ch.Radius, ch.Permission, ch.Name))
}

func (r *ChannelRepo) Delete(ctx context.Context, name string) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM channels WHERE name = ?`, name))
}
