// This file defines the InteractionRepo, covering the interactions table
// and its three child collections (actions, particles, holograms).  Child
// rows are keyed by an integer sequence scoped to the parent interaction;
// the next value is computed inside the insert transaction so concurrent
// adds cannot collide.
package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

type InteractionRepo struct {
	db *sql.DB
}

func NewInteractionRepo(db *sql.DB) *InteractionRepo {
	return &InteractionRepo{db: db}
}

// ----- parent rows -----

func (r *InteractionRepo) List(ctx context.Context) ([]*model.Interaction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM interactions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Interaction
	for rows.Next() {
		i := new(model.Interaction)
		if err := rows.Scan(&i.ID); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InteractionRepo) Get(ctx context.Context, id string) (*model.Interaction, error) {
	var i model.Interaction
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM interactions WHERE id = ?`, id).Scan(&i.ID); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InteractionRepo) Create(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO interactions (id) VALUES (?)`, id)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// Delete removes an interaction, its child collections and any condition
// list attached to it, inside one transaction.
func (r *InteractionRepo) Delete(ctx context.Context, id string) error {
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
	if res, err = tx.ExecContext(ctx, `DELETE FROM interactions WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}
	for _, q := range []string{
		`DELETE FROM interaction_actions WHERE interaction_id = ?`,
		`DELETE FROM interaction_particles WHERE interaction_id = ?`,
		`DELETE FROM interaction_holograms WHERE interaction_id = ?`,
	} {
		if _, err = tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM conditions WHERE parent_type = 'Interaction' AND parent_id = ?`, id); err != nil {
		return err
	}
	return nil
}

// ----- actions -----

func (r *InteractionRepo) ListActions(ctx context.Context, id string) ([]*model.InteractionAction, error) {
	const q = `SELECT interaction_id, action_id, match_type, actions
	           FROM interaction_actions WHERE interaction_id = ? ORDER BY action_id`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.InteractionAction
	for rows.Next() {
		a := new(model.InteractionAction)
		if err := rows.Scan(&a.InteractionID, &a.ActionID, &a.MatchType, &a.Actions); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddAction inserts a new action with the next per-interaction sequence
// number and returns it.  sql.ErrNoRows is returned when the parent does
// not exist.
func (r *InteractionRepo) AddAction(ctx context.Context, a *model.InteractionAction) error {
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

	if err = parentExists(ctx, tx, a.InteractionID); err != nil {
		return err
	}
	if err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(action_id), 0) + 1 FROM interaction_actions WHERE interaction_id = ?`,
		a.InteractionID).Scan(&a.ActionID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO interaction_actions (interaction_id, action_id, match_type, actions) VALUES (?,?,?,?)`,
		a.InteractionID, a.ActionID, a.MatchType, a.Actions)
	return err
}

func (r *InteractionRepo) UpdateAction(ctx context.Context, a *model.InteractionAction) error {
	const q = `UPDATE interaction_actions SET match_type = ?, actions = ?
	           WHERE interaction_id = ? AND action_id = ?`
	return affected(r.db.ExecContext(ctx, q, a.MatchType, a.Actions, a.InteractionID, a.ActionID))
}

func (r *InteractionRepo) DeleteAction(ctx context.Context, id string, actionID int) error {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM interaction_actions WHERE interaction_id = ? AND action_id = ?`, id, actionID))
}

// ----- particles -----

func (r *InteractionRepo) ListParticles(ctx context.Context, id string) ([]*model.InteractionParticle, error) {
	const q = `SELECT interaction_id, particle_id, particle, count, offset_x, offset_y, offset_z
	           FROM interaction_particles WHERE interaction_id = ? ORDER BY particle_id`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.InteractionParticle
	for rows.Next() {
		p := new(model.InteractionParticle)
		if err := rows.Scan(&p.InteractionID, &p.ParticleID, &p.Particle, &p.Count, &p.OffsetX, &p.OffsetY, &p.OffsetZ); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InteractionRepo) AddParticle(ctx context.Context, p *model.InteractionParticle) error {
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

	if err = parentExists(ctx, tx, p.InteractionID); err != nil {
		return err
	}
	if err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(particle_id), 0) + 1 FROM interaction_particles WHERE interaction_id = ?`,
		p.InteractionID).Scan(&p.ParticleID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO interaction_particles (interaction_id, particle_id, particle, count, offset_x, offset_y, offset_z)
		 VALUES (?,?,?,?,?,?,?)`,
		p.InteractionID, p.ParticleID, p.Particle, p.Count, p.OffsetX, p.OffsetY, p.OffsetZ)
	return err
}

func (r *InteractionRepo) UpdateParticle(ctx context.Context, p *model.InteractionParticle) error {
	const q = `UPDATE interaction_particles SET particle = ?, count = ?, offset_x = ?, offset_y = ?, offset_z = ?
	           WHERE interaction_id = ? AND particle_id = ?`
	return affected(r.db.ExecContext(ctx, q, p.Particle, p.Count, p.OffsetX, p.OffsetY, p.OffsetZ, p.InteractionID, p.ParticleID))
}

func (r *InteractionRepo) DeleteParticle(ctx context.Context, id string, particleID int) error {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM interaction_particles WHERE interaction_id = ? AND particle_id = ?`, id, particleID))
}

// ----- holograms -----

func (r *InteractionRepo) ListHolograms(ctx context.Context, id string) ([]*model.InteractionHologram, error) {
	const q = `SELECT interaction_id, hologram_id, lines
	           FROM interaction_holograms WHERE interaction_id = ? ORDER BY hologram_id`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.InteractionHologram
	for rows.Next() {
		h := new(model.InteractionHologram)
		if err := rows.Scan(&h.InteractionID, &h.HologramID, &h.Lines); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InteractionRepo) AddHologram(ctx context.Context, h *model.InteractionHologram) error {
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

	if err = parentExists(ctx, tx, h.InteractionID); err != nil {
		return err
	}
	if err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(hologram_id), 0) + 1 FROM interaction_holograms WHERE interaction_id = ?`,
		h.InteractionID).Scan(&h.HologramID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO interaction_holograms (interaction_id, hologram_id, lines) VALUES (?,?,?)`,
		h.InteractionID, h.HologramID, h.Lines)
	return err
}

func (r *InteractionRepo) UpdateHologram(ctx context.Context, h *model.InteractionHologram) error {
	const q = `UPDATE interaction_holograms SET lines = ? WHERE interaction_id = ? AND hologram_id = ?`
	return affected(r.db.ExecContext(ctx, q, h.Lines, h.InteractionID, h.HologramID))
}

func (r *InteractionRepo) DeleteHologram(ctx context.Context, id string, hologramID int) error {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM interaction_holograms WHERE interaction_id = ? AND hologram_id = ?`, id, hologramID))
}

// parentExists verifies the interaction row inside the caller's
// transaction; sql.ErrNoRows propagates to the handler as a 404.
func parentExists(ctx context.Context, tx *sql.Tx, id string) error {
	var one int
	return tx.QueryRowContext(ctx, `SELECT 1 FROM interactions WHERE id = ?`, id).Scan(&one)
}
