package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// GUIRepo covers the guis table and its slot collection.  Slots are keyed
// by the inventory slot index, chosen by the editor rather than a
// generated sequence.
type GUIRepo struct {
	db *sql.DB
}

func NewGUIRepo(db *sql.DB) *GUIRepo {
	return &GUIRepo{db: db}
}

func (r *GUIRepo) List(ctx context.Context) ([]*model.GUI, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, size FROM guis ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.GUI
	for rows.Next() {
		g := new(model.GUI)
		if err := rows.Scan(&g.ID, &g.Title, &g.Size); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GUIRepo) Get(ctx context.Context, id string) (*model.GUI, error) {
	var g model.GUI
	if err := r.db.QueryRowContext(ctx, `SELECT id, title, size FROM guis WHERE id = ?`, id).Scan(&g.ID, &g.Title, &g.Size); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GUIRepo) Create(ctx context.Context, g *model.GUI) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO guis (id, title, size) VALUES (?,?,?)`, g.ID, g.Title, g.Size)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *GUIRepo) Update(ctx context.Context, g *model.GUI) error {
	return affected(r.db.ExecContext(ctx, `UPDATE guis SET title = ?, size = ? WHERE id = ?`, g.Title, g.Size, g.ID))
}

// Delete removes a GUI and its slots in one transaction.
func (r *GUIRepo) Delete(ctx context.Context, id string) error {
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
	if res, err = tx.ExecContext(ctx, `DELETE FROM guis WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM gui_slots WHERE gui_id = ?`, id); err != nil {
		return err
	}
	return nil
}

func (r *GUIRepo) ListSlots(ctx context.Context, id string) ([]*model.GUISlot, error) {
	const q = `SELECT gui_id, slot, material, display_name, lore, actions
	           FROM gui_slots WHERE gui_id = ? ORDER BY slot`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.GUISlot
	for rows.Next() {
		s := new(model.GUISlot)
		if err := rows.Scan(&s.GUIID, &s.Slot, &s.Material, &s.DisplayName, &s.Lore, &s.Actions); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GUIRepo) GetSlot(ctx context.Context, id string, slot int) (*model.GUISlot, error) {
	var s model.GUISlot
	err := r.db.QueryRowContext(ctx,
		`SELECT gui_id, slot, material, display_name, lore, actions FROM gui_slots WHERE gui_id = ? AND slot = ?`,
		id, slot).Scan(&s.GUIID, &s.Slot, &s.Material, &s.DisplayName, &s.Lore, &s.Actions)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSlot inserts a slot entry.  sql.ErrNoRows is returned when the GUI
// does not exist, ErrDuplicate when the slot index is already occupied.
func (r *GUIRepo) CreateSlot(ctx context.Context, s *model.GUISlot) error {
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM guis WHERE id = ?`, s.GUIID).Scan(&one); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gui_slots (gui_id, slot, material, display_name, lore, actions) VALUES (?,?,?,?,?,?)`,
		s.GUIID, s.Slot, s.Material, s.DisplayName, s.Lore, s.Actions)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *GUIRepo) UpdateSlot(ctx context.Context, s *model.GUISlot) error {
	const q = `UPDATE gui_slots SET material = ?, display_name = ?, lore = ?, actions = ?
	           WHERE gui_id = ? AND slot = ?`
	return affected(r.db.ExecContext(ctx, q, s.Material, s.DisplayName, s.Lore, s.Actions, s.GUIID, s.Slot))
}

func (r *GUIRepo) DeleteSlot(ctx context.Context, id string, slot int) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM gui_slots WHERE gui_id = ? AND slot = ?`, id, slot))
}
