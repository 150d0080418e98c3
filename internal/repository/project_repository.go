package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// ProjectRepo covers projects and their member and work-item collections.
type ProjectRepo struct {
	db *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) List(ctx context.Context) ([]*model.Project, error) {
	const q = `SELECT id, name, description, status, created_by, created_at FROM projects ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Project
	for rows.Next() {
		p := new(model.Project)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepo) Get(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, status, created_by, created_at FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts the project and its creator as first member in one
// transaction.
func (r *ProjectRepo) Create(ctx context.Context, p *model.Project) error {
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

	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (id, name, description, status, created_by) VALUES (?,?,?,?,?)`,
		p.ID, p.Name, p.Description, p.Status, p.CreatedBy)
	if isDuplicate(err) {
		err = ErrDuplicate
		return err
	}
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO project_members (project_id, uuid, role) VALUES (?,?,'owner')`,
		p.ID, p.CreatedBy)
	return err
}

func (r *ProjectRepo) Update(ctx context.Context, p *model.Project) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, status = ? WHERE id = ?`,
		p.Name, p.Description, p.Status, p.ID))
}

// Delete removes the project with its members and items in one transaction.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
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
	if res, err = tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM project_members WHERE project_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM project_items WHERE project_id = ?`, id); err != nil {
		return err
	}
	return nil
}

// ----- members -----

func (r *ProjectRepo) ListMembers(ctx context.Context, id string) ([]*model.ProjectMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT project_id, uuid, role FROM project_members WHERE project_id = ? ORDER BY uuid`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ProjectMember
	for rows.Next() {
		m := new(model.ProjectMember)
		if err := rows.Scan(&m.ProjectID, &m.UUID, &m.Role); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddMember inserts a membership.  sql.ErrNoRows is returned when the
// project does not exist, ErrDuplicate when the user is already a member.
func (r *ProjectRepo) AddMember(ctx context.Context, m *model.ProjectMember) error {
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM projects WHERE id = ?`, m.ProjectID).Scan(&one); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO project_members (project_id, uuid, role) VALUES (?,?,?)`,
		m.ProjectID, m.UUID, m.Role)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (r *ProjectRepo) RemoveMember(ctx context.Context, id, memberUUID string) error {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM project_members WHERE project_id = ? AND uuid = ?`, id, memberUUID))
}

// ----- items -----

func (r *ProjectRepo) ListItems(ctx context.Context, id string) ([]*model.ProjectItem, error) {
	const q = `SELECT project_id, item_id, type, target, description, done
	           FROM project_items WHERE project_id = ? ORDER BY item_id`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ProjectItem
	for rows.Next() {
		it := new(model.ProjectItem)
		if err := rows.Scan(&it.ProjectID, &it.ItemID, &it.Type, &it.Target, &it.Description, &it.Done); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddItem inserts a work item with the next per-project sequence number.
func (r *ProjectRepo) AddItem(ctx context.Context, it *model.ProjectItem) error {
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

	var one int
	if err = tx.QueryRowContext(ctx, `SELECT 1 FROM projects WHERE id = ?`, it.ProjectID).Scan(&one); err != nil {
		return err
	}
	if err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(item_id), 0) + 1 FROM project_items WHERE project_id = ?`,
		it.ProjectID).Scan(&it.ItemID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO project_items (project_id, item_id, type, target, description, done) VALUES (?,?,?,?,?,?)`,
		it.ProjectID, it.ItemID, it.Type, it.Target, it.Description, it.Done)
	return err
}

func (r *ProjectRepo) UpdateItem(ctx context.Context, it *model.ProjectItem) error {
	const q = `UPDATE project_items SET type = ?, target = ?, description = ?, done = ?
	           WHERE project_id = ? AND item_id = ?`
	return affected(r.db.ExecContext(ctx, q, it.Type, it.Target, it.Description, it.Done, it.ProjectID, it.ItemID))
}

func (r *ProjectRepo) DeleteItem(ctx context.Context, id string, itemID int) error {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM project_items WHERE project_id = ? AND item_id = ?`, id, itemID))
}
