package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// RequestRepo mirrors the 'requests' table.  A request leaves the open
// state exactly once; Resolve enforces the transition in SQL so two
// concurrent approvals cannot both succeed.
type RequestRepo struct {
	db *sql.DB
}

func NewRequestRepo(db *sql.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

const requestCols = `id, type, target_id, requester, approver, status, created_at`

func (r *RequestRepo) Create(ctx context.Context, req *model.Request) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO requests (type, target_id, requester, status) VALUES (?,?,?,?)`,
		req.Type, req.TargetID, req.Requester, model.RequestOpen)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *RequestRepo) Get(ctx context.Context, id int64) (*model.Request, error) {
	var req model.Request
	err := r.db.QueryRowContext(ctx,
		`SELECT `+requestCols+` FROM requests WHERE id = ?`, id).
		Scan(&req.ID, &req.Type, &req.TargetID, &req.Requester, &req.Approver, &req.Status, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List returns requests, optionally filtered by status.
func (r *RequestRepo) List(ctx context.Context, status string) ([]*model.Request, error) {
	q := `SELECT ` + requestCols + ` FROM requests ORDER BY id DESC`
	args := []any{}
	if status != "" {
		q = `SELECT ` + requestCols + ` FROM requests WHERE status = ? ORDER BY id DESC`
		args = append(args, status)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Request
	for rows.Next() {
		req := new(model.Request)
		if err := rows.Scan(&req.ID, &req.Type, &req.TargetID, &req.Requester, &req.Approver, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Resolve moves an open request to approved or denied.  sql.ErrNoRows is
// returned when the request does not exist, ErrConflict when it exists but
// is no longer open.
func (r *RequestRepo) Resolve(ctx context.Context, id int64, approver, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE requests SET status = ?, approver = ? WHERE id = ? AND status = ?`,
		status, approver, id, model.RequestOpen)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// Distinguish missing from already-resolved.
	var one int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM requests WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return sql.ErrNoRows
	}
	if err != nil {
		return err
	}
	return ErrConflict
}

func (r *RequestRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM requests WHERE id = ?`, id))
}
