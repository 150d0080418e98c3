package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
	"github.com/HektorTM/wos-dashboard-sub001/internal/utils"
)

// UserRepo mirrors the metadata 'users' table.  The session gate depends on
// GetByUUID; everything else serves the user-management endpoints.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userCols = `uuid, username, password_hash, permissions, is_active, created_at, last_login`

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.UUID, &u.Username, &u.PasswordHash, &u.Permissions, &u.IsActive, &u.CreatedAt, &u.LastLogin)
	return u, err
}

// Create inserts a user with a fresh uuid and returns it.  ErrDuplicate is
// returned when the username is taken.
func (r *UserRepo) Create(ctx context.Context, username, password, permissions string, cost int) (string, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO users (uuid, username, password_hash, permissions, is_active) VALUES (?,?,?,?,1)",
		id, username, hash, permissions)
	if isDuplicate(err) {
		return "", ErrDuplicate
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetByUUID fetches a user by uuid.  sql.ErrNoRows means the account has
// been deleted, which the gate maps to an invalid session.
func (r *UserRepo) GetByUUID(ctx context.Context, id string) (model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE uuid = ? LIMIT 1", id))
}

// GetByUsername fetches a user by username for login.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE username = ? LIMIT 1", strings.TrimSpace(username)))
}

func (r *UserRepo) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userCols+" FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.User
	for rows.Next() {
		u := new(model.User)
		if err := rows.Scan(&u.UUID, &u.Username, &u.PasswordHash, &u.Permissions, &u.IsActive, &u.CreatedAt, &u.LastLogin); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites username and permissions.
func (r *UserRepo) Update(ctx context.Context, id, username, permissions string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET username = ?, permissions = ? WHERE uuid = ?",
		strings.TrimSpace(username), permissions, id)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return affected(res, err)
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id, password string, cost int) error {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	return affected(r.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE uuid = ?", hash, id))
}

// SetActive flips the is_active flag.  The gate enforces the new state on
// the user's next request.
func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) error {
	return affected(r.db.ExecContext(ctx,
		"UPDATE users SET is_active = ? WHERE uuid = ?", active, id))
}

func (r *UserRepo) UpdateLastLogin(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx,
		"UPDATE users SET last_login = ? WHERE uuid = ?", time.Now().UTC(), id))
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.ExecContext(ctx, "DELETE FROM users WHERE uuid = ?", id))
}
