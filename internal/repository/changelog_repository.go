package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// ChangelogRepo mirrors the 'changelogs' table.
type ChangelogRepo struct {
	db *sql.DB
}

func NewChangelogRepo(db *sql.DB) *ChangelogRepo {
	return &ChangelogRepo{db: db}
}

const changelogCols = `id, version, title, body, author, created_at`

func (r *ChangelogRepo) Create(ctx context.Context, cl *model.Changelog) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO changelogs (version, title, body, author) VALUES (?,?,?,?)`,
		cl.Version, cl.Title, cl.Body, cl.Author)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ChangelogRepo) Get(ctx context.Context, id int64) (*model.Changelog, error) {
	var cl model.Changelog
	err := r.db.QueryRowContext(ctx,
		`SELECT `+changelogCols+` FROM changelogs WHERE id = ?`, id).
		Scan(&cl.ID, &cl.Version, &cl.Title, &cl.Body, &cl.Author, &cl.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *ChangelogRepo) List(ctx context.Context) ([]*model.Changelog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+changelogCols+` FROM changelogs ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Changelog
	for rows.Next() {
		cl := new(model.Changelog)
		if err := rows.Scan(&cl.ID, &cl.Version, &cl.Title, &cl.Body, &cl.Author, &cl.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ChangelogRepo) Update(ctx context.Context, cl *model.Changelog) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE changelogs SET version = ?, title = ?, body = ? WHERE id = ?`,
		cl.Version, cl.Title, cl.Body, cl.ID))
}

func (r *ChangelogRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM changelogs WHERE id = ?`, id))
}
