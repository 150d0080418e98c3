package repository

import (
	"context"
	"database/sql"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// ConditionRepo manages the condition lists attached to gameplay parents.
// Keys are (parent_type, parent_id, condition_id) with the condition id a
// sequence local to the parent.
type ConditionRepo struct {
	db *sql.DB
}

func NewConditionRepo(db *sql.DB) *ConditionRepo {
	return &ConditionRepo{db: db}
}

func (r *ConditionRepo) ListByParent(ctx context.Context, parentType, parentID string) ([]*model.Condition, error) {
	const q = `SELECT parent_type, parent_id, condition_id, type, key, value
	           FROM conditions WHERE parent_type = ? AND parent_id = ? ORDER BY condition_id`
	rows, err := r.db.QueryContext(ctx, q, parentType, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Condition
	for rows.Next() {
		c := new(model.Condition)
		if err := rows.Scan(&c.ParentType, &c.ParentID, &c.ConditionID, &c.Type, &c.Key, &c.Value); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add inserts a condition with the next sequence for its parent.
func (r *ConditionRepo) Add(ctx context.Context, c *model.Condition) error {
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

	if err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(condition_id), 0) + 1 FROM conditions WHERE parent_type = ? AND parent_id = ?`,
		c.ParentType, c.ParentID).Scan(&c.ConditionID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO conditions (parent_type, parent_id, condition_id, type, key, value) VALUES (?,?,?,?,?,?)`,
		c.ParentType, c.ParentID, c.ConditionID, c.Type, c.Key, c.Value)
	return err
}

func (r *ConditionRepo) Update(ctx context.Context, c *model.Condition) error {
	const q = `UPDATE conditions SET type = ?, key = ?, value = ?
	           WHERE parent_type = ? AND parent_id = ? AND condition_id = ?`
	return affected(r.db.ExecContext(ctx, q, c.Type, c.Key, c.Value, c.ParentType, c.ParentID, c.ConditionID))
}

func (r *ConditionRepo) Delete(ctx context.Context, parentType, parentID string, conditionID int) error {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM conditions WHERE parent_type = ? AND parent_id = ? AND condition_id = ?`,
		parentType, parentID, conditionID))
}
