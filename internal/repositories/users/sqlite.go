package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/piiguard/internal/common"
	"github.com/dmitrijs2005/piiguard/internal/dbx"
	"github.com/dmitrijs2005/piiguard/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetAll lists all users ordered by id.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `select id, name, email from users order by id`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select users: %w", common.ErrStore, err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("%w: failed to scan user: %w", common.ErrStore, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStore, err)
	}
	return result, nil
}

// Insert adds a user and records the autoincrement id on u.
func (r *SQLiteRepository) Insert(ctx context.Context, u *models.User) error {
	res, err := r.db.ExecContext(ctx, `insert into users (name, email) values (?, ?)`, u.Name, u.Email)
	if err != nil {
		return fmt.Errorf("%w: failed to insert user: %w", common.ErrStore, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to get last insert id: %w", common.ErrStore, err)
	}
	u.ID = id
	return nil
}

// Update sets name and email for one row. It expects exactly one row to be affected.
func (r *SQLiteRepository) Update(ctx context.Context, u *models.User) error {
	res, err := r.db.ExecContext(ctx, `update users set name = ?, email = ? where id = ?`, u.Name, u.Email, u.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to update user %d: %w", common.ErrStore, u.ID, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get rows affected: %w", common.ErrStore, err)
	}
	if ra != 1 {
		return fmt.Errorf("user %d: %w", u.ID, common.ErrorNotFound)
	}
	return nil
}

// DeleteAll empties the table. The autoincrement counter is kept, so ids of
// re-seeded rows keep growing.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `delete from users`); err != nil {
		return fmt.Errorf("%w: failed to delete users: %w", common.ErrStore, err)
	}
	return nil
}
