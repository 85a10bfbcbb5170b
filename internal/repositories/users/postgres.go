package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/piiguard/internal/common"
	"github.com/dmitrijs2005/piiguard/internal/dbx"
	"github.com/dmitrijs2005/piiguard/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query :=
		`SELECT id, name, email FROM users
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrStore, err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("%w: db error: %w", common.ErrStore, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrStore, err)
	}

	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, u *models.User) error {
	query :=
		`INSERT INTO users (name, email)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	if err := r.db.QueryRowContext(ctx, query, u.Name, u.Email).Scan(&u.ID); err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrStore, err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, u *models.User) error {
	query :=
		`UPDATE users SET name = $1, email = $2
		 WHERE id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.ID)
	if err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrStore, err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrStore, err)
	}
	if ra != 1 {
		return fmt.Errorf("user %d: %w", u.ID, common.ErrorNotFound)
	}

	return nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrStore, err)
	}

	return nil
}
