// Package users is the record store for user rows.
//
// Repository is the collaborator the transform driver and operator actions
// talk to. Two implementations exist over dbx.DBTX: SQLiteRepository (the
// default, file based) and PostgresRepository. Every database failure is
// wrapped with common.ErrStore; updating a missing id yields
// common.ErrorNotFound.
package users

import (
	"context"

	"github.com/dmitrijs2005/piiguard/internal/models"
)

// Repository describes the operations piiguard needs from the users table.
type Repository interface {
	// GetAll returns every row ordered by id.
	GetAll(ctx context.Context) ([]models.User, error)

	// Insert adds a row and sets user.ID to the id assigned by the store.
	Insert(ctx context.Context, user *models.User) error

	// Update overwrites name and email of the row with user.ID.
	Update(ctx context.Context, user *models.User) error

	// DeleteAll removes every row.
	DeleteAll(ctx context.Context) error
}
