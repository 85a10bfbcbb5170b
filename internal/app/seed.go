package app

import (
	"context"

	"github.com/dmitrijs2005/piiguard/internal/common"
	"github.com/dmitrijs2005/piiguard/internal/dbx"
	"github.com/dmitrijs2005/piiguard/internal/models"
)

// InitAndSeed empties the users table and inserts the reference rows in one
// transaction, so the table is never left half seeded.
func (a *App) InitAndSeed(ctx context.Context) error {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.manager.Users(tx)
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, s := range common.SeedUsers {
			if err := repo.Insert(ctx, &models.User{Name: s.Name, Email: s.Email}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "database reset", "seeded", len(common.SeedUsers))
	return nil
}
