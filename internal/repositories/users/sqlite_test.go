package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/piiguard/internal/common"
	"github.com/dmitrijs2005/piiguard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestSQLite_InsertAssignsIDs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	a := &models.User{Name: "Anna Andersson", Email: "anna@test.se"}
	b := &models.User{Name: "Bo Bengtsson", Email: "bo@test.se"}
	require.NoError(t, r.Insert(ctx, a))
	require.NoError(t, r.Insert(ctx, b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestSQLite_GetAll_OrderedByID(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO users(id, name, email) VALUES
	  (5, 'e', 'e@x'),
	  (2, 'b', 'b@x'),
	  (9, 'i', 'i@x')
	`)
	require.NoError(t, err)

	got, err := NewSQLiteRepository(db).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{2, 5, 9}, []int64{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, models.User{ID: 2, Name: "b", Email: "b@x"}, got[0])
}

func TestSQLite_GetAll_Empty(t *testing.T) {
	got, err := NewSQLiteRepository(setupDB(t)).GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLite_Update(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := &models.User{Name: "Anna Andersson", Email: "anna@test.se"}
	require.NoError(t, r.Insert(ctx, u))

	u.Name, u.Email = "Erik Johansson", "erik@example.com"
	require.NoError(t, r.Update(ctx, u))

	var name, email string
	require.NoError(t, db.QueryRow(`SELECT name, email FROM users WHERE id=?`, u.ID).Scan(&name, &email))
	assert.Equal(t, "Erik Johansson", name)
	assert.Equal(t, "erik@example.com", email)
}

func TestSQLite_Update_MissingRow(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	err := r.Update(context.Background(), &models.User{ID: 42, Name: "x", Email: "y"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_DeleteAll_KeepsAutoincrement(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, &models.User{Name: "a", Email: "a@x"}))
	require.NoError(t, r.Insert(ctx, &models.User{Name: "b", Email: "b@x"}))
	require.NoError(t, r.DeleteAll(ctx))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	c := &models.User{Name: "c", Email: "c@x"}
	require.NoError(t, r.Insert(ctx, c))
	assert.Equal(t, int64(3), c.ID)
}

func TestSQLite_ErrorsWrapStoreError(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.GetAll(ctx)
	assert.ErrorIs(t, err, common.ErrStore)
	assert.ErrorIs(t, r.Insert(ctx, &models.User{}), common.ErrStore)
	assert.ErrorIs(t, r.Update(ctx, &models.User{ID: 1}), common.ErrStore)
	assert.ErrorIs(t, r.DeleteAll(ctx), common.ErrStore)
}

func TestSQLite_MissingTableIsStoreError(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = NewSQLiteRepository(db).GetAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrStore)
}
