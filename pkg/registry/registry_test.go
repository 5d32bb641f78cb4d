package registry

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRegistry(t *testing.T) (*Registry, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "wallpapers.db")
	r, err := Open(dbPath, clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r, dbPath
}

func TestRegistry_AddListOrder(t *testing.T) {
	r, _ := openTestRegistry(t)
	ctx := context.Background()

	idA, err := r.Add(ctx, "/a.jpg")
	require.NoError(t, err)
	idB, err := r.Add(ctx, "/b.jpg")
	require.NoError(t, err)
	idC, err := r.Add(ctx, "/c.jpg")
	require.NoError(t, err)

	assert.Less(t, idA, idB)
	assert.Less(t, idB, idC)

	paths, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg", "/c.jpg"}, paths)
}

func TestRegistry_ListEmpty(t *testing.T) {
	r, _ := openTestRegistry(t)

	paths, err := r.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
}

func TestRegistry_Remove(t *testing.T) {
	r, _ := openTestRegistry(t)
	ctx := context.Background()

	for _, p := range []string{"/a.jpg", "/b.jpg", "/c.jpg"} {
		_, err := r.Add(ctx, p)
		require.NoError(t, err)
	}

	removed, err := r.Remove(ctx, "/b.jpg")
	require.NoError(t, err)
	assert.True(t, removed)

	paths, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.jpg", "/c.jpg"}, paths)

	removed, err = r.Remove(ctx, "/missing.jpg")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRegistry_RemoveDuplicateTakesOldestOnly(t *testing.T) {
	r, _ := openTestRegistry(t)
	ctx := context.Background()

	first, err := r.Add(ctx, "/dup.jpg")
	require.NoError(t, err)
	_, err = r.Add(ctx, "/other.jpg")
	require.NoError(t, err)
	last, err := r.Add(ctx, "/dup.jpg")
	require.NoError(t, err)

	removed, err := r.Remove(ctx, "/dup.jpg")
	require.NoError(t, err)
	assert.True(t, removed)

	entries, err := r.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/other.jpg", entries[0].Path)
	assert.Equal(t, last, entries[1].ID)
	assert.NotEqual(t, first, entries[1].ID)
}

func TestRegistry_IDsNotReusedAfterRemove(t *testing.T) {
	r, _ := openTestRegistry(t)
	ctx := context.Background()

	_, err := r.Add(ctx, "/a.jpg")
	require.NoError(t, err)
	idB, err := r.Add(ctx, "/b.jpg")
	require.NoError(t, err)

	_, err = r.Remove(ctx, "/b.jpg")
	require.NoError(t, err)

	idC, err := r.Add(ctx, "/c.jpg")
	require.NoError(t, err)
	assert.Greater(t, idC, idB)
}

func TestRegistry_AddRejectsEmptyPath(t *testing.T) {
	r, _ := openTestRegistry(t)

	_, err := r.Add(context.Background(), "")
	require.Error(t, err)

	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "add", storeErr.Op)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestRegistry_EntriesCarryAddedTime(t *testing.T) {
	r, _ := openTestRegistry(t)
	ctx := context.Background()

	_, err := r.Add(ctx, "/a.jpg")
	require.NoError(t, err)

	entries, err := r.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/a.jpg", entries[0].Path)
	assert.Equal(t, 2024, entries[0].AddedTime.Year())
	assert.Equal(t, time.March, entries[0].AddedTime.Month())
}

func TestRegistry_ReopenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "wallpapers.db")
	ctx := context.Background()

	r1, err := Open(dbPath, nil)
	require.NoError(t, err)
	_, err = r1.Add(ctx, "/a.jpg")
	require.NoError(t, err)
	_, err = r1.Add(ctx, "/b.jpg")
	require.NoError(t, err)
	require.NoError(t, r1.Close())

	r2, err := Open(dbPath, nil)
	require.NoError(t, err)
	defer r2.Close()

	paths, err := r2.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, paths)

	n, err := r2.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRegistry_LegacySchemaAccepted(t *testing.T) {
	db, err := sqlx.Open(DriverName, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	db.MustExec(`CREATE TABLE images (id INTEGER PRIMARY KEY, path TEXT, added_time DATETIME DEFAULT CURRENT_TIMESTAMP)`)
	db.MustExec(`INSERT INTO images (path) VALUES ('/legacy.jpg')`)

	r, err := New(db, nil)
	require.NoError(t, err)

	paths, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/legacy.jpg"}, paths)
}

func TestRegistry_LegacyNullPathSkipped(t *testing.T) {
	db, err := sqlx.Open(DriverName, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	db.MustExec(`CREATE TABLE images (id INTEGER PRIMARY KEY, path TEXT, added_time DATETIME DEFAULT CURRENT_TIMESTAMP)`)
	db.MustExec(`INSERT INTO images (path) VALUES ('/a.jpg')`)
	db.MustExec(`INSERT INTO images (path) VALUES (NULL)`)
	db.MustExec(`INSERT INTO images (path) VALUES ('/b.jpg')`)

	r, err := New(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	paths, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, paths)

	entries, err := r.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(3), entries[1].ID)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRegistry_ClosedStoreReportsStoreError(t *testing.T) {
	r, _ := openTestRegistry(t)
	require.NoError(t, r.db.Close())

	ctx := context.Background()
	var storeErr *StoreError

	_, err := r.Add(ctx, "/a.jpg")
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "add", storeErr.Op)
	assert.Contains(t, err.Error(), `"/a.jpg"`)

	_, err = r.Remove(ctx, "/a.jpg")
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "remove", storeErr.Op)

	_, err = r.List(ctx)
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "list", storeErr.Op)
}

func TestOpen_UnreachablePathIsStoreError(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "no", "such", "dir", "wallpapers.db")

	_, err := Open(dbPath, nil)
	require.Error(t, err)

	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "schema", storeErr.Op)
}
