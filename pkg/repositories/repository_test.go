package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepository(t *testing.T, repo Repository) {
	ctx := context.Background()
	key := uuid.New()

	_, err := repo.Load(ctx, key)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	version, err := repo.Store(ctx, key, &Record{Data: []byte("first")})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), version)

	record, err := repo.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, &Record{Version: 1, Data: []byte("first")}, record)

	// a second writer that also started from "not found" loses
	_, err = repo.Store(ctx, key, &Record{Data: []byte("racer")})
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	record.Data = []byte("second")
	version, err = repo.Store(ctx, key, record)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), version)

	// a stale version loses
	_, err = repo.Store(ctx, key, &Record{Version: 1, Data: []byte("stale")})
	require.Error(t, err)
	var conflict *ErrConflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, uint64(1), conflict.Expected)
	assert.Equal(t, uint64(2), conflict.Actual)

	record, err = repo.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, &Record{Version: 2, Data: []byte("second")}, record)

	// other keys are independent
	_, err = repo.Load(ctx, uuid.New())
	assert.True(t, IsNotFound(err))

	require.NoError(t, repo.Close(ctx))
}

func TestInMemoryRepository(t *testing.T) {
	testRepository(t, NewInMemoryRepository())
}

func TestInMemoryRepository_CopiesData(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	key := uuid.New()

	data := []byte("abc")
	_, err := repo.Store(ctx, key, &Record{Data: data})
	require.NoError(t, err)
	data[0] = 'x'

	record, err := repo.Load(ctx, key)
	require.NoError(t, err)
	record.Data[1] = 'y'

	again, err := repo.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again.Data)
}

func TestSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "flotilla.db")

	repo, err := NewSQLiteRepository(ctx, path, "../../migrations/sqlite")
	require.NoError(t, err)

	testRepository(t, repo)
}

func TestSQLiteRepository_MissingMigrations(t *testing.T) {
	_, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "x.db"), "does-not-exist")
	assert.Error(t, err)
}
