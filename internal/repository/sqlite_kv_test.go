package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/weekly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRepo_PutGetOverwrite(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", "v1"))
	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, repo.Put(ctx, "k", "v2"))
	got, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestKVRepo_Get_NotFound(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
}

func TestKVRepo_Delete(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", "v"))
	require.NoError(t, repo.Delete(ctx, "k"))
	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, repo.Delete(ctx, "never-existed"))
}

func TestKVRepo_ListPrefix_EscapesWildcards(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "freeWriting-42-2026-1", "a"))
	require.NoError(t, repo.Put(ctx, "freeWriting-42-2026-0", "b"))
	require.NoError(t, repo.Put(ctx, "freeWriting-43-2026-0", "c"))
	require.NoError(t, repo.Put(ctx, "a_b", "x"))
	require.NoError(t, repo.Put(ctx, "acb", "y"))

	entries, err := repo.ListPrefix(ctx, "freeWriting-42-2026-")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "freeWriting-42-2026-0", entries[0].Key)
	assert.Equal(t, "b", entries[0].Value)

	entries, err = repo.ListPrefix(ctx, "a_")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a_b", entries[0].Key)
}
