package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_LoadAll_EmptyWhenUnset(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))

	got, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestActivityRepo_SaveAndLoadRoundTrip(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestActivity("Run",
		testutil.WithCompleted(1, 3),
		testutil.WithTargetCount(5),
		testutil.WithDescription("5k"),
		testutil.WithReminder("06:30", 1, 3),
	)
	b := testutil.NewTestActivity("Read", testutil.WithDomain("learning"), testutil.WithDays(0, 6))
	b.Normalize()
	a.Normalize()

	require.NoError(t, repo.SaveAll(ctx, []*domain.Activity{a, b}))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[1])
}

func TestActivityRepo_SaveAll_Nil(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, nil))

	raw, err := NewSQLiteKVRepo(database).Get(ctx, CollectionKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestActivityRepo_LoadAll_CorruptJSON(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteKVRepo(database).Put(ctx, CollectionKey, "{not json"))

	_, err := NewSQLiteActivityRepo(database).LoadAll(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding activity collection")
}

func TestActivityRepo_LoadAll_AcceptsBrowserShape(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	raw := `[{"id":"1700000000000","title":"Walk","domainId":"health","selectedDays":[2,1],
		"allowSunday":false,"completedDays":{"1":true},"weekNumber":42,"year":2026,
		"createdAt":"2026-10-11T08:00:00.000Z"}]`
	require.NoError(t, NewSQLiteKVRepo(database).Put(ctx, CollectionKey, raw))

	got, err := NewSQLiteActivityRepo(database).LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int{1, 2}, got[0].SelectedDays)
	assert.True(t, got[0].IsCompleted(1))
	assert.Nil(t, got[0].Reminder)
}
