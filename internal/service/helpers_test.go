package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/weekly/internal/db"
	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/repository"
	"github.com/alexanderramin/weekly/internal/testutil"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)

type testServices struct {
	db        *sql.DB
	store     ActivityStore
	notes     NotesService
	weeks     WeekService
	transfer  TransferService
	reminders ReminderService
	eval      EvaluationService
}

// newTestServices wires every service over a fresh in-memory database with
// the clocks pinned to fixedNow.
func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newTestServicesWithUoW(t, database, testutil.NewTestUoW(database))
}

func newTestServicesWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork) *testServices {
	t.Helper()
	store := NewActivityStore(repository.NewSQLiteActivityRepo(database), uow)
	store.(*activityStore).now = func() time.Time { return fixedNow }
	require.NoError(t, store.Load(context.Background()))

	notes := NewNotesService(repository.NewSQLiteNotesRepo(database))
	weeks := NewWeekService(repository.NewSQLiteSelectionRepo(database))
	weeks.(*weekService).now = func() time.Time { return fixedNow }
	transfer := NewTransferService(store, notes)
	transfer.(*transferService).now = func() time.Time { return fixedNow }

	return &testServices{
		db:        database,
		store:     store,
		notes:     notes,
		weeks:     weeks,
		transfer:  transfer,
		reminders: NewReminderService(store),
		eval:      NewEvaluationService(store),
	}
}

// failingActivityRepo loads what it was given and refuses every save.
type failingActivityRepo struct {
	items []*domain.Activity
}

func (r *failingActivityRepo) LoadAll(context.Context) ([]*domain.Activity, error) {
	return r.items, nil
}

func (r *failingActivityRepo) SaveAll(context.Context, []*domain.Activity) error {
	return errors.New("disk full")
}

func strPtr(s string) *string { return &s }
func daysPtr(d ...int) *[]int { return &d }
