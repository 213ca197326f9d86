package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/repository"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekService_DefaultsToCurrentWeek(t *testing.T) {
	svc := newTestServices(t)

	sel, err := svc.weeks.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, weekcal.Week{Number: 42, Year: 2026}, sel.Week)
	assert.Equal(t, time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC), sel.SelectedDate)
}

func TestWeekService_NavigationPersists(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	next, err := svc.weeks.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, weekcal.Week{Number: 43, Year: 2026}, next.Week)

	other := NewWeekService(repository.NewSQLiteSelectionRepo(svc.db))
	cur, err := other.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, cur)

	prev, err := svc.weeks.Previous(ctx)
	require.NoError(t, err)
	assert.Equal(t, weekcal.Week{Number: 42, Year: 2026}, prev.Week)
}

func TestWeekService_JumpAcrossYearAndBackToToday(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	sel, err := svc.weeks.JumpTo(ctx, time.Date(2026, 12, 31, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, weekcal.Week{Number: 53, Year: 2026}, sel.Week)

	sel, err = svc.weeks.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, weekcal.Week{Number: 1, Year: 2027}, sel.Week)

	sel, err = svc.weeks.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SelectionFor(fixedNow), sel)
}

func TestWeekService_InconsistentStoredSelectionFallsBack(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	bad := domain.WeekSelection{
		Week:         weekcal.Week{Number: 10, Year: 2026},
		SelectedDate: time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repository.NewSQLiteSelectionRepo(svc.db).Put(ctx, bad))

	sel, err := svc.weeks.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, weekcal.Week{Number: 42, Year: 2026}, sel.Week)
}
