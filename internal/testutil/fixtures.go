package testutil

import (
	"time"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/google/uuid"
)

// TestWeek is the week most fixtures land in (2026-10-11 .. 2026-10-17).
var TestWeek = weekcal.Week{Number: 42, Year: 2026}

// ActivityOption customizes a test activity.
type ActivityOption func(*domain.Activity)

func WithDomain(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.DomainID = id
	}
}

func WithDays(days ...int) ActivityOption {
	return func(a *domain.Activity) {
		a.SelectedDays = days
	}
}

func WithCompleted(days ...int) ActivityOption {
	return func(a *domain.Activity) {
		a.CompletedDays = make(map[int]bool, len(days))
		for _, d := range days {
			a.CompletedDays[d] = true
		}
	}
}

func WithWeek(w weekcal.Week) ActivityOption {
	return func(a *domain.Activity) {
		a.WeekNumber = w.Number
		a.Year = w.Year
	}
}

func WithID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.ID = id
	}
}

func WithDescription(d string) ActivityOption {
	return func(a *domain.Activity) {
		a.Description = d
	}
}

func WithTargetCount(n int) ActivityOption {
	return func(a *domain.Activity) {
		a.TargetCount = &n
	}
}

func WithReminder(clock string, days ...int) ActivityOption {
	return func(a *domain.Activity) {
		r, err := domain.NewReminder(a.Week(), clock)
		if err != nil {
			panic(err)
		}
		if len(days) > 0 {
			r.Days = days
		}
		a.Reminder = r
	}
}

// NewTestActivity returns a valid health activity in TestWeek scheduled
// Monday through Wednesday. Options apply in order, so WithWeek must come
// before WithReminder.
func NewTestActivity(title string, opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:            uuid.New().String(),
		Title:         title,
		DomainID:      "health",
		SelectedDays:  []int{1, 2, 3},
		CompletedDays: map[int]bool{},
		WeekNumber:    TestWeek.Number,
		Year:          TestWeek.Year,
		CreatedAt:     time.Date(2026, 10, 11, 8, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
