package service

import (
	"slices"
	"time"

	"github.com/alexanderramin/weekly/internal/domain"
)

type reminderService struct {
	store ActivityStore
}

func NewReminderService(store ActivityStore) ReminderService {
	return &reminderService{store: store}
}

// Upcoming lists reminders firing in [now, now+horizon), earliest first. A
// reminder with days fires on each of those days of its week at its time;
// one without fires once at its date.
func (s *reminderService) Upcoming(now time.Time, horizon time.Duration) []ReminderOccurrence {
	end := now.Add(horizon)
	var out []ReminderOccurrence
	for _, a := range s.store.List() {
		for _, occ := range occurrences(a) {
			if !occ.At.Before(now) && occ.At.Before(end) {
				out = append(out, occ)
			}
		}
	}
	slices.SortStableFunc(out, func(x, y ReminderOccurrence) int {
		return x.At.Compare(y.At)
	})
	return out
}

func occurrences(a *domain.Activity) []ReminderOccurrence {
	r := a.Reminder
	if r == nil {
		return nil
	}
	if len(r.Days) == 0 {
		if r.Date.IsZero() {
			return nil
		}
		return []ReminderOccurrence{{Activity: a, Day: int(r.Date.Weekday()), At: r.Date}}
	}

	week := a.Week()
	h, m, err := domain.ParseClock(r.Time)
	if err != nil || !week.Valid() {
		return nil
	}
	out := make([]ReminderOccurrence, 0, len(r.Days))
	for _, d := range r.Days {
		date := week.Date(d)
		out = append(out, ReminderOccurrence{
			Activity: a,
			Day:      d,
			At:       date.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute),
		})
	}
	return out
}
