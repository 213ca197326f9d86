package domain

import (
	"time"

	"github.com/alexanderramin/weekly/internal/weekcal"
)

// WeekSelection is the currently viewed week. SelectedDate always falls
// inside Week.
type WeekSelection struct {
	Week         weekcal.Week `json:"week"`
	SelectedDate time.Time    `json:"selectedDate"`
}

// SelectionFor returns the selection containing date.
func SelectionFor(date time.Time) WeekSelection {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return WeekSelection{Week: weekcal.WeekOf(day), SelectedDate: day}
}

// Next moves the selection forward one week, keeping the weekday.
func (s WeekSelection) Next() WeekSelection {
	return SelectionFor(s.SelectedDate.AddDate(0, 0, weekcal.DaysPerWeek))
}

// Previous moves the selection back one week, keeping the weekday.
func (s WeekSelection) Previous() WeekSelection {
	return SelectionFor(s.SelectedDate.AddDate(0, 0, -weekcal.DaysPerWeek))
}

// JumpTo selects the week containing date.
func (s WeekSelection) JumpTo(date time.Time) WeekSelection {
	return SelectionFor(date)
}

// Valid reports whether the selection is internally consistent.
func (s WeekSelection) Valid() bool {
	return s.Week.Valid() && s.Week.Contains(s.SelectedDate)
}
