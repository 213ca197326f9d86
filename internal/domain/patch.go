package domain

import (
	"slices"
	"time"
)

// ActivityPatch describes a partial update. Nil fields are left unchanged.
// CompletedDays and Reminder merge key-by-key and field-by-field, so a patch
// carrying one day's flag never erases the others.
type ActivityPatch struct {
	Title         *string
	Description   *string
	TargetCount   *int
	ClearTarget   bool
	DomainID      *string
	SelectedDays  *[]int
	AllowSunday   *bool
	CompletedDays map[int]bool
	Reminder      *ReminderPatch
	ClearReminder bool
	WeekNumber    *int
	Year          *int
}

// ReminderPatch is the field-wise partial update of a Reminder.
type ReminderPatch struct {
	Time *string
	Date *time.Time
	Days *[]int
}

// IsEmpty reports whether the patch changes nothing.
func (p ActivityPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.TargetCount == nil && !p.ClearTarget &&
		p.DomainID == nil && p.SelectedDays == nil && p.AllowSunday == nil &&
		len(p.CompletedDays) == 0 && p.Reminder == nil && !p.ClearReminder &&
		p.WeekNumber == nil && p.Year == nil
}

// Apply merges p into a.
func (a *Activity) Apply(p ActivityPatch) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.ClearTarget {
		a.TargetCount = nil
	}
	if p.TargetCount != nil {
		n := *p.TargetCount
		a.TargetCount = &n
	}
	if p.DomainID != nil {
		a.DomainID = *p.DomainID
	}
	if p.SelectedDays != nil {
		a.SelectedDays = slices.Clone(*p.SelectedDays)
	}
	if p.AllowSunday != nil {
		a.AllowSunday = *p.AllowSunday
	}
	if len(p.CompletedDays) > 0 {
		if a.CompletedDays == nil {
			a.CompletedDays = make(map[int]bool, len(p.CompletedDays))
		}
		for day, done := range p.CompletedDays {
			a.CompletedDays[day] = done
		}
	}
	if p.ClearReminder {
		a.Reminder = nil
	}
	if p.Reminder != nil {
		if a.Reminder == nil {
			a.Reminder = &Reminder{}
		}
		a.Reminder.apply(*p.Reminder)
	}
	if p.WeekNumber != nil {
		a.WeekNumber = *p.WeekNumber
	}
	if p.Year != nil {
		a.Year = *p.Year
	}
}

func (r *Reminder) apply(p ReminderPatch) {
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Days != nil {
		r.Days = slices.Clone(*p.Days)
	}
}

// CompletionPatch returns the patch that flips day's completion on a.
func CompletionPatch(a *Activity, day int) ActivityPatch {
	return ActivityPatch{CompletedDays: map[int]bool{day: !a.IsCompleted(day)}}
}

// ReminderDayPatch returns the patch that adds or removes day from a's
// reminder days.
func ReminderDayPatch(a *Activity, day int) ActivityPatch {
	var days []int
	if a.Reminder != nil {
		days = slices.Clone(a.Reminder.Days)
	}
	if i := slices.Index(days, day); i >= 0 {
		days = slices.Delete(days, i, i+1)
	} else {
		days = append(days, day)
	}
	return ActivityPatch{Reminder: &ReminderPatch{Days: &days}}
}
