// Package progress derives completion statistics from a week's activities.
package progress

import (
	"math"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

// Progress counts completed day slots against scheduled day slots.
type Progress struct {
	Completed  int
	Total      int
	Percentage int
}

// Tier classifies the percentage.
func (p Progress) Tier() domain.ProgressTier {
	return domain.TierFor(p.Percentage)
}

// Fraction returns Completed/Total in [0,1], 0 when nothing is scheduled.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// ActivityStatus summarizes how much of an activity's schedule is done.
type ActivityStatus string

const (
	StatusDone    ActivityStatus = "done"
	StatusPartial ActivityStatus = "partial"
	StatusNone    ActivityStatus = "none"
)

// ActivityProgress is one activity's line in the week report. Expected is
// the number of scheduled days, else the target count, else 1.
type ActivityProgress struct {
	ID        string
	Title     string
	Completed int
	Expected  int
	Status    ActivityStatus
}

// ForActivity summarizes a. An activity with no scheduled days counts as
// done.
func ForActivity(a *domain.Activity) ActivityProgress {
	completed := a.CompletedCount()
	expected := len(a.SelectedDays)
	if expected == 0 && a.TargetCount != nil {
		expected = *a.TargetCount
	}
	if expected == 0 {
		expected = 1
	}

	status := StatusNone
	switch {
	case completed == len(a.SelectedDays):
		status = StatusDone
	case completed > 0:
		status = StatusPartial
	}
	return ActivityProgress{
		ID:        a.ID,
		Title:     a.Title,
		Completed: completed,
		Expected:  expected,
		Status:    status,
	}
}

// DomainProgress pairs a life domain with its progress and the activities
// behind it.
type DomainProgress struct {
	Domain     domain.LifeDomain
	Activities int
	Items      []ActivityProgress
	Progress
}

// Report is the evaluation of one week.
type Report struct {
	Week    weekcal.Week
	Overall Progress
	Domains []DomainProgress
}

// Compute sums scheduled and completed day slots over activities. The
// percentage is rounded half away from zero and is 0 when Total is 0.
func Compute(activities []*domain.Activity) Progress {
	var p Progress
	for _, a := range activities {
		p.Total += len(a.SelectedDays)
		p.Completed += a.CompletedCount()
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(100 * float64(p.Completed) / float64(p.Total)))
	}
	return p
}

// ForWeek keeps only activities belonging to week.
func ForWeek(activities []*domain.Activity, week weekcal.Week) []*domain.Activity {
	var out []*domain.Activity
	for _, a := range activities {
		if a.WeekNumber == week.Number && a.Year == week.Year {
			out = append(out, a)
		}
	}
	return out
}

// ForDomain computes the progress of one domain within a week.
func ForDomain(activities []*domain.Activity, week weekcal.Week, domainID string) Progress {
	var matched []*domain.Activity
	for _, a := range ForWeek(activities, week) {
		if a.DomainID == domainID {
			matched = append(matched, a)
		}
	}
	return Compute(matched)
}

// Overall computes the progress across every domain within a week.
func Overall(activities []*domain.Activity, week weekcal.Week) Progress {
	return Compute(ForWeek(activities, week))
}

// Evaluate builds the week report, listing every life domain in display
// order even when it has no activities.
func Evaluate(activities []*domain.Activity, week weekcal.Week) Report {
	inWeek := ForWeek(activities, week)
	byDomain := make(map[string][]*domain.Activity)
	for _, a := range inWeek {
		byDomain[a.DomainID] = append(byDomain[a.DomainID], a)
	}

	report := Report{Week: week, Overall: Compute(inWeek)}
	for _, d := range domain.LifeDomains() {
		acts := byDomain[d.ID]
		dp := DomainProgress{
			Domain:     d,
			Activities: len(acts),
			Progress:   Compute(acts),
		}
		for _, a := range acts {
			dp.Items = append(dp.Items, ForActivity(a))
		}
		report.Domains = append(report.Domains, dp)
	}
	return report
}

// DayProgress computes completion per day index across a week's activities.
func DayProgress(activities []*domain.Activity, week weekcal.Week) [weekcal.DaysPerWeek]Progress {
	var days [weekcal.DaysPerWeek]Progress
	for _, a := range ForWeek(activities, week) {
		for _, d := range a.SelectedDays {
			if !weekcal.ValidDay(d) {
				continue
			}
			days[d].Total++
			if a.CompletedDays[d] {
				days[d].Completed++
			}
		}
	}
	for i := range days {
		if days[i].Total > 0 {
			days[i].Percentage = int(math.Round(100 * float64(days[i].Completed) / float64(days[i].Total)))
		}
	}
	return days
}
