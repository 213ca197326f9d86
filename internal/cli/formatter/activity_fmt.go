package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

// FormatActivityList renders activities as a table.
func FormatActivityList(activities []*domain.Activity) string {
	if len(activities) == 0 {
		return Dim("No activities.") + "\n"
	}

	headers := []string{"ID", "TITLE", "DOMAIN", "WEEK", "DAYS", "DONE", "REMINDER"}
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			TruncID(a.ID),
			Bold(a.Title),
			DomainBadge(a.DomainID),
			a.Week().String(),
			DayList(a.SelectedDays),
			Fraction(a.CompletedCount(), len(a.SelectedDays)),
			reminderSummary(a.Reminder),
		})
	}
	return RenderTable(headers, rows)
}

func reminderSummary(r *domain.Reminder) string {
	if r == nil {
		return Dim("--")
	}
	if len(r.Days) == 0 {
		return StyleYellow.Render(r.Time)
	}
	return StyleYellow.Render(r.Time) + " " + Dim(DayList(r.Days))
}

// FormatActivity renders every field of one activity.
func FormatActivity(a *domain.Activity) string {
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-10s", label)), value))
	}

	field("ID", a.ID)
	field("Domain", DomainBadge(a.DomainID))
	field("Week", fmt.Sprintf("%s  %s", a.Week(), Dim(WeekRange(a.Week()))))
	if a.Description != "" {
		field("Notes", a.Description)
	}
	if a.TargetCount != nil {
		field("Target", fmt.Sprintf("%d", *a.TargetCount))
	}
	field("Days", DayList(a.SelectedDays))
	if a.AllowSunday {
		field("Sunday", "allowed")
	}

	cells := make([]string, 0, weekcal.DaysPerWeek)
	for d := range weekcal.DaysPerWeek {
		cells = append(cells, DayAbbrev(d)+" "+DayCell(a, d))
	}
	field("Progress", strings.Join(cells, "  "))
	field("Done", Fraction(a.CompletedCount(), len(a.SelectedDays)))
	field("Reminder", reminderSummary(a.Reminder))
	if !a.CreatedAt.IsZero() {
		field("Created", Dim(a.CreatedAt.Format("2006-01-02 15:04")))
	}

	return RenderBox(a.Title, b.String())
}
