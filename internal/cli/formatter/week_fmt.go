package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/progress"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

const weekBarWidth = 12

// Day cell markers.
const (
	markDone      = "✔"
	markScheduled = "○"
	markOff       = "·"
	markReminder  = "⏰"
)

// DayCell renders one activity/day cell of the week grid. A completion on
// an unscheduled day is shown dimmed.
func DayCell(a *domain.Activity, day int) string {
	scheduled := a.IsScheduled(day)
	switch {
	case a.IsCompleted(day) && scheduled:
		return StyleGreen.Render(markDone)
	case a.IsCompleted(day):
		return StyleDim.Render(markDone)
	case scheduled:
		return StyleFg.Render(markScheduled)
	default:
		return StyleDim.Render(markOff)
	}
}

// dayHeaders returns Sun..Sat column headers with the day of month. The
// selected day is marked with an asterisk.
func dayHeaders(sel domain.WeekSelection) []string {
	dates := sel.Week.Dates()
	selected := weekcal.DayOf(sel.SelectedDate)
	out := make([]string, weekcal.DaysPerWeek)
	for d := range weekcal.DaysPerWeek {
		label := fmt.Sprintf("%s %d", DayAbbrev(d), dates[d].Day())
		if d == selected {
			label += "*"
		}
		out[d] = label
	}
	return out
}

// FormatWeek renders the week grid: one row per activity, one column per
// day, and a per-day completion footer.
func FormatWeek(sel domain.WeekSelection, activities []*domain.Activity, days [weekcal.DaysPerWeek]progress.Progress) string {
	var b strings.Builder

	if len(activities) == 0 {
		b.WriteString(Dim("No activities this week. Add one with 'weekly activity add'.") + "\n")
		return RenderBox(WeekTitle(sel.Week), b.String())
	}

	headers := append([]string{"ID", "ACTIVITY", "DOMAIN"}, dayHeaders(sel)...)
	headers = append(headers, "DONE")

	rows := make([][]string, 0, len(activities)+1)
	for _, a := range activities {
		title := Bold(a.Title)
		if a.Reminder != nil {
			title += " " + StyleYellow.Render(markReminder)
		}
		row := []string{TruncID(a.ID), title, DomainBadge(a.DomainID)}
		for d := range weekcal.DaysPerWeek {
			row = append(row, DayCell(a, d))
		}
		done := Fraction(a.CompletedCount(), len(a.SelectedDays))
		row = append(row, fractionStyle(progress.Compute([]*domain.Activity{a}).Fraction()).Render(done))
		rows = append(rows, row)
	}

	footer := []string{"", Dim("per day"), ""}
	for _, p := range days {
		if p.Total == 0 {
			footer = append(footer, Dim("--"))
			continue
		}
		footer = append(footer, TierColor(p.Tier()).Render(Fraction(p.Completed, p.Total)))
	}
	rows = append(rows, append(footer, ""))

	b.WriteString(RenderTable(headers, rows))

	overall := progress.Compute(activities)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", RenderProgress(overall.Fraction(), weekBarWidth), TierIndicator(overall.Tier())))
	b.WriteString(Dim(fmt.Sprintf("%s completed  %s scheduled  %s not scheduled  %s reminder",
		markDone, markScheduled, markOff, markReminder)) + "\n")

	return RenderBox(WeekTitle(sel.Week), b.String())
}

// FormatSelection renders a one-line summary of the current selection.
func FormatSelection(sel domain.WeekSelection) string {
	day := weekcal.DayOf(sel.SelectedDate)
	return fmt.Sprintf("%s %s  %s %s",
		StyleHeader.Render(sel.Week.String()),
		WeekRange(sel.Week),
		Dim("selected"),
		StyleFg.Render(fmt.Sprintf("%s %s", DayFullName(day), sel.SelectedDate.Format("Jan 2"))))
}
