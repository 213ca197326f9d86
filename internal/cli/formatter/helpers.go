package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeTimeFrom describes how far t lies ahead of now, e.g. "in 45m",
// "in 3h", "tomorrow 06:30" or "Thu 06:30".
func RelativeTimeFrom(t, now time.Time) string {
	diff := t.Sub(now)
	switch {
	case diff < 0:
		return "now"
	case diff < time.Minute:
		return "in <1m"
	case diff < time.Hour:
		return fmt.Sprintf("in %dm", int(diff.Minutes()))
	case diff < 12*time.Hour:
		return fmt.Sprintf("in %dh", int(math.Round(diff.Hours())))
	}
	if sameDate(t, now.AddDate(0, 0, 1)) {
		return "tomorrow " + t.Format("15:04")
	}
	if sameDate(t, now) {
		return "today " + t.Format("15:04")
	}
	return t.Format("Mon 15:04")
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// WeekRange renders the first and last date of week, e.g.
// "Oct 11 - Oct 17, 2026".
func WeekRange(week weekcal.Week) string {
	dates := week.Dates()
	return fmt.Sprintf("%s - %s", dates[0].Format("Jan 2"), dates[weekcal.DaysPerWeek-1].Format("Jan 2, 2006"))
}

// WeekTitle renders "2026-W42  Oct 11 - Oct 17, 2026".
func WeekTitle(week weekcal.Week) string {
	return fmt.Sprintf("%s  %s", week, WeekRange(week))
}

// DomainBadge returns the purple display name of a life domain.
func DomainBadge(id string) string {
	if d, ok := domain.LookupDomain(id); ok {
		return StylePurple.Render(d.Name)
	}
	if id == "" {
		return StyleDim.Render("--")
	}
	return StyleDim.Render(id)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// DayAbbrev returns the three-letter day name of a day index.
func DayAbbrev(day int) string {
	return weekcal.DayName(day)
}

// DayFullName returns "Sunday".."Saturday" for a day index.
func DayFullName(day int) string {
	if !weekcal.ValidDay(day) {
		return "?"
	}
	return time.Weekday(day).String()
}

// DayList renders day indexes as "Mon, Wed, Fri", or "--" when empty.
func DayList(days []int) string {
	if len(days) == 0 {
		return "--"
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = DayAbbrev(d)
	}
	return strings.Join(names, ", ")
}

// Fraction renders "completed/total".
func Fraction(completed, total int) string {
	return fmt.Sprintf("%d/%d", completed, total)
}
