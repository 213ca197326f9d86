package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/weekly/internal/service"
)

// FormatReminders renders upcoming reminder occurrences in firing order.
func FormatReminders(occurrences []service.ReminderOccurrence, now time.Time, horizon time.Duration) string {
	title := fmt.Sprintf("Reminders next %s", formatHorizon(horizon))
	if len(occurrences) == 0 {
		return RenderBox(title, Dim("No reminders due."))
	}

	headers := []string{"WHEN", "AT", "DAY", "ACTIVITY", "DOMAIN"}
	rows := make([][]string, 0, len(occurrences))
	for _, o := range occurrences {
		rows = append(rows, []string{
			StyleYellow.Render(RelativeTimeFrom(o.At, now)),
			o.At.Format("Mon Jan 2 15:04"),
			DayFullName(o.Day),
			Bold(o.Activity.Title),
			DomainBadge(o.Activity.DomainID),
		})
	}
	return RenderBox(title, strings.TrimRight(RenderTable(headers, rows), "\n"))
}

func formatHorizon(d time.Duration) string {
	hours := int(d.Hours())
	if hours%24 == 0 && hours >= 48 {
		return fmt.Sprintf("%dd", hours/24)
	}
	return fmt.Sprintf("%dh", hours)
}
