package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/progress"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

const evalBarWidth = 10

const (
	markPartial = "◐"
	markMissed  = "✗"
)

// FormatEvaluation renders the week report: the overall completion, a row
// per life domain, each domain's activities and the week's positive notes.
// Domains without activities are dimmed.
func FormatEvaluation(r progress.Report, notes domain.WeekNotes) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		RenderProgress(r.Overall.Fraction(), 20),
		Fraction(r.Overall.Completed, r.Overall.Total),
		TierIndicator(r.Overall.Tier())))

	headers := []string{"DOMAIN", "ACTIVITIES", "DONE", "PROGRESS", "STATUS"}
	rows := make([][]string, 0, len(r.Domains))
	for _, d := range r.Domains {
		if d.Activities == 0 {
			rows = append(rows, []string{
				Dim(d.Domain.Name),
				Dim("0"),
				Dim("--"),
				RenderCompactBar(0, evalBarWidth, true),
				Dim("no activities"),
			})
			continue
		}
		rows = append(rows, []string{
			StylePurple.Render(d.Domain.Name),
			fmt.Sprintf("%d", d.Activities),
			Fraction(d.Completed, d.Total),
			fmt.Sprintf("%s %3d%%", RenderCompactBar(d.Fraction(), evalBarWidth, false), d.Percentage),
			TierIndicator(d.Tier()),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if items := formatDomainItems(r.Domains); items != "" {
		b.WriteString("\n" + Header("Activities") + "\n")
		b.WriteString(items)
	}

	b.WriteString("\n" + Header("Positive notes") + "\n")
	b.WriteString(formatWeekPositiveNotes(r.Week, notes))

	return RenderBox("Evaluation "+WeekTitle(r.Week), b.String())
}

// ActivityStatusMark renders the done, partial or missed marker.
func ActivityStatusMark(s progress.ActivityStatus) string {
	switch s {
	case progress.StatusDone:
		return StyleGreen.Render(markDone)
	case progress.StatusPartial:
		return StyleYellow.Render(markPartial)
	default:
		return StyleRed.Render(markMissed)
	}
}

func formatDomainItems(domains []progress.DomainProgress) string {
	var b strings.Builder
	for _, d := range domains {
		if len(d.Items) == 0 {
			continue
		}
		b.WriteString(StylePurple.Render(d.Domain.Name) + "\n")
		for _, it := range d.Items {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				ActivityStatusMark(it.Status),
				it.Title,
				Dim(fmt.Sprintf("(%s)", Fraction(it.Completed, it.Expected)))))
		}
	}
	return b.String()
}

func formatWeekPositiveNotes(week weekcal.Week, notes domain.WeekNotes) string {
	var b strings.Builder
	for day := range weekcal.DaysPerWeek {
		slots, ok := notes.PositiveNotes[day]
		if !ok {
			continue
		}
		var filled []string
		for _, n := range slots {
			if text := strings.TrimSpace(n); text != "" {
				filled = append(filled, text)
			}
		}
		if len(filled) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			StyleBold.Render(DayAbbrev(day)),
			Dim(week.Date(day).Format("Jan 2"))))
		for _, text := range filled {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("+"), text))
		}
	}
	if b.Len() == 0 {
		return Dim("No positive notes this week.") + "\n"
	}
	return b.String()
}
