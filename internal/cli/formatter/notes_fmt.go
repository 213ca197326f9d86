package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

// FormatDayNotes renders the positive notes and free writing of one day.
func FormatDayNotes(week weekcal.Week, day int, notes domain.DayNotes) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Positive notes %d/%d", notes.FilledPositiveNotes(), domain.PositiveNoteSlots)) + "\n")
	for i, n := range notes.PositiveNotes {
		text := strings.TrimSpace(n)
		if text == "" {
			b.WriteString(Dim(fmt.Sprintf("  %d. --", i+1)) + "\n")
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render(fmt.Sprintf("%d.", i+1)), text))
	}

	b.WriteString("\n" + Header("Free writing") + "\n")
	if strings.TrimSpace(notes.FreeWriting) == "" {
		b.WriteString(Dim("  Nothing written yet.") + "\n")
	} else {
		for _, line := range strings.Split(strings.TrimRight(notes.FreeWriting, "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	date := week.Date(day)
	title := fmt.Sprintf("%s %s", DayFullName(day), date.Format("Jan 2, 2006"))
	return RenderBox(title, b.String())
}
