package importer

import (
	"slices"
	"time"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/google/uuid"
)

// Note is one day's notes recovered from an import record, to be stored
// under the record's own week.
type Note struct {
	Week          weekcal.Week
	Day           int
	PositiveNotes *[domain.PositiveNoteSlots]string
	FreeWriting   *string
}

// Converted is the result of converting validated records.
type Converted struct {
	Activities []*domain.Activity
	Notes      []Note
}

// Convert turns validated records into activities and note writes. Missing
// ids and creation times are filled in. Call ValidateRecords first.
func Convert(records []Record, now time.Time) *Converted {
	out := &Converted{Activities: make([]*domain.Activity, 0, len(records))}

	for _, rec := range records {
		a := rec.Activity.Clone()
		a.Normalize()
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		out.Activities = append(out.Activities, a)

		week := a.Week()
		for _, day := range noteDays(rec) {
			n := Note{Week: week, Day: day}
			if notes, ok := rec.PositiveNotes[day]; ok {
				n.PositiveNotes = &notes
			}
			if text, ok := rec.FreeWriting[day]; ok {
				n.FreeWriting = &text
			}
			out.Notes = append(out.Notes, n)
		}
	}

	return out
}

// noteDays lists the days that carry notes in ascending order.
func noteDays(rec Record) []int {
	var days []int
	for d := range rec.PositiveNotes {
		days = append(days, d)
	}
	for d := range rec.FreeWriting {
		if !slices.Contains(days, d) {
			days = append(days, d)
		}
	}
	slices.Sort(days)
	return days
}

// NewRecord pairs an activity with the notes stored for its week.
func NewRecord(a *domain.Activity, notes domain.WeekNotes) Record {
	rec := Record{Activity: *a.Clone()}
	if len(notes.PositiveNotes) > 0 {
		rec.PositiveNotes = make(map[int][domain.PositiveNoteSlots]string, len(notes.PositiveNotes))
		for day, n := range notes.PositiveNotes {
			rec.PositiveNotes[day] = n
		}
	}
	for day, text := range notes.FreeWriting {
		if text == "" {
			continue
		}
		if rec.FreeWriting == nil {
			rec.FreeWriting = make(map[int]string)
		}
		rec.FreeWriting[day] = text
	}
	return rec
}
