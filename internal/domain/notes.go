package domain

import "strings"

// DayNotes holds one day's reflection: five short positive notes and a free
// writing entry.
type DayNotes struct {
	PositiveNotes [PositiveNoteSlots]string
	FreeWriting   string
}

// IsEmpty reports whether nothing has been written for the day.
func (n DayNotes) IsEmpty() bool {
	if strings.TrimSpace(n.FreeWriting) != "" {
		return false
	}
	for _, p := range n.PositiveNotes {
		if strings.TrimSpace(p) != "" {
			return false
		}
	}
	return true
}

// FilledPositiveNotes counts non-blank positive note slots.
func (n DayNotes) FilledPositiveNotes() int {
	c := 0
	for _, p := range n.PositiveNotes {
		if strings.TrimSpace(p) != "" {
			c++
		}
	}
	return c
}

// PositiveNotesFromSlice copies up to PositiveNoteSlots entries into a fixed
// array, padding with empty strings.
func PositiveNotesFromSlice(notes []string) [PositiveNoteSlots]string {
	var out [PositiveNoteSlots]string
	copy(out[:], notes)
	return out
}

// WeekNotes holds what is stored for the days of one week. A day missing
// from a map has nothing stored under that key.
type WeekNotes struct {
	PositiveNotes map[int][PositiveNoteSlots]string
	FreeWriting   map[int]string
}

// IsEmpty reports whether no day of the week has stored notes.
func (w WeekNotes) IsEmpty() bool {
	return len(w.PositiveNotes) == 0 && len(w.FreeWriting) == 0
}
