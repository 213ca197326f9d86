package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/weekly/internal/weekcal"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("not found")

const (
	// CollectionKey holds the JSON-encoded activity collection.
	CollectionKey = "activities"
	// SelectionKey holds the JSON-encoded week selection.
	SelectionKey = "weekSelection"

	positiveNotesPrefix = "positiveNotes-"
	freeWritingPrefix   = "freeWriting-"
)

// PositiveNotesKey is the storage key of one day's positive notes.
func PositiveNotesKey(week weekcal.Week, day int) string {
	return fmt.Sprintf("%s%d-%d-%d", positiveNotesPrefix, week.Number, week.Year, day)
}

// FreeWritingKey is the storage key of one day's free writing.
func FreeWritingKey(week weekcal.Week, day int) string {
	return fmt.Sprintf("%s%d-%d-%d", freeWritingPrefix, week.Number, week.Year, day)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
