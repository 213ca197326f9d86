package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

// DefaultFileName is the file an export is written to when none is given.
const DefaultFileName = "activities.txt"

var (
	// ErrMalformed is returned when the input is not valid JSON.
	ErrMalformed = errors.New("malformed import file")
	// ErrNotArray is returned when the top-level JSON value is not an array.
	ErrNotArray = errors.New("import file must contain an array of activities")
)

const (
	positiveNotesField = "positiveNotes-"
	freeWritingField   = "freeWriting-"
)

// Record is one element of an export document: an activity plus the notes
// stored for each day of its week, flattened as positiveNotes-N and
// freeWriting-N fields.
type Record struct {
	Activity      domain.Activity
	PositiveNotes map[int][domain.PositiveNoteSlots]string
	FreeWriting   map[int]string
}

// MarshalJSON writes the activity fields and the note fields side by side.
func (r Record) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(r.Activity)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for day, notes := range r.PositiveNotes {
		raw, err := json.Marshal(notes[:])
		if err != nil {
			return nil, err
		}
		fields[positiveNotesField+strconv.Itoa(day)] = raw
	}
	for day, text := range r.FreeWriting {
		if text == "" {
			continue
		}
		raw, err := json.Marshal(text)
		if err != nil {
			return nil, err
		}
		fields[freeWritingField+strconv.Itoa(day)] = raw
	}
	return json.Marshal(fields)
}

// UnmarshalJSON splits note fields from activity fields. Empty or null note
// values are dropped. Unknown fields are ignored.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*r = Record{}
	for key, raw := range fields {
		day, kind, ok := noteField(key)
		if !ok {
			continue
		}
		delete(fields, key)
		if isNull(raw) {
			continue
		}
		switch kind {
		case positiveNotesField:
			var list []string
			if err := json.Unmarshal(raw, &list); err != nil {
				return fmt.Errorf("%s: expected an array of strings: %w", key, err)
			}
			if r.PositiveNotes == nil {
				r.PositiveNotes = make(map[int][domain.PositiveNoteSlots]string)
			}
			r.PositiveNotes[day] = domain.PositiveNotesFromSlice(list)
		case freeWritingField:
			var text string
			if err := json.Unmarshal(raw, &text); err != nil {
				return fmt.Errorf("%s: expected a string: %w", key, err)
			}
			if text == "" {
				continue
			}
			if r.FreeWriting == nil {
				r.FreeWriting = make(map[int]string)
			}
			r.FreeWriting[day] = text
		}
	}

	rest, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(rest, &r.Activity)
}

// Week is the week the record and its notes belong to.
func (r Record) Week() weekcal.Week {
	return r.Activity.Week()
}

// noteField recognizes "positiveNotes-N" and "freeWriting-N" with N a day index.
func noteField(key string) (day int, kind string, ok bool) {
	for _, prefix := range []string{positiveNotesField, freeWritingField} {
		suffix, found := strings.CutPrefix(key, prefix)
		if !found {
			continue
		}
		d, err := strconv.Atoi(suffix)
		if err != nil || !weekcal.ValidDay(d) {
			return 0, "", false
		}
		return d, prefix, true
	}
	return 0, "", false
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Parse decodes an export document. Malformed JSON wraps ErrMalformed and a
// top-level value other than an array wraps ErrNotArray.
func Parse(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformed)
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	records := make([]Record, 0, len(elems))
	for i, raw := range elems {
		if isNull(raw) {
			continue
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadFile reads and parses an export document from disk.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Encode renders records as a two-space indented JSON array.
func Encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return append(data, '\n'), nil
}
