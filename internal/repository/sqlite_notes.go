package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/weekly/internal/db"
	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

// SQLiteNotesRepo stores per-day notes under week/day-scoped keys. Positive
// notes are a JSON array of strings, free writing is the raw text.
type SQLiteNotesRepo struct {
	kv *SQLiteKVRepo
}

// NewSQLiteNotesRepo creates a new SQLiteNotesRepo.
func NewSQLiteNotesRepo(conn db.DBTX) *SQLiteNotesRepo {
	return &SQLiteNotesRepo{kv: NewSQLiteKVRepo(conn)}
}

// GetPositiveNotes returns ErrNotFound when the day has never been written.
func (r *SQLiteNotesRepo) GetPositiveNotes(ctx context.Context, week weekcal.Week, day int) ([domain.PositiveNoteSlots]string, error) {
	var notes [domain.PositiveNoteSlots]string
	raw, err := r.kv.Get(ctx, PositiveNotesKey(week, day))
	if err != nil {
		return notes, err
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return notes, fmt.Errorf("decoding positive notes for %s day %d: %w", week, day, err)
	}
	return domain.PositiveNotesFromSlice(list), nil
}

func (r *SQLiteNotesRepo) PutPositiveNotes(ctx context.Context, week weekcal.Week, day int, notes [domain.PositiveNoteSlots]string) error {
	data, err := json.Marshal(notes[:])
	if err != nil {
		return fmt.Errorf("encoding positive notes: %w", err)
	}
	return r.kv.Put(ctx, PositiveNotesKey(week, day), string(data))
}

// GetFreeWriting returns ErrNotFound when the day has never been written.
func (r *SQLiteNotesRepo) GetFreeWriting(ctx context.Context, week weekcal.Week, day int) (string, error) {
	return r.kv.Get(ctx, FreeWritingKey(week, day))
}

func (r *SQLiteNotesRepo) PutFreeWriting(ctx context.Context, week weekcal.Week, day int, text string) error {
	return r.kv.Put(ctx, FreeWritingKey(week, day), text)
}

// IsNotFound reports whether err means the key is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
