package repository

import (
	"context"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

// KVEntry is one stored key/value pair.
type KVEntry struct {
	Key   string
	Value string
}

type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	ListPrefix(ctx context.Context, prefix string) ([]KVEntry, error)
}

type ActivityRepo interface {
	LoadAll(ctx context.Context) ([]*domain.Activity, error)
	SaveAll(ctx context.Context, activities []*domain.Activity) error
}

type NotesRepo interface {
	GetPositiveNotes(ctx context.Context, week weekcal.Week, day int) ([domain.PositiveNoteSlots]string, error)
	PutPositiveNotes(ctx context.Context, week weekcal.Week, day int, notes [domain.PositiveNoteSlots]string) error
	GetFreeWriting(ctx context.Context, week weekcal.Week, day int) (string, error)
	PutFreeWriting(ctx context.Context, week weekcal.Week, day int, text string) error
}

type SelectionRepo interface {
	Get(ctx context.Context) (*domain.WeekSelection, error)
	Put(ctx context.Context, s domain.WeekSelection) error
}
