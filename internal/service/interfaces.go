package service

import (
	"context"
	"time"

	"github.com/alexanderramin/weekly/internal/db"
	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/importer"
	"github.com/alexanderramin/weekly/internal/progress"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

// ActivityStore owns the in-memory activity collection. Every mutation
// persists the whole collection before the in-memory copy changes. Updates
// and deletes of unknown ids are no-ops that report false.
type ActivityStore interface {
	Load(ctx context.Context) error
	List() []*domain.Activity
	ListByWeek(week weekcal.Week) []*domain.Activity
	Get(id string) (*domain.Activity, error)
	Add(ctx context.Context, a *domain.Activity) error
	Update(ctx context.Context, id string, patch domain.ActivityPatch) (bool, error)
	ToggleCompletion(ctx context.Context, id string, day int) (bool, error)
	ToggleReminderDay(ctx context.Context, id string, day int) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	BulkReplace(ctx context.Context, activities []*domain.Activity) error
	ReplaceAll(ctx context.Context, activities []*domain.Activity, withinTx func(ctx context.Context, tx db.DBTX) error) error
	CopyWeek(ctx context.Context, from, to weekcal.Week) ([]*domain.Activity, error)
}

type WeekService interface {
	Current(ctx context.Context) (domain.WeekSelection, error)
	Next(ctx context.Context) (domain.WeekSelection, error)
	Previous(ctx context.Context) (domain.WeekSelection, error)
	JumpTo(ctx context.Context, date time.Time) (domain.WeekSelection, error)
	Today(ctx context.Context) (domain.WeekSelection, error)
}

type EvaluationService interface {
	Evaluate(week weekcal.Week) progress.Report
	DayProgress(week weekcal.Week) [weekcal.DaysPerWeek]progress.Progress
}

type NotesService interface {
	GetPositiveNotes(ctx context.Context, week weekcal.Week, day int) ([domain.PositiveNoteSlots]string, error)
	SetPositiveNoteSlot(ctx context.Context, week weekcal.Week, day, slot int, text string) error
	GetFreeWriting(ctx context.Context, week weekcal.Week, day int) (string, error)
	SetFreeWriting(ctx context.Context, week weekcal.Week, day int, text string) error
	GetDayNotes(ctx context.Context, week weekcal.Week, day int) (domain.DayNotes, error)
	WeekNotes(ctx context.Context, week weekcal.Week) (domain.WeekNotes, error)
	PutImported(ctx context.Context, notes []importer.Note) error
}

// ImportResult holds the outcome of an import.
type ImportResult struct {
	Activities int
	Notes      int
}

type TransferService interface {
	Export(ctx context.Context) ([]byte, error)
	ExportToFile(ctx context.Context, path string) (int, error)
	Import(ctx context.Context, data []byte) (*ImportResult, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}

// ReminderOccurrence is one future firing of an activity's reminder.
type ReminderOccurrence struct {
	Activity *domain.Activity
	Day      int
	At       time.Time
}

type ReminderService interface {
	Upcoming(now time.Time, horizon time.Duration) []ReminderOccurrence
}
