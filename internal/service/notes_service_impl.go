package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/importer"
	"github.com/alexanderramin/weekly/internal/repository"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

type notesService struct {
	notes repository.NotesRepo
}

// NewNotesService stores notes per week and day. Every write goes straight
// to storage.
func NewNotesService(notes repository.NotesRepo) NotesService {
	return &notesService{notes: notes}
}

func (s *notesService) GetPositiveNotes(ctx context.Context, week weekcal.Week, day int) ([domain.PositiveNoteSlots]string, error) {
	var empty [domain.PositiveNoteSlots]string
	if err := checkDay(week, day); err != nil {
		return empty, err
	}
	notes, err := s.notes.GetPositiveNotes(ctx, week, day)
	if repository.IsNotFound(err) {
		return empty, nil
	}
	return notes, err
}

func (s *notesService) SetPositiveNoteSlot(ctx context.Context, week weekcal.Week, day, slot int, text string) error {
	if slot < 0 || slot >= domain.PositiveNoteSlots {
		return fmt.Errorf("note slot %d out of range 0-%d", slot, domain.PositiveNoteSlots-1)
	}
	notes, err := s.GetPositiveNotes(ctx, week, day)
	if err != nil {
		return err
	}
	notes[slot] = text
	return s.notes.PutPositiveNotes(ctx, week, day, notes)
}

func (s *notesService) GetFreeWriting(ctx context.Context, week weekcal.Week, day int) (string, error) {
	if err := checkDay(week, day); err != nil {
		return "", err
	}
	text, err := s.notes.GetFreeWriting(ctx, week, day)
	if repository.IsNotFound(err) {
		return "", nil
	}
	return text, err
}

func (s *notesService) SetFreeWriting(ctx context.Context, week weekcal.Week, day int, text string) error {
	if err := checkDay(week, day); err != nil {
		return err
	}
	return s.notes.PutFreeWriting(ctx, week, day, text)
}

func (s *notesService) GetDayNotes(ctx context.Context, week weekcal.Week, day int) (domain.DayNotes, error) {
	positive, err := s.GetPositiveNotes(ctx, week, day)
	if err != nil {
		return domain.DayNotes{}, err
	}
	free, err := s.GetFreeWriting(ctx, week, day)
	if err != nil {
		return domain.DayNotes{}, err
	}
	return domain.DayNotes{PositiveNotes: positive, FreeWriting: free}, nil
}

// WeekNotes collects the days of week that have something stored.
func (s *notesService) WeekNotes(ctx context.Context, week weekcal.Week) (domain.WeekNotes, error) {
	var out domain.WeekNotes
	for day := range weekcal.DaysPerWeek {
		positive, err := s.notes.GetPositiveNotes(ctx, week, day)
		switch {
		case err == nil:
			if out.PositiveNotes == nil {
				out.PositiveNotes = make(map[int][domain.PositiveNoteSlots]string)
			}
			out.PositiveNotes[day] = positive
		case !repository.IsNotFound(err):
			return out, err
		}

		free, err := s.notes.GetFreeWriting(ctx, week, day)
		switch {
		case err == nil && free != "":
			if out.FreeWriting == nil {
				out.FreeWriting = make(map[int]string)
			}
			out.FreeWriting[day] = free
		case err != nil && !repository.IsNotFound(err):
			return out, err
		}
	}
	return out, nil
}

func (s *notesService) PutImported(ctx context.Context, notes []importer.Note) error {
	return writeImportedNotes(ctx, s.notes, notes)
}

// writeImportedNotes stores each recovered note under its own week.
func writeImportedNotes(ctx context.Context, repo repository.NotesRepo, notes []importer.Note) error {
	for _, n := range notes {
		if n.PositiveNotes != nil {
			if err := repo.PutPositiveNotes(ctx, n.Week, n.Day, *n.PositiveNotes); err != nil {
				return fmt.Errorf("storing positive notes for %s day %d: %w", n.Week, n.Day, err)
			}
		}
		if n.FreeWriting != nil {
			if err := repo.PutFreeWriting(ctx, n.Week, n.Day, *n.FreeWriting); err != nil {
				return fmt.Errorf("storing free writing for %s day %d: %w", n.Week, n.Day, err)
			}
		}
	}
	return nil
}

func checkDay(week weekcal.Week, day int) error {
	if !week.Valid() {
		return fmt.Errorf("week %s does not exist", week)
	}
	if !weekcal.ValidDay(day) {
		return fmt.Errorf("day %d out of range 0-6", day)
	}
	return nil
}
