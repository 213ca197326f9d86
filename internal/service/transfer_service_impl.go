package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/weekly/internal/db"
	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/importer"
	"github.com/alexanderramin/weekly/internal/repository"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

type transferService struct {
	store    ActivityStore
	notes    NotesService
	observer UseCaseObserver
	now      func() time.Time
}

func NewTransferService(store ActivityStore, notes NotesService, observers ...UseCaseObserver) TransferService {
	return &transferService{
		store:    store,
		notes:    notes,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Export renders every activity with the notes stored for its week.
func (s *transferService) Export(ctx context.Context) (data []byte, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "export", startedAt, fields, err) }()

	activities := s.store.List()
	byWeek := make(map[weekcal.Week]domain.WeekNotes)
	records := make([]importer.Record, 0, len(activities))
	for _, a := range activities {
		week := a.Week()
		notes, seen := byWeek[week]
		if !seen {
			notes, err = s.notes.WeekNotes(ctx, week)
			if err != nil {
				return nil, fmt.Errorf("reading notes for %s: %w", week, err)
			}
			byWeek[week] = notes
		}
		records = append(records, importer.NewRecord(a, notes))
	}
	fields["records"] = len(records)
	return importer.Encode(records)
}

func (s *transferService) ExportToFile(ctx context.Context, path string) (int, error) {
	if path == "" {
		path = importer.DefaultFileName
	}
	data, err := s.Export(ctx)
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing export: %w", err)
	}
	return len(s.store.List()), nil
}

// Import replaces every activity with the document's records and stores the
// notes they carry. Nothing changes unless the whole document is accepted
// and written.
func (s *transferService) Import(ctx context.Context, data []byte) (result *ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"bytes": len(data)}
	defer func() { observeUseCase(ctx, s.observer, "import", startedAt, fields, err) }()

	records, err := importer.Parse(data)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateRecords(records); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted := importer.Convert(records, s.now())
	err = s.store.ReplaceAll(ctx, converted.Activities, func(ctx context.Context, tx db.DBTX) error {
		return writeImportedNotes(ctx, repository.NewSQLiteNotesRepo(tx), converted.Notes)
	})
	if err != nil {
		return nil, fmt.Errorf("importing: %w", err)
	}

	result = &ImportResult{Activities: len(converted.Activities), Notes: len(converted.Notes)}
	fields["activities"] = result.Activities
	fields["notes"] = result.Notes
	return result, nil
}

func (s *transferService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return s.Import(ctx, data)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
