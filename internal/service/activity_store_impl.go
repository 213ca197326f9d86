package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/weekly/internal/db"
	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/repository"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/google/uuid"
)

type activityStore struct {
	repo     repository.ActivityRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time

	mu     sync.RWMutex
	items  []*domain.Activity
	loaded bool
}

func NewActivityStore(repo repository.ActivityRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ActivityStore {
	return &activityStore{
		repo:     repo,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *activityStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *activityStore) loadLocked(ctx context.Context) error {
	items, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}
	s.items = items
	s.loaded = true
	return nil
}

// ensureLoaded keeps a mutation from overwriting storage with an empty
// collection when Load was never called. Caller holds the write lock.
func (s *activityStore) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

func (s *activityStore) List() []*domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Activity, 0, len(s.items))
	for _, a := range s.items {
		out = append(out, a.Clone())
	}
	return out
}

func (s *activityStore) ListByWeek(week weekcal.Week) []*domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Activity
	for _, a := range s.items {
		if a.Week() == week {
			out = append(out, a.Clone())
		}
	}
	return out
}

func (s *activityStore) Get(id string) (*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i].Clone(), nil
	}
	return nil, fmt.Errorf("activity %s: %w", id, repository.ErrNotFound)
}

func (s *activityStore) Add(ctx context.Context, a *domain.Activity) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"title": a.Title, "domain": a.DomainID}
	defer func() { observeUseCase(ctx, s.observer, "add-activity", startedAt, fields, err) }()

	a.ID = uuid.New().String()
	a.CreatedAt = s.now()
	a.Normalize()
	if err = syncReminderDate(a); err != nil {
		return err
	}
	if err = a.Validate(); err != nil {
		return err
	}
	fields["id"] = a.ID

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ensureLoaded(ctx); err != nil {
		return err
	}
	return s.commit(ctx, append(slices.Clone(s.items), a.Clone()))
}

func (s *activityStore) Update(ctx context.Context, id string, patch domain.ActivityPatch) (bool, error) {
	return s.patch(ctx, "update-activity", id, func(*domain.Activity) (domain.ActivityPatch, error) {
		return patch, nil
	})
}

func (s *activityStore) ToggleCompletion(ctx context.Context, id string, day int) (bool, error) {
	if !weekcal.ValidDay(day) {
		return false, fmt.Errorf("%w: day %d out of range 0-6", domain.ErrInvalidActivity, day)
	}
	return s.patch(ctx, "toggle-completion", id, func(a *domain.Activity) (domain.ActivityPatch, error) {
		return domain.CompletionPatch(a, day), nil
	})
}

func (s *activityStore) ToggleReminderDay(ctx context.Context, id string, day int) (bool, error) {
	if !weekcal.ValidDay(day) {
		return false, fmt.Errorf("%w: day %d out of range 0-6", domain.ErrInvalidActivity, day)
	}
	return s.patch(ctx, "toggle-reminder-day", id, func(a *domain.Activity) (domain.ActivityPatch, error) {
		if a.Reminder == nil {
			return domain.ActivityPatch{}, fmt.Errorf("activity %q has no reminder time", a.Title)
		}
		return domain.ReminderDayPatch(a, day), nil
	})
}

// patch applies the patch build derives from the current activity. Both
// steps run under the write lock.
func (s *activityStore) patch(ctx context.Context, useCase, id string, build func(current *domain.Activity) (domain.ActivityPatch, error)) (updated bool, err error) {
	startedAt := time.Now()
	fields := map[string]any{"id": id}
	defer func() {
		fields["updated"] = updated
		observeUseCase(ctx, s.observer, useCase, startedAt, fields, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	p, err := build(s.items[i])
	if err != nil {
		return false, err
	}
	next := s.items[i].Clone()
	next.Apply(p)
	next.Normalize()
	if reminderNeedsResync(p) {
		if err = syncReminderDate(next); err != nil {
			return false, err
		}
	}
	if err = next.Validate(); err != nil {
		return false, err
	}

	items := slices.Clone(s.items)
	items[i] = next
	if err = s.commit(ctx, items); err != nil {
		return false, err
	}
	return true, nil
}

func (s *activityStore) Delete(ctx context.Context, id string) (deleted bool, err error) {
	startedAt := time.Now()
	fields := map[string]any{"id": id}
	defer func() {
		fields["deleted"] = deleted
		observeUseCase(ctx, s.observer, "delete-activity", startedAt, fields, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	if err = s.commit(ctx, slices.Delete(slices.Clone(s.items), i, i+1)); err != nil {
		return false, err
	}
	return true, nil
}

func (s *activityStore) BulkReplace(ctx context.Context, activities []*domain.Activity) error {
	return s.ReplaceAll(ctx, activities, nil)
}

// ReplaceAll swaps the whole collection. Ids and weeks are kept as given;
// missing ids and creation times are filled. withinTx, when set, runs in the
// same transaction as the collection write so callers can store related keys
// atomically.
func (s *activityStore) ReplaceAll(ctx context.Context, activities []*domain.Activity, withinTx func(ctx context.Context, tx db.DBTX) error) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"count": len(activities)}
	defer func() { observeUseCase(ctx, s.observer, "replace-activities", startedAt, fields, err) }()

	next := make([]*domain.Activity, 0, len(activities))
	for i, a := range activities {
		c := a.Clone()
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = s.now()
		}
		c.Normalize()
		if err = c.Validate(); err != nil {
			return fmt.Errorf("activity %d: %w", i, err)
		}
		next = append(next, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteActivityRepo(tx).SaveAll(ctx, next); err != nil {
			return fmt.Errorf("saving activities: %w", err)
		}
		if withinTx != nil {
			return withinTx(ctx, tx)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.items = next
	s.loaded = true
	return nil
}

// CopyWeek duplicates every activity of from into to as fresh records with
// no completions.
func (s *activityStore) CopyWeek(ctx context.Context, from, to weekcal.Week) (copied []*domain.Activity, err error) {
	startedAt := time.Now()
	fields := map[string]any{"from": from.String(), "to": to.String()}
	defer func() {
		fields["copied"] = len(copied)
		observeUseCase(ctx, s.observer, "copy-week", startedAt, fields, err)
	}()

	if !to.Valid() {
		return nil, fmt.Errorf("week %s does not exist", to)
	}
	if from == to {
		return nil, fmt.Errorf("source and target week are both %s", from)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	items := slices.Clone(s.items)
	for _, a := range s.items {
		if a.Week() != from {
			continue
		}
		c := a.Clone()
		c.ID = uuid.New().String()
		c.WeekNumber, c.Year = to.Number, to.Year
		c.CompletedDays = make(map[int]bool)
		c.CreatedAt = now
		if err = syncReminderDate(c); err != nil {
			return nil, err
		}
		items = append(items, c)
		copied = append(copied, c.Clone())
	}
	if len(copied) == 0 {
		return nil, nil
	}
	if err = s.commit(ctx, items); err != nil {
		return nil, err
	}
	return copied, nil
}

// commit persists items and only then makes them current. Caller holds the
// write lock.
func (s *activityStore) commit(ctx context.Context, items []*domain.Activity) error {
	if err := s.repo.SaveAll(ctx, items); err != nil {
		return fmt.Errorf("saving activities: %w", err)
	}
	s.items = items
	return nil
}

func (s *activityStore) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(a *domain.Activity) bool { return a.ID == id })
}

// syncReminderDate sets the reminder date to the first day of the
// activity's week at the reminder time.
func syncReminderDate(a *domain.Activity) error {
	if a.Reminder == nil {
		return nil
	}
	r, err := domain.NewReminder(a.Week(), a.Reminder.Time)
	if err != nil {
		return fmt.Errorf("%w: reminder: %v", domain.ErrInvalidActivity, err)
	}
	a.Reminder.Time = r.Time
	a.Reminder.Date = r.Date
	return nil
}

func reminderNeedsResync(p domain.ActivityPatch) bool {
	if p.WeekNumber != nil || p.Year != nil {
		return true
	}
	return p.Reminder != nil && p.Reminder.Time != nil && p.Reminder.Date == nil
}
