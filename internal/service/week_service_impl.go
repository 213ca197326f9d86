package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/repository"
)

type weekService struct {
	selection repository.SelectionRepo
	now       func() time.Time
}

// NewWeekService persists the viewed week so every command and the board
// share it. Without a stored selection the current week is used.
func NewWeekService(selection repository.SelectionRepo) WeekService {
	return &weekService{
		selection: selection,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *weekService) Current(ctx context.Context) (domain.WeekSelection, error) {
	sel, err := s.selection.Get(ctx)
	if err != nil {
		if repository.IsNotFound(err) {
			return domain.SelectionFor(s.now()), nil
		}
		return domain.WeekSelection{}, fmt.Errorf("loading week selection: %w", err)
	}
	if !sel.Valid() {
		return domain.SelectionFor(s.now()), nil
	}
	return *sel, nil
}

func (s *weekService) Next(ctx context.Context) (domain.WeekSelection, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return cur, err
	}
	return s.save(ctx, cur.Next())
}

func (s *weekService) Previous(ctx context.Context) (domain.WeekSelection, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return cur, err
	}
	return s.save(ctx, cur.Previous())
}

func (s *weekService) JumpTo(ctx context.Context, date time.Time) (domain.WeekSelection, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return cur, err
	}
	return s.save(ctx, cur.JumpTo(date))
}

func (s *weekService) Today(ctx context.Context) (domain.WeekSelection, error) {
	return s.save(ctx, domain.SelectionFor(s.now()))
}

func (s *weekService) save(ctx context.Context, sel domain.WeekSelection) (domain.WeekSelection, error) {
	if err := s.selection.Put(ctx, sel); err != nil {
		return domain.WeekSelection{}, fmt.Errorf("saving week selection: %w", err)
	}
	return sel, nil
}
