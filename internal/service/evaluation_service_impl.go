package service

import (
	"github.com/alexanderramin/weekly/internal/progress"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

type evaluationService struct {
	store ActivityStore
}

func NewEvaluationService(store ActivityStore) EvaluationService {
	return &evaluationService{store: store}
}

func (s *evaluationService) Evaluate(week weekcal.Week) progress.Report {
	return progress.Evaluate(s.store.ListByWeek(week), week)
}

func (s *evaluationService) DayProgress(week weekcal.Week) [weekcal.DaysPerWeek]progress.Progress {
	return progress.DayProgress(s.store.ListByWeek(week), week)
}
