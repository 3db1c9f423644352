package services

import (
	"time"

	"github.com/SerfiMolotov/MissDelice/repository"
)

type AnalyticsService struct {
	Repo *repository.VisitRepository
	now  func() time.Time
}

func NewAnalyticsService(repo *repository.VisitRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo, now: time.Now}
}

type AnalyticsSummary struct {
	Users int64 `json:"users"`
	Views int64 `json:"views"`
}

type AnalyticsOut struct {
	Summary AnalyticsSummary      `json:"summary"`
	Chart   []repository.DayCount `json:"chart"`
}

// LastWeek aggregates the trailing seven days, today included.
func (s *AnalyticsService) LastWeek() (*AnalyticsOut, error) {
	since := s.now().AddDate(0, 0, -6).Format("20060102")

	views, err := s.Repo.ViewsSince(since)
	if err != nil {
		return nil, err
	}
	users, err := s.Repo.UniqueVisitorsSince(since)
	if err != nil {
		return nil, err
	}
	chart, err := s.Repo.DailyVisitorsSince(since)
	if err != nil {
		return nil, err
	}
	if chart == nil {
		chart = []repository.DayCount{}
	}

	return &AnalyticsOut{
		Summary: AnalyticsSummary{Users: users, Views: views},
		Chart:   chart,
	}, nil
}
